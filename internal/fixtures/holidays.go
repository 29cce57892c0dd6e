package fixtures

import (
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
)

type holidayRow struct {
	name      string
	date      string
	isFloater bool
}

// holidaysByYear holds the official India holiday list per calendar year.
// New years are appended here as HR publishes them.
var holidaysByYear = map[int][]holidayRow{
	2026: {
		{"Makar Sankranti / Pongal", "2026-01-14", false},
		{"Republic Day", "2026-01-26", false},
		{"Holi", "2026-03-03", false},
		{"Id-ul-Fitr", "2026-03-21", true},
		{"Ram Navami", "2026-03-26", false},
		{"Mahavir Jayanti", "2026-03-31", true},
		{"Good Friday", "2026-04-03", false},
		{"Buddha Purnima", "2026-05-01", true},
		{"Bakrid / Eid al-Adha", "2026-05-27", false},
		{"Muharram", "2026-06-26", true},
		{"Independence Day", "2026-08-15", false},
		{"Janmashtami", "2026-09-04", false},
		{"Gandhi Jayanti", "2026-10-02", false},
		{"Dussehra", "2026-10-20", false},
		{"Diwali", "2026-11-08", false},
		{"Guru Nanak Jayanti", "2026-11-24", true},
		{"Christmas", "2026-12-25", false},
	},
}

// HolidaysForYear returns the fixture holidays for a year, or an empty slice
// when no list has been published for it.
func HolidaysForYear(year int) []holiday.Holiday {
	rows, ok := holidaysByYear[year]
	if !ok {
		return nil
	}

	holidays := make([]holiday.Holiday, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.date)
		if err != nil {
			continue
		}
		holidays = append(holidays, holiday.Holiday{
			Name:      row.name,
			Date:      date,
			Year:      year,
			IsFloater: row.isFloater,
		})
	}

	return holidays
}
