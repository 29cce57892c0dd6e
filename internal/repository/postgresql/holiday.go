package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Upsert implements holiday.Repository. The unique date column makes re-syncs
// idempotent: re-running a year updates names in place instead of duplicating.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, date, year, is_floater)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE
		SET name = EXCLUDED.name, is_floater = EXCLUDED.is_floater, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, h.Name, h.Date, h.Year, h.IsFloater)
	return err
}

func scanHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Date,
			&h.Year,
			&h.IsFloater,
			&h.CreatedAt,
			&h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// ListByYear implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, year, is_floater, created_at, updated_at
		FROM holidays
		WHERE year = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}

	return scanHolidays(rows)
}

// ListInWindow implements holiday.Repository.
func (r *holidayRepositoryImpl) ListInWindow(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, year, is_floater, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}

	return scanHolidays(rows)
}
