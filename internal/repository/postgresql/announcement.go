package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/announcement"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.Repository {
	return &announcementRepositoryImpl{db: db}
}

const announcementColumns = `a.id, a.title, a.content, a.type, a.priority, a.event_date,
	   a.author_id, a.created_at, a.updated_at, u.name`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Type,
		&a.Priority,
		&a.EventDate,
		&a.AuthorID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.AuthorName,
	)
	return a, err
}

func collectAnnouncements(rows pgx.Rows) ([]announcement.Announcement, error) {
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Create implements announcement.Repository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO announcements (title, content, type, priority, event_date, author_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, title, content, type, priority, event_date, author_id,
					  created_at, updated_at
		)
		SELECT a.id, a.title, a.content, a.type, a.priority, a.event_date,
			   a.author_id, a.created_at, a.updated_at, u.name
		FROM inserted a
		JOIN users u ON u.id = a.author_id
	`

	created, err := scanAnnouncement(q.QueryRow(ctx, query,
		a.Title,
		a.Content,
		a.Type,
		a.Priority,
		a.EventDate,
		a.AuthorID,
	))
	if err != nil {
		return announcement.Announcement{}, err
	}

	return created, nil
}

// List implements announcement.Repository.
func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + announcementColumns + `
		FROM announcements a
		JOIN users u ON u.id = a.author_id
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectAnnouncements(rows)
}

// ListEventsInWindow implements announcement.Repository. Only rows with an
// event date participate in the calendar.
func (r *announcementRepositoryImpl) ListEventsInWindow(ctx context.Context, start, end time.Time) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + announcementColumns + `
		FROM announcements a
		JOIN users u ON u.id = a.author_id
		WHERE a.event_date IS NOT NULL
		  AND a.event_date >= $1 AND a.event_date <= $2
		ORDER BY a.event_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}

	return collectAnnouncements(rows)
}
