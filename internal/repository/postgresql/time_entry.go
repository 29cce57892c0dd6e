package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) attendance.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `te.id, te.user_id, te.clock_in, te.clock_out, te.hours_worked,
	   te.clock_type, te.status, te.is_on_call, te.created_at, te.updated_at, u.name`

func scanTimeEntry(row pgx.Row) (attendance.TimeEntry, error) {
	var entry attendance.TimeEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ClockIn,
		&entry.ClockOut,
		&entry.HoursWorked,
		&entry.ClockType,
		&entry.Status,
		&entry.IsOnCall,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.UserName,
	)
	return entry, err
}

func collectTimeEntries(rows pgx.Rows) ([]attendance.TimeEntry, error) {
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Create implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry attendance.TimeEntry) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO time_entries (user_id, clock_in, clock_type, status, is_on_call)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, clock_in, clock_out, hours_worked, clock_type,
					  status, is_on_call, created_at, updated_at
		)
		SELECT te.id, te.user_id, te.clock_in, te.clock_out, te.hours_worked,
			   te.clock_type, te.status, te.is_on_call, te.created_at, te.updated_at, u.name
		FROM inserted te
		JOIN users u ON u.id = te.user_id
	`

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		entry.UserID,
		entry.ClockIn,
		entry.ClockType,
		entry.Status,
		entry.IsOnCall,
	))
	if err != nil {
		return attendance.TimeEntry{}, err
	}

	return created, nil
}

// GetByID implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.id = $1
	`

	found, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntry{}, attendance.ErrEntryNotFound
		}
		return attendance.TimeEntry{}, err
	}

	return found, nil
}

// GetActiveByUserID implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetActiveByUserID(ctx context.Context, userID string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.user_id = $1 AND te.status = 'ACTIVE'
		ORDER BY te.clock_in DESC
		LIMIT 1
	`

	found, err := scanTimeEntry(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntry{}, attendance.ErrNotClockedIn
		}
		return attendance.TimeEntry{}, err
	}

	return found, nil
}

// Complete implements attendance.TimeEntryRepository. The status predicate
// stops a double clock-out from overwriting the first.
func (r *timeEntryRepositoryImpl) Complete(ctx context.Context, id string, clockOut time.Time, hoursWorked float64) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE time_entries
			SET clock_out = $1, hours_worked = $2, status = 'COMPLETED', updated_at = NOW()
			WHERE id = $3 AND status = 'ACTIVE'
			RETURNING id, user_id, clock_in, clock_out, hours_worked, clock_type,
					  status, is_on_call, created_at, updated_at
		)
		SELECT te.id, te.user_id, te.clock_in, te.clock_out, te.hours_worked,
			   te.clock_type, te.status, te.is_on_call, te.created_at, te.updated_at, u.name
		FROM updated te
		JOIN users u ON u.id = te.user_id
	`

	updated, err := scanTimeEntry(q.QueryRow(ctx, query, clockOut, hoursWorked, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntry{}, attendance.ErrEntryNotActive
		}
		return attendance.TimeEntry{}, err
	}

	return updated, nil
}

// Reset implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Reset(ctx context.Context, id string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE time_entries
			SET status = 'RESET', updated_at = NOW()
			WHERE id = $1
			RETURNING id, user_id, clock_in, clock_out, hours_worked, clock_type,
					  status, is_on_call, created_at, updated_at
		)
		SELECT te.id, te.user_id, te.clock_in, te.clock_out, te.hours_worked,
			   te.clock_type, te.status, te.is_on_call, te.created_at, te.updated_at, u.name
		FROM updated te
		JOIN users u ON u.id = te.user_id
	`

	updated, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntry{}, attendance.ErrEntryNotFound
		}
		return attendance.TimeEntry{}, err
	}

	return updated, nil
}

// History implements attendance.TimeEntryRepository. RESET entries stay
// visible in history but are excluded from summaries.
func (r *timeEntryRepositoryImpl) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM time_entries WHERE user_id = $1`
	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.UserID).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.user_id = $1
		ORDER BY te.clock_in DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, filter.UserID, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}

	entries, err := collectTimeEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListActive implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListActive(ctx context.Context) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.status = 'ACTIVE'
		ORDER BY te.clock_in ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectTimeEntries(rows)
}

// ListCompletedSince implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.user_id = $1 AND te.status = 'COMPLETED' AND te.clock_in >= $2
		ORDER BY te.clock_in ASC
	`

	rows, err := q.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}

	return collectTimeEntries(rows)
}

// Report implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Report(ctx context.Context, filter attendance.ReportFilter) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.status != 'RESET'
		  AND te.clock_in >= $1 AND te.clock_in <= $2
	`
	args := []interface{}{filter.Start, filter.End}

	if filter.UserID != nil {
		query += ` AND te.user_id = $3`
		args = append(args, *filter.UserID)
	}
	query += ` ORDER BY te.clock_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectTimeEntries(rows)
}
