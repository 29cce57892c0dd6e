package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/leave"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `lr.id, lr.user_id, lr.type, lr.start_date, lr.end_date, lr.reason,
	   lr.status, lr.rejection_reason, lr.approved_by, lr.approved_at,
	   lr.created_at, lr.updated_at, u.name`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.Type,
		&req.StartDate,
		&req.EndDate,
		&req.Reason,
		&req.Status,
		&req.RejectionReason,
		&req.ApprovedBy,
		&req.ApprovedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.UserName,
	)
	return req, err
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (user_id, type, start_date, end_date, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, user_id, type, start_date, end_date, reason, status,
					  rejection_reason, approved_by, approved_at, created_at, updated_at
		)
		SELECT lr.id, lr.user_id, lr.type, lr.start_date, lr.end_date, lr.reason,
			   lr.status, lr.rejection_reason, lr.approved_by, lr.approved_at,
			   lr.created_at, lr.updated_at, u.name
		FROM inserted lr
		JOIN users u ON u.id = lr.user_id
	`

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.UserID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	))
	if err != nil {
		return leave.Request{}, err
	}

	return created, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	found, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return found, nil
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.user_id = $%d", argPos))
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM leave_requests lr WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE ` + where + fmt.Sprintf(`
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

// UpdateStatus implements leave.RequestRepository. The status predicate keeps
// the PENDING to terminal transition single-shot under concurrency.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = $2,
			approved_at = CASE WHEN $1 = 'APPROVED' THEN NOW() ELSE approved_at END,
			rejection_reason = $3,
			updated_at = NOW()
		WHERE id = $4 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, rejectionReason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return leave.ErrRequestNotFound
		}
		return leave.ErrAlreadyProcessed
	}

	return nil
}

// HasOverlap implements leave.RequestRepository. REJECTED requests do not
// block the window.
func (r *leaveRequestRepositoryImpl) HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE user_id = $1
			  AND status != 'REJECTED'
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, start, end).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// ListApprovedInWindow implements leave.RequestRepository. Matches requests
// starting in, ending in, or spanning the window.
func (r *leaveRequestRepositoryImpl) ListApprovedInWindow(ctx context.Context, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.status = 'APPROVED'
		  AND (
			(lr.start_date >= $1 AND lr.start_date <= $2)
			OR (lr.end_date >= $1 AND lr.end_date <= $2)
			OR (lr.start_date <= $1 AND lr.end_date >= $2)
		  )
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
