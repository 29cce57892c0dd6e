package postgresql

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	var actionData []byte
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.IsRead,
		&actionData,
		&n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, err
	}
	if len(actionData) > 0 {
		if err := json.Unmarshal(actionData, &n.ActionData); err != nil {
			return notification.Notification{}, err
		}
	}
	return n, nil
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	actionData, err := json.Marshal(n.ActionData)
	if err != nil {
		return notification.Notification{}, err
	}

	query := `
		INSERT INTO notifications (user_id, title, message, type, action_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, message, type, is_read, action_data, created_at
	`

	created, err := scanNotification(q.QueryRow(ctx, query,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
		actionData,
	))
	if err != nil {
		return notification.Notification{}, err
	}

	return created, nil
}

// CreateBatch implements notification.Repository. Uses a single batched
// round trip for the whole slice and returns the stored rows.
func (r *notificationRepositoryImpl) CreateBatch(ctx context.Context, ns []notification.Notification) ([]notification.Notification, error) {
	if len(ns) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO notifications (user_id, title, message, type, action_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, message, type, is_read, action_data, created_at
	`

	batch := &pgx.Batch{}
	for _, n := range ns {
		actionData, err := json.Marshal(n.ActionData)
		if err != nil {
			return nil, err
		}
		batch.Queue(query, n.UserID, n.Title, n.Message, n.Type, actionData)
	}

	q := GetQuerier(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]notification.Notification, 0, len(ns))
	for range ns {
		n, err := scanNotification(results.QueryRow())
		if err != nil {
			return nil, err
		}
		created = append(created, n)
	}

	return created, nil
}

// ListByUserID implements notification.Repository.
func (r *notificationRepositoryImpl) ListByUserID(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = notification.ListLimit
	}

	query := `
		SELECT id, user_id, title, message, type, is_read, action_data, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountUnread implements notification.Repository.
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkRead implements notification.Repository. Scoped by user so one user
// cannot mark another's rows.
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, userID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
	`

	tag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}
