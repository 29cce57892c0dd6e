package postgresql

import (
	"context"
	"encoding/json"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) admin.AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

// Create implements admin.AuditLogRepository.
func (r *auditLogRepositoryImpl) Create(ctx context.Context, log admin.AuditLog) error {
	q := GetQuerier(ctx, r.db)

	details, err := json.Marshal(log.Details)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_logs (action, admin_id, target_id, details)
		VALUES ($1, $2, $3, $4)
	`

	_, err = q.Exec(ctx, query, log.Action, log.AdminID, log.TargetID, details)
	return err
}

// List implements admin.AuditLogRepository.
func (r *auditLogRepositoryImpl) List(ctx context.Context, limit int) ([]admin.AuditLog, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = admin.AuditLogLimit
	}

	query := `
		SELECT al.id, al.action, al.admin_id, al.target_id, al.details, al.created_at, u.name
		FROM audit_logs al
		LEFT JOIN users u ON u.id = al.admin_id
		ORDER BY al.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []admin.AuditLog
	for rows.Next() {
		var log admin.AuditLog
		var details []byte
		if err := rows.Scan(
			&log.ID,
			&log.Action,
			&log.AdminID,
			&log.TargetID,
			&details,
			&log.CreatedAt,
			&log.AdminName,
		); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &log.Details); err != nil {
				return nil, err
			}
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
