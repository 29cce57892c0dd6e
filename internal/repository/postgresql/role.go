package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) user.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// GetByName implements user.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, name user.Role) (user.RoleRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles
		WHERE name = $1
	`

	var found user.RoleRecord
	err := q.QueryRow(ctx, query, name).Scan(
		&found.ID,
		&found.Name,
		&found.Permissions,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.RoleRecord{}, user.ErrRoleNotFound
		}
		return user.RoleRecord{}, err
	}

	return found, nil
}

// List implements user.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]user.RoleRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []user.RoleRecord
	for rows.Next() {
		var record user.RoleRecord
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Permissions,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		roles = append(roles, record)
	}

	return roles, rows.Err()
}

// Upsert implements user.RoleRepository.
func (r *roleRepositoryImpl) Upsert(ctx context.Context, role user.RoleRecord) (user.RoleRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (name, permissions)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET permissions = EXCLUDED.permissions, updated_at = NOW()
		RETURNING id, name, permissions, created_at, updated_at
	`

	var upserted user.RoleRecord
	err := q.QueryRow(ctx, query, role.Name, role.Permissions).Scan(
		&upserted.ID,
		&upserted.Name,
		&upserted.Permissions,
		&upserted.CreatedAt,
		&upserted.UpdatedAt,
	)
	if err != nil {
		return user.RoleRecord{}, err
	}

	return upserted, nil
}
