package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/kudos"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type kudosRepositoryImpl struct {
	db *database.DB
}

func NewKudosRepository(db *database.DB) kudos.Repository {
	return &kudosRepositoryImpl{db: db}
}

const kudosColumns = `k.id, k.from_user_id, k.to_user_id, k.category, k.message,
	   k.created_at, sender.name, recipient.name`

func scanKudos(row pgx.Row) (kudos.Kudos, error) {
	var k kudos.Kudos
	err := row.Scan(
		&k.ID,
		&k.FromUserID,
		&k.ToUserID,
		&k.Category,
		&k.Message,
		&k.CreatedAt,
		&k.FromUserName,
		&k.ToUserName,
	)
	return k, err
}

func collectKudos(rows pgx.Rows) ([]kudos.Kudos, error) {
	defer rows.Close()

	var list []kudos.Kudos
	for rows.Next() {
		k, err := scanKudos(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, k)
	}

	return list, rows.Err()
}

// Create implements kudos.Repository.
func (r *kudosRepositoryImpl) Create(ctx context.Context, k kudos.Kudos) (kudos.Kudos, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO kudos (from_user_id, to_user_id, category, message)
			VALUES ($1, $2, $3, $4)
			RETURNING id, from_user_id, to_user_id, category, message, created_at
		)
		SELECT k.id, k.from_user_id, k.to_user_id, k.category, k.message,
			   k.created_at, sender.name, recipient.name
		FROM inserted k
		JOIN users sender ON sender.id = k.from_user_id
		JOIN users recipient ON recipient.id = k.to_user_id
	`

	created, err := scanKudos(q.QueryRow(ctx, query,
		k.FromUserID,
		k.ToUserID,
		k.Category,
		k.Message,
	))
	if err != nil {
		return kudos.Kudos{}, err
	}

	return created, nil
}

// List implements kudos.Repository.
func (r *kudosRepositoryImpl) List(ctx context.Context) ([]kudos.Kudos, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + kudosColumns + `
		FROM kudos k
		JOIN users sender ON sender.id = k.from_user_id
		JOIN users recipient ON recipient.id = k.to_user_id
		ORDER BY k.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectKudos(rows)
}

// ListByRecipient implements kudos.Repository.
func (r *kudosRepositoryImpl) ListByRecipient(ctx context.Context, userID string) ([]kudos.Kudos, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + kudosColumns + `
		FROM kudos k
		JOIN users sender ON sender.id = k.from_user_id
		JOIN users recipient ON recipient.id = k.to_user_id
		WHERE k.to_user_id = $1
		ORDER BY k.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	return collectKudos(rows)
}
