package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type systemConfigRepositoryImpl struct {
	db *database.DB
}

func NewSystemConfigRepository(db *database.DB) admin.SystemConfigRepository {
	return &systemConfigRepositoryImpl{db: db}
}

func scanSystemConfig(row pgx.Row) (admin.SystemConfig, error) {
	var cfg admin.SystemConfig
	var value []byte
	err := row.Scan(&cfg.ID, &cfg.Key, &value, &cfg.UpdatedAt)
	if err != nil {
		return admin.SystemConfig{}, err
	}
	if len(value) > 0 {
		if err := json.Unmarshal(value, &cfg.Value); err != nil {
			return admin.SystemConfig{}, err
		}
	}
	return cfg, nil
}

// Get implements admin.SystemConfigRepository.
func (r *systemConfigRepositoryImpl) Get(ctx context.Context, key string) (admin.SystemConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, key, value, updated_at
		FROM system_configs
		WHERE key = $1
	`

	cfg, err := scanSystemConfig(q.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.SystemConfig{}, admin.ErrConfigNotFound
		}
		return admin.SystemConfig{}, err
	}

	return cfg, nil
}

// GetAll implements admin.SystemConfigRepository.
func (r *systemConfigRepositoryImpl) GetAll(ctx context.Context) ([]admin.SystemConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, key, value, updated_at
		FROM system_configs
		ORDER BY key ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []admin.SystemConfig
	for rows.Next() {
		cfg, err := scanSystemConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

// Upsert implements admin.SystemConfigRepository.
func (r *systemConfigRepositoryImpl) Upsert(ctx context.Context, key string, value map[string]interface{}) (admin.SystemConfig, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(value)
	if err != nil {
		return admin.SystemConfig{}, err
	}

	query := `
		INSERT INTO system_configs (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, key, value, updated_at
	`

	cfg, err := scanSystemConfig(q.QueryRow(ctx, query, key, payload))
	if err != nil {
		return admin.SystemConfig{}, err
	}

	return cfg, nil
}

// BulkUpsert implements admin.SystemConfigRepository.
func (r *systemConfigRepositoryImpl) BulkUpsert(ctx context.Context, configs []admin.SetConfigRequest) error {
	if len(configs) == 0 {
		return nil
	}

	query := `
		INSERT INTO system_configs (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	batch := &pgx.Batch{}
	for _, cfg := range configs {
		payload, err := json.Marshal(cfg.Value)
		if err != nil {
			return err
		}
		batch.Queue(query, cfg.Key, payload)
	}

	q := GetQuerier(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range configs {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}
