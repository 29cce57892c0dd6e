package postgresql

import (
	"context"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) admin.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// statTables enumerates the tables surfaced in the database-explorer view,
// in display order.
var statTables = []struct {
	label string
	table string
	icon  string
}{
	{"Users", "users", "users"},
	{"Time Entries", "time_entries", "clock"},
	{"Leaves", "leave_requests", "calendar"},
	{"Holidays", "holidays", "sun"},
	{"Notifications", "notifications", "bell"},
	{"Roles", "roles", "shield"},
}

// TableCounts implements admin.StatsRepository. One batched round trip for
// all counts.
func (r *statsRepositoryImpl) TableCounts(ctx context.Context) ([]admin.TableStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM time_entries),
			(SELECT COUNT(*) FROM leave_requests),
			(SELECT COUNT(*) FROM holidays),
			(SELECT COUNT(*) FROM notifications),
			(SELECT COUNT(*) FROM roles)
	`

	counts := make([]int64, len(statTables))
	dest := make([]interface{}, len(counts))
	for i := range counts {
		dest[i] = &counts[i]
	}

	if err := q.QueryRow(ctx, query).Scan(dest...); err != nil {
		return nil, err
	}

	stats := make([]admin.TableStat, 0, len(statTables))
	for i, t := range statTables {
		stats = append(stats, admin.TableStat{
			Table: t.label,
			Count: counts[i],
			Icon:  t.icon,
		})
	}

	return stats, nil
}

// CountUsersByStatus implements admin.StatsRepository.
func (r *statsRepositoryImpl) CountUsersByStatus(ctx context.Context, status string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE status = $1`, status).Scan(&count)
	return count, err
}

// CountPendingLeaves implements admin.StatsRepository.
func (r *statsRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`).Scan(&count)
	return count, err
}
