package postgresql

import (
	"context"

	"github.com/rudratic/hr-backend-go/internal/domain/leave"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetOrCreate implements leave.BalanceRepository. The upsert keeps the row
// creation race-free: concurrent first reads both land on the same row.
func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, userID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (user_id, year, sick, casual, earned)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, year) DO UPDATE SET updated_at = leave_balances.updated_at
		RETURNING id, user_id, year, sick, casual, earned, created_at, updated_at
	`

	var balance leave.Balance
	err := q.QueryRow(ctx, query,
		userID,
		year,
		leave.DefaultSickDays,
		leave.DefaultCasualDays,
		leave.DefaultEarnedDays,
	).Scan(
		&balance.ID,
		&balance.UserID,
		&balance.Year,
		&balance.Sick,
		&balance.Casual,
		&balance.Earned,
		&balance.CreatedAt,
		&balance.UpdatedAt,
	)
	if err != nil {
		return leave.Balance{}, err
	}

	return balance, nil
}

// Deduct implements leave.BalanceRepository. The bucket predicate makes the
// decrement fail atomically when the balance would go negative.
func (r *leaveBalanceRepositoryImpl) Deduct(ctx context.Context, userID string, year int, leaveType leave.Type, days int) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch leaveType {
	case leave.TypeSick:
		column = "sick"
	case leave.TypeCasual:
		column = "casual"
	case leave.TypeVacation:
		column = "earned"
	default:
		// Untracked types deduct nothing.
		return nil
	}

	query := `
		UPDATE leave_balances
		SET ` + column + ` = ` + column + ` - $1, updated_at = NOW()
		WHERE user_id = $2 AND year = $3 AND ` + column + ` >= $1
	`

	tag, err := q.Exec(ctx, query, days, userID, year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}
