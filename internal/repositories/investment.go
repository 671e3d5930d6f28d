package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// InvestmentRepository stores investment positions in PostgreSQL.
type InvestmentRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInvestmentRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InvestmentRepository {
	return &InvestmentRepository{db: db, txGetter: txGetter}
}

// ListByUser returns the user's investments ordered by creation time, oldest first.
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID string) ([]models.Investment, error) {
	const query = `
		SELECT id, user_id, month, year, value, type, description, created_at, updated_at
		FROM investments
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	investments := []models.Investment{}
	err := r.db.SelectContext(ctx, &investments, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(investments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return investments, nil
}

// Save inserts the investment or overwrites the one with the same (user_id, id).
func (r *InvestmentRepository) Save(ctx context.Context, inv models.Investment) error {
	const query = `
		INSERT INTO investments (id, user_id, month, year, value, type, description, created_at, updated_at)
		VALUES (:id, :user_id, :month, :year, :value, :type, :description, :created_at, :updated_at)
		ON CONFLICT (user_id, id)
		DO UPDATE SET month = EXCLUDED.month, year = EXCLUDED.year, value = EXCLUDED.value,
		              type = EXCLUDED.type, description = EXCLUDED.description,
		              updated_at = EXCLUDED.updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := sqlx.NamedExecContext(ctx, executor, query, inv)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{inv.UserID, inv.ID},
		"result", "ok",
		"error", err,
	)

	return err
}
