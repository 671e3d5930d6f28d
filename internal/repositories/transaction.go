package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// transactionColumns are the writable columns of the transactions table.
var transactionColumns = map[string]bool{
	"id":             true,
	"user_id":        true,
	"type":           true,
	"amount":         true,
	"created_at":     true,
	"updated_at":     true,
	"category":       true,
	"description":    true,
	"receipt_url":    true,
	"receipt_base64": true,
}

// transactionMutableColumns are overwritten on conflict; a column missing from the
// written document is reset to NULL.
var transactionMutableColumns = []string{
	"type", "amount", "created_at", "updated_at",
	"category", "description", "receipt_url", "receipt_base64",
}

// TransactionRepository stores transactions in PostgreSQL keyed by (user_id, id).
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransactionRepository creates a repository. txGetter may be nil; when it returns a
// transaction, writes run inside it.
func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

func (r *TransactionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// List returns every transaction of the user in insertion order.
func (r *TransactionRepository) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	const query = `
		SELECT id, user_id, type, amount, created_at, updated_at,
		       category, description, receipt_url, receipt_base64
		FROM transactions
		WHERE user_id = $1
		ORDER BY seq
	`

	txs := []models.Transaction{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &txs, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(txs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txs, nil
}

// Get returns one transaction, or nil when it does not exist.
func (r *TransactionRepository) Get(ctx context.Context, userID, id string) (*models.Transaction, error) {
	const query = `
		SELECT id, user_id, type, amount, created_at, updated_at,
		       category, description, receipt_url, receipt_base64
		FROM transactions
		WHERE user_id = $1 AND id = $2
	`

	var tx models.Transaction
	err := sqlx.GetContext(ctx, r.executor(ctx), &tx, query, userID, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, id},
		"result", tx.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Put writes doc as the full content of transaction (userID, id), inserting or
// overwriting. doc holds column names to values and must not contain nil values.
func (r *TransactionRepository) Put(ctx context.Context, userID, id string, doc map[string]any) error {
	row := make(map[string]any, len(doc)+2)
	for col, val := range doc {
		row[col] = val
	}
	row["id"] = id
	row["user_id"] = userID

	cols := make([]string, 0, len(row))
	for col, val := range row {
		if !transactionColumns[col] {
			return fmt.Errorf("unknown transaction field %q", col)
		}
		if val == nil {
			return fmt.Errorf("transaction field %q has no value", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
	}

	updates := make([]string, len(transactionMutableColumns))
	for i, col := range transactionMutableColumns {
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}

	query := fmt.Sprintf(`
		INSERT INTO transactions (%s)
		VALUES (%s)
		ON CONFLICT (user_id, id)
		DO UPDATE SET %s
	`, strings.Join(cols, ", "), strings.Join(placeholders, ", "), strings.Join(updates, ", "))

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", cols,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes transaction (userID, id). Deleting a missing row is not an error.
func (r *TransactionRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM transactions WHERE user_id = $1 AND id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{userID, id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
