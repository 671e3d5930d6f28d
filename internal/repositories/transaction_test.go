package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

var transactionRowColumns = []string{
	"id", "user_id", "type", "amount", "created_at", "updated_at",
	"category", "description", "receipt_url", "receipt_base64",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	require.NoError(t, logger.Initialize("debug"))

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "pgx"), mock
}

func TestTransactionRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	rows := sqlmock.NewRows(transactionRowColumns).
		AddRow("t1", "u1", "deposit", "100.50", "2024-01-01T10:00:00Z", nil, "Salário", "salario", nil, nil).
		AddRow("t2", "u1", "transfer", "45.9", "2024-01-02T10:00:00Z", "2024-01-03T10:00:00Z", nil, nil, "https://x/r.png", nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE user_id = $1 ORDER BY seq")).
		WithArgs("u1").
		WillReturnRows(rows)

	txs, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "t1", txs[0].ID)
	assert.Equal(t, models.TransactionTypeDeposit, txs[0].Type)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("100.5")))
	require.NotNil(t, txs[0].Category)
	assert.Equal(t, "Salário", *txs[0].Category)
	assert.Nil(t, txs[0].UpdatedAt)

	assert.Nil(t, txs[1].Category)
	require.NotNil(t, txs[1].ReceiptURL)
	assert.Equal(t, "https://x/r.png", *txs[1].ReceiptURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	mock.ExpectQuery("FROM transactions").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(transactionRowColumns))

	txs, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestTransactionRepository_ListError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	mock.ExpectQuery("FROM transactions").WillReturnError(errors.New("connection reset"))

	txs, err := repo.List(context.Background(), "u1")
	assert.Error(t, err)
	assert.Nil(t, txs)
}

func TestTransactionRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND id = $2")).
		WithArgs("u1", "t1").
		WillReturnRows(sqlmock.NewRows(transactionRowColumns).
			AddRow("t1", "u1", "transfer", "10", "2024-01-01T10:00:00Z", nil, nil, "Uber", nil, nil))

	tx, err := repo.Get(context.Background(), "u1", "t1")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, "t1", tx.ID)
	require.NotNil(t, tx.Description)
	assert.Equal(t, "Uber", *tx.Description)
}

func TestTransactionRepository_GetMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	mock.ExpectQuery("FROM transactions").
		WithArgs("u1", "nope").
		WillReturnError(sql.ErrNoRows)

	tx, err := repo.Get(context.Background(), "u1", "nope")
	assert.NoError(t, err)
	assert.Nil(t, tx)
}

func TestTransactionRepository_Put(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	doc := map[string]any{
		"type":       "transfer",
		"amount":     decimal.RequireFromString("45.90"),
		"created_at": "2024-01-01T10:00:00Z",
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO transactions (amount, created_at, id, type, user_id) VALUES ($1, $2, $3, $4, $5) "+
			"ON CONFLICT (user_id, id) DO UPDATE SET type = EXCLUDED.type",
	)).
		WithArgs(sqlmock.AnyArg(), "2024-01-01T10:00:00Z", "t1", "transfer", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Put(context.Background(), "u1", "t1", doc)
	require.NoError(t, err)
	assert.Len(t, doc, 3, "caller document must not be mutated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_PutRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
	}{
		{
			name: "unknown column",
			doc:  map[string]any{"type": "deposit", "amount; DROP TABLE": 1},
			want: "unknown transaction field",
		},
		{
			name: "nil value",
			doc:  map[string]any{"type": "deposit", "category": nil},
			want: "has no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewTransactionRepository(db, nil)

			err := repo.Put(context.Background(), "u1", "t1", tt.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionRepository_PutUsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewTransactionRepository(db, func(context.Context) *sqlx.Tx { return tx })
	err = repo.Put(context.Background(), "u1", "t1", map[string]any{
		"type":       "deposit",
		"amount":     decimal.NewFromInt(5),
		"created_at": "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE user_id = $1 AND id = $2")).
		WithArgs("u1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs("u1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "u1", "t1"))
	assert.NoError(t, repo.Delete(context.Background(), "u1", "missing"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
