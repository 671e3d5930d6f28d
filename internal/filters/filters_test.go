package filters

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

func str(s string) *string { return &s }

func tx(id string, typ models.TransactionType, createdAt string, category, description *string) models.Transaction {
	return models.Transaction{
		ID:          id,
		UserID:      "u1",
		Type:        typ,
		Amount:      decimal.NewFromInt(10),
		CreatedAt:   createdAt,
		Category:    category,
		Description: description,
	}
}

func sampleSet() []models.Transaction {
	return []models.Transaction{
		tx("1", models.TransactionTypeDeposit, "2025-01-10T10:00:00Z", str("Renda"), str("Salário janeiro")),
		tx("2", models.TransactionTypeTransfer, "2025-01-15T08:30:00Z", str("Transporte"), str("Uber centro")),
		tx("3", models.TransactionTypeTransfer, "2025-02-01T00:00:00Z", nil, str("uber aeroporto")),
		tx("4", models.TransactionTypeTransfer, "not-a-date", str("Lazer"), nil),
		tx("5", "TRANSFER", "2025-02-20T19:00:00Z", str("lazer"), str("Cinema")),
	}
}

func ids(txs []models.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.ID)
	}
	return out
}

func at(s string) *time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &ts
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter models.TransactionFilter
		want   []string
	}{
		{name: "empty filter keeps everything", filter: models.TransactionFilter{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "type is case insensitive", filter: models.TransactionFilter{Type: "Transfer"}, want: []string{"2", "3", "4", "5"}},
		{name: "deposit", filter: models.TransactionFilter{Type: "DEPOSIT"}, want: []string{"1"}},
		{name: "category exact, case insensitive", filter: models.TransactionFilter{Category: "LAZER"}, want: []string{"4", "5"}},
		{name: "category never matches missing", filter: models.TransactionFilter{Category: "Outros"}, want: []string{}},
		{name: "date from inclusive", filter: models.TransactionFilter{DateFrom: at("2025-01-15T08:30:00Z")}, want: []string{"2", "3", "5"}},
		{name: "date to inclusive", filter: models.TransactionFilter{DateTo: at("2025-01-15T08:30:00Z")}, want: []string{"1", "2"}},
		{
			name:   "date range",
			filter: models.TransactionFilter{DateFrom: at("2025-01-11T00:00:00Z"), DateTo: at("2025-02-01T00:00:00Z")},
			want:   []string{"2", "3"},
		},
		{name: "text on description", filter: models.TransactionFilter{Text: "UBER"}, want: []string{"2", "3"}},
		{name: "text excludes missing description", filter: models.TransactionFilter{Text: "lazer"}, want: []string{}},
		{name: "fields are ANDed", filter: models.TransactionFilter{Type: "transfer", Text: "uber", Category: "transporte"}, want: []string{"2"}},
		{name: "blank fields ignored", filter: models.TransactionFilter{Type: "  ", Text: " "}, want: []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleSet(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_ComposesAsIntersection(t *testing.T) {
	set := sampleSet()
	byType := models.TransactionFilter{Type: "transfer"}
	byDate := models.TransactionFilter{DateFrom: at("2025-01-12T00:00:00Z")}
	both := models.TransactionFilter{Type: "transfer", DateFrom: at("2025-01-12T00:00:00Z")}

	left := map[string]bool{}
	for _, t := range Apply(set, byType) {
		left[t.ID] = true
	}
	var intersection []string
	for _, t := range Apply(set, byDate) {
		if left[t.ID] {
			intersection = append(intersection, t.ID)
		}
	}

	assert.Equal(t, intersection, ids(Apply(set, both)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	set := sampleSet()
	_ = Apply(set, models.TransactionFilter{Type: "deposit"})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(set))
}

func TestSortByCreatedAtDesc(t *testing.T) {
	set := sampleSet()
	set = append(set, tx("6", models.TransactionTypeDeposit, "", nil, nil))
	set = append(set, tx("7", models.TransactionTypeDeposit, "2025-01-15T08:30:00Z", nil, nil))

	got := SortByCreatedAtDesc(set)

	assert.Equal(t, []string{"5", "3", "2", "7", "1", "4", "6"}, ids(got))
	assert.Equal(t, "1", set[0].ID, "input order must be untouched")
}

func TestPaginate(t *testing.T) {
	set := sampleSet()

	tests := []struct {
		name      string
		page      int
		size      int
		wantIDs   []string
		wantPage  int
		wantSize  int
		wantTotal int
	}{
		{name: "first page", page: 1, size: 2, wantIDs: []string{"1", "2"}, wantPage: 1, wantSize: 2, wantTotal: 5},
		{name: "last partial page", page: 3, size: 2, wantIDs: []string{"5"}, wantPage: 3, wantSize: 2, wantTotal: 5},
		{name: "beyond last page", page: 9, size: 2, wantIDs: []string{}, wantPage: 9, wantSize: 2, wantTotal: 5},
		{name: "defaults", page: 0, size: 0, wantIDs: []string{"1", "2", "3"}, wantPage: 1, wantSize: 3, wantTotal: 5},
		{name: "max page", page: math.MaxInt, size: 2, wantIDs: []string{}, wantPage: math.MaxInt, wantSize: 2, wantTotal: 5},
		{name: "max page and size", page: math.MaxInt, size: math.MaxInt, wantIDs: []string{}, wantPage: math.MaxInt, wantSize: MaxPageSize, wantTotal: 5},
		{name: "page overflowing product", page: 1 << 58, size: 100, wantIDs: []string{}, wantPage: 1 << 58, wantSize: 100, wantTotal: 5},
		{name: "capped size", page: 1, size: 1000, wantIDs: []string{"1", "2", "3", "4", "5"}, wantPage: 1, wantSize: MaxPageSize, wantTotal: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(set, tt.page, tt.size, 3)
			assert.Equal(t, tt.wantIDs, ids(p.Items))
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
			assert.Equal(t, tt.wantTotal, p.Total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, 1, 10, 10)
	assert.Equal(t, 0, p.Total)
	assert.Empty(t, p.Items)
}
