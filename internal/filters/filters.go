// Package filters narrows, orders and pages transaction sets in memory.
package filters

import (
	"sort"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// MaxPageSize caps the page size accepted by Paginate.
const MaxPageSize = 100

// Apply returns the transactions that satisfy every non-empty field of f,
// preserving input order. The input slice is not modified.
func Apply(txs []models.Transaction, f models.TransactionFilter) []models.Transaction {
	typ := strings.TrimSpace(f.Type)
	category := strings.TrimSpace(f.Category)
	text := strings.ToLower(strings.TrimSpace(f.Text))

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if typ != "" && !strings.EqualFold(string(tx.Type), typ) {
			continue
		}
		if category != "" && (tx.Category == nil || !strings.EqualFold(*tx.Category, category)) {
			continue
		}
		if f.HasDateBound() && !inRange(tx, f.DateFrom, f.DateTo) {
			continue
		}
		if text != "" && (tx.Description == nil || !strings.Contains(strings.ToLower(*tx.Description), text)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func inRange(tx models.Transaction, from, to *time.Time) bool {
	ts, ok := tx.CreatedAtTime()
	if !ok {
		return false
	}
	if from != nil && ts.Before(*from) {
		return false
	}
	if to != nil && ts.After(*to) {
		return false
	}
	return true
}

// SortByCreatedAtDesc returns a copy of txs ordered most recent first.
// Records without a parsable CreatedAt sort as the zero instant, i.e. last.
// Equal timestamps keep their input order.
func SortByCreatedAtDesc(txs []models.Transaction) []models.Transaction {
	type keyed struct {
		tx models.Transaction
		ts time.Time
	}

	items := make([]keyed, len(txs))
	for i, tx := range txs {
		ts, _ := tx.CreatedAtTime()
		items[i] = keyed{tx: tx, ts: ts}
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].ts.After(items[b].ts)
	})

	out := make([]models.Transaction, len(items))
	for i, it := range items {
		out[i] = it.tx
	}
	return out
}

// Paginate returns the 1-based page of txs and the total item count.
// page < 1 is treated as 1; size < 1 falls back to defaultSize and is capped at MaxPageSize.
func Paginate(txs []models.Transaction, page, size, defaultSize int) models.TransactionPage {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	total := len(txs)
	start := total
	if page-1 < total/size+1 {
		// Bounded by total+size, so the product cannot overflow.
		start = min((page-1)*size, total)
	}
	end := min(start+size, total)

	items := make([]models.Transaction, end-start)
	copy(items, txs[start:end])

	return models.TransactionPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	}
}
