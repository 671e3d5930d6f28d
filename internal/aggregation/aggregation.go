// Package aggregation reduces transaction sets to balances and category totals.
package aggregation

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Options control the category breakdown.
type Options struct {
	DefaultCategory string // Bucket for outflows without a category
	TopN            int    // Keep the N largest categories; <= 0 keeps all
}

// DefaultOptions groups uncategorized outflows under "Outros" and keeps the top 6 categories.
func DefaultOptions() Options {
	return Options{DefaultCategory: "Outros", TopN: 6}
}

// Summarize computes income, expense, balance and the outflow breakdown of txs.
// Categories past TopN are dropped, not merged.
func Summarize(txs []models.Transaction, opts Options) models.Summary {
	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		amount := tx.Amount.Abs()
		if tx.Type.IsDeposit() {
			income = income.Add(amount)
			continue
		}

		expense = expense.Add(amount)
		category := strings.TrimSpace(models.StringValue(tx.Category))
		if category == "" {
			category = opts.DefaultCategory
		}
		byCategory[category] = byCategory[category].Add(amount)
	}

	return models.Summary{
		Balance:      income.Sub(expense),
		TotalIncome:  income,
		TotalExpense: expense,
		ByCategory:   rank(byCategory, opts.TopN),
	}
}

// Balance is a shortcut for Summarize(txs, ...).Balance.
func Balance(txs []models.Transaction) decimal.Decimal {
	return Summarize(txs, Options{}).Balance
}

func rank(totals map[string]decimal.Decimal, topN int) []models.CategoryTotal {
	out := make([]models.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, models.CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
