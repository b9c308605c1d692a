// Package stats derives read-only financial views from a single user's
// transaction list. Every function is a pure, single-pass computation: the
// caller supplies the snapshot and the reference clock, nothing is mutated
// and nothing is persisted.
package stats

import (
	"sort"
	"time"

	"github.com/phpedruo/mypocket/internal/entity"
)

type Totals struct {
	TotalIncome    float64 `json:"total_income"`
	TotalExpense   float64 `json:"total_expense"`
	Balance        float64 `json:"balance"`
	MonthlyIncome  float64 `json:"monthly_income"`
	MonthlyExpense float64 `json:"monthly_expense"`
	MonthlyBalance float64 `json:"monthly_balance"`
}

type TrendPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type BreakdownEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// monthBounds returns the inclusive [start, end] window of t's calendar
// month. end is the last representable instant of the month, so a
// transaction dated at that exact instant still belongs to the month.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// ComputeTotals sums income, expense and balance over the whole list and
// over the calendar month containing now. Empty input yields all zeros.
func ComputeTotals(transactions []entity.Transaction, now time.Time) Totals {
	monthStart, monthEnd := monthBounds(now)

	var totals Totals
	for _, tx := range transactions {
		switch tx.Type {
		case string(entity.TransactionTypeIncome):
			totals.TotalIncome += tx.Amount
			if inWindow(tx.Date, monthStart, monthEnd) {
				totals.MonthlyIncome += tx.Amount
			}
		case string(entity.TransactionTypeExpense):
			totals.TotalExpense += tx.Amount
			if inWindow(tx.Date, monthStart, monthEnd) {
				totals.MonthlyExpense += tx.Amount
			}
		}
	}

	totals.Balance = totals.TotalIncome - totals.TotalExpense
	totals.MonthlyBalance = totals.MonthlyIncome - totals.MonthlyExpense
	return totals
}

// MonthlyTrend returns exactly months entries, chronologically ascending and
// ending at now's month. A transaction contributes to the single period whose
// inclusive month window contains its date.
func MonthlyTrend(transactions []entity.Transaction, months int, now time.Time) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}

	trend := make([]TrendPoint, 0, months)

	for i := months - 1; i >= 0; i-- {
		// Anchoring on day 1 keeps month arithmetic exact; subtracting
		// whole months from day 31 would otherwise normalize forward.
		target := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthStart, monthEnd := monthBounds(target)

		point := TrendPoint{Month: target.Format("Jan/06")}

		for _, tx := range transactions {
			if !inWindow(tx.Date, monthStart, monthEnd) {
				continue
			}
			switch tx.Type {
			case string(entity.TransactionTypeIncome):
				point.Income += tx.Amount
			case string(entity.TransactionTypeExpense):
				point.Expense += tx.Amount
			}
		}

		point.Balance = point.Income - point.Expense
		trend = append(trend, point)
	}

	return trend
}

// CategoryBreakdown groups transactions of the given type by their category
// name (expense) or income source name (income) and reports each group's
// share of the matched total. Transactions lacking the reference and groups
// summing to zero are dropped. Percentages are left unrounded; formatting is
// a presentation concern. The result is sorted by value descending, stable
// on ties so equal groups keep their first-seen order.
func CategoryBreakdown(transactions []entity.Transaction, transactionType string) []BreakdownEntry {
	indexByName := make(map[string]int)
	entries := make([]BreakdownEntry, 0)

	for _, tx := range transactions {
		if tx.Type != transactionType {
			continue
		}

		var name string
		switch transactionType {
		case string(entity.TransactionTypeExpense):
			name = tx.CategoryName
		case string(entity.TransactionTypeIncome):
			name = tx.IncomeSourceName
		}
		if name == "" {
			continue
		}

		idx, ok := indexByName[name]
		if !ok {
			idx = len(entries)
			indexByName[name] = idx
			entries = append(entries, BreakdownEntry{Name: name})
		}
		entries[idx].Value += tx.Amount
	}

	filtered := entries[:0]
	var total float64
	for _, entry := range entries {
		if entry.Value > 0 {
			filtered = append(filtered, entry)
			total += entry.Value
		}
	}
	entries = filtered

	for i := range entries {
		if total > 0 {
			entries[i].Percentage = entries[i].Value / total * 100
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	return entries
}
