package stats

import (
	"math"
	"testing"
	"time"

	"github.com/phpedruo/mypocket/internal/entity"
)

func income(amount float64, date time.Time, source string) entity.Transaction {
	return entity.Transaction{Type: "income", Amount: amount, Date: date, IncomeSourceName: source}
}

func expense(amount float64, date time.Time, category string) entity.Transaction {
	return entity.Transaction{Type: "expense", Amount: amount, Date: date, CategoryName: category}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil, time.Now())
	if totals != (Totals{}) {
		t.Fatalf("expected all-zero totals, got %+v", totals)
	}
}

func TestComputeTotals(t *testing.T) {
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		income(1000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "Salary"),
		expense(300, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "Food"),
		income(500, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "Salary"),
		expense(200, time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), "Rent"),
	}

	totals := ComputeTotals(transactions, now)

	if !almostEqual(totals.TotalIncome, 1500) || !almostEqual(totals.TotalExpense, 500) {
		t.Fatalf("unexpected overall totals: %+v", totals)
	}
	if !almostEqual(totals.Balance, totals.TotalIncome-totals.TotalExpense) {
		t.Fatalf("balance invariant broken: %+v", totals)
	}
	if !almostEqual(totals.MonthlyIncome, 500) || !almostEqual(totals.MonthlyExpense, 200) {
		t.Fatalf("unexpected current-month totals: %+v", totals)
	}
	if !almostEqual(totals.MonthlyBalance, 300) {
		t.Fatalf("unexpected monthly balance: %+v", totals)
	}
}

func TestComputeTotalsMonthBoundaryInclusive(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	lastInstant := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	firstInstant := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	totals := ComputeTotals([]entity.Transaction{
		income(100, lastInstant, ""),
		income(50, firstInstant, ""),
	}, now)

	if !almostEqual(totals.MonthlyIncome, 150) {
		t.Fatalf("boundary transactions must land in their own month, got %+v", totals)
	}
}

func TestMonthlyTrendLengthAndOrder(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	for _, months := range []int{1, 3, 6, 12} {
		trend := MonthlyTrend(nil, months, now)
		if len(trend) != months {
			t.Fatalf("months=%d: expected %d entries, got %d", months, months, len(trend))
		}
		if trend[len(trend)-1].Month != "Jun/25" {
			t.Fatalf("months=%d: last entry must be the current month, got %s", months, trend[len(trend)-1].Month)
		}
	}
}

func TestMonthlyTrendScenario(t *testing.T) {
	now := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		income(1000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), ""),
		expense(300, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), ""),
		expense(200, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), ""),
	}

	trend := MonthlyTrend(transactions, 2, now)
	if len(trend) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(trend))
	}

	jan, feb := trend[0], trend[1]
	if jan.Month != "Jan/25" || !almostEqual(jan.Income, 1000) || !almostEqual(jan.Expense, 300) || !almostEqual(jan.Balance, 700) {
		t.Fatalf("unexpected January entry: %+v", jan)
	}
	if feb.Month != "Feb/25" || !almostEqual(feb.Income, 0) || !almostEqual(feb.Expense, 200) || !almostEqual(feb.Balance, -200) {
		t.Fatalf("unexpected February entry: %+v", feb)
	}
}

func TestMonthlyTrendEndOfMonthAnchor(t *testing.T) {
	// now on the 31st: subtracting months must not normalize into the
	// wrong period.
	now := time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)
	trend := MonthlyTrend(nil, 3, now)

	want := []string{"Jan/25", "Feb/25", "Mar/25"}
	for i, label := range want {
		if trend[i].Month != label {
			t.Fatalf("entry %d: expected %s, got %s", i, label, trend[i].Month)
		}
	}
}

func TestMonthlyTrendYearRollover(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	trend := MonthlyTrend(nil, 3, now)

	want := []string{"Nov/24", "Dec/24", "Jan/25"}
	for i, label := range want {
		if trend[i].Month != label {
			t.Fatalf("entry %d: expected %s, got %s", i, label, trend[i].Month)
		}
	}
}

func TestMonthlyTrendNonPositiveMonths(t *testing.T) {
	if got := MonthlyTrend(nil, 0, time.Now()); len(got) != 0 {
		t.Fatalf("expected empty trend for months=0, got %d entries", len(got))
	}
	if got := MonthlyTrend(nil, -4, time.Now()); len(got) != 0 {
		t.Fatalf("expected empty trend for negative months, got %d entries", len(got))
	}
}

func TestCategoryBreakdownScenario(t *testing.T) {
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		expense(100, date, "Food"),
		expense(50, date, "Food"),
		expense(350, date, "Rent"),
	}

	breakdown := CategoryBreakdown(transactions, "expense")
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(breakdown))
	}

	if breakdown[0].Name != "Rent" || !almostEqual(breakdown[0].Value, 350) || !almostEqual(breakdown[0].Percentage, 70) {
		t.Fatalf("unexpected first group: %+v", breakdown[0])
	}
	if breakdown[1].Name != "Food" || !almostEqual(breakdown[1].Value, 150) || !almostEqual(breakdown[1].Percentage, 30) {
		t.Fatalf("unexpected second group: %+v", breakdown[1])
	}
}

func TestCategoryBreakdownPercentagesSumTo100(t *testing.T) {
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		income(123.45, date, "Salary"),
		income(67.89, date, "Freelance"),
		income(10.01, date, "Dividends"),
	}

	breakdown := CategoryBreakdown(transactions, "income")

	var sum float64
	for _, entry := range breakdown {
		sum += entry.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages must sum to 100, got %v", sum)
	}
}

func TestCategoryBreakdownExcludesUnlabeled(t *testing.T) {
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		expense(100, date, "Food"),
		expense(40, date, ""), // no category reference
		income(500, date, "Salary"),
	}

	breakdown := CategoryBreakdown(transactions, "expense")
	if len(breakdown) != 1 || breakdown[0].Name != "Food" {
		t.Fatalf("unlabeled and wrong-type transactions must be excluded, got %+v", breakdown)
	}
	if !almostEqual(breakdown[0].Percentage, 100) {
		t.Fatalf("single group should take the whole share, got %+v", breakdown[0])
	}
}

func TestCategoryBreakdownEmptyTotal(t *testing.T) {
	if got := CategoryBreakdown(nil, "expense"); len(got) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", got)
	}
}

func TestCategoryBreakdownStableTieOrder(t *testing.T) {
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		expense(100, date, "Transport"),
		expense(100, date, "Health"),
		expense(100, date, "Leisure"),
	}

	breakdown := CategoryBreakdown(transactions, "expense")

	want := []string{"Transport", "Health", "Leisure"}
	for i, name := range want {
		if breakdown[i].Name != name {
			t.Fatalf("tie order not stable: expected %s at %d, got %s", name, i, breakdown[i].Name)
		}
	}
}
