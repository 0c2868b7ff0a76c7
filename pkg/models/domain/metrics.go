package domain

// Metric distinguishes "extracted as zero" from "no matching row anywhere
// in the report". Callers that only care about arithmetic read Value;
// callers that care about presence check Found.
type Metric struct {
	Value float64
	Found bool
}

// Overview is the flat reduction of one P&L plus one Balance Sheet.
type Overview struct {
	Period            Period
	Revenue           Metric
	OperatingExpenses Metric
	CostOfGoodsSold   Metric
	NetProfit         Metric
	CashBalance       Metric
	TotalExpenses     float64
}

// ExpenseEntry is one category line of an expense breakdown. Percentage is
// the entry's share of the sum collected in the same extraction pass, 0-100.
type ExpenseEntry struct {
	Name       string
	Value      float64
	Percentage float64
}

// TrendPoint is one month of the twelve-point revenue/expense series.
type TrendPoint struct {
	Month    string
	Revenue  float64
	Expenses float64
}
