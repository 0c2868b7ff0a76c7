package api

type Company struct {
	Name    string `json:"name"`
	RealmID string `json:"realm_id"`
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Metric struct {
	Value float64 `json:"value"`
	Found bool    `json:"found"`
}

type Overview struct {
	Period            Period  `json:"period"`
	Revenue           Metric  `json:"revenue"`
	OperatingExpenses Metric  `json:"operating_expenses"`
	CostOfGoodsSold   Metric  `json:"cost_of_goods_sold"`
	NetProfit         Metric  `json:"net_profit"`
	CashBalance       Metric  `json:"cash_balance"`
	TotalExpenses     float64 `json:"total_expenses"`
}

type ExpenseEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type TrendPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

type Trend struct {
	Year   int          `json:"year"`
	Points []TrendPoint `json:"points"`
}
