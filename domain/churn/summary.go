package churn

// ChurnGroup holds the churn breakdown for one category value.
// Rate is always in [0,1]; an empty group has Rate 0 rather than NaN.
type ChurnGroup struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"` // display label, may be a shortened form of Key
	Customers int     `json:"customers"`
	Churners  int     `json:"churners"`
	Rate      float64 `json:"rate"`
}

// TenureBucket holds the churned/stayed split for one histogram bin.
type TenureBucket struct {
	Band    string `json:"band"`
	Churned int    `json:"churned"`
	Stayed  int    `json:"stayed"`
}

// LTVPoint is one (group, tenure band) cell of a lifetime-value series.
// Bands with zero matching records are omitted from the series entirely so
// line charts do not dip to spurious zeros.
type LTVPoint struct {
	Band  string  `json:"band"`
	Value float64 `json:"value"`
}

// LTVSeries is the ordered lifetime-value estimate per tenure band for one
// category value.
type LTVSeries struct {
	Key    string     `json:"key"`
	Points []LTVPoint `json:"points"`
}

// SummaryResult is the aggregation pipeline's sole output: scalar KPIs plus
// the grouped tables the dashboard renders as chart series. A SummaryResult
// is constructed fresh from a record set and never updated in place; a
// refresh replaces it wholesale.
type SummaryResult struct {
	TotalCustomers int     `json:"total_customers"`
	ChurnRate      float64 `json:"churn_rate"` // fraction in [0,1]
	MonthlyRevenue float64 `json:"monthly_revenue"`
	AvgTenure      float64 `json:"avg_tenure"` // months

	ChurnByInternetService []ChurnGroup   `json:"churn_by_internet_service"`
	ChurnByContract        []ChurnGroup   `json:"churn_by_contract"`
	ChurnByPaymentMethod   []ChurnGroup   `json:"churn_by_payment_method"`
	TenureDistribution     []TenureBucket `json:"tenure_distribution"`
	LTVByInternetService   []LTVSeries    `json:"ltv_by_internet_service"`
	LTVByContract          []LTVSeries    `json:"ltv_by_contract"`
}
