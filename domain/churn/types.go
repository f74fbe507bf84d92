package churn

// CustomerRecord represents one validated row of the telco churn dataset.
// Records are built once by the dataset loader and never mutated afterwards.
type CustomerRecord struct {
	ID               string  `json:"id"`
	Gender           string  `json:"gender"`
	SeniorCitizen    bool    `json:"senior_citizen"`
	Partner          bool    `json:"partner"`
	Dependents       bool    `json:"dependents"`
	PhoneService     bool    `json:"phone_service"`
	MultipleLines    string  `json:"multiple_lines"`
	InternetService  string  `json:"internet_service"`
	Contract         string  `json:"contract"`
	PaymentMethod    string  `json:"payment_method"`
	PaperlessBilling bool    `json:"paperless_billing"`
	Tenure           int     `json:"tenure"`          // months, >= 0
	MonthlyCharges   float64 `json:"monthly_charges"` // >= 0
	TotalCharges     float64 `json:"total_charges"`   // >= 0; 0 when unbilled (zero-tenure customers)
	Churned          bool    `json:"churned"`
}

// TenureBand is a fixed contiguous bucket of tenure months. Boundaries are
// configuration constants rather than inferred from data, so grouped series
// keep the same categories across dataset changes.
type TenureBand struct {
	Label string
	Lo    int // inclusive lower bound in months
	Hi    int // exclusive upper bound in months; < 0 means open-ended
}

// Contains reports whether the given tenure falls inside the band.
func (b TenureBand) Contains(tenure int) bool {
	if tenure < b.Lo {
		return false
	}
	return b.Hi < 0 || tenure < b.Hi
}

// LTVBands partitions tenure into one-year buckets for lifetime-value
// series, labelled by the upper month of each year.
var LTVBands = []TenureBand{
	{Label: "12", Lo: 0, Hi: 12},
	{Label: "24", Lo: 12, Hi: 24},
	{Label: "36", Lo: 24, Hi: 36},
	{Label: "48", Lo: 36, Hi: 48},
	{Label: "60", Lo: 48, Hi: 60},
	{Label: "72", Lo: 60, Hi: -1},
}

// HistogramBins partitions tenure for the churned-vs-stayed distribution
// chart.
var HistogramBins = []TenureBand{
	{Label: "1-15", Lo: 0, Hi: 15},
	{Label: "15-30", Lo: 15, Hi: 30},
	{Label: "30-45", Lo: 30, Hi: 45},
	{Label: "45-60", Lo: 45, Hi: 60},
	{Label: ">60", Lo: 60, Hi: -1},
}

// Canonical presentation orders for grouped tables. Chart category ordering
// must be stable across runs, so grouped output follows these lists instead
// of alphabetical or encounter order. Category values observed in the data
// but missing here are appended in ascending lexical order.
var (
	InternetServiceOrder = []string{"Fiber optic", "DSL", "No"}
	ContractOrder        = []string{"Month-to-month", "One year", "Two year"}
	PaymentMethodOrder   = []string{
		"Electronic check",
		"Mailed check",
		"Bank transfer (automatic)",
		"Credit card (automatic)",
	}
)

// PaymentMethodShort maps raw payment method values to the compact labels
// used on chart axes.
var PaymentMethodShort = map[string]string{
	"Electronic check":          "Electronic",
	"Mailed check":              "Mailed",
	"Bank transfer (automatic)": "Bank Transfer",
	"Credit card (automatic)":   "Credit Card",
}
