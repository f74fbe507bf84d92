// Package profiling computes per-field summary statistics for the dataset
// panel of the dashboard and the markdown report.
package profiling

import (
	"sort"

	"github.com/montanaflynn/stats"

	"churnboard/domain/churn"
)

// NumericProfile holds summary statistics for one numeric field.
type NumericProfile struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// CategoricalProfile holds cardinality information for one categorical
// field.
type CategoricalProfile struct {
	Name          string `json:"name"`
	DistinctCount int    `json:"distinct_count"`
	TopValue      string `json:"top_value"`
	TopCount      int    `json:"top_count"`
}

// DatasetProfile describes the loaded record set field by field.
type DatasetProfile struct {
	Numeric     []NumericProfile     `json:"numeric"`
	Categorical []CategoricalProfile `json:"categorical"`
}

// Profiler builds DatasetProfiles from customer records.
type Profiler struct{}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Profile computes numeric profiles for tenure and the charge fields plus
// categorical profiles for the grouping dimensions.
func (p *Profiler) Profile(records []churn.CustomerRecord) (DatasetProfile, error) {
	tenure := make([]float64, len(records))
	monthly := make([]float64, len(records))
	total := make([]float64, len(records))
	for i, r := range records {
		tenure[i] = float64(r.Tenure)
		monthly[i] = r.MonthlyCharges
		total[i] = r.TotalCharges
	}

	profile := DatasetProfile{}
	for _, field := range []struct {
		name string
		data []float64
	}{
		{"tenure", tenure},
		{"monthly_charges", monthly},
		{"total_charges", total},
	} {
		np, err := numericProfile(field.name, field.data)
		if err != nil {
			return DatasetProfile{}, err
		}
		profile.Numeric = append(profile.Numeric, np)
	}

	for _, field := range []struct {
		name string
		get  func(churn.CustomerRecord) string
	}{
		{"internet_service", func(r churn.CustomerRecord) string { return r.InternetService }},
		{"contract", func(r churn.CustomerRecord) string { return r.Contract }},
		{"payment_method", func(r churn.CustomerRecord) string { return r.PaymentMethod }},
		{"gender", func(r churn.CustomerRecord) string { return r.Gender }},
	} {
		profile.Categorical = append(profile.Categorical, categoricalProfile(field.name, records, field.get))
	}

	return profile, nil
}

func numericProfile(name string, data []float64) (NumericProfile, error) {
	profile := NumericProfile{Name: name}

	mean, err := stats.Mean(data)
	if err != nil {
		return profile, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return profile, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return profile, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return profile, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return profile, err
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return profile, err
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return profile, err
	}

	profile.Mean = mean
	profile.StdDev = stdDev
	profile.Min = min
	profile.Max = max
	profile.Median = median
	profile.Q25 = q25
	profile.Q75 = q75
	return profile, nil
}

func categoricalProfile(name string, records []churn.CustomerRecord, get func(churn.CustomerRecord) string) CategoricalProfile {
	counts := make(map[string]int)
	for _, r := range records {
		counts[get(r)]++
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	// Ties broken lexically so the profile is deterministic.
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})

	profile := CategoricalProfile{Name: name, DistinctCount: len(counts)}
	if len(values) > 0 {
		profile.TopValue = values[0]
		profile.TopCount = counts[values[0]]
	}
	return profile
}
