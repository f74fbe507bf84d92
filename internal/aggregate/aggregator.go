// Package aggregate turns validated customer records into the summary the
// dashboard renders. Summarize is a pure function: the same record set, in
// any order, produces an identical SummaryResult.
package aggregate

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"churnboard/domain/churn"
)

// Summarize computes KPIs and grouped tables from a record set. It assumes
// at least one record; an empty dataset is rejected upstream by the loader.
// Summarize never fails on records that passed loader validation.
func Summarize(records []churn.CustomerRecord) churn.SummaryResult {
	// Floating-point addition is order-sensitive, so all sums run over a
	// copy sorted by customer ID. IDs are unique after loading, which makes
	// the accumulation order a function of the record set alone.
	ordered := make([]churn.CustomerRecord, len(records))
	copy(ordered, records)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	records = ordered

	monthly := make([]float64, len(records))
	tenure := make([]float64, len(records))
	churned := 0
	for i, r := range records {
		monthly[i] = r.MonthlyCharges
		tenure[i] = float64(r.Tenure)
		if r.Churned {
			churned++
		}
	}

	return churn.SummaryResult{
		TotalCustomers: len(records),
		ChurnRate:      rate(churned, len(records)),
		MonthlyRevenue: floats.Sum(monthly),
		AvgTenure:      stat.Mean(tenure, nil),

		ChurnByInternetService: churnTable(records, byInternetService, churn.InternetServiceOrder, nil),
		ChurnByContract:        churnTable(records, byContract, churn.ContractOrder, nil),
		ChurnByPaymentMethod:   churnTable(records, byPaymentMethod, churn.PaymentMethodOrder, churn.PaymentMethodShort),
		TenureDistribution:     tenureDistribution(records),
		LTVByInternetService:   ltvSeries(records, byInternetService, churn.InternetServiceOrder),
		LTVByContract:          ltvSeries(records, byContract, churn.ContractOrder),
	}
}

func byInternetService(r churn.CustomerRecord) string { return r.InternetService }
func byContract(r churn.CustomerRecord) string        { return r.Contract }
func byPaymentMethod(r churn.CustomerRecord) string   { return r.PaymentMethod }

// rate is the churn-rate edge-case policy: an empty group has rate 0, never
// NaN.
func rate(churners, customers int) float64 {
	if customers == 0 {
		return 0
	}
	return float64(churners) / float64(customers)
}

// churnTable groups records by key and applies the churn-rate formula per
// group. Output keys are exactly the distinct observed category values,
// ordered by the canonical presentation order with unlisted values appended
// lexically.
func churnTable(records []churn.CustomerRecord, key func(churn.CustomerRecord) string, order []string, short map[string]string) []churn.ChurnGroup {
	customers := make(map[string]int)
	churners := make(map[string]int)
	for _, r := range records {
		k := key(r)
		customers[k]++
		if r.Churned {
			churners[k]++
		}
	}

	groups := make([]churn.ChurnGroup, 0, len(customers))
	for _, k := range orderKeys(customers, order) {
		label := k
		if s, ok := short[k]; ok {
			label = s
		}
		groups = append(groups, churn.ChurnGroup{
			Key:       k,
			Label:     label,
			Customers: customers[k],
			Churners:  churners[k],
			Rate:      rate(churners[k], customers[k]),
		})
	}
	return groups
}

// tenureDistribution counts churned vs stayed customers per fixed histogram
// bin. Every bin is emitted, zero counts included, so the grouped bar chart
// keeps a stable category axis.
func tenureDistribution(records []churn.CustomerRecord) []churn.TenureBucket {
	buckets := make([]churn.TenureBucket, len(churn.HistogramBins))
	for i, bin := range churn.HistogramBins {
		buckets[i].Band = bin.Label
	}
	for _, r := range records {
		for i, bin := range churn.HistogramBins {
			if bin.Contains(r.Tenure) {
				if r.Churned {
					buckets[i].Churned++
				} else {
					buckets[i].Stayed++
				}
				break
			}
		}
	}
	return buckets
}

// ltvSeries estimates lifetime value per (group, tenure band) cell as
// mean(monthly charge) x mean(tenure) for the records in the cell. Cells
// with zero records are omitted rather than emitted as zero, so line charts
// do not show spurious dips.
func ltvSeries(records []churn.CustomerRecord, key func(churn.CustomerRecord) string, order []string) []churn.LTVSeries {
	type cell struct {
		sumMonthly float64
		sumTenure  float64
		n          int
	}
	cells := make(map[string][]cell)
	observed := make(map[string]int)

	for _, r := range records {
		k := key(r)
		observed[k]++
		if _, ok := cells[k]; !ok {
			cells[k] = make([]cell, len(churn.LTVBands))
		}
		for i, band := range churn.LTVBands {
			if band.Contains(r.Tenure) {
				c := &cells[k][i]
				c.sumMonthly += r.MonthlyCharges
				c.sumTenure += float64(r.Tenure)
				c.n++
				break
			}
		}
	}

	series := make([]churn.LTVSeries, 0, len(cells))
	for _, k := range orderKeys(observed, order) {
		s := churn.LTVSeries{Key: k}
		for i, band := range churn.LTVBands {
			c := cells[k][i]
			if c.n == 0 {
				continue
			}
			meanMonthly := c.sumMonthly / float64(c.n)
			meanTenure := c.sumTenure / float64(c.n)
			s.Points = append(s.Points, churn.LTVPoint{
				Band:  band.Label,
				Value: meanMonthly * meanTenure,
			})
		}
		series = append(series, s)
	}
	return series
}

// orderKeys returns the observed keys in canonical presentation order, with
// values outside the canonical list appended in ascending lexical order so
// output stays deterministic regardless of input order.
func orderKeys(observed map[string]int, order []string) []string {
	keys := make([]string, 0, len(observed))
	listed := make(map[string]bool, len(order))
	for _, k := range order {
		listed[k] = true
		if _, ok := observed[k]; ok {
			keys = append(keys, k)
		}
	}
	var extras []string
	for k := range observed {
		if !listed[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return append(keys, extras...)
}
