// Package report renders a summary as a markdown document, for the CLI
// report file and the dashboard's /report page.
package report

import (
	"fmt"
	"strings"

	"churnboard/domain/churn"
	"churnboard/internal/profiling"
)

// Render builds the full markdown report from the pipeline outputs.
func Render(summary churn.SummaryResult, diag churn.LoadDiagnostics, profile profiling.DatasetProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Telco Churn Report\n\n")
	fmt.Fprintf(&b, "- **Total Customers:** %d\n", summary.TotalCustomers)
	fmt.Fprintf(&b, "- **Churn Rate:** %.2f%%\n", summary.ChurnRate*100)
	fmt.Fprintf(&b, "- **Monthly Revenue:** $%.2f\n", summary.MonthlyRevenue)
	fmt.Fprintf(&b, "- **Avg Tenure:** %.1f months\n\n", summary.AvgTenure)

	writeChurnTable(&b, "Churn Rate by Internet Service", summary.ChurnByInternetService)
	writeChurnTable(&b, "Churn Rate by Contract", summary.ChurnByContract)
	writeChurnTable(&b, "Churn Rate by Payment Method", summary.ChurnByPaymentMethod)

	fmt.Fprintf(&b, "## Tenure Distribution (Churned vs Stayed)\n\n")
	fmt.Fprintf(&b, "| Tenure (months) | Churned | Stayed |\n|---|---|---|\n")
	for _, bucket := range summary.TenureDistribution {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", bucket.Band, bucket.Churned, bucket.Stayed)
	}
	fmt.Fprintln(&b)

	writeLTV(&b, "Lifetime Value by Internet Service", summary.LTVByInternetService)
	writeLTV(&b, "Lifetime Value by Contract", summary.LTVByContract)

	fmt.Fprintf(&b, "## Field Profiles\n\n")
	fmt.Fprintf(&b, "| Field | Mean | Std Dev | Min | Median | Max |\n|---|---|---|---|---|---|\n")
	for _, np := range profile.Numeric {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			np.Name, np.Mean, np.StdDev, np.Min, np.Median, np.Max)
	}
	fmt.Fprintln(&b)
	for _, cp := range profile.Categorical {
		fmt.Fprintf(&b, "- %s: %d distinct values, most common %q (%d)\n",
			cp.Name, cp.DistinctCount, cp.TopValue, cp.TopCount)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "## Data Quality\n\n")
	fmt.Fprintf(&b, "- Rows read: %d\n- Rows loaded: %d\n- Rows dropped: %d\n", diag.RowsRead, diag.RowsLoaded, diag.RowsDropped)
	if diag.MissingCategorical > 0 {
		fmt.Fprintf(&b, "- Dropped for missing categorical field: %d\n", diag.MissingCategorical)
	}
	if diag.BadNumeric > 0 {
		fmt.Fprintf(&b, "- Dropped for unparseable numeric field: %d\n", diag.BadNumeric)
	}
	if diag.DuplicateID > 0 {
		fmt.Fprintf(&b, "- Dropped for duplicate customer ID: %d\n", diag.DuplicateID)
	}
	if diag.CoercedTotalCharges > 0 {
		fmt.Fprintf(&b, "- Total charges coerced to 0.0: %d\n", diag.CoercedTotalCharges)
	}

	return b.String()
}

func writeChurnTable(b *strings.Builder, title string, groups []churn.ChurnGroup) {
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| Group | Customers | Churners | Churn Rate |\n|---|---|---|---|\n")
	for _, g := range groups {
		fmt.Fprintf(b, "| %s | %d | %d | %.2f%% |\n", g.Label, g.Customers, g.Churners, g.Rate*100)
	}
	fmt.Fprintln(b)
}

func writeLTV(b *strings.Builder, title string, series []churn.LTVSeries) {
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, s := range series {
		var parts []string
		for _, p := range s.Points {
			parts = append(parts, fmt.Sprintf("%s: $%.0f", p.Band, p.Value))
		}
		fmt.Fprintf(b, "- %s: %s\n", s.Key, strings.Join(parts, ", "))
	}
	fmt.Fprintln(b)
}
