package ui

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"churnboard/internal/aggregate"
	"churnboard/internal/report"
)

// handleDashboard renders the dashboard with the sidebar filters applied.
// Filtering happens entirely in the presentation layer: the subset is fed
// back through the same Summarize the startup pipeline uses.
func (s *Server) handleDashboard(c *gin.Context) {
	snap := s.current()

	var filter aggregate.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s.logger.Warn("[handleDashboard] bad filter query: %v", err)
	}
	filter = filter.Normalize()

	subset := filter.Apply(snap.Records)

	data := map[string]interface{}{
		"Title":       "Telco Churn Analysis",
		"Filter":      filter,
		"Filtered":    filter != aggregate.DefaultFilter(),
		"Diagnostics": snap.Diagnostics,
		"Profile":     snap.Profile,
		"LoadedAt":    snap.LoadedAt.Format("2006-01-02 15:04 UTC"),
	}

	if len(subset) == 0 {
		data["Empty"] = true
		data["TotalCustomers"] = "0"
		data["ChurnRate"] = "0%"
		data["MonthlyRevenue"] = "$0"
		data["AvgTenure"] = "0"
		for _, key := range []string{"ChurnByInternet", "ChurnByContract", "ChurnByPayment", "TenureHist", "LTVByInternet", "LTVByContract"} {
			data[key] = emptyChart()
		}
		s.renderTemplate(c, "dashboard.html", data)
		return
	}

	summary := aggregate.Summarize(subset)
	data["TotalCustomers"] = comma(summary.TotalCustomers)
	data["ChurnRate"] = pct(summary.ChurnRate)
	data["MonthlyRevenue"] = money(summary.MonthlyRevenue)
	data["AvgTenure"] = fmt.Sprintf("%.1f", summary.AvgTenure)
	data["ChurnByInternet"] = churnBarSVG(summary.ChurnByInternetService)
	data["ChurnByContract"] = churnBarSVG(summary.ChurnByContract)
	data["ChurnByPayment"] = churnBarSVG(summary.ChurnByPaymentMethod)
	data["TenureHist"] = tenureHistSVG(summary.TenureDistribution)
	data["LTVByInternet"] = ltvLineSVG(summary.LTVByInternetService)
	data["LTVByContract"] = ltvLineSVG(summary.LTVByContract)

	s.renderTemplate(c, "dashboard.html", data)
}

// handleSummary returns the unfiltered SummaryResult of the current
// snapshot.
func (s *Server) handleSummary(c *gin.Context) {
	snap := s.current()
	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snap.ID,
		"loaded_at":   snap.LoadedAt,
		"summary":     snap.Summary,
	})
}

func (s *Server) handleDiagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, s.current().Diagnostics)
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.current().Profile)
}

// handleReport renders the markdown report as HTML.
func (s *Server) handleReport(c *gin.Context) {
	snap := s.current()
	md := report.Render(snap.Summary, snap.Diagnostics, snap.Profile)
	body := markdown.ToHTML([]byte(md), nil, nil)

	s.renderTemplate(c, "report.html", map[string]interface{}{
		"Title": "Telco Churn Report",
		"Body":  template.HTML(body),
	})
}

// handleRefresh re-runs the whole pipeline and replaces the snapshot. Only
// one refresh may run at a time; an overlapping request is rejected.
func (s *Server) handleRefresh(c *gin.Context) {
	if !s.refreshSem.TryAcquire(1) {
		c.JSON(http.StatusConflict, gin.H{"error": "refresh already in progress"})
		return
	}
	defer s.refreshSem.Release(1)

	if err := s.reload(); err != nil {
		s.logger.Error("[handleRefresh] pipeline rerun failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	snap := s.current()
	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snap.ID,
		"loaded_at":   snap.LoadedAt,
		"customers":   snap.Summary.TotalCustomers,
	})
}
