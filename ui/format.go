package ui

import (
	"fmt"
	"strings"
)

// comma formats an integer with thousands separators for KPI tiles.
func comma(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// money formats a dollar amount without cents, e.g. $456,117.
func money(v float64) string {
	return "$" + comma(int(v+0.5))
}

// pct formats a fraction in [0,1] as a percentage with two decimals.
func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
