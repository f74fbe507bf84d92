package dataset

// RawRow represents a row of source data as string key-value pairs keyed by
// column header.
type RawRow map[string]string

// RawTable represents the complete source dataset before validation.
type RawTable struct {
	Headers []string // Column headers
	Rows    []RawRow // Data rows
}
