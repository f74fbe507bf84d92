package churn

// LoadDiagnostics counts the row-level data quality decisions made while
// loading the dataset. Dropped rows are reported, never fatal.
type LoadDiagnostics struct {
	RowsRead    int `json:"rows_read"`
	RowsLoaded  int `json:"rows_loaded"`
	RowsDropped int `json:"rows_dropped"`

	MissingCategorical int `json:"missing_categorical"`
	BadNumeric         int `json:"bad_numeric"`
	DuplicateID        int `json:"duplicate_id"`

	// CoercedTotalCharges counts rows whose total-charge value failed to
	// parse and was set to 0.0; those rows are retained.
	CoercedTotalCharges int `json:"coerced_total_charges"`
}
