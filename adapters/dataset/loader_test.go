package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnboard/domain/churn"
	"churnboard/internal/errors"
)

func sampleHeaders() []string {
	return []string{
		"customerID", "gender", "SeniorCitizen", "Partner", "Dependents",
		"tenure", "PhoneService", "MultipleLines", "InternetService",
		"Contract", "PaperlessBilling", "PaymentMethod",
		"MonthlyCharges", "TotalCharges", "Churn",
	}
}

func sampleRow(overrides map[string]string) RawRow {
	row := RawRow{
		"customerID":       "0001-TEST",
		"gender":           "Female",
		"SeniorCitizen":    "0",
		"Partner":          "Yes",
		"Dependents":       "No",
		"tenure":           "12",
		"PhoneService":     "Yes",
		"MultipleLines":    "No",
		"InternetService":  "DSL",
		"Contract":         "Month-to-month",
		"PaperlessBilling": "Yes",
		"PaymentMethod":    "Electronic check",
		"MonthlyCharges":   "29.85",
		"TotalCharges":     "358.20",
		"Churn":            "No",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestParse_HappyPath(t *testing.T) {
	table := &RawTable{
		Headers: sampleHeaders(),
		Rows: []RawRow{
			sampleRow(nil),
			sampleRow(map[string]string{"customerID": "0002-TEST", "SeniorCitizen": "1", "Churn": "Yes"}),
		},
	}

	records, diag, err := NewLoader().Parse(table)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "0001-TEST", records[0].ID)
	assert.Equal(t, 12, records[0].Tenure)
	assert.Equal(t, 29.85, records[0].MonthlyCharges)
	assert.False(t, records[0].SeniorCitizen)
	assert.False(t, records[0].Churned)
	assert.True(t, records[1].SeniorCitizen)
	assert.True(t, records[1].Churned)

	assert.Equal(t, 2, diag.RowsRead)
	assert.Equal(t, 2, diag.RowsLoaded)
	assert.Equal(t, 0, diag.RowsDropped)
}

func TestParse_MissingRequiredColumnIsDatasetError(t *testing.T) {
	headers := sampleHeaders()
	// Drop the Contract column entirely.
	var trimmed []string
	for _, h := range headers {
		if h != "Contract" {
			trimmed = append(trimmed, h)
		}
	}

	_, _, err := NewLoader().Parse(&RawTable{Headers: trimmed, Rows: []RawRow{sampleRow(nil)}})
	require.Error(t, err)
	assert.True(t, errors.IsDatasetError(err))
	assert.Contains(t, err.Error(), "Contract")
}

func TestParse_ZeroParseableRowsIsDatasetError(t *testing.T) {
	table := &RawTable{
		Headers: sampleHeaders(),
		Rows: []RawRow{
			sampleRow(map[string]string{"InternetService": ""}),
			sampleRow(map[string]string{"customerID": "0002-TEST", "tenure": "bogus"}),
		},
	}

	_, diag, err := NewLoader().Parse(table)
	require.Error(t, err)
	assert.True(t, errors.IsDatasetError(err))
	assert.Equal(t, 2, diag.RowsDropped)
	assert.Equal(t, 0, diag.RowsLoaded)
}

func TestParse_TotalChargesCoercedNotDropped(t *testing.T) {
	table := &RawTable{
		Headers: sampleHeaders(),
		Rows: []RawRow{
			sampleRow(map[string]string{"customerID": "A", "tenure": "0", "TotalCharges": "N/A"}),
		},
	}

	records, diag, err := NewLoader().Parse(table)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].TotalCharges)
	assert.Equal(t, 1, diag.CoercedTotalCharges)
	assert.Equal(t, 0, diag.RowsDropped)
}

func TestParse_RowLevelDrops(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		check     func(t *testing.T, diag churn.LoadDiagnostics)
	}{
		{
			name:      "missing categorical",
			overrides: map[string]string{"customerID": "0002-TEST", "PaymentMethod": ""},
			check: func(t *testing.T, diag churn.LoadDiagnostics) {
				assert.Equal(t, 1, diag.MissingCategorical)
			},
		},
		{
			name:      "negative monthly charges",
			overrides: map[string]string{"customerID": "0003-TEST", "MonthlyCharges": "-5"},
			check: func(t *testing.T, diag churn.LoadDiagnostics) {
				assert.Equal(t, 1, diag.BadNumeric)
			},
		},
		{
			name:      "unparseable tenure",
			overrides: map[string]string{"customerID": "0004-TEST", "tenure": "many"},
			check: func(t *testing.T, diag churn.LoadDiagnostics) {
				assert.Equal(t, 1, diag.BadNumeric)
			},
		},
		{
			name:      "duplicate customer ID",
			overrides: map[string]string{"tenure": "30"},
			check: func(t *testing.T, diag churn.LoadDiagnostics) {
				assert.Equal(t, 1, diag.DuplicateID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &RawTable{
				Headers: sampleHeaders(),
				Rows:    []RawRow{sampleRow(nil), sampleRow(tt.overrides)},
			}
			records, diag, err := NewLoader().Parse(table)
			require.NoError(t, err)
			assert.Len(t, records, 1)
			assert.Equal(t, 1, diag.RowsDropped)
			tt.check(t, diag)
		})
	}
}

func TestLoad_CSVFixture(t *testing.T) {
	path := filepath.Join("testdata", "telco_sample.csv")
	records, diag, err := NewLoader().Load(path)
	require.NoError(t, err)

	// 10 data rows: one has an empty InternetService, one reuses an ID and
	// one has an unparseable tenure; the blank TotalCharges row is coerced
	// and kept.
	assert.Equal(t, 10, diag.RowsRead)
	assert.Equal(t, 7, diag.RowsLoaded)
	assert.Equal(t, 3, diag.RowsDropped)
	assert.Equal(t, 1, diag.MissingCategorical)
	assert.Equal(t, 1, diag.DuplicateID)
	assert.Equal(t, 1, diag.BadNumeric)
	assert.Equal(t, 1, diag.CoercedTotalCharges)
	assert.Len(t, records, 7)

	for _, r := range records {
		if r.ID == "4183-MYFRB" {
			assert.Equal(t, 0, r.Tenure)
			assert.Equal(t, 0.0, r.TotalCharges)
		}
	}
}

func TestLoad_MissingFileIsDatasetError(t *testing.T) {
	_, _, err := NewLoader().Load(filepath.Join("testdata", "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsDatasetError(err))
}
