package dataset

import (
	"strconv"
	"strings"

	"churnboard/domain/churn"
	"churnboard/internal"
	"churnboard/internal/errors"
)

// Column names fixed by the external dataset contract.
const (
	colCustomerID       = "customerID"
	colGender           = "gender"
	colSeniorCitizen    = "SeniorCitizen"
	colPartner          = "Partner"
	colDependents       = "Dependents"
	colTenure           = "tenure"
	colPhoneService     = "PhoneService"
	colMultipleLines    = "MultipleLines"
	colInternetService  = "InternetService"
	colContract         = "Contract"
	colPaperlessBilling = "PaperlessBilling"
	colPaymentMethod    = "PaymentMethod"
	colMonthlyCharges   = "MonthlyCharges"
	colTotalCharges     = "TotalCharges"
	colChurn            = "Churn"
)

// requiredColumns must all be present in the source schema.
var requiredColumns = []string{
	colCustomerID,
	colGender,
	colSeniorCitizen,
	colPartner,
	colDependents,
	colTenure,
	colPhoneService,
	colMultipleLines,
	colInternetService,
	colContract,
	colPaperlessBilling,
	colPaymentMethod,
	colMonthlyCharges,
	colTotalCharges,
	colChurn,
}

// requiredCategorical are the fields whose absence drops the row.
var requiredCategorical = []string{
	colCustomerID,
	colGender,
	colPartner,
	colDependents,
	colPhoneService,
	colMultipleLines,
	colInternetService,
	colContract,
	colPaperlessBilling,
	colPaymentMethod,
	colChurn,
}

// Loader validates raw rows into typed CustomerRecords.
type Loader struct {
	logger *internal.Logger
}

// NewLoader creates a loader using the default logger.
func NewLoader() *Loader {
	return &Loader{logger: internal.DefaultLogger}
}

// Load reads and validates the dataset at path in one pass. It fails with a
// DATASET_ERROR coded error when the source is missing, the schema lacks a
// required column, or zero rows parse; per-row problems are dropped or
// coerced and counted in the returned diagnostics instead.
func (l *Loader) Load(path string) ([]churn.CustomerRecord, churn.LoadDiagnostics, error) {
	table, err := NewFileReader(path).Read()
	if err != nil {
		return nil, churn.LoadDiagnostics{}, err
	}
	return l.Parse(table)
}

// Parse validates a raw table into CustomerRecords plus diagnostics.
func (l *Loader) Parse(table *RawTable) ([]churn.CustomerRecord, churn.LoadDiagnostics, error) {
	diag := churn.LoadDiagnostics{}

	if err := validateSchema(table.Headers); err != nil {
		return nil, diag, err
	}

	records := make([]churn.CustomerRecord, 0, len(table.Rows))
	seen := make(map[string]bool, len(table.Rows))

	for _, row := range table.Rows {
		diag.RowsRead++

		if field, ok := missingCategorical(row); !ok {
			diag.RowsDropped++
			diag.MissingCategorical++
			l.logger.Warn("[Loader] dropping row: missing %s", field)
			continue
		}

		id := row[colCustomerID]
		if seen[id] {
			diag.RowsDropped++
			diag.DuplicateID++
			l.logger.Warn("[Loader] dropping row: duplicate customer ID %s", id)
			continue
		}

		tenure, err := strconv.Atoi(row[colTenure])
		if err != nil || tenure < 0 {
			diag.RowsDropped++
			diag.BadNumeric++
			l.logger.Warn("[Loader] dropping row %s: bad tenure %q", id, row[colTenure])
			continue
		}

		monthly, err := strconv.ParseFloat(row[colMonthlyCharges], 64)
		if err != nil || monthly < 0 {
			diag.RowsDropped++
			diag.BadNumeric++
			l.logger.Warn("[Loader] dropping row %s: bad monthly charges %q", id, row[colMonthlyCharges])
			continue
		}

		// A total charge that fails to parse belongs to a brand-new customer
		// with zero tenure. Coerce to 0.0 and keep the row.
		total, err := strconv.ParseFloat(row[colTotalCharges], 64)
		if err != nil || total < 0 {
			total = 0.0
			diag.CoercedTotalCharges++
		}

		seen[id] = true
		records = append(records, churn.CustomerRecord{
			ID:               id,
			Gender:           row[colGender],
			SeniorCitizen:    parseFlag(row[colSeniorCitizen]),
			Partner:          parseFlag(row[colPartner]),
			Dependents:       parseFlag(row[colDependents]),
			PhoneService:     parseFlag(row[colPhoneService]),
			MultipleLines:    row[colMultipleLines],
			InternetService:  row[colInternetService],
			Contract:         row[colContract],
			PaymentMethod:    row[colPaymentMethod],
			PaperlessBilling: parseFlag(row[colPaperlessBilling]),
			Tenure:           tenure,
			MonthlyCharges:   monthly,
			TotalCharges:     total,
			Churned:          parseFlag(row[colChurn]),
		})
	}
	diag.RowsLoaded = len(records)

	if len(records) == 0 {
		return nil, diag, errors.DatasetError("source contains zero parseable rows")
	}

	l.logger.Info("[Loader] loaded %d records (%d dropped, %d total charges coerced)",
		diag.RowsLoaded, diag.RowsDropped, diag.CoercedTotalCharges)
	return records, diag, nil
}

// validateSchema checks that every required column is present in the header.
func validateSchema(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return errors.DatasetErrorf("required column %s is absent from the schema", col)
		}
	}
	return nil
}

// missingCategorical returns the first required categorical field that is
// empty, and whether the row is complete.
func missingCategorical(row RawRow) (string, bool) {
	for _, col := range requiredCategorical {
		if row[col] == "" {
			return col, false
		}
	}
	return "", true
}

// parseFlag interprets the dataset's flag encodings: Yes/No, true/false and
// the 0/1 used by SeniorCitizen.
func parseFlag(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
