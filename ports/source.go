package ports

import (
	"churnboard/domain/churn"
)

// RecordSource loads the full customer record set plus its load diagnostics.
// The UI only reads through this port; it never mutates the dataset.
type RecordSource interface {
	Load() ([]churn.CustomerRecord, churn.LoadDiagnostics, error)
}
