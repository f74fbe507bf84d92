package dataset

import "churnboard/domain/churn"

// Source binds the loader to a fixed file path so the presentation layer can
// re-run the pipeline without tracking configuration. It satisfies
// ports.RecordSource.
type Source struct {
	path   string
	loader *Loader
}

// NewSource creates a record source for the dataset at path.
func NewSource(path string) *Source {
	return &Source{path: path, loader: NewLoader()}
}

// Load reads and validates the dataset once.
func (s *Source) Load() ([]churn.CustomerRecord, churn.LoadDiagnostics, error) {
	return s.loader.Load(s.path)
}
