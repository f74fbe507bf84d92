package aggregate

import "churnboard/domain/churn"

// FilterAll is the sentinel that leaves a dimension unfiltered, matching the
// "All" option of the dashboard dropdowns.
const FilterAll = "All"

// Filter narrows the record set before aggregation. The pipeline itself is
// unchanged by filtering: the caller applies the filter and re-runs
// Summarize on the subset.
type Filter struct {
	Gender           string `form:"gender" json:"gender"`
	PaperlessBilling string `form:"paperless" json:"paperless"`
	PhoneService     string `form:"phone" json:"phone"`
	Dependents       string `form:"dependents" json:"dependents"`
	TenureMin        int    `form:"tenure_min" json:"tenure_min"`
	TenureMax        int    `form:"tenure_max,default=72" json:"tenure_max"`
}

// DefaultFilter matches every record of the telco dataset.
func DefaultFilter() Filter {
	return Filter{
		Gender:           FilterAll,
		PaperlessBilling: FilterAll,
		PhoneService:     FilterAll,
		Dependents:       FilterAll,
		TenureMin:        0,
		TenureMax:        72,
	}
}

// Normalize fills the categorical dimensions left empty by form binding.
// The tenure bounds are not touched: an absent tenure_max is filled by the
// form tag default, so an explicit tenure_max=0 keeps only zero-tenure
// customers.
func (f Filter) Normalize() Filter {
	if f.Gender == "" {
		f.Gender = FilterAll
	}
	if f.PaperlessBilling == "" {
		f.PaperlessBilling = FilterAll
	}
	if f.PhoneService == "" {
		f.PhoneService = FilterAll
	}
	if f.Dependents == "" {
		f.Dependents = FilterAll
	}
	return f
}

// Apply returns the records matching the filter. The result shares backing
// records with the input but is a fresh slice.
func (f Filter) Apply(records []churn.CustomerRecord) []churn.CustomerRecord {
	out := make([]churn.CustomerRecord, 0, len(records))
	for _, r := range records {
		if f.Gender != FilterAll && r.Gender != f.Gender {
			continue
		}
		if !matchFlag(f.PaperlessBilling, r.PaperlessBilling) {
			continue
		}
		if !matchFlag(f.PhoneService, r.PhoneService) {
			continue
		}
		if !matchFlag(f.Dependents, r.Dependents) {
			continue
		}
		if r.Tenure < f.TenureMin || r.Tenure > f.TenureMax {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchFlag(want string, have bool) bool {
	switch want {
	case "Yes":
		return have
	case "No":
		return !have
	default:
		return true
	}
}
