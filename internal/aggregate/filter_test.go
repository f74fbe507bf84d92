package aggregate

import (
	"testing"

	"churnboard/domain/churn"
)

func filterFixture() []churn.CustomerRecord {
	return []churn.CustomerRecord{
		{ID: "A", Gender: "Female", PaperlessBilling: true, PhoneService: true, Dependents: false, Tenure: 5},
		{ID: "B", Gender: "Male", PaperlessBilling: false, PhoneService: true, Dependents: true, Tenure: 40},
		{ID: "C", Gender: "Female", PaperlessBilling: true, PhoneService: false, Dependents: false, Tenure: 70},
	}
}

func TestFilter_DefaultMatchesAll(t *testing.T) {
	got := DefaultFilter().Apply(filterFixture())
	if len(got) != 3 {
		t.Fatalf("default filter kept %d records, want 3", len(got))
	}
}

func TestFilter_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"gender", Filter{Gender: "Male", PaperlessBilling: FilterAll, PhoneService: FilterAll, Dependents: FilterAll, TenureMax: 72}, []string{"B"}},
		{"paperless yes", Filter{Gender: FilterAll, PaperlessBilling: "Yes", PhoneService: FilterAll, Dependents: FilterAll, TenureMax: 72}, []string{"A", "C"}},
		{"phone no", Filter{Gender: FilterAll, PaperlessBilling: FilterAll, PhoneService: "No", Dependents: FilterAll, TenureMax: 72}, []string{"C"}},
		{"dependents yes", Filter{Gender: FilterAll, PaperlessBilling: FilterAll, PhoneService: FilterAll, Dependents: "Yes", TenureMax: 72}, []string{"B"}},
		{"tenure range", Filter{Gender: FilterAll, PaperlessBilling: FilterAll, PhoneService: FilterAll, Dependents: FilterAll, TenureMin: 10, TenureMax: 60}, []string{"B"}},
		{"tenure max inclusive", Filter{Gender: FilterAll, PaperlessBilling: FilterAll, PhoneService: FilterAll, Dependents: FilterAll, TenureMax: 40}, []string{"A", "B"}},
		{"no match", Filter{Gender: "Male", PaperlessBilling: "Yes", PhoneService: FilterAll, Dependents: FilterAll, TenureMax: 72}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(filterFixture())
			if len(got) != len(tt.want) {
				t.Fatalf("kept %d records, want %d", len(got), len(tt.want))
			}
			for i, r := range got {
				if r.ID != tt.want[i] {
					t.Errorf("record[%d] = %s, want %s", i, r.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilter_NormalizeFillsCategoricalDefaults(t *testing.T) {
	f := Filter{TenureMax: 72}.Normalize()
	if f != DefaultFilter() {
		t.Errorf("normalized filter = %+v, want default", f)
	}
}

func TestFilter_ExplicitZeroTenureMaxIsKept(t *testing.T) {
	f := Filter{TenureMax: 0}.Normalize()
	if f.TenureMax != 0 {
		t.Fatalf("TenureMax = %d after Normalize, want 0", f.TenureMax)
	}

	records := append(filterFixture(), churn.CustomerRecord{ID: "Z", Gender: "Male", Tenure: 0})
	got := f.Apply(records)
	if len(got) != 1 || got[0].ID != "Z" {
		t.Errorf("tenure_max=0 kept %+v, want only the zero-tenure record", got)
	}
}

func TestFilter_ApplyDoesNotMutateInput(t *testing.T) {
	records := filterFixture()
	Filter{Gender: "Male", PaperlessBilling: FilterAll, PhoneService: FilterAll, Dependents: FilterAll, TenureMax: 72}.Apply(records)
	if records[0].ID != "A" || len(records) != 3 {
		t.Error("input slice was mutated")
	}
}
