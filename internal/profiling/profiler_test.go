package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnboard/domain/churn"
)

func TestProfile_NumericFields(t *testing.T) {
	records := []churn.CustomerRecord{
		{ID: "A", Tenure: 10, MonthlyCharges: 20, TotalCharges: 200, InternetService: "DSL", Contract: "One year", PaymentMethod: "Mailed check", Gender: "Male"},
		{ID: "B", Tenure: 20, MonthlyCharges: 40, TotalCharges: 800, InternetService: "DSL", Contract: "Two year", PaymentMethod: "Mailed check", Gender: "Female"},
		{ID: "C", Tenure: 30, MonthlyCharges: 60, TotalCharges: 1800, InternetService: "Fiber optic", Contract: "One year", PaymentMethod: "Electronic check", Gender: "Female"},
	}

	profile, err := NewProfiler().Profile(records)
	require.NoError(t, err)
	require.Len(t, profile.Numeric, 3)

	tenure := profile.Numeric[0]
	assert.Equal(t, "tenure", tenure.Name)
	assert.InDelta(t, 20.0, tenure.Mean, 1e-9)
	assert.Equal(t, 10.0, tenure.Min)
	assert.Equal(t, 30.0, tenure.Max)
	assert.Equal(t, 20.0, tenure.Median)
	assert.False(t, math.IsNaN(tenure.StdDev))
}

func TestProfile_CategoricalFields(t *testing.T) {
	records := []churn.CustomerRecord{
		{ID: "A", InternetService: "DSL", Contract: "One year", PaymentMethod: "Mailed check", Gender: "Male"},
		{ID: "B", InternetService: "DSL", Contract: "Two year", PaymentMethod: "Mailed check", Gender: "Female"},
		{ID: "C", InternetService: "Fiber optic", Contract: "One year", PaymentMethod: "Electronic check", Gender: "Female"},
	}

	profile, err := NewProfiler().Profile(records)
	require.NoError(t, err)

	byName := map[string]CategoricalProfile{}
	for _, cp := range profile.Categorical {
		byName[cp.Name] = cp
	}

	internet := byName["internet_service"]
	assert.Equal(t, 2, internet.DistinctCount)
	assert.Equal(t, "DSL", internet.TopValue)
	assert.Equal(t, 2, internet.TopCount)
}
