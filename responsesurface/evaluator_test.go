package responsesurface

import (
	"testing"

	"corrosionengine/catalog"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A pure-p01 polynomial makes the Kelvin-vs-Celsius distinction observable:
// DeltaGNoPH(25C) must equal p01*298.15, not p01*25.
func TestDeltaGNoPH_UsesKelvinNotCelsius(t *testing.T) {
	coeffs := catalog.ReactionCoefficients{P01: 100, PHMin: 6, PHMax: 9}
	got := DeltaGNoPH(coeffs, 0, corecorr.FromCelsius(25))
	assert.InDelta(t, 100*298.15, got, 1e-6)
}

func TestEvaluate_PHInterpolationBounds(t *testing.T) {
	coeffs := catalog.ReactionCoefficients{P00: 1000, PHMin: 6, PHMax: 9}
	temp := corecorr.FromCelsius(25)

	atMin, err := Evaluate(coeffs, 0, temp, 6)
	require.NoError(t, err)
	assert.InDelta(t, 900, atMin.DeltaGJPerMol, 1e-6)

	atMax, err := Evaluate(coeffs, 0, temp, 9)
	require.NoError(t, err)
	assert.InDelta(t, 1100, atMax.DeltaGJPerMol, 1e-6)

	mid, err := Evaluate(coeffs, 0, temp, 7.5)
	require.NoError(t, err)
	assert.InDelta(t, 1000, mid.DeltaGJPerMol, 1e-6)
}

func TestEvaluate_NonPositiveDeltaGIsOutOfValidatedRegion(t *testing.T) {
	coeffs := catalog.ReactionCoefficients{Material: "HY80", Reaction: "ORR", P00: -5, PHMin: 6, PHMax: 9}
	_, err := Evaluate(coeffs, 0, corecorr.FromCelsius(25), 7)
	require.Error(t, err)
	assert.True(t, errs.IsOutOfValidatedRegion(err))
}

func TestEvaluate_ZeroPHSpanUsesUncorrectedValue(t *testing.T) {
	coeffs := catalog.ReactionCoefficients{P00: 500, PHMin: 7, PHMax: 7}
	res, err := Evaluate(coeffs, 0, corecorr.FromCelsius(25), 7)
	require.NoError(t, err)
	assert.InDelta(t, 500, res.DeltaGJPerMol, 1e-6)
}
