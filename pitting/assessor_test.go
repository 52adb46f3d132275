package pitting

import (
	"testing"

	"corrosionengine/catalog"
	"corrosionengine/domain/corecorr"
	"corrosionengine/material"

	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.LoadCatalog("../data")
	require.NoError(t, err)
	return cat
}

// Gold-standard scenario 2 (spec.md §8): SS316 in aerated seawater at T=25C
// exceeds its tabulated CPT (10C), so Tier 1 must read critical. The
// mechanistic Tier 2 margin is wide and negative, so Tier 2 reads low. The
// two tiers differ by more than one step, so disagreement must be detected,
// and overall_risk must stay conservative (the worse of the two: critical).
func TestAssess_SS316SeawaterPittingDisagreement(t *testing.T) {
	cat := loadTestCatalog(t)
	m, err := material.Resolve(cat, "SS316")
	require.NoError(t, err)

	env := material.Environment{
		Temp:        corecorr.FromCelsius(25),
		PH:          8.0,
		ClMolar:     19000.0 / 35453.0,
		DOMgL:       8.0,
		SalinityPSU: 35.0,
	}

	outcome, err := Assess(m, env, 25.0, 8.0, 19000.0)
	require.NoError(t, err)

	require.Equal(t, Critical, outcome.Tier1.Risk)
	require.True(t, outcome.Tier2.Available)
	require.Equal(t, Low, outcome.Tier2.Risk)
	require.True(t, outcome.Disagreement.Detected)
	require.Equal(t, Critical, outcome.OverallRisk)
}

// Alias resolution: "316L" must resolve to the same NRL material as "SS316".
func TestAssess_AliasResolvesToSameMaterial(t *testing.T) {
	cat := loadTestCatalog(t)
	canonical, err := material.Resolve(cat, "SS316")
	require.NoError(t, err)
	aliased, err := material.Resolve(cat, "316L")
	require.NoError(t, err)
	require.Equal(t, canonical.Composition.CommonName, aliased.Composition.CommonName)
}

// Tier 2 must degrade gracefully (not fail the call) when DO is missing.
func TestAssess_Tier2UnavailableWithoutDO(t *testing.T) {
	cat := loadTestCatalog(t)
	m, err := material.Resolve(cat, "SS316")
	require.NoError(t, err)

	env := material.Environment{Temp: corecorr.FromCelsius(25), PH: 8.0, ClMolar: 19000.0 / 35453.0, SalinityPSU: 35.0}
	outcome, err := Assess(m, env, 25.0, 8.0, 19000.0)
	require.NoError(t, err)
	require.False(t, outcome.Tier2.Available)
	require.NotEmpty(t, outcome.Tier2.Reason)
	require.Equal(t, outcome.Tier1.Risk, outcome.OverallRisk)
}

// A material with no tabulated CPT falls back to the PREN-based estimate and
// flags the degradation, without failing the call.
func TestAssess_FallsBackToPRENEstimateWhenNoCPTTabulated(t *testing.T) {
	cat := loadTestCatalog(t)
	m, err := material.Resolve(cat, "HY80")
	require.NoError(t, err)
	if m.CPT != nil {
		t.Skip("HY80 carries a tabulated CPT in this catalog; estimate fallback not exercised")
	}

	env := material.Environment{Temp: corecorr.FromCelsius(25), PH: 8.0, ClMolar: 19000.0 / 35453.0, SalinityPSU: 35.0}
	outcome, err := Assess(m, env, 25.0, 8.0, 19000.0)
	require.NoError(t, err)
	require.True(t, outcome.Tier1.CPTIsEstimated)
}

func TestRiskFromDeltaE_MonotoneInDeltaE(t *testing.T) {
	require.Equal(t, Critical, riskFromDeltaE(0.1))
	require.Equal(t, High, riskFromDeltaE(-0.02))
	require.Equal(t, Moderate, riskFromDeltaE(-0.1))
	require.Equal(t, Low, riskFromDeltaE(-0.5))

	order := []Risk{Low, Moderate, High, Critical}
	deltas := []float64{-0.5, -0.1, -0.02, 0.1}
	for i := 1; i < len(deltas); i++ {
		require.GreaterOrEqual(t, riskOrder[riskFromDeltaE(deltas[i])], riskOrder[order[i-1]])
	}
}
