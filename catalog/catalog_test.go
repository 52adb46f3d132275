package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Catalog load is deterministic: loading the same directory twice produces a
// bytewise-identical catalog (spec.md §8).
func TestLoadCatalog_DeterministicAcrossLoads(t *testing.T) {
	first, err := LoadCatalog("../data")
	require.NoError(t, err)
	second, err := LoadCatalog("../data")
	require.NoError(t, err)
	require.True(t, first.Hash.Equals(second.Hash))
}

// At least the documented aliases must resolve to the six NRL alloys
// (spec.md §4.5).
func TestAliasResolution_DocumentedAliasesResolveToNRLAlloys(t *testing.T) {
	cat, err := LoadCatalog("../data")
	require.NoError(t, err)

	cases := map[string]string{
		"316":            "SS316",
		"316L":           "SS316",
		"UNS S31600":     "SS316",
		"UNS S31603":     "SS316",
		"HY-80":          "HY80",
		"HY-100":         "HY100",
	}
	for alias, wantCanonical := range cases {
		comp, ok := cat.Material(alias)
		require.True(t, ok, "alias %q should resolve", alias)
		require.Equal(t, wantCanonical, comp.CommonName, "alias %q", alias)
	}
}

// Lookup is case- and separator-insensitive (spec.md §3.1).
func TestMaterial_LookupIsCaseAndSeparatorInsensitive(t *testing.T) {
	cat, err := LoadCatalog("../data")
	require.NoError(t, err)

	canonical, ok := cat.Material("HY80")
	require.True(t, ok)

	variants := []string{"hy80", "HY 80", "hy_80", "Hy80"}
	for _, v := range variants {
		comp, ok := cat.Material(v)
		require.True(t, ok, "variant %q should resolve", v)
		require.Equal(t, canonical.CommonName, comp.CommonName)
	}
}

// Every material row carries a non-empty source citation and finite numeric
// fields (spec.md §8 property 2).
func TestMaterials_EveryRowHasCitationAndFiniteFields(t *testing.T) {
	cat, err := LoadCatalog("../data")
	require.NoError(t, err)

	require.NotEmpty(t, cat.Tables.Materials)
	for name, m := range cat.Tables.Materials {
		require.NotEmpty(t, m.Source, "material %s missing source citation", name)
		for _, v := range []float64{m.CrWtPct, m.NiWtPct, m.MoWtPct, m.NWtPct, m.DensityKgM3, m.ElectronsPerDissolution} {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "material %s has non-finite field", name)
		}
	}
}

// Response-surface coefficients are keyed "material|reaction" and every
// stored row carries a valid pH range (PHMin < PHMax) required by the linear
// interpolation in responsesurface.Evaluate.
func TestReactionCoefficients_HavePositivePHSpan(t *testing.T) {
	cat, err := LoadCatalog("../data")
	require.NoError(t, err)

	require.NotEmpty(t, cat.Tables.ReactionCoefficients)
	for key, rc := range cat.Tables.ReactionCoefficients {
		require.Greater(t, rc.PHMax, rc.PHMin, "coefficients %s have non-positive pH span", key)
	}
}

func TestManager_MemoizesLoadAcrossConcurrentCallers(t *testing.T) {
	mgr := NewManager()
	results := make(chan *Catalog, 8)
	for i := 0; i < 8; i++ {
		go func() {
			cat, err := mgr.Get("../data")
			require.NoError(t, err)
			results <- cat
		}()
	}
	first := <-results
	for i := 1; i < 8; i++ {
		cat := <-results
		require.True(t, first.Hash.Equals(cat.Hash))
	}
}
