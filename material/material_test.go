package material

import (
	"testing"

	"corrosionengine/catalog"

	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.LoadCatalog("../data")
	require.NoError(t, err)
	return cat
}

func TestResolve_UnknownMaterialIsInputValidation(t *testing.T) {
	cat := loadTestCatalog(t)
	_, err := Resolve(cat, "unobtainium")
	require.Error(t, err)
}

func TestResolve_AliasAndCanonicalNameResolveToSameComposition(t *testing.T) {
	cat := loadTestCatalog(t)
	canonical, err := Resolve(cat, "SS316")
	require.NoError(t, err)
	aliased, err := Resolve(cat, "UNS S31600")
	require.NoError(t, err)
	require.Equal(t, canonical.Composition.CommonName, aliased.Composition.CommonName)
}

func TestSupportsReaction_TrueOnlyForTabulatedReactions(t *testing.T) {
	cat := loadTestCatalog(t)
	m, err := Resolve(cat, "HY80")
	require.NoError(t, err)
	require.False(t, m.SupportsReaction("not-a-reaction"))
}

func TestPREN_MatchesFormula(t *testing.T) {
	cat := loadTestCatalog(t)
	m, err := Resolve(cat, "SS316")
	require.NoError(t, err)
	want := m.Composition.CrWtPct + 3.3*m.Composition.MoWtPct + 16*m.Composition.NWtPct
	require.InDelta(t, want, m.PREN(), 1e-9)
}

func TestElectronsPerDissolution_DefaultsToTwoOnlyWhenMissing(t *testing.T) {
	cat := loadTestCatalog(t)
	m, err := Resolve(cat, "HY80")
	require.NoError(t, err)
	if m.Composition.ElectronsPerDissolution > 0 {
		require.Equal(t, m.Composition.ElectronsPerDissolution, m.ElectronsPerDissolution())
	} else {
		require.Equal(t, 2.0, m.ElectronsPerDissolution())
	}
}
