package tools

import (
	"testing"

	"corrosionengine/catalog"
	"corrosionengine/provenance"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.LoadCatalog("../data")
	require.NoError(t, err)
	return NewService(cat)
}

func floatPtr(f float64) *float64 { return &f }

// Gold-standard scenario 1 (spec.md §8): HY80/SS316 galvanic couple in
// aerated seawater at 1:1 area ratio lands in the Minor severity band with
// a 1-10 mm/yr anodic corrosion rate.
func TestAssessGalvanic_HY80SS316SeawaterCouple(t *testing.T) {
	svc := newTestService(t)
	env, err := svc.AssessGalvanic(AssessGalvanicRequest{
		Anode: "HY80", Cathode: "SS316", TempC: 25, PH: 8.0, ClMgL: 19000, AreaRatio: 1.0,
		DOMgL: floatPtr(8.0),
	})
	require.NoError(t, err)
	require.NotEmpty(t, env.ID)
	require.NotEmpty(t, env.Citations)
	require.GreaterOrEqual(t, env.Data.CorrosionRateMMYr, 1.0)
	require.LessOrEqual(t, env.Data.CorrosionRateMMYr, 10.0)
}

func TestAssessGalvanic_RejectsUnknownMaterial(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AssessGalvanic(AssessGalvanicRequest{
		Anode: "not-a-material", Cathode: "SS316", TempC: 25, PH: 8.0, ClMgL: 19000, AreaRatio: 1.0,
	})
	require.Error(t, err)
}

// Gold-standard scenario 2 (spec.md §8): SS316 in aerated seawater at
// T=25C is flagged Critical by Tier 1, disagreeing with the Tier 2
// mechanistic estimate.
func TestAssessLocalized_SS316SeawaterDisagreement(t *testing.T) {
	svc := newTestService(t)
	env, err := svc.AssessLocalized(AssessLocalizedRequest{
		Material: "SS316", TempC: 25, ClMgL: 19000, PH: 8.0, DOMgL: floatPtr(8.0),
	})
	require.NoError(t, err)
	require.Equal(t, "critical", string(env.Data.OverallRisk))
	require.True(t, env.Data.Disagreement.Detected)
	require.Equal(t, provenance.ConfidenceLow, env.Confidence)
}

// Gold-standard scenario 3 (spec.md §8): anaerobic seawater (DO=0) reduces
// the isolated corrosion rate by roughly three orders of magnitude versus
// aerated service, and never crashes.
func TestPredictAeratedChloride_AnaerobicDramaticallyReducesRate(t *testing.T) {
	svc := newTestService(t)
	aerated, err := svc.PredictAeratedChloride(PredictAeratedChlorideRequest{
		MaterialID: "HY80", TempC: 25, ClMgL: 19000, PH: 8.0, DOMgL: floatPtr(8.0),
	})
	require.NoError(t, err)

	anaerobic, err := svc.PredictAeratedChloride(PredictAeratedChlorideRequest{
		MaterialID: "HY80", TempC: 25, ClMgL: 19000, PH: 8.0, DOMgL: floatPtr(0.0),
	})
	require.NoError(t, err)

	require.Less(t, anaerobic.Data.CorrosionRateMMYr*100, aerated.Data.CorrosionRateMMYr)
}

// Gold-standard scenario 5 (spec.md §8): Fe at 25C, pH=7, E=-0.3V vs SHE
// classifies as corrosion.
func TestGeneratePourbaix_IronAt25CPH7ClassifiesAsCorrosion(t *testing.T) {
	svc := newTestService(t)
	env, err := svc.GeneratePourbaix(GeneratePourbaixRequest{
		Element: "Fe", TempC: 25, PHMin: 0, PHMax: 14, GridDensity: 50,
		Point: &PourbaixPoint{PH: 7, EVolts: -0.3},
	})
	require.NoError(t, err)
	require.NotNil(t, env.Data.Point)
	require.Equal(t, "corrosion", string(env.Data.Point.Region))
}

func TestGeneratePourbaix_RejectsUnsupportedElement(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GeneratePourbaix(GeneratePourbaixRequest{
		Element: "Pb", TempC: 25, PHMin: 0, PHMax: 14, GridDensity: 10,
	})
	require.Error(t, err)
}

// Gold-standard scenario 6 (spec.md §8): raising pH_in from 5.5 to 6.0 must
// strictly decrease the predicted CO2/H2S corrosion rate.
func TestPredictCO2H2S_RateStrictlyDecreasesAsPHRises(t *testing.T) {
	svc := newTestService(t)
	base := PredictCO2H2SRequest{
		CO2MoleFraction: 0.02, PressureBar: 50, TempC: 60,
		VelocityGasMPerS: 5, VelocityLiqMPerS: 1,
		MassFlowGasKgS: 2, MassFlowLiqKgS: 10,
		VolFlowGasM3S: 1.5, VolFlowLiqM3S: 0.01,
		Holdup: 0.3, ViscosityGasPaS: 1.2e-5, ViscosityLiqPaS: 8e-4,
		RoughnessM: 4.6e-5, DiameterM: 0.2,
		BicarbonateMgL: 150, IonicStrengthMgL: 500, CalcIterations: 1,
	}

	low := base
	low.PHOverride = floatPtr(5.5)
	high := base
	high.PHOverride = floatPtr(6.0)

	lowEnv, err := svc.PredictCO2H2S(low)
	require.NoError(t, err)
	highEnv, err := svc.PredictCO2H2S(high)
	require.NoError(t, err)

	require.Less(t, highEnv.Data.CorrosionRateMMYr, lowEnv.Data.CorrosionRateMMYr)
}

// spec.md §8 property: do_to_eh and eh_to_do round-trip through the tools
// boundary (reference-electrode tagged), not just the underlying package.
func TestDOToEhAndEhToDO_RoundTripThroughToolsBoundary(t *testing.T) {
	svc := newTestService(t)
	ehEnv, err := svc.DOToEh(DOToEhRequest{DOMgL: 8.0, PH: 8.0, TempC: 25, SalinityPSU: 35.0})
	require.NoError(t, err)

	doEnv, err := svc.EhToDO(EhToDORequest{
		EhVolts: ehEnv.Data.EhVolts, Reference: ehEnv.Data.Reference,
		PH: 8.0, TempC: 25, SalinityPSU: 35.0,
	})
	require.NoError(t, err)
	require.InDelta(t, 8.0, doEnv.Data, 1e-3)
}

func TestCalculatePREN_FromCompositionMatchesFormula(t *testing.T) {
	svc := newTestService(t)
	env, err := svc.CalculatePREN(CalculatePRENRequest{
		Composition: &Composition{CrWtPct: 22, MoWtPct: 3, NWtPct: 0.15},
	})
	require.NoError(t, err)
	require.InDelta(t, 22+3.3*3+16*0.15, env.Data.PREN, 1e-9)
}

func TestCalculatePREN_RequiresMaterialIDOrComposition(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CalculatePREN(CalculatePRENRequest{})
	require.Error(t, err)
}

func TestGetMaterialProperties_ResolvesAliasAndReportsSupportedReactions(t *testing.T) {
	svc := newTestService(t)
	env, err := svc.GetMaterialProperties("316L")
	require.NoError(t, err)
	require.Equal(t, "SS316", env.Data.Composition.CommonName)
	require.NotEmpty(t, env.Data.SupportedReactions)
}

func TestScreenMaterials_SeawaterPresetScreensCandidates(t *testing.T) {
	svc := newTestService(t)
	env, err := svc.ScreenMaterials(ScreenMaterialsRequest{
		Environment: "seawater",
		Candidates:  []string{"HY80", "SS316"},
		Application: "piping",
	})
	require.NoError(t, err)
	require.Len(t, env.Data, 2)
	for _, c := range env.Data {
		require.NotEmpty(t, c.CompatibilityTag)
	}
}

func TestScreenMaterials_RejectsUnknownEnvironment(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ScreenMaterials(ScreenMaterialsRequest{
		Environment: "lava", Candidates: []string{"HY80"},
	})
	require.Error(t, err)
}

func TestORPToEhAndEhToORP_RoundTripThroughToolsBoundary(t *testing.T) {
	svc := newTestService(t)
	orpEnv, err := svc.EhToORP(EhToORPRequest{EhVolts: 0.2, Reference: "SCE"})
	require.NoError(t, err)

	back, err := svc.ORPToEh(ORPToEhRequest{ORPVolts: orpEnv.Data.EhVolts, Reference: orpEnv.Data.Reference})
	require.NoError(t, err)
	require.InDelta(t, 0.2, back.Data.EhVolts, 1e-9)
}
