package pourbaix

import (
	"testing"

	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"

	"github.com/stretchr/testify/require"
)

// Gold-standard scenario 5 (spec.md §8): Fe at 25C, pH=7, E=-0.3V vs SHE
// classifies as corrosion (the active Fe2+ region), strictly between the
// Fe/Fe2+ dissolution line and the Fe2O3 passivation-onset line.
func TestGenerate_IronAt25CPH7ClassifiesAsCorrosion(t *testing.T) {
	point := &PointClassification{PH: 7, EVolts: -0.3}
	diag, err := Generate(Iron, corecorr.FromCelsius(25), 0, 0, 14, 50, point)
	require.NoError(t, err)
	require.NotNil(t, diag.Point)
	require.Equal(t, Corrosion, diag.Point.Region)
}

func TestGenerate_AllSixElementsAreSupported(t *testing.T) {
	for _, el := range []Element{Iron, Chromium, Nickel, Copper, Titanium, Aluminum} {
		_, err := Generate(el, corecorr.FromCelsius(25), 0, 0, 14, 10, nil)
		require.NoError(t, err, "element %s should be supported", el)
	}
}

func TestGenerate_RejectsUnsupportedElement(t *testing.T) {
	_, err := Generate(Element("Pb"), corecorr.FromCelsius(25), 0, 0, 14, 10, nil)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))
}

func TestGenerate_RejectsNonPositivePHSpan(t *testing.T) {
	_, err := Generate(Iron, corecorr.FromCelsius(25), 0, 7, 7, 10, nil)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))

	_, err = Generate(Iron, corecorr.FromCelsius(25), 0, 10, 2, 10, nil)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))
}

func TestGenerate_GridDensityClampsToMinimumTwo(t *testing.T) {
	diag, err := Generate(Iron, corecorr.FromCelsius(25), 0, 0, 14, 1, nil)
	require.NoError(t, err)
	require.Len(t, diag.OxygenLine.PHs, 2)
	require.Len(t, diag.HydrogenLine.PHs, 2)
	for _, line := range diag.ElementLines {
		require.Len(t, line.PHs, 2)
	}
}

func TestGenerate_NonPositiveConcentrationFallsBackToDefault(t *testing.T) {
	diag, err := Generate(Iron, corecorr.FromCelsius(25), -1, 0, 14, 10, nil)
	require.NoError(t, err)
	require.Equal(t, 1e-6, diag.SolubleConcMolar)

	diag, err = Generate(Iron, corecorr.FromCelsius(25), 0, 0, 14, 10, nil)
	require.NoError(t, err)
	require.Equal(t, 1e-6, diag.SolubleConcMolar)
}

// The two water-stability lines follow E = 1.229 - 0.0591*pH and
// E = -0.0591*pH at 25C, where temperatureScale is ~1.0 (spec.md §4.9).
func TestWaterStabilityLines_MatchStandardNernstSlopeAt25C(t *testing.T) {
	temp := corecorr.FromCelsius(25)
	scale := temperatureScale(temp)
	require.InDelta(t, 1.0, scale, 1e-3)

	pH := 7.0
	require.InDelta(t, 1.229-0.0591*pH, waterOxygenLine(pH, scale), 1e-6)
	require.InDelta(t, -0.0591*pH, waterHydrogenLine(pH, scale), 1e-6)
}

// classify walks boundaries in ascending E order: a point below every line is
// Immunity, a point above every line is Passivation.
func TestClassify_ImmunityBelowAndPassivationAbove(t *testing.T) {
	bounds := elementBoundaries[Iron]
	scale := temperatureScale(corecorr.FromCelsius(25))

	require.Equal(t, Immunity, classify(bounds, 7, -2.0, 1e-6, scale))
	require.Equal(t, Passivation, classify(bounds, 7, 3.0, 1e-6, scale))
}
