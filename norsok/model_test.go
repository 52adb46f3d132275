package norsok

import (
	"testing"

	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"

	"github.com/stretchr/testify/require"
)

func baseParams() Params {
	return Params{
		CO2MoleFraction:  0.02,
		PressureBar:      50,
		Temp:             corecorr.FromCelsius(60),
		VelocityGasMPerS: 5,
		VelocityLiqMPerS: 1,
		MassFlowGasKgS:   2,
		MassFlowLiqKgS:   10,
		VolFlowGasM3S:    1.5,
		VolFlowLiqM3S:    0.01,
		Holdup:           0.3,
		ViscosityGasPaS:  1.2e-5,
		ViscosityLiqPaS:  8e-4,
		RoughnessM:       4.6e-5,
		DiameterM:        0.2,
		PHIn:             5.5,
		BicarbonateMgL:   150,
		IonicStrengthMgL: 500,
		CalcIterations:   1,
	}
}

// Gold-standard scenario 6 (spec.md §8): raising the bypassed pH_in from 5.5
// to 6.0 must strictly decrease the predicted corrosion rate, since fpH
// decreases monotonically with pH over the validated table range.
func TestPredict_CorrosionRateStrictlyDecreasesAsPHRises(t *testing.T) {
	low := baseParams()
	low.PHIn = 5.5
	high := baseParams()
	high.PHIn = 6.0

	lowResult, err := Predict(low)
	require.NoError(t, err)
	highResult, err := Predict(high)
	require.NoError(t, err)

	require.Less(t, highResult.CorrosionRateMMYr, lowResult.CorrosionRateMMYr)
	require.False(t, lowResult.PHClamped)
	require.False(t, highResult.PHClamped)
}

func TestPredict_PHOutsideValidatedRangeIsClampedWithWarning(t *testing.T) {
	p := baseParams()
	p.PHIn = 2.0
	result, err := Predict(p)
	require.NoError(t, err)
	require.True(t, result.PHClamped)
	require.Equal(t, phTableMin, result.ResolvedPH)
	require.NotEmpty(t, result.Warnings)

	p.PHIn = 9.0
	result, err = Predict(p)
	require.NoError(t, err)
	require.True(t, result.PHClamped)
	require.Equal(t, phTableMax, result.ResolvedPH)
}

func TestPredict_TemperatureOutsideValidatedRangeIsClampedWithWarning(t *testing.T) {
	p := baseParams()
	p.Temp = corecorr.FromCelsius(200)
	result, err := Predict(p)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
}

// CalcIterations is used as a loop count, not a boolean: iterating twice
// versus once must change the resolved upstream pH when PHIn <= 0.
func TestPredict_CalcIterationsIsAnIntegerLoopCount(t *testing.T) {
	once := baseParams()
	once.PHIn = 0
	once.CalcIterations = 1

	twice := baseParams()
	twice.PHIn = 0
	twice.CalcIterations = 2

	onceResult, err := Predict(once)
	require.NoError(t, err)
	twiceResult, err := Predict(twice)
	require.NoError(t, err)

	require.NotEqual(t, onceResult.ResolvedPH, twiceResult.ResolvedPH)
}

// PHIn <= 0 takes the upstream pH-calculator path; PHIn > 0 bypasses it and
// the resolved pH must equal the supplied value (5.0 lies inside the fpH
// table range, so clamping leaves it unchanged).
func TestPredict_PositivePHInBypassesUpstreamCalculator(t *testing.T) {
	p := baseParams()
	p.PHIn = 5.0
	result, err := Predict(p)
	require.NoError(t, err)
	require.Equal(t, 5.0, result.ResolvedPH)
}

func TestPredict_RejectsNonPositiveOrOutOfRangeCO2Fraction(t *testing.T) {
	p := baseParams()
	p.CO2MoleFraction = 0
	_, err := Predict(p)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))

	p.CO2MoleFraction = 1.5
	_, err = Predict(p)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))
}

func TestPredict_RejectsNonPositivePressureAndDiameter(t *testing.T) {
	p := baseParams()
	p.PressureBar = 0
	_, err := Predict(p)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))

	p = baseParams()
	p.DiameterM = 0
	_, err = Predict(p)
	require.Error(t, err)
	require.True(t, errs.IsInputValidation(err))
}

func TestPhCorrectionFactor_MonotonicDecreaseWithPH(t *testing.T) {
	f1 := phCorrectionFactor(4.0, 60)
	f2 := phCorrectionFactor(5.0, 60)
	f3 := phCorrectionFactor(6.0, 60)
	require.Greater(t, f1, f2)
	require.Greater(t, f2, f3)
}
