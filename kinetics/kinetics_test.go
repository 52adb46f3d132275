package kinetics

import (
	"math"
	"testing"

	"corrosionengine/domain/corecorr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp_PreservesSignAtFloor(t *testing.T) {
	assert.Equal(t, CurrentFloor, Clamp(1e-60))
	assert.Equal(t, -CurrentFloor, Clamp(-1e-60))
	assert.Equal(t, 0.5, Clamp(0.5))
	assert.Equal(t, -0.5, Clamp(-0.5))
}

func TestCathodicReaction_NeverProducesPositiveCurrent(t *testing.T) {
	orr := &CathodicReaction{
		Name: "ORR", ENernstVoltsSHE: 0.6, I0APerCm2: 1e-9, Alpha: 0.5,
		ZElectrons: 4, DiffusionLimitA: 1e-4, MassTransferOK: true,
	}
	temp := corecorr.FromCelsius(25)
	for _, e := range []float64{-0.5, -0.2, 0.0, 0.3, 0.6, 1.0} {
		i, err := orr.Evaluate(e, temp)
		require.NoError(t, err)
		assert.LessOrEqual(t, i, 0.0, "cathodic current must never be positive at E=%.2f", e)
	}
}

func TestCathodicReaction_KouteckyLevichBoundedByDiffusionLimit(t *testing.T) {
	orr := &CathodicReaction{
		Name: "ORR", ENernstVoltsSHE: 0.6, I0APerCm2: 1e-6, Alpha: 0.5,
		ZElectrons: 4, DiffusionLimitA: 1e-5, MassTransferOK: true,
	}
	temp := corecorr.FromCelsius(25)
	// Deep into the cathodic branch the activation term would exceed the
	// diffusion limit many times over; Koutecky-Levich must cap |i| near i_lim.
	i, err := orr.Evaluate(-0.3, temp)
	require.NoError(t, err)
	assert.InDelta(t, -1e-5, i, 2e-6)
}

func TestAnodicReaction_NeverProducesNegativeCurrent(t *testing.T) {
	ox := &AnodicReaction{Name: "Oxidation", ENernstVoltsSHE: -0.5, I0APerCm2: 1e-8, Beta: 0.5, ZElectrons: 2}
	temp := corecorr.FromCelsius(25)
	for _, e := range []float64{-0.8, -0.5, -0.2, 0.0, 0.3} {
		i, err := ox.Evaluate(e, temp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, i, 0.0, "anodic current must never be negative at E=%.2f", e)
	}
}

func TestAnodicReaction_PassivationFilmResistanceConverges(t *testing.T) {
	passive := &AnodicReaction{
		Name: "Passivation", ENernstVoltsSHE: -0.3, I0APerCm2: 1e-9, Beta: 0.3,
		ZElectrons: 2, FilmResistanceOhmCm2: 50,
	}
	temp := corecorr.FromCelsius(25)
	i, err := passive.Evaluate(0.2, temp)
	require.NoError(t, err)
	assert.Greater(t, i, 0.0)
	assert.False(t, math.IsNaN(i))

	// The implicit relation E_metal = E + i*R_film must hold at the solution.
	eMetal := 0.2 + i*passive.FilmResistanceOhmCm2
	direct := passive.bareCurrent(eMetal, temp)
	assert.InDelta(t, i, direct, math.Max(1e-15, math.Abs(i)*1e-4))
}

func TestExchangeCurrentDensity_PositiveForPositiveDeltaG(t *testing.T) {
	temp := corecorr.FromCelsius(25)
	i0 := ExchangeCurrentDensity(50000, 4, ReactionPrefactor["ORR"], temp)
	assert.Greater(t, i0, 0.0)
}

func TestSample_BucketsCurrentByReactionKind(t *testing.T) {
	ox := &AnodicReaction{Name: "Oxidation", ENernstVoltsSHE: -0.5, I0APerCm2: 1e-8, Beta: 0.5, ZElectrons: 2}
	temp := corecorr.FromCelsius(25)
	curve, err := Sample(ox, temp, -0.4, 0.1, 21)
	require.NoError(t, err)
	require.Len(t, curve.Points, 21)
	for _, p := range curve.Points {
		assert.Equal(t, 0.0, p.ICathodic)
		assert.Equal(t, p.IAnodic, p.INet)
	}
}

func TestSample_ClampsToMaxGridPoints(t *testing.T) {
	ox := &AnodicReaction{Name: "Oxidation", ENernstVoltsSHE: -0.5, I0APerCm2: 1e-8, Beta: 0.5, ZElectrons: 2}
	temp := corecorr.FromCelsius(25)
	curve, err := Sample(ox, temp, -0.4, 0.1, MaxGridPoints+500)
	require.NoError(t, err)
	assert.Len(t, curve.Points, MaxGridPoints)
}
