package chemistry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestO2SolubilityMgL_DecreasesWithTemperature(t *testing.T) {
	cold := O2SolubilityMgL(5, 35)
	warm := O2SolubilityMgL(30, 35)
	require.Greater(t, cold, warm)
}

func TestO2SolubilityMgL_DecreasesWithSalinity(t *testing.T) {
	fresh := O2SolubilityMgL(20, 0)
	saline := O2SolubilityMgL(20, 35)
	require.Greater(t, fresh, saline)
}

func TestO2SolubilityMgL_SeawaterAt25CIsPlausible(t *testing.T) {
	sat := O2SolubilityMgL(25, 35)
	require.Greater(t, sat, 5.0)
	require.Less(t, sat, 9.0)
}

func TestO2DiffusivityM2PerS_IncreasesWithTemperature(t *testing.T) {
	cold := O2DiffusivityM2PerS(5, 35)
	warm := O2DiffusivityM2PerS(60, 35)
	require.Greater(t, warm, cold)
}

func TestNaClDiffusivityM2PerS_IncreasesWithTemperature(t *testing.T) {
	cold := NaClDiffusivityM2PerS(5)
	warm := NaClDiffusivityM2PerS(60)
	require.Greater(t, warm, cold)
}

func TestNaClConductivitySPerM_IncreasesWithConcentrationAndTemperature(t *testing.T) {
	dilute := NaClConductivitySPerM(25, 0.1)
	concentrated := NaClConductivitySPerM(25, 0.6)
	require.Greater(t, concentrated, dilute)

	cold := NaClConductivitySPerM(5, 0.6)
	warm := NaClConductivitySPerM(60, 0.6)
	require.Greater(t, warm, cold)
}

func TestWaterActivity_DecreasesWithMolality(t *testing.T) {
	dilute := WaterActivity(0.1)
	concentrated := WaterActivity(2.0)
	require.Greater(t, dilute, concentrated)
	require.LessOrEqual(t, dilute, 1.0)
}

func TestSalinityFromChlorideMgL_SeawaterChlorideYieldsSeawaterSalinity(t *testing.T) {
	s := SalinityFromChlorideMgL(19000)
	require.InDelta(t, 34.3, s, 0.5)
}
