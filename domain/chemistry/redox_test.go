package chemistry

import (
	"testing"

	"corrosionengine/domain/corecorr"

	"github.com/stretchr/testify/require"
)

// spec.md §8 property: do_to_eh composed with eh_to_do is the identity over
// DO in [0.1, 15] mg/L, pH in [5, 9], T in [5, 80 C].
func TestDOToEhAndBack_RoundTripsWithinTolerance(t *testing.T) {
	dos := []float64{0.1, 1, 5, 8, 15}
	phs := []float64{5, 7, 9}
	temps := []float64{5, 25, 60, 80}

	for _, do := range dos {
		for _, pH := range phs {
			for _, tC := range temps {
				temp := corecorr.FromCelsius(tC)
				eh, err := DOToEh(do, pH, temp, 35.0)
				require.NoError(t, err)

				back, err := EhToDO(eh, pH, temp, 35.0)
				require.NoError(t, err)
				require.InDelta(t, do, back, do*1e-6+1e-9, "do=%v pH=%v tC=%v", do, pH, tC)
			}
		}
	}
}

func TestDOToEh_RejectsNegativeDO(t *testing.T) {
	_, err := DOToEh(-1, 7, corecorr.FromCelsius(25), 35.0)
	require.Error(t, err)
}

func TestDOToEh_HigherDOYieldsHigherEh(t *testing.T) {
	temp := corecorr.FromCelsius(25)
	low, err := DOToEh(1.0, 7, temp, 35.0)
	require.NoError(t, err)
	high, err := DOToEh(10.0, 7, temp, 35.0)
	require.NoError(t, err)
	require.Greater(t, high.SHE(), low.SHE())
}

func TestORPToEhAndEhToORP_RoundTripThroughReference(t *testing.T) {
	eh := corecorr.NewPotential(0.2, corecorr.SHE)
	orp := EhToORP(eh, corecorr.SCE)
	back := ORPToEh(orp)
	require.InDelta(t, eh.SHE(), back.SHE(), 1e-9)
}
