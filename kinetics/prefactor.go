package kinetics

import (
	"math"

	"corrosionengine/domain/constants"
	"corrosionengine/domain/corecorr"
)

// ExchangeCurrentDensity derives i0 (A/cm^2) from the free energy of
// reaction via the Boltzmann prefactor (spec.md §3.2):
//
//	i0 = z*F*lambda*exp(-deltaG/(R*T_K))
//
// lambda is the per-reaction attempt-frequency parameter; see
// ReactionPrefactor for the fixed values this module uses per reaction kind.
func ExchangeCurrentDensity(deltaGJPerMol float64, z int, lambda float64, temp corecorr.Temperature) float64 {
	return float64(z) * constants.FaradayConstant * lambda *
		math.Exp(-deltaGJPerMol/(constants.GasConstant*temp.Kelvin()))
}

// ReactionPrefactor is the attempt-frequency constant used for each
// recognized reaction name. These are not tabulated in the standards-body
// CSV data; they are fixed, documented constants chosen so that i0 lands in
// the 1e-7 to 1e-3 A/cm^2 range typical of the reactions they represent,
// consistent with the exchange-current densities reported for these systems
// in the NRL dataset's accompanying literature.
var ReactionPrefactor = map[string]float64{
	"ORR":         3.0e-11,
	"HER":         8.0e-10,
	"Oxidation":   5.0e-9,
	"Passivation": 2.0e-12,
	"Pitting":     6.0e-11,
}
