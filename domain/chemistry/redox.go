package chemistry

import (
	"math"

	"corrosionengine/domain/constants"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
)

// standardO2Potential is E° for O2 + 4H+ + 4e- -> 2H2O, vs SHE.
const standardO2Potential = 1.229

// atmosphericPO2Atm is the partial pressure of O2 in a water-saturated
// normal atmosphere, used as the reference point the tabulated O2 solubility
// values are saturated against.
const atmosphericPO2Atm = 0.20946

// DOToEh converts a dissolved-oxygen concentration to redox potential (V vs
// SHE) via the Nernst equation on the O2/H2O couple, at the given pH and
// temperature. salinityPSU has no default here: pass 35 for seawater or 0
// for fresh water.
func DOToEh(doMgL, pH float64, temp corecorr.Temperature, salinityPSU float64) (corecorr.Potential, error) {
	if doMgL < 0 {
		return corecorr.Potential{}, errs.NewInputValidation("DO", "dissolved oxygen cannot be negative")
	}
	const epsilon = 0.01
	clamped := doMgL
	if clamped < epsilon {
		clamped = epsilon
	}

	sat := O2SolubilityMgL(temp.Celsius(), salinityPSU)
	pO2 := (clamped / sat) * atmosphericPO2Atm
	if pO2 <= 0 {
		pO2 = 1e-12
	}

	tK := temp.Kelvin()
	nernstSlope := constants.GasConstant * tK / constants.FaradayConstant * math.Ln10
	e := standardO2Potential - nernstSlope*pH + (nernstSlope/4)*math.Log10(pO2)
	return corecorr.NewPotential(e, corecorr.SHE), nil
}

// EhToDO inverts DOToEh: given a measured redox potential, solve for the
// dissolved-oxygen concentration implied by the Nernst equation at the given
// pH and temperature.
func EhToDO(eh corecorr.Potential, pH float64, temp corecorr.Temperature, salinityPSU float64) (float64, error) {
	tK := temp.Kelvin()
	nernstSlope := constants.GasConstant * tK / constants.FaradayConstant * math.Ln10
	if nernstSlope == 0 {
		return 0, errs.NewInputValidation("temperature", "temperature must be positive")
	}

	logPO2 := (eh.SHE() - standardO2Potential + nernstSlope*pH) / (nernstSlope / 4)
	pO2 := math.Pow(10, logPO2)
	sat := O2SolubilityMgL(temp.Celsius(), salinityPSU)
	do := pO2 / atmosphericPO2Atm * sat
	if do < 0 {
		do = 0
	}
	return do, nil
}

// ORPToEh converts an ORP reading (measured against an arbitrary reference
// electrode) to Eh vs SHE — a thin wrapper over corecorr.Potential.As that
// exists so the redox tool operation has a named entrypoint matching
// spec.md §6.1's "ORP<->Eh" row.
func ORPToEh(orp corecorr.Potential) corecorr.Potential {
	return orp.As(corecorr.SHE)
}

// EhToORP converts Eh (vs SHE) to an ORP reading vs the given reference
// electrode.
func EhToORP(eh corecorr.Potential, ref corecorr.Reference) corecorr.Potential {
	return eh.As(ref)
}
