// Package responsesurface evaluates the six-term quadratic polynomial that
// the NRL dataset provides per (material, reaction), plus the linear pH
// interpolation layered on top of it.
package responsesurface

import (
	"fmt"

	"corrosionengine/catalog"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
)

// Result is the evaluated free energy of reaction plus the inputs it was
// evaluated at, carried along so callers can build an error message without
// re-deriving the Kelvin conversion.
type Result struct {
	DeltaGJPerMol float64
	ClMolar       float64
	TempKelvin    float64
	PH            float64
}

// DeltaGNoPH evaluates the polynomial without the pH correction:
//
//	ΔG = p00 + p10·Cl + p01·T_K + p20·Cl² + p11·Cl·T_K + p02·T_K²
//
// T is converted through corecorr.Temperature.Kelvin() so the Celsius/Kelvin
// mixups documented against the original evaluator cannot recur here — there
// is no bare float64 temperature parameter to pass the wrong unit into.
func DeltaGNoPH(coeffs catalog.ReactionCoefficients, clMolar float64, temp corecorr.Temperature) float64 {
	tK := temp.Kelvin()
	return coeffs.P00 +
		coeffs.P10*clMolar +
		coeffs.P01*tK +
		coeffs.P20*clMolar*clMolar +
		coeffs.P11*clMolar*tK +
		coeffs.P02*tK*tK
}

// Evaluate applies the pH interpolation on top of DeltaGNoPH and enforces the
// positivity requirement demanded by the Butler-Volmer forms that consume
// ΔG. A non-positive result is reported as errs.ErrOutOfValidatedRegion,
// never silently clamped or returned.
func Evaluate(coeffs catalog.ReactionCoefficients, clMolar float64, temp corecorr.Temperature, pH float64) (Result, error) {
	dgNoPH := DeltaGNoPH(coeffs, clMolar, temp)

	dgMax := 1.1 * dgNoPH
	dgMin := 0.9 * dgNoPH
	span := coeffs.PHMax - coeffs.PHMin
	var dg float64
	if span == 0 {
		dg = dgNoPH
	} else {
		slope := (dgMax - dgMin) / span
		dg = slope*(pH-coeffs.PHMin) + dgMin
	}

	res := Result{DeltaGJPerMol: dg, ClMolar: clMolar, TempKelvin: temp.Kelvin(), PH: pH}

	if dg <= 0 {
		return res, errs.NewOutOfValidatedRegion(
			fmt.Sprintf("%s/%s response surface", coeffs.Material, coeffs.Reaction),
			fmt.Sprintf("ΔG=%.4g J/mol at Cl=%.6g M, T=%.2f K, pH=%.2f is non-positive", dg, clMolar, temp.Kelvin(), pH),
		)
	}
	return res, nil
}
