// Package constants holds the physical constants and reference-electrode
// offsets shared by every numerical package. Nothing here is derived at
// runtime; everything is a fixed value from the literature cited alongside it.
package constants

const (
	// FaradayConstant is F in C/mol.
	FaradayConstant = 96485.0

	// GasConstant is R in J/mol/K.
	GasConstant = 8.314

	// CelsiusToKelvinOffset converts °C to K: T_K = T_C + CelsiusToKelvinOffset.
	// Feeding Celsius directly into the response-surface polynomial (§4.3) was
	// a documented repository-wide bug; every temperature consumed by the core
	// must pass through corecorr.Temperature.Kelvin().
	CelsiusToKelvinOffset = 273.15

	// SecondsPerYear is used by the Faraday corrosion-rate conversion (§4.7).
	SecondsPerYear = 3.1536e7
)

// Reference-electrode offsets, each in volts vs. the Standard Hydrogen
// Electrode (SHE). Internally every potential is carried as SHE; these
// offsets are the only place a number may change reference frame (ASTM G82 /
// Design Notes §9).
const (
	// ESCEvsSHE is E(SCE) vs SHE.
	ESCEvsSHE = 0.241

	// EAgAgClSatKClvsSHE is E(Ag/AgCl, saturated KCl) vs SHE.
	EAgAgClSatKClvsSHE = 0.197
)
