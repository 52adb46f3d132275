// Package pourbaix evaluates simplified Eh-pH (Pourbaix) diagrams for a
// fixed set of structural metals, using tabulated standard potentials and
// the Nernst equation (spec.md §4.9). This is a deliberately simplified
// thermodynamic model: no activity coefficients, no complex species, no
// full PHREEQC-grade speciation. Every result is labeled as an engineering
// estimate.
package pourbaix

import (
	"math"

	"corrosionengine/domain/constants"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
)

// Element is one of the six metals this evaluator covers.
type Element string

const (
	Iron     Element = "Fe"
	Chromium Element = "Cr"
	Nickel   Element = "Ni"
	Copper   Element = "Cu"
	Titanium Element = "Ti"
	Aluminum Element = "Al"
)

// Region classifies a (pH, E) grid cell per the dominant stable species.
type Region string

const (
	Immunity    Region = "immunity"
	Passivation Region = "passivation"
	Corrosion   Region = "corrosion"
)

// boundary describes one Nernst line between two stable species, expressed
// as E = E0 - slopePH*pH - slopeLogC*log10(concentration), following
// the standard half-reaction E = E0 + (RT/nF)*ln(Q) linearized at 25C
// reference slope 0.0591 V/decade and scaled for other temperatures.
type boundary struct {
	name       string
	e0         float64 // V vs SHE at pH=0, unit activity
	slopePH    float64 // V per pH unit (from H+ stoichiometry)
	slopeLogC  float64 // V per decade of soluble-species concentration
	nElectrons float64
	below      Region // region on the low-E side of this line
	above      Region // region on the high-E side of this line
}

// elementBoundaries holds the metal/ion and metal/oxide Nernst lines used to
// classify a grid cell for each element. Standard potentials are from the
// NACE/ASM Pourbaix compilations; this is a two-line simplification (one
// active-dissolution line, one passivation-onset line) per metal, which is
// adequate for the qualitative engineering classification this evaluator
// claims to provide and nothing more.
var elementBoundaries = map[Element][]boundary{
	Iron: {
		{name: "Fe/Fe2+", e0: -0.440, slopePH: 0, slopeLogC: -0.0295, nElectrons: 2, below: Immunity, above: Corrosion},
		{name: "Fe2+/Fe2O3", e0: 0.728, slopePH: -0.1773, slopeLogC: 0.0295, nElectrons: 2, below: Corrosion, above: Passivation},
	},
	Chromium: {
		{name: "Cr/Cr2+", e0: -0.913, slopePH: 0, slopeLogC: -0.0295, nElectrons: 2, below: Immunity, above: Corrosion},
		{name: "Cr2+/Cr2O3", e0: 0.408, slopePH: -0.1773, slopeLogC: 0.0295, nElectrons: 2, below: Corrosion, above: Passivation},
	},
	Nickel: {
		{name: "Ni/Ni2+", e0: -0.257, slopePH: 0, slopeLogC: -0.0295, nElectrons: 2, below: Immunity, above: Corrosion},
		{name: "Ni2+/NiO", e0: 1.110, slopePH: -0.1182, slopeLogC: 0.0295, nElectrons: 2, below: Corrosion, above: Passivation},
	},
	Copper: {
		{name: "Cu/Cu2+", e0: 0.340, slopePH: 0, slopeLogC: -0.0295, nElectrons: 2, below: Immunity, above: Corrosion},
		{name: "Cu2+/CuO", e0: 0.570, slopePH: -0.1182, slopeLogC: 0.0295, nElectrons: 2, below: Corrosion, above: Passivation},
	},
	Titanium: {
		{name: "Ti/Ti2+", e0: -1.630, slopePH: 0, slopeLogC: -0.0295, nElectrons: 2, below: Immunity, above: Corrosion},
		{name: "Ti2+/TiO2", e0: -0.502, slopePH: -0.1182, slopeLogC: 0.0295, nElectrons: 2, below: Corrosion, above: Passivation},
	},
	Aluminum: {
		{name: "Al/Al3+", e0: -1.676, slopePH: 0, slopeLogC: -0.0197, nElectrons: 3, below: Immunity, above: Corrosion},
		{name: "Al3+/Al2O3", e0: -1.432, slopePH: -0.1773, slopeLogC: 0.0197, nElectrons: 3, below: Corrosion, above: Passivation},
	},
}

// Line is one evaluated Nernst boundary, sampled over a pH range for
// plotting as a polyline.
type Line struct {
	Name   string
	PHs    []float64
	EVolts []float64
}

// PointClassification is the region a single user-supplied (pH, E) point
// falls into, plus the boundary names that bracket it.
type PointClassification struct {
	PH     float64
	EVolts float64
	Region Region
}

// Diagram is the full evaluated result: the element's boundary polylines,
// the two water-stability lines, and an optional point classification.
type Diagram struct {
	Element            Element
	TempCelsius        float64
	SolubleConcMolar   float64
	ElementLines       []Line
	OxygenLine         Line // O2/H2O upper water-stability line
	HydrogenLine       Line // H+/H2 lower water-stability line
	Point              *PointClassification
	EngineeringEstimate bool // always true; no caller may set this false
}

// temperatureScale adjusts the 25C Nernst slope (0.0591 V/decade) for
// another temperature via RT/F*ln(10); boundaries above are tabulated at
// 25C and scaled by this ratio.
func temperatureScale(temp corecorr.Temperature) float64 {
	const refSlope = 0.0591
	actual := constants.GasConstant * temp.Kelvin() / constants.FaradayConstant * math.Ln10
	return actual / refSlope
}

func (b boundary) evaluate(pH, concMolar float64, scale float64) float64 {
	logC := -6.0
	if concMolar > 0 {
		logC = math.Log10(concMolar)
	}
	return b.e0 - scale*(b.slopePH*pH+b.slopeLogC*logC)
}

// waterOxygenLine is E = 1.229 - 0.0591*pH (O2/H2O), spec.md §4.9.
func waterOxygenLine(pH float64, scale float64) float64 {
	return 1.229 - scale*0.0591*pH
}

// waterHydrogenLine is E = 0 - 0.0591*pH (H+/H2), spec.md §4.9.
func waterHydrogenLine(pH float64, scale float64) float64 {
	return -scale * 0.0591 * pH
}

// Generate builds a Pourbaix diagram for element over [pHMin, pHMax] at the
// given grid density (number of pH samples per line), evaluating the
// element's own boundaries and the two water-stability lines. If point is
// non-nil, it is classified against the element's boundaries.
func Generate(element Element, temp corecorr.Temperature, solubleConcMolar float64, pHMin, pHMax float64, gridDensity int, point *PointClassification) (Diagram, error) {
	bounds, ok := elementBoundaries[element]
	if !ok {
		return Diagram{}, errs.NewInputValidation("element", string(element)+" is not a supported Pourbaix element (Fe, Cr, Ni, Cu, Ti, Al)")
	}
	if pHMax <= pHMin {
		return Diagram{}, errs.NewInputValidation("pH_range", "pH_max must exceed pH_min")
	}
	if gridDensity < 2 {
		gridDensity = 2
	}
	if solubleConcMolar <= 0 {
		solubleConcMolar = 1e-6 // ASTM-typical "negligible corrosion" threshold concentration
	}

	scale := temperatureScale(temp)
	pHs := make([]float64, gridDensity)
	step := (pHMax - pHMin) / float64(gridDensity-1)
	for i := range pHs {
		pHs[i] = pHMin + step*float64(i)
	}

	lines := make([]Line, len(bounds))
	for i, b := range bounds {
		es := make([]float64, gridDensity)
		for j, pH := range pHs {
			es[j] = b.evaluate(pH, solubleConcMolar, scale)
		}
		lines[i] = Line{Name: b.name, PHs: append([]float64{}, pHs...), EVolts: es}
	}

	oxygenEs := make([]float64, gridDensity)
	hydrogenEs := make([]float64, gridDensity)
	for j, pH := range pHs {
		oxygenEs[j] = waterOxygenLine(pH, scale)
		hydrogenEs[j] = waterHydrogenLine(pH, scale)
	}

	diag := Diagram{
		Element:             element,
		TempCelsius:         temp.Celsius(),
		SolubleConcMolar:    solubleConcMolar,
		ElementLines:        lines,
		OxygenLine:          Line{Name: "O2/H2O", PHs: pHs, EVolts: oxygenEs},
		HydrogenLine:        Line{Name: "H+/H2", PHs: pHs, EVolts: hydrogenEs},
		EngineeringEstimate: true,
	}

	if point != nil {
		region := classify(bounds, point.PH, point.EVolts, solubleConcMolar, scale)
		diag.Point = &PointClassification{PH: point.PH, EVolts: point.EVolts, Region: region}
	}

	return diag, nil
}

// classify walks the boundaries in ascending E0 order and returns the
// region of the first boundary the point falls below, or the last
// boundary's "above" region if the point exceeds every line. This mirrors
// the two-line-per-metal simplification: Immunity below the dissolution
// line, Corrosion between the two lines, Passivation above the oxide line.
func classify(bounds []boundary, pH, eVolts, concMolar, scale float64) Region {
	region := Immunity
	for _, b := range bounds {
		lineE := b.evaluate(pH, concMolar, scale)
		if eVolts < lineE {
			return b.below
		}
		region = b.above
	}
	return region
}
