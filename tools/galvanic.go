package tools

import (
	"fmt"

	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
	"corrosionengine/galvanic"
	"corrosionengine/masstransfer"
	"corrosionengine/material"
	"corrosionengine/provenance"
)

// AssessGalvanicRequest is the assess_galvanic operation's input (spec.md §6.1).
type AssessGalvanicRequest struct {
	Anode       string
	Cathode     string
	TempC       float64
	PH          float64
	ClMgL       float64
	AreaRatio   float64 // cathode/anode
	DOMgL       *float64
	VelocityMPerS *float64
	PipeDiameterM *float64
	PipeLengthM   *float64
}

// seawaterDensityKgM3 and seawaterViscosityPaS are the fixed fluid
// properties assumed when a caller supplies flow velocity/geometry but no
// separate density/viscosity — assess_galvanic's input table (spec.md §6.1)
// does not carry those fields, so they are not a free parameter of the
// operation.
const (
	seawaterDensityKgM3  = 1025.0
	seawaterViscosityPaS = 1.08e-3
)

func (s *Service) buildEnvironment(tempC, pH, clMgL float64, doMgL *float64, velocity, diameter, length *float64) (material.Environment, []string, error) {
	var warnings []string
	if tempC < -2 || tempC > 200 {
		return material.Environment{}, nil, errs.NewInputValidation("T", fmt.Sprintf("%.1f C is outside the plausible aqueous-service range", tempC))
	}
	if pH < 0 || pH > 14 {
		return material.Environment{}, nil, errs.NewInputValidation("pH", fmt.Sprintf("%.2f is outside [0, 14]", pH))
	}
	if clMgL < 0 {
		return material.Environment{}, nil, errs.NewInputValidation("Cl", "chloride concentration cannot be negative")
	}

	env := material.Environment{
		Temp:        corecorr.FromCelsius(tempC),
		PH:          pH,
		ClMolar:     chlorideMgLToMolar(clMgL),
		SalinityPSU: 35.0,
	}
	if doMgL != nil {
		env.DOMgL = *doMgL
	}
	if velocity != nil && diameter != nil {
		pipeLen := *diameter
		if length != nil && *length > 0 {
			pipeLen = *length
		}
		env.Flow = &masstransfer.FlowParams{
			Geometry:      masstransfer.Pipe,
			VelocityMPerS: *velocity,
			LengthM:       *diameter,
			PipeLengthM:   pipeLen,
			DensityKgM3:   seawaterDensityKgM3,
			ViscosityPaS:  seawaterViscosityPaS,
		}
		warnings = append(warnings, "flow-derived ORR diffusion limit applied using fixed seawater density/viscosity")
	}
	return env, warnings, nil
}

// AssessGalvanic solves the mixed-potential galvanic couple between Anode
// and Cathode and converts the result to a corrosion rate, per spec.md §4.7.
func (s *Service) AssessGalvanic(req AssessGalvanicRequest) (provenance.Envelope[galvanic.Outcome], error) {
	anodeMat, err := material.Resolve(s.Catalog, req.Anode)
	if err != nil {
		return provenance.Envelope[galvanic.Outcome]{}, err
	}
	cathodeMat, err := material.Resolve(s.Catalog, req.Cathode)
	if err != nil {
		return provenance.Envelope[galvanic.Outcome]{}, err
	}
	if !anodeMat.SupportsReaction("ORR") && !anodeMat.SupportsReaction("Oxidation") && !anodeMat.SupportsReaction("Passivation") {
		return provenance.Envelope[galvanic.Outcome]{}, errs.NewInputValidation("anode", req.Anode+" has no NRL response-surface coefficients; galvanic assessment requires a material in the six-alloy NRL set")
	}

	env, flowWarnings, err := s.buildEnvironment(req.TempC, req.PH, req.ClMgL, req.DOMgL, req.VelocityMPerS, req.PipeDiameterM, req.PipeLengthM)
	if err != nil {
		return provenance.Envelope[galvanic.Outcome]{}, err
	}

	outcome, err := galvanic.Solve(anodeMat, cathodeMat, env, galvanic.AreaRatio(req.AreaRatio))
	if err != nil {
		return provenance.Envelope[galvanic.Outcome]{}, err
	}

	warnings := append(append([]string{}, flowWarnings...), outcome.Warnings...)
	confidence := provenance.ConfidenceHigh
	if len(warnings) > 0 {
		confidence = provenance.ConfidenceModerate
	}

	citations := []string{
		anodeMat.Composition.Source,
		cathodeMat.Composition.Source,
		"NRL Butler-Volmer response-surface dataset",
	}
	if anodeMat.Galvanic != nil {
		citations = append(citations, anodeMat.Galvanic.Source)
	}
	if cathodeMat.Galvanic != nil {
		citations = append(citations, cathodeMat.Galvanic.Source)
	}

	assumptions := []string{
		"seawater NaCl salinity assumed for oxygen solubility and diffusivity scaling",
		"mixed-potential solved over [min(Ecorr)-0.1V, max(Ecorr)+0.1V] by bisection",
	}

	env1 := provenance.New(outcome, "mixed-potential-galvanic-solver", confidence, citations, assumptions, warnings)
	return env1, nil
}
