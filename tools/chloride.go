package tools

import (
	"corrosionengine/galvanic"
	"corrosionengine/material"
	"corrosionengine/provenance"
)

// defaultAeratedChlorideMaterial is the baseline alloy predict_aerated_chloride
// reports against when the caller does not name one: spec.md §6.1 lists this
// operation's inputs as purely environmental (T, Cl, pH, flow), with no
// material field, so a fixed carbon-steel baseline (the same HY80 NRL
// coefficients the galvanic/pitting tools use) stands in for "general
// aerated-chloride corrosion rate" — documented as an Open-Question
// resolution in DESIGN.md.
const defaultAeratedChlorideMaterial = "HY80"

// PredictAeratedChlorideRequest is the predict_aerated_chloride operation's input.
type PredictAeratedChlorideRequest struct {
	MaterialID    string // optional; defaults to defaultAeratedChlorideMaterial
	TempC         float64
	ClMgL         float64
	PH            float64
	DOMgL         *float64
	VelocityMPerS *float64
	DiameterM     *float64
	LengthM       *float64
}

// AeratedChlorideResult is the isolated corrosion rate plus the material it
// was computed against, since the operation's material choice is implicit.
type AeratedChlorideResult struct {
	Material          string
	CorrosionRateMMYr float64
}

// PredictAeratedChloride computes the isolated free-corrosion rate of the
// baseline material in aerated chloride service, optionally with
// flow-derived mass transfer (spec.md §4.6/§4.7's Faraday conversion, with
// no second electrode — this is not a galvanic couple).
func (s *Service) PredictAeratedChloride(req PredictAeratedChlorideRequest) (provenance.Envelope[AeratedChlorideResult], error) {
	id := req.MaterialID
	if id == "" {
		id = defaultAeratedChlorideMaterial
	}
	m, err := material.Resolve(s.Catalog, id)
	if err != nil {
		return provenance.Envelope[AeratedChlorideResult]{}, err
	}

	env, flowWarnings, err := s.buildEnvironment(req.TempC, req.PH, req.ClMgL, req.DOMgL, req.VelocityMPerS, req.DiameterM, req.LengthM)
	if err != nil {
		return provenance.Envelope[AeratedChlorideResult]{}, err
	}

	cr, err := galvanic.IsolatedCorrosionRate(m, env)
	if err != nil {
		return provenance.Envelope[AeratedChlorideResult]{}, err
	}

	result := AeratedChlorideResult{Material: m.Composition.CommonName, CorrosionRateMMYr: cr}
	confidence := provenance.ConfidenceHigh
	if len(flowWarnings) > 0 {
		confidence = provenance.ConfidenceModerate
	}

	return provenance.New(result, "isolated-aerated-chloride-predictor", confidence,
		[]string{m.Composition.Source, "NRL Butler-Volmer response-surface dataset"},
		[]string{"baseline material is " + defaultAeratedChlorideMaterial + " unless material_id is supplied"},
		flowWarnings), nil
}
