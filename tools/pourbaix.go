package tools

import (
	"corrosionengine/domain/corecorr"
	"corrosionengine/pourbaix"
	"corrosionengine/provenance"
)

// GeneratePourbaixRequest is the generate_pourbaix operation's input.
type GeneratePourbaixRequest struct {
	Element          string
	TempC            float64
	SolubleConcMolar float64
	PHMin, PHMax     float64
	GridDensity      int
	Point            *PourbaixPoint
}

// PourbaixPoint is the optional user-supplied operating point to classify.
type PourbaixPoint struct {
	PH     float64
	EVolts float64 // vs SHE
}

// GeneratePourbaix evaluates simplified Eh-pH region boundaries for one of
// the six supported elements (spec.md §4.9). The result is explicitly
// labeled as an engineering estimate, never PHREEQC-grade speciation.
func (s *Service) GeneratePourbaix(req GeneratePourbaixRequest) (provenance.Envelope[pourbaix.Diagram], error) {
	var point *pourbaix.PointClassification
	if req.Point != nil {
		point = &pourbaix.PointClassification{PH: req.Point.PH, EVolts: req.Point.EVolts}
	}

	diagram, err := pourbaix.Generate(
		pourbaix.Element(req.Element),
		corecorr.FromCelsius(req.TempC),
		req.SolubleConcMolar,
		req.PHMin, req.PHMax,
		req.GridDensity,
		point,
	)
	if err != nil {
		return provenance.Envelope[pourbaix.Diagram]{}, err
	}

	return provenance.New(diagram, "simplified-pourbaix-evaluator", provenance.ConfidenceModerate,
		[]string{"tabulated standard reduction potentials, NACE/ASM Pourbaix compilations"},
		[]string{"no activity coefficients; no complex species; engineering-estimate classification only, not PHREEQC-grade geochemistry"},
		nil), nil
}
