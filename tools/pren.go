package tools

import (
	"corrosionengine/domain/errs"
	"corrosionengine/material"
	"corrosionengine/provenance"
)

// Composition is the ad-hoc composition input calculate_pren accepts when
// the caller has no catalog material id, only measured wt% values.
type Composition struct {
	CrWtPct float64
	MoWtPct float64
	NWtPct  float64
}

// CalculatePRENRequest is the calculate_pren operation's input. Exactly one
// of MaterialID or Composition must be set.
type CalculatePRENRequest struct {
	MaterialID  string
	Composition *Composition
}

// PRENResult is PREN plus the family-specific interpretation band spec.md
// §6.1 asks for.
type PRENResult struct {
	PREN           float64
	Interpretation string
}

// interpretPREN bands PREN per the commonly cited stainless/duplex ranges:
// below 30 is not considered seawater-resistant, 30-40 covers standard
// duplex grades like 2205, above 40 covers super-duplex/super-austenitic
// grades rated for seawater service.
func interpretPREN(pren float64) string {
	switch {
	case pren < 30:
		return "below 30: not generally considered resistant to seawater pitting"
	case pren < 40:
		return "30-40: standard duplex range (e.g. 2205); suitable for moderate chloride service"
	default:
		return "40+: super-duplex/super-austenitic range; suitable for aggressive seawater/brine service"
	}
}

// CalculatePREN computes PREN = %Cr + 3.3*%Mo + 16*%N, either from a
// resolved catalog material or from a caller-supplied composition.
func (s *Service) CalculatePREN(req CalculatePRENRequest) (provenance.Envelope[PRENResult], error) {
	if req.Composition != nil {
		pren := req.Composition.CrWtPct + 3.3*req.Composition.MoWtPct + 16*req.Composition.NWtPct
		result := PRENResult{PREN: pren, Interpretation: interpretPREN(pren)}
		return provenance.New(result, "pren-calculator", provenance.ConfidenceHigh,
			[]string{"PREN = %Cr + 3.3*%Mo + 16*%N"}, nil, nil), nil
	}
	if req.MaterialID == "" {
		return provenance.Envelope[PRENResult]{}, errs.NewInputValidation("material_id", "either material_id or composition must be supplied")
	}

	comp, ok := s.Catalog.Material(req.MaterialID)
	if !ok {
		return provenance.Envelope[PRENResult]{}, errs.NewInputValidation("material_id", req.MaterialID+" is not a known material or alias")
	}
	m := &material.Material{Composition: comp}
	pren := m.PREN()
	result := PRENResult{PREN: pren, Interpretation: interpretPREN(pren)}
	return provenance.New(result, "pren-calculator", provenance.ConfidenceHigh,
		[]string{comp.Source, "PREN = %Cr + 3.3*%Mo + 16*%N"}, nil, nil), nil
}
