package tools

import (
	"corrosionengine/domain/corecorr"
	"corrosionengine/material"
	"corrosionengine/pitting"
	"corrosionengine/provenance"
)

// AssessLocalizedRequest is the assess_localized operation's input.
type AssessLocalizedRequest struct {
	Material string
	TempC    float64
	ClMgL    float64
	PH       float64
	DOMgL    *float64
}

// AssessLocalized runs the dual-tier pitting assessment (spec.md §4.8).
// Tier 1 is always computed; Tier 2 degrades gracefully to a
// self-describing explanation when DO is missing or the material lacks
// NRL coefficients — this never fails the call (spec.md §7).
func (s *Service) AssessLocalized(req AssessLocalizedRequest) (provenance.Envelope[pitting.Outcome], error) {
	m, err := material.Resolve(s.Catalog, req.Material)
	if err != nil {
		return provenance.Envelope[pitting.Outcome]{}, err
	}

	env := material.Environment{
		Temp:        corecorr.FromCelsius(req.TempC),
		PH:          req.PH,
		ClMolar:     chlorideMgLToMolar(req.ClMgL),
		SalinityPSU: 35.0,
	}
	if req.DOMgL != nil {
		env.DOMgL = *req.DOMgL
	}

	outcome, err := pitting.Assess(m, env, req.TempC, req.PH, req.ClMgL)
	if err != nil {
		return provenance.Envelope[pitting.Outcome]{}, err
	}

	citations := []string{m.Composition.Source, "ISO 18070:2015", "ASTM G48-11"}
	if m.CPT != nil {
		citations = append(citations, m.CPT.Source)
	}

	var warnings []string
	if outcome.Tier1.CPTIsEstimated {
		warnings = append(warnings, "no tabulated CPT for this material; using PREN-based estimate")
	}
	if !outcome.Tier2.Available {
		warnings = append(warnings, "Tier 2 mechanistic assessment unavailable: "+outcome.Tier2.Reason)
	}
	if outcome.Disagreement.Detected {
		warnings = append(warnings, "Tier 1 and Tier 2 disagree by more than one risk step; "+outcome.Disagreement.Recommendation)
	}

	confidence := provenance.ConfidenceHigh
	if !outcome.Tier2.Available {
		confidence = provenance.ConfidenceModerate
	}
	if outcome.Disagreement.Detected {
		confidence = provenance.ConfidenceLow
	}

	assumptions := []string{
		"pH-7 reference chloride threshold per ISO 18070; no separate pH correction factor applied beyond the tabulated value",
	}

	return provenance.New(outcome, "dual-tier-pitting-assessor", confidence, citations, assumptions, warnings), nil
}
