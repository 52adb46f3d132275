package tools

import (
	"fmt"
	"strings"

	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
	"corrosionengine/material"
	"corrosionengine/pitting"
	"corrosionengine/provenance"
)

// environmentPreset is a documented, fixed operating-point assumption used
// only by screen_materials' coarse first-pass filter; it is not one of the
// catalogs in spec.md §3.1, so it lives as a small local table rather than
// a CSV file.
type environmentPreset struct {
	TempC float64
	ClMgL float64
	PH    float64
	DOMgL float64
}

var environmentPresets = map[string]environmentPreset{
	"seawater":    {TempC: 25, ClMgL: 19000, PH: 8.1, DOMgL: 8.0},
	"brackish":    {TempC: 25, ClMgL: 5000, PH: 7.5, DOMgL: 6.0},
	"wastewater":  {TempC: 25, ClMgL: 500, PH: 7.0, DOMgL: 2.0},
	"freshwater":  {TempC: 15, ClMgL: 50, PH: 7.2, DOMgL: 9.0},
	"co2_service": {TempC: 40, ClMgL: 30000, PH: 5.5, DOMgL: 0.0},
	"h2s_service": {TempC: 40, ClMgL: 30000, PH: 5.0, DOMgL: 0.0},
}

// ScreenMaterialsRequest is the screen_materials operation's input.
type ScreenMaterialsRequest struct {
	Environment string
	Candidates  []string
	Application string
}

// CandidateScreen is one candidate's compatibility result.
type CandidateScreen struct {
	Material         string
	CompatibilityTag string
	Notes            string
}

// ScreenMaterials runs Tier-1 pitting assessment for every candidate under
// a documented environment preset, producing a quick compatibility tag.
// This is a coarse first-pass filter; assess_localized and assess_galvanic
// give the mechanistic (Tier-2) answer for a specific candidate.
func (s *Service) ScreenMaterials(req ScreenMaterialsRequest) (provenance.Envelope[[]CandidateScreen], error) {
	preset, ok := environmentPresets[strings.ToLower(strings.TrimSpace(req.Environment))]
	if !ok {
		return provenance.Envelope[[]CandidateScreen]{}, errs.NewInputValidation("environment",
			req.Environment+" is not a recognized environment preset (seawater, brackish, wastewater, freshwater, co2_service, h2s_service)")
	}
	if len(req.Candidates) == 0 {
		return provenance.Envelope[[]CandidateScreen]{}, errs.NewInputValidation("candidates", "at least one candidate material is required")
	}

	results := make([]CandidateScreen, 0, len(req.Candidates))
	var warnings []string

	for _, candidateID := range req.Candidates {
		m, err := material.Resolve(s.Catalog, candidateID)
		if err != nil {
			results = append(results, CandidateScreen{
				Material:         candidateID,
				CompatibilityTag: "unknown",
				Notes:            err.Error(),
			})
			continue
		}

		env := material.Environment{
			Temp:        corecorr.FromCelsius(preset.TempC),
			PH:          preset.PH,
			ClMolar:     chlorideMgLToMolar(preset.ClMgL),
			DOMgL:       preset.DOMgL,
			SalinityPSU: 35.0,
		}

		outcome, err := pitting.Assess(m, env, preset.TempC, preset.PH, preset.ClMgL)
		if err != nil {
			warnings = append(warnings, candidateID+": "+err.Error())
			results = append(results, CandidateScreen{
				Material:         m.Composition.CommonName,
				CompatibilityTag: "unknown",
				Notes:            "screening evaluation failed: " + err.Error(),
			})
			continue
		}

		results = append(results, CandidateScreen{
			Material:         m.Composition.CommonName,
			CompatibilityTag: compatibilityTagFor(outcome.OverallRisk),
			Notes:            screeningNotes(outcome, req.Application),
		})
	}

	return provenance.New(results, "tier1-screening-filter", provenance.ConfidenceModerate,
		[]string{"ISO 18070:2015 chloride thresholds", "ASTM G48-11 CPT/CCT data"},
		[]string{"fixed environment preset for " + req.Environment + "; not a substitute for assess_localized/assess_galvanic at the actual operating point"},
		warnings), nil
}

func compatibilityTagFor(risk pitting.Risk) string {
	switch risk {
	case pitting.Low:
		return "recommended"
	case pitting.Moderate:
		return "acceptable_with_monitoring"
	case pitting.High:
		return "not_recommended"
	default:
		return "not_recommended"
	}
}

func screeningNotes(outcome pitting.Outcome, application string) string {
	note := fmt.Sprintf("Tier-1 PREN=%.1f, CPT=%.1fC", outcome.Tier1.PREN, outcome.Tier1.CPTCelsius)
	if application != "" {
		note += " for " + application + " service"
	}
	return note
}
