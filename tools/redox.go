package tools

import (
	"corrosionengine/domain/chemistry"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
	"corrosionengine/provenance"
)

// parseReference maps the wire-level reference-electrode name to
// corecorr.Reference. This is the tools-layer boundary translation spec.md
// §4.1 requires: nothing below this package ever takes a bare string for a
// reference electrode.
func parseReference(name string) (corecorr.Reference, error) {
	switch name {
	case "", "SHE":
		return corecorr.SHE, nil
	case "SCE":
		return corecorr.SCE, nil
	case "AgAgCl", "Ag/AgCl":
		return corecorr.AgAgClSatKCl, nil
	default:
		return 0, errs.NewInputValidation("reference_electrode", name+" is not a recognized reference electrode (SHE, SCE, AgAgCl)")
	}
}

// DOToEhRequest is the do_to_eh operation's input.
type DOToEhRequest struct {
	DOMgL       float64
	PH          float64
	TempC       float64
	SalinityPSU float64 // 0 means "use seawater default" (spec.md §4.1 internal SHE convention)
	Reference   string  // reference electrode the output Eh should be expressed in; empty = SHE
}

// RedoxResult carries the converted potential plus which reference it is
// expressed against — never a bare float, per spec.md §4.1.
type RedoxResult struct {
	EhVolts   float64
	Reference string
}

// DOToEh converts dissolved oxygen to Eh via the Nernst equation on the
// O2/H2O couple (spec.md §4.1, §3.2).
func (s *Service) DOToEh(req DOToEhRequest) (provenance.Envelope[RedoxResult], error) {
	ref, err := parseReference(req.Reference)
	if err != nil {
		return provenance.Envelope[RedoxResult]{}, err
	}
	salinity := req.SalinityPSU
	if salinity <= 0 {
		salinity = 35.0
	}

	eh, err := chemistry.DOToEh(req.DOMgL, req.PH, corecorr.FromCelsius(req.TempC), salinity)
	if err != nil {
		return provenance.Envelope[RedoxResult]{}, err
	}

	var warnings []string
	if req.DOMgL < 0.01 {
		warnings = append(warnings, "DO below 0.01 mg/L clamped to avoid log(0) in the Nernst evaluation")
	}

	converted := eh.As(ref)
	result := RedoxResult{EhVolts: converted.Volts(), Reference: converted.Reference().String()}
	return provenance.New(result, "nernst-redox-converter", provenance.ConfidenceHigh,
		[]string{"Nernst equation, O2 + 4H+ + 4e- -> 2H2O, E0=1.229 V vs SHE"}, nil, warnings), nil
}

// EhToDORequest is the eh_to_do operation's input.
type EhToDORequest struct {
	EhVolts     float64
	Reference   string
	PH          float64
	TempC       float64
	SalinityPSU float64
}

// EhToDO inverts DOToEh.
func (s *Service) EhToDO(req EhToDORequest) (provenance.Envelope[float64], error) {
	ref, err := parseReference(req.Reference)
	if err != nil {
		return provenance.Envelope[float64]{}, err
	}
	salinity := req.SalinityPSU
	if salinity <= 0 {
		salinity = 35.0
	}

	potential := corecorr.NewPotential(req.EhVolts, ref)
	do, err := chemistry.EhToDO(potential, req.PH, corecorr.FromCelsius(req.TempC), salinity)
	if err != nil {
		return provenance.Envelope[float64]{}, err
	}

	return provenance.New(do, "nernst-redox-converter", provenance.ConfidenceHigh,
		[]string{"Nernst equation, O2 + 4H+ + 4e- -> 2H2O, E0=1.229 V vs SHE"}, nil, nil), nil
}

// ORPToEhRequest is the orp_to_eh operation's input: a raw ORP reading
// against a named reference electrode.
type ORPToEhRequest struct {
	ORPVolts  float64
	Reference string
}

// ORPToEh converts a raw ORP reading to Eh vs SHE.
func (s *Service) ORPToEh(req ORPToEhRequest) (provenance.Envelope[RedoxResult], error) {
	ref, err := parseReference(req.Reference)
	if err != nil {
		return provenance.Envelope[RedoxResult]{}, err
	}
	orp := corecorr.NewPotential(req.ORPVolts, ref)
	eh := chemistry.ORPToEh(orp)
	result := RedoxResult{EhVolts: eh.Volts(), Reference: eh.Reference().String()}
	return provenance.New(result, "reference-electrode-converter", provenance.ConfidenceHigh,
		[]string{"ASTM G82 reference-electrode offsets"}, nil, nil), nil
}

// EhToORPRequest is the eh_to_orp operation's input.
type EhToORPRequest struct {
	EhVolts   float64
	Reference string // target reference electrode for the ORP reading
}

// EhToORP converts Eh (vs SHE) to an ORP reading vs the given reference electrode.
func (s *Service) EhToORP(req EhToORPRequest) (provenance.Envelope[RedoxResult], error) {
	ref, err := parseReference(req.Reference)
	if err != nil {
		return provenance.Envelope[RedoxResult]{}, err
	}
	eh := corecorr.NewPotential(req.EhVolts, corecorr.SHE)
	orp := chemistry.EhToORP(eh, ref)
	result := RedoxResult{EhVolts: orp.Volts(), Reference: orp.Reference().String()}
	return provenance.New(result, "reference-electrode-converter", provenance.ConfidenceHigh,
		[]string{"ASTM G82 reference-electrode offsets"}, nil, nil), nil
}
