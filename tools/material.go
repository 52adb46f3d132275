package tools

import (
	"corrosionengine/catalog"
	"corrosionengine/material"
	"corrosionengine/provenance"
)

// MaterialPropertiesResult is the full catalog record for one material
// (spec.md §6.1: "full catalog record").
type MaterialPropertiesResult struct {
	Composition        catalog.MaterialComposition
	CPT                *catalog.CPTRow
	Galvanic           *catalog.GalvanicRow
	ChlorideThreshold  *catalog.ChlorideThresholdRow
	TemperatureCoeff   *catalog.TemperatureCoefficientRow
	PREN               float64
	SupportedReactions []string
}

var allReactionNames = []string{"ORR", "HER", "Oxidation", "Passivation", "Pitting"}

// GetMaterialProperties resolves a material id (through the alias table)
// and returns its full catalog record plus the derived PREN and the set of
// reactions it has NRL response-surface coefficients for.
func (s *Service) GetMaterialProperties(materialID string) (provenance.Envelope[MaterialPropertiesResult], error) {
	m, err := material.Resolve(s.Catalog, materialID)
	if err != nil {
		return provenance.Envelope[MaterialPropertiesResult]{}, err
	}

	var supported []string
	for _, r := range allReactionNames {
		if m.SupportsReaction(r) {
			supported = append(supported, r)
		}
	}

	result := MaterialPropertiesResult{
		Composition:        m.Composition,
		CPT:                m.CPT,
		Galvanic:           m.Galvanic,
		ChlorideThreshold:  m.Chloride,
		TemperatureCoeff:   m.TempCoeff,
		PREN:               m.PREN(),
		SupportedReactions: supported,
	}

	citations := []string{m.Composition.Source}
	if m.CPT != nil {
		citations = append(citations, m.CPT.Source)
	}
	if m.Galvanic != nil {
		citations = append(citations, m.Galvanic.Source)
	}
	if m.Chloride != nil {
		citations = append(citations, m.Chloride.Source)
	}

	return provenance.New(result, "material-catalog-lookup", provenance.ConfidenceHigh, citations, nil, nil), nil
}
