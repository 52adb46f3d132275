// Package tools is the orchestration boundary spec.md §6.1 describes: one
// function per named operation, each validating its input, dispatching to
// the numerical core (catalog, responsesurface, kinetics, material,
// galvanic, pitting, pourbaix, masstransfer, norsok, domain/chemistry), and
// assembling a provenance.Envelope. Numerical packages never import tools;
// tools imports all of them. Errors are returned as
// corrosionengine/domain/errs sentinels; internal/httpapi turns them into
// internal/apperr codes for HTTP callers.
package tools

import (
	"corrosionengine/catalog"
	"corrosionengine/ports"
)

// Service holds the dependencies every operation needs: the loaded catalog
// and (optionally) a configured chemistry oracle. A Service is immutable
// once built and safe for concurrent use by any number of callers (spec.md
// §5: "parallel-safe... no locks on the hot path").
type Service struct {
	Catalog *catalog.Catalog
	Oracle  ports.ChemistryOracle
}

// NewService builds a Service over an already-loaded catalog. Callers that
// want lazy, single-shot loading should build the catalog via
// catalog.Manager.Get and pass the result here once.
func NewService(cat *catalog.Catalog) *Service {
	return &Service{Catalog: cat, Oracle: ports.NullOracle{}}
}

// WithOracle returns a copy of the Service configured with a real
// ChemistryOracle. Unused by every operation in this repository today —
// PHREEQC speciation is out of scope (spec.md §1) — but kept so an embedder
// can wire one in without touching this package.
func (s *Service) WithOracle(oracle ports.ChemistryOracle) *Service {
	return &Service{Catalog: s.Catalog, Oracle: oracle}
}

// chlorideMgLToMolar converts a chloride concentration from mg/L to molar,
// the unit the response-surface polynomials require (spec.md §3.1).
// Cl- molar mass is 35.453 g/mol.
func chlorideMgLToMolar(mgL float64) float64 {
	return mgL / 35453.0
}
