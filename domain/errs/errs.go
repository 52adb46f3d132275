// Package errs centralizes the typed error kinds used by the numerical core,
// in the sentinel-error + fmt.Errorf("%w: ...") idiom. Numerical packages wrap
// one of these sentinels with operation-specific context; the tools package
// classifies errors with the Is* helpers below and never needs type switches.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors, one family per spec.md §7 policy.
var (
	// ErrInputValidation: out-of-range T/Cl/pH, unknown material after alias
	// resolution. Fails the call; no partial result.
	ErrInputValidation = errors.New("input validation failed")

	// ErrOutOfValidatedRegion: ΔG <= 0 from the response surface, T or Cl
	// outside the fitted window, NORSOK pH outside [3.5, 6.5]. Never produce a
	// silent result from an extrapolated polynomial.
	ErrOutOfValidatedRegion = errors.New("operating point outside validated region")

	// ErrSolverNonConvergence: mixed-potential bracketing fails, or the
	// film-resistance Newton iteration diverges.
	ErrSolverNonConvergence = errors.New("solver failed to converge")

	// ErrTier2Unavailable: DO missing, material lacks NRL coefficients, or the
	// Butler-Volmer solve failed. Never returned as a call failure — carried as
	// an explanation string on the Tier-2 result fields instead. Exported so
	// pitting.Assessor can classify an inner error without a type switch.
	ErrTier2Unavailable = errors.New("tier 2 pitting assessment unavailable")

	// ErrCatalogLoad: missing or malformed data file at startup. Fatal — the
	// process must not start with a partially constructed catalog.
	ErrCatalogLoad = errors.New("catalog load failed")
)

// NewInputValidation builds a contextualized input-validation error.
func NewInputValidation(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInputValidation, field, reason)
}

// NewOutOfValidatedRegion names the component and operating point that fell
// outside the validated region, per spec.md §7's single-error-field format.
func NewOutOfValidatedRegion(component, detail string) error {
	return fmt.Errorf("%w at %s: %s", ErrOutOfValidatedRegion, component, detail)
}

// NewSolverNonConvergence reports the attempted bracket/iteration and residual.
func NewSolverNonConvergence(component, detail string) error {
	return fmt.Errorf("%w at %s: %s", ErrSolverNonConvergence, component, detail)
}

// NewCatalogLoad reports which file or table failed to load.
func NewCatalogLoad(file string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrCatalogLoad, file, cause)
}

// Is* classifiers mirror errors.Is, named for readability at call sites.
func IsInputValidation(err error) bool      { return errors.Is(err, ErrInputValidation) }
func IsOutOfValidatedRegion(err error) bool { return errors.Is(err, ErrOutOfValidatedRegion) }
func IsSolverNonConvergence(err error) bool { return errors.Is(err, ErrSolverNonConvergence) }
func IsTier2Unavailable(err error) bool     { return errors.Is(err, ErrTier2Unavailable) }
func IsCatalogLoad(err error) bool          { return errors.Is(err, ErrCatalogLoad) }
