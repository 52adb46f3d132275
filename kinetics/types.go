// Package kinetics implements the Butler-Volmer forms for cathodic and
// anodic half-reactions, combined with the mass-transfer diffusion limit via
// Koutecky-Levich and, for passivation, a film-resistance Newton correction.
package kinetics

import "corrosionengine/domain/corecorr"

// Kind distinguishes the two Butler-Volmer forms spec.md §4.4 describes.
type Kind int

const (
	Cathodic Kind = iota
	Anodic
)

// CurrentFloor is the numerical floor applied to |i| to keep log-space
// evaluations (mixed-potential bracketing, Tafel fits) from underflowing.
const CurrentFloor = 1e-50

// Electrode is the shared capability set both reaction forms implement:
// E_nernst, i0, alpha/beta, z, diffusion limit, mass-transfer participation,
// and the single evaluation entrypoint used by the galvanic solver and the
// polarization-curve sampler.
type Electrode interface {
	// ENernst is the equilibrium potential vs SHE.
	ENernst() corecorr.Potential
	// I0 is the exchange current density in A/cm^2.
	I0() float64
	// TransferCoefficient is alpha for cathodic reactions, beta for anodic.
	TransferCoefficient() float64
	// Z is the number of electrons transferred in this half-reaction.
	Z() int
	// DiffusionLimit is the mass-transfer-limited current density in A/cm^2,
	// 0 if this reaction has no diffusion limit (most anodic reactions).
	DiffusionLimit() float64
	// SupportsMassTransfer reports whether DiffusionLimit should be combined
	// via Koutecky-Levich (true for ORR) or ignored (anodic reactions).
	SupportsMassTransfer() bool
	// Evaluate returns the current density in A/cm^2 at potential E (V vs
	// SHE) and temperature temp. Positive is anodic, negative is cathodic.
	Evaluate(eVoltsSHE float64, temp corecorr.Temperature) (float64, error)
	// ReactionKind reports which Butler-Volmer form this electrode uses, so
	// a polarization-curve sampler can bucket its current into the anodic or
	// cathodic branch without a type switch.
	ReactionKind() Kind
}

// Clamp enforces the numerical floor on a current density while preserving
// sign, per spec.md §4.4.
func Clamp(i float64) float64 {
	if i >= 0 && i < CurrentFloor {
		return CurrentFloor
	}
	if i < 0 && i > -CurrentFloor {
		return -CurrentFloor
	}
	return i
}
