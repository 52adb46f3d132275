package kinetics

import (
	"math"

	"corrosionengine/domain/constants"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"

	"gonum.org/v1/gonum/diff/fd"
)

// MaxFilmResistanceIterations bounds the Newton loop used to solve the
// implicit film-resistance relation for passivation reactions (spec.md §4.4).
const MaxFilmResistanceIterations = 20

// AnodicReaction models metal oxidation, passivation, or pitting: cathodic
// branch is zero by construction, anodic branch is Butler-Volmer. When
// FilmResistanceOhmCm2 is nonzero the reaction carries the passivation-layer
// ohmic correction solved by Newton iteration.
type AnodicReaction struct {
	Name                 string
	ENernstVoltsSHE      float64
	I0APerCm2            float64
	Beta                 float64
	ZElectrons           int
	FilmResistanceOhmCm2 float64 // 0 for bare oxidation/pitting
}

func (a *AnodicReaction) ENernst() corecorr.Potential {
	return corecorr.NewPotential(a.ENernstVoltsSHE, corecorr.SHE)
}

func (a *AnodicReaction) I0() float64                  { return a.I0APerCm2 }
func (a *AnodicReaction) TransferCoefficient() float64 { return a.Beta }
func (a *AnodicReaction) Z() int                       { return a.ZElectrons }
func (a *AnodicReaction) DiffusionLimit() float64      { return 0 }
func (a *AnodicReaction) SupportsMassTransfer() bool   { return false }
func (a *AnodicReaction) ReactionKind() Kind           { return Anodic }

func (a *AnodicReaction) bareCurrent(eMetal float64, temp corecorr.Temperature) float64 {
	eta := eMetal - a.ENernstVoltsSHE
	exponent := a.Beta * float64(a.ZElectrons) * constants.FaradayConstant * eta / (constants.GasConstant * temp.Kelvin())
	return a.I0APerCm2 * math.Exp(exponent)
}

// Evaluate returns the anodic current density at applied potential E. For a
// bare oxidation or pitting reaction this is the direct Butler-Volmer
// exponential. For a passivation reaction with nonzero film resistance, E is
// the potential seen at the electrolyte side of the film and E_metal the
// potential at the metal/film interface; they are related by the implicit
// ohmic relation E_metal = E + i*R_film, solved here by a bounded Newton
// iteration on i.
func (a *AnodicReaction) Evaluate(eVoltsSHE float64, temp corecorr.Temperature) (float64, error) {
	if a.FilmResistanceOhmCm2 <= 0 {
		return Clamp(a.bareCurrent(eVoltsSHE, temp)), nil
	}

	residual := func(i float64) float64 {
		eMetal := eVoltsSHE + i*a.FilmResistanceOhmCm2
		return i - a.bareCurrent(eMetal, temp)
	}

	i := a.bareCurrent(eVoltsSHE, temp) // initial guess ignores the film drop
	for iter := 0; iter < MaxFilmResistanceIterations; iter++ {
		f := residual(i)
		if math.Abs(f) < 1e-18 {
			return Clamp(i), nil
		}
		df := fd.Derivative(residual, i, &fd.Settings{Step: math.Max(1e-12, math.Abs(i)*1e-6)})
		if df == 0 || math.IsNaN(df) {
			return 0, errs.NewSolverNonConvergence(a.Name+" film resistance", "Newton iteration diverged")
		}
		next := i - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, errs.NewSolverNonConvergence(a.Name+" film resistance", "Newton iteration diverged")
		}
		i = next
	}

	if math.IsNaN(i) || math.IsInf(i, 0) {
		return 0, errs.NewSolverNonConvergence(a.Name+" film resistance", "Newton iteration diverged")
	}
	return Clamp(i), nil
}
