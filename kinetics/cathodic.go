package kinetics

import (
	"math"

	"corrosionengine/domain/constants"
	"corrosionengine/domain/corecorr"
)

// CathodicReaction models ORR or HER: anodic branch is zero by construction,
// cathodic branch is the Butler-Volmer exponential bounded by a
// Koutecky-Levich diffusion limit.
type CathodicReaction struct {
	Name              string
	ENernstVoltsSHE   float64
	I0APerCm2         float64
	Alpha             float64
	ZElectrons        int
	DiffusionLimitA   float64 // A/cm^2; 0 means unlimited (HER in practice)
	MassTransferOK    bool
}

func (c *CathodicReaction) ENernst() corecorr.Potential {
	return corecorr.NewPotential(c.ENernstVoltsSHE, corecorr.SHE)
}

func (c *CathodicReaction) I0() float64                   { return c.I0APerCm2 }
func (c *CathodicReaction) TransferCoefficient() float64  { return c.Alpha }
func (c *CathodicReaction) Z() int                        { return c.ZElectrons }
func (c *CathodicReaction) DiffusionLimit() float64       { return c.DiffusionLimitA }
func (c *CathodicReaction) SupportsMassTransfer() bool    { return c.MassTransferOK }
func (c *CathodicReaction) ReactionKind() Kind            { return Cathodic }

// Evaluate returns the cathodic current density (negative by convention) at
// the given potential, combining the activation-controlled Butler-Volmer
// term with the diffusion limit via Koutecky-Levich:
//
//	i_act = -i0 * exp(-alpha*z*F*(E-E_N)/(R*T_K))
//	i_tot = i_act * i_lim / (i_act + i_lim)
func (c *CathodicReaction) Evaluate(eVoltsSHE float64, temp corecorr.Temperature) (float64, error) {
	eta := eVoltsSHE - c.ENernstVoltsSHE
	exponent := -c.Alpha * float64(c.ZElectrons) * constants.FaradayConstant * eta / (constants.GasConstant * temp.Kelvin())
	iAct := -c.I0APerCm2 * math.Exp(exponent)

	if c.DiffusionLimitA <= 0 {
		return Clamp(iAct), nil
	}

	iLim := -c.DiffusionLimitA // cathodic diffusion limit is negative current
	// Koutecky-Levich: 1/i_tot = 1/i_act + 1/i_lim, rearranged to
	// i_act*i_lim/(i_act+i_lim). Both terms are negative, so the sum never
	// passes through zero.
	iTot := (iAct * iLim) / (iAct + iLim)
	return Clamp(iTot), nil
}
