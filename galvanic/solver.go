// Package galvanic solves the mixed-potential problem for a dissimilar-metal
// couple and converts the result to a corrosion rate and severity tag
// (spec.md §4.7).
package galvanic

import (
	"fmt"
	"math"

	"corrosionengine/domain/constants"
	"corrosionengine/domain/errs"
	"corrosionengine/kinetics"
	"corrosionengine/material"

	"golang.org/x/sync/errgroup"
)

// Severity classifies the current ratio between the galvanic and isolated
// anodic currents.
type Severity string

const (
	Negligible Severity = "negligible"
	Minor      Severity = "minor"
	Moderate   Severity = "moderate"
	Severe     Severity = "severe"
)

// Outcome is the full result of a galvanic-couple evaluation.
type Outcome struct {
	EMixVoltsSHE       float64
	IAnodicAPerCm2     float64 // anodic dissolution current at E_mix on the anode
	INetAtMix          float64 // diagnostic: net(E_mix); should be ~0, kept to show it is not the reported current
	CorrosionRateMMYr  float64
	CurrentRatio       float64
	Severity           Severity
	Warnings           []string
}

// AreaRatio is the cathode/anode area ratio applied to cathodic current
// before summing with anodic current in the net-potential function.
type AreaRatio float64

// Solve evaluates the galvanic couple between anode and cathode materials.
// The anode and cathode electrodes are built concurrently via
// errgroup since they are independent CPU-bound evaluations; the root find
// that follows is inherently sequential.
func Solve(anode, cathode *material.Material, env material.Environment, areaRatio AreaRatio) (Outcome, error) {
	if anode.Composition.CommonName == cathode.Composition.CommonName {
		corr, err := isolatedCorrosionRate(anode, env)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			EMixVoltsSHE:      anode.FreeCorrosionPotentialSHE(),
			CorrosionRateMMYr: corr,
			CurrentRatio:      1.0,
			Severity:          Negligible,
			Warnings:          []string{"anode and cathode are the same material; short-circuited to ratio=1.0"},
		}, nil
	}

	warnings := []string{}
	effectiveEnv := env
	const epsilonDO = 0.01
	if effectiveEnv.DOMgL < epsilonDO {
		effectiveEnv.DOMgL = epsilonDO
		warnings = append(warnings, fmt.Sprintf("DO clamped to %.3g mg/L floor to avoid log(0) in Nernst evaluation", epsilonDO))
	}

	var anodicElectrode, cathodicElectrode kinetics.Electrode
	g := new(errgroup.Group)
	g.Go(func() error {
		e, err := anode.AnodicBranchReaction(effectiveEnv)
		if err != nil {
			return err
		}
		anodicElectrode = e
		return nil
	})
	g.Go(func() error {
		e, err := cathode.BuildElectrode("ORR", effectiveEnv)
		if err != nil {
			return err
		}
		cathodicElectrode = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	ratio := float64(areaRatio)
	if ratio <= 0 {
		ratio = 1.0
	}

	net := func(e float64) (float64, error) {
		iAnodic, err := anodicElectrode.Evaluate(e, effectiveEnv.Temp)
		if err != nil {
			return 0, err
		}
		iCathodic, err := cathodicElectrode.Evaluate(e, effectiveEnv.Temp)
		if err != nil {
			return 0, err
		}
		return iAnodic + iCathodic*ratio, nil
	}

	eCorrAnode := anode.FreeCorrosionPotentialSHE()
	eCorrCathode := cathode.FreeCorrosionPotentialSHE()
	lo := math.Min(eCorrAnode, eCorrCathode) - 0.1
	hi := math.Max(eCorrAnode, eCorrCathode) + 0.1

	eMix, err := bisect(net, lo, hi)
	if err != nil {
		return Outcome{}, err
	}

	iAnodicAtMix, err := anodicElectrode.Evaluate(eMix, effectiveEnv.Temp)
	if err != nil {
		return Outcome{}, err
	}
	netAtMix, err := net(eMix)
	if err != nil {
		return Outcome{}, err
	}

	iIsolatedAnode, err := isolatedAnodicCurrent(anode, effectiveEnv)
	if err != nil {
		return Outcome{}, err
	}

	corrRate := faradayRate(iAnodicAtMix, anode)
	currentRatio := math.Abs(iAnodicAtMix / iIsolatedAnode)

	return Outcome{
		EMixVoltsSHE:      eMix,
		IAnodicAPerCm2:    iAnodicAtMix,
		INetAtMix:         netAtMix,
		CorrosionRateMMYr: corrRate,
		CurrentRatio:      currentRatio,
		Severity:          severityFor(currentRatio),
		Warnings:          warnings,
	}, nil
}

func isolatedAnodicCurrent(m *material.Material, env material.Environment) (float64, error) {
	anodic, err := m.AnodicBranchReaction(env)
	if err != nil {
		return 0, err
	}
	cathodicHER, err := m.BuildElectrode("HER", env)
	if err != nil {
		return 0, err
	}
	net := func(e float64) (float64, error) {
		ia, err := anodic.Evaluate(e, env.Temp)
		if err != nil {
			return 0, err
		}
		ic, err := cathodicHER.Evaluate(e, env.Temp)
		if err != nil {
			return 0, err
		}
		return ia + ic, nil
	}
	eCorr := m.FreeCorrosionPotentialSHE()
	eMix, err := bisect(net, eCorr-0.3, eCorr+0.3)
	if err != nil {
		return 0, err
	}
	return anodic.Evaluate(eMix, env.Temp)
}

func isolatedCorrosionRate(m *material.Material, env material.Environment) (float64, error) {
	i, err := isolatedAnodicCurrent(m, env)
	if err != nil {
		return 0, err
	}
	return faradayRate(i, m), nil
}

// IsolatedCorrosionRate computes the free-corrosion rate of a single
// material against its own HER cathodic branch, with no second electrode
// present. predict_aerated_chloride (spec.md §6.1) uses this to report a
// baseline corrosion rate without a galvanic couple.
func IsolatedCorrosionRate(m *material.Material, env material.Environment) (float64, error) {
	return isolatedCorrosionRate(m, env)
}

// faradayRate converts an anodic current density (A/cm^2) to a corrosion
// rate in mm/yr: CR = i * M_equiv * seconds/yr * 10 / (n*F*rho).
func faradayRate(iAPerCm2 float64, m *material.Material) float64 {
	n := m.ElectronsPerDissolution()
	mAtomic := atomicMassGPerMol(m)
	mEquiv := mAtomic / n
	rhoGPerCm3 := m.Composition.DensityKgM3 / 1000.0
	return iAPerCm2 * mEquiv * constants.SecondsPerYear * 10 / (n * constants.FaradayConstant * rhoGPerCm3)
}

// atomicMassGPerMol approximates the equivalent atomic mass of the
// dissolving species from composition; iron-based alloys use Fe's atomic
// mass, nickel alloys use Ni's, titanium and copper-nickel use their own.
func atomicMassGPerMol(m *material.Material) float64 {
	switch m.Composition.GradeType {
	case "nickel":
		return 58.69
	case "nonferrous":
		if m.Composition.CrWtPct == 0 && m.Composition.NiWtPct == 0 && m.Composition.MoWtPct == 0 {
			return 47.87 // titanium
		}
		return 63.55 // copper-nickel dissolves predominantly as Cu
	default:
		return 55.85 // iron
	}
}

func severityFor(ratio float64) Severity {
	switch {
	case ratio <= 1:
		return Negligible
	case ratio <= 3:
		return Minor
	case ratio <= 10:
		return Moderate
	default:
		return Severe
	}
}

// bisect finds a root of f in [lo, hi], bounded to 100 iterations (spec.md
// §5). Returns errs.ErrSolverNonConvergence if the interval does not bracket
// a sign change.
func bisect(f func(float64) (float64, error), lo, hi float64) (float64, error) {
	fLo, err := f(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := f(hi)
	if err != nil {
		return 0, err
	}
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if fLo*fHi > 0 {
		return 0, errs.NewSolverNonConvergence("mixed-potential bisection", fmt.Sprintf("net(E) does not change sign in [%.4f, %.4f]", lo, hi))
	}
	for iter := 0; iter < 100; iter++ {
		mid := (lo + hi) / 2
		fMid, err := f(mid)
		if err != nil {
			return 0, err
		}
		if fMid == 0 || (hi-lo) < 1e-9 {
			return mid, nil
		}
		if fLo*fMid <= 0 {
			hi, fHi = mid, fMid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, nil
}
