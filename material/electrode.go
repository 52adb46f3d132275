package material

import (
	"math"

	"corrosionengine/domain/chemistry"
	"corrosionengine/domain/constants"
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"
	"corrosionengine/kinetics"
	"corrosionengine/masstransfer"
	"corrosionengine/responsesurface"
)

// Environment is the operating point an electrode is built against: the
// scalar inputs every tool operation accepts, gathered in one place so
// BuildElectrode has a single argument instead of five.
type Environment struct {
	Temp        corecorr.Temperature
	PH          float64
	ClMolar     float64
	DOMgL       float64
	SalinityPSU float64
	Flow        *masstransfer.FlowParams // optional; nil means use the tabulated ORR limit
}

// filmResistanceOhmCm2 is the passivation-layer ohmic resistance used for
// the Newton correction (spec.md §4.4). It is a fixed engineering value
// representative of a thin passive oxide film rather than a per-material
// tabulated quantity, since no catalog schema in §6.2 carries one.
const filmResistanceOhmCm2 = 50.0

// pittingThresholdAPerCm2 is the current density above the passivation
// baseline that defines E_pit (spec.md §4.8 default: 1 µA/cm²).
const pittingThresholdAPerCm2 = 1e-6

// BuildElectrode constructs the kinetics.Electrode for one named reaction on
// this material at the given environment. This is the only place a material
// record and an environment are combined into a Butler-Volmer electrode.
func (m *Material) BuildElectrode(reaction string, env Environment) (kinetics.Electrode, error) {
	coeffs, ok := m.ReactionCoefficients(reaction)
	if !ok {
		return nil, errs.NewInputValidation("reaction", m.Composition.CommonName+" has no "+reaction+" coefficients")
	}

	res, err := responsesurface.Evaluate(coeffs, env.ClMolar, env.Temp, env.PH)
	if err != nil {
		return nil, err
	}

	lambda, ok := kinetics.ReactionPrefactor[reaction]
	if !ok {
		lambda = 1e-10
	}
	z := int(m.ElectronsPerDissolution())
	i0 := kinetics.ExchangeCurrentDensity(res.DeltaGJPerMol, z, lambda, env.Temp)

	switch reaction {
	case "ORR":
		eN, err := chemistry.DOToEh(env.DOMgL, env.PH, env.Temp, env.SalinityPSU)
		if err != nil {
			return nil, err
		}
		iLim, err := m.orrDiffusionLimit(env)
		if err != nil {
			return nil, err
		}
		return &kinetics.CathodicReaction{
			Name:            m.Composition.CommonName + "/ORR",
			ENernstVoltsSHE: eN.SHE(),
			I0APerCm2:       i0,
			Alpha:           0.5,
			ZElectrons:      4,
			DiffusionLimitA: iLim,
			MassTransferOK:  true,
		}, nil

	case "HER":
		slope := constants.GasConstant * env.Temp.Kelvin() / constants.FaradayConstant * math.Ln10
		eN := -slope * env.PH
		return &kinetics.CathodicReaction{
			Name:            m.Composition.CommonName + "/HER",
			ENernstVoltsSHE: eN,
			I0APerCm2:       i0,
			Alpha:           0.5,
			ZElectrons:      2,
			DiffusionLimitA: 0,
			MassTransferOK:  false,
		}, nil

	case "Oxidation", "Pitting":
		eN := m.FreeCorrosionPotentialSHE()
		return &kinetics.AnodicReaction{
			Name:            m.Composition.CommonName + "/" + reaction,
			ENernstVoltsSHE: eN,
			I0APerCm2:       i0,
			Beta:            0.5,
			ZElectrons:      z,
		}, nil

	case "Passivation":
		eN := m.FreeCorrosionPotentialSHE()
		return &kinetics.AnodicReaction{
			Name:                 m.Composition.CommonName + "/Passivation",
			ENernstVoltsSHE:      eN,
			I0APerCm2:            i0,
			Beta:                 0.3,
			ZElectrons:           z,
			FilmResistanceOhmCm2: filmResistanceOhmCm2,
		}, nil

	default:
		return nil, errs.NewInputValidation("reaction", "unrecognized reaction "+reaction)
	}
}

// FreeCorrosionPotentialSHE returns the tabulated galvanic-series potential,
// or a composition-based fallback (more Cr/Ni/Mo pushes it more noble) when
// no ASTM G82 row exists for this material.
func (m *Material) FreeCorrosionPotentialSHE() float64 {
	if m.Galvanic != nil {
		return m.Galvanic.ESHEVolts
	}
	c := m.Composition
	return -0.4 + 0.01*c.CrWtPct + 0.005*c.NiWtPct + 0.02*c.MoWtPct
}

// orrDiffusionLimit picks the diffusion-limited ORR current density: from
// explicit flow geometry if supplied, otherwise from the nearest tabulated
// condition scaled to the requested DO by the saturation ratio (spec.md
// §4.6 — never a "% per °C" heuristic).
func (m *Material) orrDiffusionLimit(env Environment) (float64, error) {
	if env.Flow != nil {
		result, err := masstransfer.LimitingCurrent(*env.Flow, masstransfer.SolutionProperties{
			DiffusivityM2PerS:  chemistry.O2DiffusivityM2PerS(env.Temp.Celsius(), env.SalinityPSU),
			ConcentrationMolM3: env.DOMgL / 32.0, // mg/L -> mol/m^3 (O2 molar mass 32 g/mol)
			ZElectrons:         4,
		})
		if err != nil {
			return 0, err
		}
		return result.ILimAPerM2 / 1e4, nil // A/m^2 -> A/cm^2
	}

	rows := m.catalog.Tables.ORRDiffusionLimits
	if len(rows) == 0 {
		return 0, nil
	}
	best := rows[0]
	bestDelta := math.Abs(rows[0].TemperatureCelsius - env.Temp.Celsius())
	for _, r := range rows[1:] {
		d := math.Abs(r.TemperatureCelsius - env.Temp.Celsius())
		if d < bestDelta {
			best, bestDelta = r, d
		}
	}
	refDO := chemistry.O2SolubilityMgL(best.TemperatureCelsius, env.SalinityPSU)
	scaledAPerM2 := masstransfer.ScaleByDOSaturation(best.ILimAPerM2, refDO, env.DOMgL)
	return scaledAPerM2 / 1e4, nil
}

// AnodicBranchReaction picks Passivation for a material that carries
// passivation coefficients, falling back to bare Oxidation — the
// mechanistically richer form is preferred whenever both are available.
func (m *Material) AnodicBranchReaction(env Environment) (kinetics.Electrode, error) {
	if m.SupportsReaction("Passivation") {
		return m.BuildElectrode("Passivation", env)
	}
	return m.BuildElectrode("Oxidation", env)
}

// FreeStandingEMix solves this material's own corrosion potential in the
// given environment (its anodic branch against its own HER cathodic
// branch), used by Tier 2 pitting assessment as the mechanistic E_mix
// (spec.md §4.8).
func (m *Material) FreeStandingEMix(env Environment) (corecorr.Potential, error) {
	anodic, err := m.AnodicBranchReaction(env)
	if err != nil {
		return corecorr.Potential{}, err
	}
	cathodicHER, err := m.BuildElectrode("HER", env)
	if err != nil {
		return corecorr.Potential{}, err
	}
	eCorr := m.FreeCorrosionPotentialSHE()
	lo, hi := eCorr-0.3, eCorr+0.3

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

	fLo, err := net(lo)
	if err != nil {
		return corecorr.Potential{}, err
	}
	fHi, err := net(hi)
	if err != nil {
		return corecorr.Potential{}, err
	}
	if fLo*fHi > 0 {
		return corecorr.Potential{}, errs.NewSolverNonConvergence("free-standing E_mix bisection", "net(E) does not change sign")
	}
	for iter := 0; iter < 100; iter++ {
		mid := (lo + hi) / 2
		fMid, err := net(mid)
		if err != nil {
			return corecorr.Potential{}, err
		}
		if fMid == 0 || (hi-lo) < 1e-9 {
			return corecorr.NewPotential(mid, corecorr.SHE), nil
		}
		if fLo*fMid <= 0 {
			hi, fHi = mid, fMid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return corecorr.NewPotential((lo+hi)/2, corecorr.SHE), nil
}

// EPit solves for the potential at which the pitting Butler-Volmer branch
// reaches pittingThresholdAPerCm2 above the passivation baseline, by
// bisection over [E_corr, E_corr+1.0V] (spec.md §4.8 Tier 2).
func (m *Material) EPit(env Environment) (corecorr.Potential, error) {
	pitting, err := m.BuildElectrode("Pitting", env)
	if err != nil {
		return corecorr.Potential{}, err
	}
	passivation, err := m.BuildElectrode("Passivation", env)
	if err != nil {
		return corecorr.Potential{}, err
	}
	eCorr := m.FreeCorrosionPotentialSHE()
	lo, hi := eCorr, eCorr+1.0

	f := func(e float64) (float64, error) {
		i, err := pitting.Evaluate(e, env.Temp)
		if err != nil {
			return 0, err
		}
		iPass, err := passivation.Evaluate(e, env.Temp)
		if err != nil {
			return 0, err
		}
		return i - iPass - pittingThresholdAPerCm2, nil
	}

	fLo, err := f(lo)
	if err != nil {
		return corecorr.Potential{}, err
	}
	fHi, err := f(hi)
	if err != nil {
		return corecorr.Potential{}, err
	}
	if fLo*fHi > 0 {
		return corecorr.Potential{}, errs.NewSolverNonConvergence("E_pit bisection", "threshold not bracketed in [E_corr, E_corr+1.0V]")
	}

	for iter := 0; iter < 100; iter++ {
		mid := (lo + hi) / 2
		fMid, err := f(mid)
		if err != nil {
			return corecorr.Potential{}, err
		}
		if math.Abs(fMid) < 1e-12 || (hi-lo) < 1e-9 {
			return corecorr.NewPotential(mid, corecorr.SHE), nil
		}
		if fLo*fMid <= 0 {
			hi, fHi = mid, fMid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return corecorr.NewPotential((lo+hi)/2, corecorr.SHE), nil
}
