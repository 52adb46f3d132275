// Package pitting implements the two-tier localized-corrosion assessment:
// Tier 1 from composition and tabulated thresholds (always available), Tier
// 2 mechanistic E_pit vs E_mix (when DO and NRL coefficients are both
// available) (spec.md §4.8).
package pitting

import (
	"fmt"
	"math"

	"corrosionengine/domain/errs"
	"corrosionengine/material"
)

// Risk is the four-level susceptibility classification shared by both tiers.
type Risk string

const (
	Low      Risk = "low"
	Moderate Risk = "moderate"
	High     Risk = "high"
	Critical Risk = "critical"
)

// Tier1 is always computed from composition and tabulated data.
type Tier1 struct {
	PREN               float64
	CPTCelsius         float64
	CPTIsEstimated     bool
	ChlorideThresholdMgL float64
	Risk               Risk
}

// Tier2 is computed only when DO is supplied and the material carries NRL
// response-surface coefficients. Available is false (with Reason set) when
// the mechanistic solve could not be performed.
type Tier2 struct {
	Available    bool
	Reason       string
	EPitVoltsSHE float64
	EMixVoltsSHE float64
	DeltaEVolts  float64
	Risk         Risk
}

// Disagreement is reported when Tier 1 and Tier 2 classifications differ by
// more than one risk step.
type Disagreement struct {
	Detected       bool
	Tier1         Risk
	Tier2         Risk
	Recommendation string
}

// Outcome is the full two-tier pitting assessment.
type Outcome struct {
	Tier1        Tier1
	Tier2        Tier2
	Disagreement Disagreement
	OverallRisk  Risk
}

var riskOrder = map[Risk]int{Low: 0, Moderate: 1, High: 2, Critical: 3}

// Assess runs Tier 1 unconditionally and Tier 2 when env.DOMgL > 0 and the
// material supports the Pitting reaction.
func Assess(m *material.Material, env material.Environment, tempC, pH float64, chlorideMgL float64) (Outcome, error) {
	tier1, err := assessTier1(m, tempC, chlorideMgL)
	if err != nil {
		return Outcome{}, err
	}

	tier2 := assessTier2(m, env)

	out := Outcome{Tier1: tier1, Tier2: tier2, OverallRisk: tier1.Risk}

	if tier2.Available {
		if worseThan(tier2.Risk, out.OverallRisk) {
			out.OverallRisk = tier2.Risk
		}
		if absRiskStepDiff(tier1.Risk, tier2.Risk) > 1 {
			out.Disagreement = Disagreement{
				Detected:       true,
				Tier1:          tier1.Risk,
				Tier2:          tier2.Risk,
				Recommendation: "Tier 2 is mechanistic; prefer it when available",
			}
		}
	}
	return out, nil
}

func assessTier1(m *material.Material, tempC, chlorideMgL float64) (Tier1, error) {
	pren := m.PREN()

	cptC := 0.0
	estimated := false
	if m.CPT != nil {
		cptC = m.CPT.CPTCelsius
	} else {
		// PREN-based fallback estimate per spec.md §4.8; flagged as degraded.
		cptC = 2.5*pren - 30
		estimated = true
	}

	threshold := chlorideThresholdAt(m, tempC)

	tMargin := cptC - tempC
	clRatio := 0.0
	if threshold > 0 {
		clRatio = chlorideMgL / threshold
	}

	risk := Low
	switch {
	case tMargin <= 0 || clRatio >= 1.5:
		risk = Critical
	case tMargin <= 10 || clRatio >= 1.0:
		risk = High
	case tMargin <= 25 || clRatio >= 0.5:
		risk = Moderate
	}

	return Tier1{
		PREN:                 pren,
		CPTCelsius:           cptC,
		CPTIsEstimated:       estimated,
		ChlorideThresholdMgL: threshold,
		Risk:                 risk,
	}, nil
}

func chlorideThresholdAt(m *material.Material, tempC float64) float64 {
	if m.Chloride == nil {
		return 0
	}
	k := 0.01
	if m.TempCoeff != nil {
		k = m.TempCoeff.TempCoefficientPerC
	}
	return m.Chloride.Threshold25CMgL * math.Exp(-k*(tempC-25))
}

func assessTier2(m *material.Material, env material.Environment) Tier2 {
	if env.DOMgL <= 0 {
		return Tier2{Available: false, Reason: "dissolved oxygen not supplied"}
	}
	if !m.SupportsReaction("Pitting") {
		return Tier2{Available: false, Reason: fmt.Sprintf("%s has no NRL pitting response-surface coefficients", m.Composition.CommonName)}
	}

	ePit, err := m.EPit(env)
	if err != nil {
		return Tier2{Available: false, Reason: explain(err)}
	}

	eMix, err := m.FreeStandingEMix(env)
	if err != nil {
		return Tier2{Available: false, Reason: explain(err)}
	}

	delta := eMix.SHE() - ePit.SHE()
	return Tier2{
		Available:    true,
		EPitVoltsSHE: ePit.SHE(),
		EMixVoltsSHE: eMix.SHE(),
		DeltaEVolts:  delta,
		Risk:         riskFromDeltaE(delta),
	}
}

func explain(err error) string {
	switch {
	case errs.IsOutOfValidatedRegion(err):
		return "response-surface coefficients out of validated region: " + err.Error()
	case errs.IsSolverNonConvergence(err):
		return "Butler-Volmer solve did not converge: " + err.Error()
	default:
		return err.Error()
	}
}

// riskFromDeltaE maps E_mix - E_pit to a risk step: the more positive the
// margin (E_mix already above the pitting threshold), the worse the risk.
func riskFromDeltaE(delta float64) Risk {
	switch {
	case delta >= 0:
		return Critical
	case delta >= -0.05:
		return High
	case delta >= -0.15:
		return Moderate
	default:
		return Low
	}
}

func worseThan(a, b Risk) bool { return riskOrder[a] > riskOrder[b] }

func absRiskStepDiff(a, b Risk) int {
	d := riskOrder[a] - riskOrder[b]
	if d < 0 {
		return -d
	}
	return d
}
