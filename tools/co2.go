package tools

import (
	"corrosionengine/domain/corecorr"
	"corrosionengine/norsok"
	"corrosionengine/provenance"
)

// PredictCO2H2SRequest mirrors norsok.Params field-for-field (spec.md §6.3's
// 18-parameter signature), plus an explicit PHOverride distinct from PHIn
// for callers that want to force the bypass path without remembering the
// "<=0 means compute it" convention.
type PredictCO2H2SRequest struct {
	CO2MoleFraction  float64
	PressureBar      float64
	TempC            float64
	VelocityGasMPerS float64
	VelocityLiqMPerS float64
	MassFlowGasKgS   float64
	MassFlowLiqKgS   float64
	VolFlowGasM3S    float64
	VolFlowLiqM3S    float64
	Holdup           float64
	ViscosityGasPaS  float64
	ViscosityLiqPaS  float64
	RoughnessM       float64
	DiameterM        float64
	PHOverride       *float64
	BicarbonateMgL   float64
	IonicStrengthMgL float64
	CalcIterations   int
}

// PredictCO2H2S invokes the vendored NORSOK M-506 model with its full
// 18-parameter signature (spec.md §6.3).
func (s *Service) PredictCO2H2S(req PredictCO2H2SRequest) (provenance.Envelope[norsok.Result], error) {
	phIn := 0.0
	if req.PHOverride != nil {
		phIn = *req.PHOverride
	}

	params := norsok.Params{
		CO2MoleFraction:  req.CO2MoleFraction,
		PressureBar:      req.PressureBar,
		Temp:             corecorr.FromCelsius(req.TempC),
		VelocityGasMPerS: req.VelocityGasMPerS,
		VelocityLiqMPerS: req.VelocityLiqMPerS,
		MassFlowGasKgS:   req.MassFlowGasKgS,
		MassFlowLiqKgS:   req.MassFlowLiqKgS,
		VolFlowGasM3S:    req.VolFlowGasM3S,
		VolFlowLiqM3S:    req.VolFlowLiqM3S,
		Holdup:           req.Holdup,
		ViscosityGasPaS:  req.ViscosityGasPaS,
		ViscosityLiqPaS:  req.ViscosityLiqPaS,
		RoughnessM:       req.RoughnessM,
		DiameterM:        req.DiameterM,
		PHIn:             phIn,
		BicarbonateMgL:   req.BicarbonateMgL,
		IonicStrengthMgL: req.IonicStrengthMgL,
		CalcIterations:   req.CalcIterations,
	}

	result, err := norsok.Predict(params)
	if err != nil {
		return provenance.Envelope[norsok.Result]{}, err
	}

	confidence := provenance.ConfidenceHigh
	if result.PHClamped {
		confidence = provenance.ConfidenceModerate
	}

	return provenance.New(result, "norsok-m506", confidence,
		[]string{"NORSOK M-506 (2005 rev. 2)"},
		[]string{"Fanning friction factor wall-shear estimate; simplified carbonate-equilibrium upstream pH solver when pH_in is not supplied"},
		result.Warnings), nil
}
