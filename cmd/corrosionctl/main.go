// Command corrosionctl exposes the same nine operations tools.Service
// implements as cobra subcommands, for offline/scripted use against a local
// data directory without standing up the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"corrosionengine/catalog"
	"corrosionengine/internal/config"
	"corrosionengine/tools"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:   "corrosionctl",
		Short: "Corrosion-rate prediction engine command-line interface",
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "catalog data directory (defaults to CORROSION_DATA_DIR or ./data)")

	loadService := func() (*tools.Service, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dir := dataDir
		if dir == "" {
			dir = cfg.Data.DataDir
		}
		cat, err := catalog.LoadCatalog(dir)
		if err != nil {
			return nil, err
		}
		return tools.NewService(cat), nil
	}

	root.AddCommand(
		newAssessGalvanicCmd(loadService),
		newAssessLocalizedCmd(loadService),
		newCalculatePRENCmd(loadService),
		newGeneratePourbaixCmd(loadService),
		newPredictCO2H2SCmd(loadService),
		newPredictAeratedChlorideCmd(loadService),
		newMaterialPropertiesCmd(loadService),
		newRedoxCmd(loadService),
		newScreenMaterialsCmd(loadService),
	)
	return root
}

// printJSON writes v as indented JSON to stdout, the uniform output format
// every corrosionctl subcommand uses so results can be piped to jq.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type serviceLoader func() (*tools.Service, error)

func newAssessGalvanicCmd(load serviceLoader) *cobra.Command {
	var req tools.AssessGalvanicRequest
	var velocity, diameter, length float64
	var hasVelocity bool

	cmd := &cobra.Command{
		Use:   "assess-galvanic",
		Short: "Solve the mixed-potential galvanic couple between two materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			if hasVelocity {
				req.VelocityMPerS = &velocity
				req.PipeDiameterM = &diameter
				req.PipeLengthM = &length
			}
			env, err := svc.AssessGalvanic(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&req.Anode, "anode", "", "anode material id or alias")
	cmd.Flags().StringVar(&req.Cathode, "cathode", "", "cathode material id or alias")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 25, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.PH, "ph", 8.1, "pH")
	cmd.Flags().Float64Var(&req.ClMgL, "cl-mgl", 19000, "chloride concentration, mg/L")
	cmd.Flags().Float64Var(&req.AreaRatio, "area-ratio", 1.0, "cathode/anode area ratio")
	cmd.Flags().BoolVar(&hasVelocity, "with-flow", false, "apply flow-derived mass transfer")
	cmd.Flags().Float64Var(&velocity, "velocity-mps", 1.0, "flow velocity, m/s (with --with-flow)")
	cmd.Flags().Float64Var(&diameter, "diameter-m", 0.1, "pipe diameter, m (with --with-flow)")
	cmd.Flags().Float64Var(&length, "length-m", 0, "pipe length, m (with --with-flow; defaults to diameter)")
	_ = cmd.MarkFlagRequired("anode")
	_ = cmd.MarkFlagRequired("cathode")
	return cmd
}

func newAssessLocalizedCmd(load serviceLoader) *cobra.Command {
	var req tools.AssessLocalizedRequest
	var doMgL float64
	var hasDO bool

	cmd := &cobra.Command{
		Use:   "assess-localized",
		Short: "Run the dual-tier pitting assessment for a single material",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			if hasDO {
				req.DOMgL = &doMgL
			}
			env, err := svc.AssessLocalized(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&req.Material, "material", "", "material id or alias")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 25, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.ClMgL, "cl-mgl", 19000, "chloride concentration, mg/L")
	cmd.Flags().Float64Var(&req.PH, "ph", 8.1, "pH")
	cmd.Flags().Float64Var(&doMgL, "do-mgl", 8.0, "dissolved oxygen, mg/L")
	cmd.Flags().BoolVar(&hasDO, "with-do", true, "supply dissolved oxygen for Tier 2")
	_ = cmd.MarkFlagRequired("material")
	return cmd
}

func newCalculatePRENCmd(load serviceLoader) *cobra.Command {
	var materialID string
	var cr, mo, n float64
	var useComposition bool

	cmd := &cobra.Command{
		Use:   "calculate-pren",
		Short: "Calculate PREN from a catalog material or a composition",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			req := tools.CalculatePRENRequest{MaterialID: materialID}
			if useComposition {
				req.Composition = &tools.Composition{CrWtPct: cr, MoWtPct: mo, NWtPct: n}
			}
			env, err := svc.CalculatePREN(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&materialID, "material", "", "material id or alias")
	cmd.Flags().BoolVar(&useComposition, "from-composition", false, "compute from --cr/--mo/--n instead of a catalog material")
	cmd.Flags().Float64Var(&cr, "cr", 0, "chromium wt%")
	cmd.Flags().Float64Var(&mo, "mo", 0, "molybdenum wt%")
	cmd.Flags().Float64Var(&n, "n", 0, "nitrogen wt%")
	return cmd
}

func newGeneratePourbaixCmd(load serviceLoader) *cobra.Command {
	var req tools.GeneratePourbaixRequest
	var pointPH, pointE float64
	var classify bool

	cmd := &cobra.Command{
		Use:   "generate-pourbaix",
		Short: "Generate a simplified Eh-pH diagram for one element",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			if classify {
				req.Point = &tools.PourbaixPoint{PH: pointPH, EVolts: pointE}
			}
			env, err := svc.GeneratePourbaix(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&req.Element, "element", "Fe", "element: Fe, Cr, Ni, Cu, Ti, Al")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 25, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.SolubleConcMolar, "soluble-conc-molar", 1e-6, "soluble species activity, molar")
	cmd.Flags().Float64Var(&req.PHMin, "ph-min", 0, "grid pH lower bound")
	cmd.Flags().Float64Var(&req.PHMax, "ph-max", 14, "grid pH upper bound")
	cmd.Flags().IntVar(&req.GridDensity, "grid-density", 50, "number of pH grid points")
	cmd.Flags().BoolVar(&classify, "classify-point", false, "classify a single (pH, E) operating point")
	cmd.Flags().Float64Var(&pointPH, "point-ph", 7, "operating point pH (with --classify-point)")
	cmd.Flags().Float64Var(&pointE, "point-e-volts", -0.3, "operating point E vs SHE, volts (with --classify-point)")
	return cmd
}

func newPredictCO2H2SCmd(load serviceLoader) *cobra.Command {
	var req tools.PredictCO2H2SRequest
	var phOverride float64
	var hasPHOverride bool

	cmd := &cobra.Command{
		Use:   "predict-co2-h2s",
		Short: "Run the NORSOK M-506 CO2/H2S corrosion rate model",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			if hasPHOverride {
				req.PHOverride = &phOverride
			}
			env, err := svc.PredictCO2H2S(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().Float64Var(&req.CO2MoleFraction, "co2-mole-fraction", 0.02, "CO2 mole fraction")
	cmd.Flags().Float64Var(&req.PressureBar, "pressure-bar", 50, "total pressure, bar")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 60, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.VelocityGasMPerS, "velocity-gas-mps", 5, "gas superficial velocity, m/s")
	cmd.Flags().Float64Var(&req.VelocityLiqMPerS, "velocity-liq-mps", 1, "liquid superficial velocity, m/s")
	cmd.Flags().Float64Var(&req.MassFlowGasKgS, "mass-flow-gas-kgs", 2, "gas mass flow, kg/s")
	cmd.Flags().Float64Var(&req.MassFlowLiqKgS, "mass-flow-liq-kgs", 5, "liquid mass flow, kg/s")
	cmd.Flags().Float64Var(&req.VolFlowGasM3S, "vol-flow-gas-m3s", 0.5, "gas volumetric flow, m3/s")
	cmd.Flags().Float64Var(&req.VolFlowLiqM3S, "vol-flow-liq-m3s", 0.01, "liquid volumetric flow, m3/s")
	cmd.Flags().Float64Var(&req.Holdup, "holdup", 0.3, "liquid holdup fraction")
	cmd.Flags().Float64Var(&req.ViscosityGasPaS, "viscosity-gas-pas", 1.5e-5, "gas viscosity, Pa.s")
	cmd.Flags().Float64Var(&req.ViscosityLiqPaS, "viscosity-liq-pas", 1e-3, "liquid viscosity, Pa.s")
	cmd.Flags().Float64Var(&req.RoughnessM, "roughness-m", 5e-5, "pipe roughness, m")
	cmd.Flags().Float64Var(&req.DiameterM, "diameter-m", 0.2, "pipe diameter, m")
	cmd.Flags().BoolVar(&hasPHOverride, "with-ph", false, "supply a measured upstream pH instead of computing one")
	cmd.Flags().Float64Var(&phOverride, "ph", 6.0, "measured upstream pH (with --with-ph)")
	cmd.Flags().Float64Var(&req.BicarbonateMgL, "bicarbonate-mgl", 150, "bicarbonate concentration, mg/L")
	cmd.Flags().Float64Var(&req.IonicStrengthMgL, "ionic-strength-mgl", 5000, "ionic strength proxy, mg/L")
	cmd.Flags().IntVar(&req.CalcIterations, "calc-iterations", 15, "pH solver iteration count")
	return cmd
}

func newPredictAeratedChlorideCmd(load serviceLoader) *cobra.Command {
	var req tools.PredictAeratedChlorideRequest
	var doMgL, velocity, diameter, length float64
	var hasDO, hasFlow bool

	cmd := &cobra.Command{
		Use:   "predict-aerated-chloride",
		Short: "Predict the isolated free-corrosion rate in aerated chloride service",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			if hasDO {
				req.DOMgL = &doMgL
			}
			if hasFlow {
				req.VelocityMPerS = &velocity
				req.DiameterM = &diameter
				req.LengthM = &length
			}
			env, err := svc.PredictAeratedChloride(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&req.MaterialID, "material", "", "material id (defaults to the HY80 baseline)")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 25, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.ClMgL, "cl-mgl", 19000, "chloride concentration, mg/L")
	cmd.Flags().Float64Var(&req.PH, "ph", 8.1, "pH")
	cmd.Flags().BoolVar(&hasDO, "with-do", true, "supply dissolved oxygen")
	cmd.Flags().Float64Var(&doMgL, "do-mgl", 8.0, "dissolved oxygen, mg/L")
	cmd.Flags().BoolVar(&hasFlow, "with-flow", false, "apply flow-derived mass transfer")
	cmd.Flags().Float64Var(&velocity, "velocity-mps", 1.0, "flow velocity, m/s (with --with-flow)")
	cmd.Flags().Float64Var(&diameter, "diameter-m", 0.1, "pipe diameter, m (with --with-flow)")
	cmd.Flags().Float64Var(&length, "length-m", 0, "pipe length, m (with --with-flow; defaults to diameter)")
	return cmd
}

func newMaterialPropertiesCmd(load serviceLoader) *cobra.Command {
	var materialID string
	cmd := &cobra.Command{
		Use:   "material-properties",
		Short: "Print the full catalog record for one material",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			env, err := svc.GetMaterialProperties(materialID)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&materialID, "material", "", "material id or alias")
	_ = cmd.MarkFlagRequired("material")
	return cmd
}

// newRedoxCmd groups the four redox conversions (DO to Eh, Eh to DO, and the
// two reference-electrode ORP/Eh conversions) under one subcommand family.
func newRedoxCmd(load serviceLoader) *cobra.Command {
	root := &cobra.Command{
		Use:   "redox",
		Short: "Reference-electrode and dissolved-oxygen/Eh conversions",
	}
	root.AddCommand(newDOToEhCmd(load), newEhToDOCmd(load), newORPToEhCmd(load), newEhToORPCmd(load))
	return root
}

func newDOToEhCmd(load serviceLoader) *cobra.Command {
	var req tools.DOToEhRequest
	cmd := &cobra.Command{
		Use:   "do-to-eh",
		Short: "Convert dissolved oxygen to Eh via the Nernst equation",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			env, err := svc.DOToEh(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().Float64Var(&req.DOMgL, "do-mgl", 8.0, "dissolved oxygen, mg/L")
	cmd.Flags().Float64Var(&req.PH, "ph", 8.1, "pH")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 25, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.SalinityPSU, "salinity-psu", 35, "salinity, PSU")
	cmd.Flags().StringVar(&req.Reference, "reference", "SHE", "reference electrode: SHE, SCE, AgAgCl")
	return cmd
}

func newEhToDOCmd(load serviceLoader) *cobra.Command {
	var req tools.EhToDORequest
	cmd := &cobra.Command{
		Use:   "eh-to-do",
		Short: "Convert Eh to dissolved oxygen via the Nernst equation",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			env, err := svc.EhToDO(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().Float64Var(&req.EhVolts, "eh-volts", 0.2, "Eh, volts")
	cmd.Flags().StringVar(&req.Reference, "reference", "SHE", "reference electrode of the input Eh")
	cmd.Flags().Float64Var(&req.PH, "ph", 8.1, "pH")
	cmd.Flags().Float64Var(&req.TempC, "temp-c", 25, "temperature, Celsius")
	cmd.Flags().Float64Var(&req.SalinityPSU, "salinity-psu", 35, "salinity, PSU")
	return cmd
}

func newORPToEhCmd(load serviceLoader) *cobra.Command {
	var req tools.ORPToEhRequest
	cmd := &cobra.Command{
		Use:   "orp-to-eh",
		Short: "Convert a raw ORP reading to Eh vs SHE",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			env, err := svc.ORPToEh(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().Float64Var(&req.ORPVolts, "orp-volts", 0.2, "raw ORP reading, volts")
	cmd.Flags().StringVar(&req.Reference, "reference", "AgAgCl", "reference electrode the reading is against")
	return cmd
}

func newEhToORPCmd(load serviceLoader) *cobra.Command {
	var req tools.EhToORPRequest
	cmd := &cobra.Command{
		Use:   "eh-to-orp",
		Short: "Convert Eh vs SHE to a raw ORP reading against a target reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			env, err := svc.EhToORP(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().Float64Var(&req.EhVolts, "eh-volts", 0.2, "Eh vs SHE, volts")
	cmd.Flags().StringVar(&req.Reference, "reference", "AgAgCl", "target reference electrode")
	return cmd
}

func newScreenMaterialsCmd(load serviceLoader) *cobra.Command {
	var req tools.ScreenMaterialsRequest
	cmd := &cobra.Command{
		Use:   "screen-materials",
		Short: "Run a coarse Tier-1 compatibility screen across candidate materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			env, err := svc.ScreenMaterials(req)
			if err != nil {
				return err
			}
			return printJSON(env)
		},
	}
	cmd.Flags().StringVar(&req.Environment, "environment", "seawater", "environment preset: seawater, brackish, wastewater, freshwater, co2_service, h2s_service")
	cmd.Flags().StringSliceVar(&req.Candidates, "candidates", nil, "comma-separated candidate material ids")
	cmd.Flags().StringVar(&req.Application, "application", "", "free-text application description for the notes field")
	_ = cmd.MarkFlagRequired("candidates")
	return cmd
}
