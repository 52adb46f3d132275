package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"corrosionengine/domain/errs"
	"corrosionengine/internal/corrlog"
)

// Tables is the full set of immutable catalogs loaded from one data
// directory. Nothing in the numerical core ever mutates a Tables value after
// Load returns it.
type Tables struct {
	Materials             map[string]MaterialComposition // keyed by normalized common name
	CPT                   map[string]CPTRow
	Galvanic              map[string]GalvanicRow
	ChlorideThresholds    map[string]ChlorideThresholdRow
	TemperatureCoeffs     map[GradeFamily]TemperatureCoefficientRow
	ORRDiffusionLimits    []ORRDiffusionLimitRow
	ReactionCoefficients  map[string]ReactionCoefficients // keyed by "material|reaction"
	Aliases               AliasTable

	// RawBytes is the concatenation of every source file's bytes in a fixed
	// order, hashed by corecorr.NewHash to verify that loading the same
	// directory twice produces a bytewise-identical catalog (spec.md §8).
	RawBytes []byte
}

const (
	fileMaterials          = "materials_compositions.csv"
	fileCPT                = "astm_g48_cpt_data.csv"
	fileGalvanic            = "astm_g82_galvanic_series.csv"
	fileORRLimits           = "orr_diffusion_limits.csv"
	fileChlorideThresholds  = "iso18070_chloride_thresholds.csv"
	fileTemperatureCoeffs   = "iso18070_temperature_coefficients.csv"
	fileAliases             = "materials_aliases.csv"
)

// Load reads every recognized file (spec.md §6.2) from dataDir and builds an
// immutable Tables. A structural failure (missing required file or column)
// fails the whole load; row-level parse failures are logged and skipped.
func Load(dataDir string) (*Tables, error) {
	return LoadWithLogger(dataDir, corrlog.Default)
}

// LoadWithLogger is Load with an injected logger, used by tests that want to
// assert on skipped-row warnings without hitting the package-level default.
func LoadWithLogger(dataDir string, log *corrlog.Logger) (*Tables, error) {
	t := &Tables{
		Materials:            make(map[string]MaterialComposition),
		CPT:                  make(map[string]CPTRow),
		Galvanic:             make(map[string]GalvanicRow),
		ChlorideThresholds:   make(map[string]ChlorideThresholdRow),
		TemperatureCoeffs:    make(map[GradeFamily]TemperatureCoefficientRow),
		ReactionCoefficients: make(map[string]ReactionCoefficients),
	}

	var rawAll []byte

	readAndHash := func(name string) ([][]string, error) {
		path := filepath.Join(dataDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.NewCatalogLoad(name, err)
		}
		rawAll = append(rawAll, raw...)
		rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
		if err != nil {
			return nil, errs.NewCatalogLoad(name, err)
		}
		if len(rows) < 1 {
			return nil, errs.NewCatalogLoad(name, fmt.Errorf("empty file, expected a header row"))
		}
		return rows[1:], nil // drop header
	}

	if err := loadMaterials(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadCPT(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadGalvanic(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadORRLimits(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadChlorideThresholds(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadTemperatureCoeffs(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadAliases(t, readAndHash, log); err != nil {
		return nil, err
	}
	if err := loadReactionCoefficients(t, dataDir, log); err != nil {
		return nil, err
	}

	t.RawBytes = rawAll
	return t, nil
}

type rowReader func(name string) ([][]string, error)

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func parseFloatField(field, context string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a finite number: %w", context, field, err)
	}
	return v, nil
}

func parseBoolField(field string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(field))
	return v
}

func loadMaterials(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileMaterials)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 11 {
			log.Warn("materials_compositions.csv row %d: expected 11 fields, got %d, skipping", i+2, len(row))
			continue
		}
		cr, err1 := parseFloatField(row[2], "Cr")
		ni, err2 := parseFloatField(row[3], "Ni")
		mo, err3 := parseFloatField(row[4], "Mo")
		n, err4 := parseFloatField(row[5], "N")
		density, err5 := parseFloatField(row[7], "density_kg_m3")
		electrons, err6 := parseFloatField(row[9], "n_electrons")
		if err := firstErr(err1, err2, err3, err4, err5, err6); err != nil {
			log.Warn("materials_compositions.csv row %d: %v, skipping", i+2, err)
			continue
		}
		source := strings.TrimSpace(row[10])
		if source == "" {
			log.Warn("materials_compositions.csv row %d: missing source citation, skipping", i+2)
			continue
		}
		m := MaterialComposition{
			CommonName:              strings.TrimSpace(row[0]),
			UNS:                     strings.TrimSpace(row[1]),
			CrWtPct:                 cr,
			NiWtPct:                 ni,
			MoWtPct:                 mo,
			NWtPct:                  n,
			FeBalance:               parseBoolField(row[6]),
			DensityKgM3:             density,
			GradeType:               GradeFamily(normalizeKey(row[8])),
			ElectronsPerDissolution: electrons,
			Source:                  source,
		}
		t.Materials[normalizeKey(m.CommonName)] = m
	}
	return nil
}

func loadCPT(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileCPT)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 7 {
			log.Warn("astm_g48_cpt_data.csv row %d: malformed, skipping", i+2)
			continue
		}
		cpt, err1 := parseFloatField(row[2], "CPT_C")
		cct, err2 := parseFloatField(row[3], "CCT_C")
		if err := firstErr(err1, err2); err != nil {
			log.Warn("astm_g48_cpt_data.csv row %d: %v, skipping", i+2, err)
			continue
		}
		r := CPTRow{
			Material:     strings.TrimSpace(row[0]),
			UNS:          strings.TrimSpace(row[1]),
			CPTCelsius:   cpt,
			CCTCelsius:   cct,
			TestSolution: strings.TrimSpace(row[4]),
			Source:       strings.TrimSpace(row[5]),
			Notes:        strings.TrimSpace(row[6]),
		}
		if r.Source == "" {
			log.Warn("astm_g48_cpt_data.csv row %d: missing source citation, skipping", i+2)
			continue
		}
		t.CPT[normalizeKey(r.Material)] = r
	}
	return nil
}

func loadGalvanic(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileGalvanic)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 6 {
			log.Warn("astm_g82_galvanic_series.csv row %d: malformed, skipping", i+2)
			continue
		}
		eSCE, err1 := parseFloatField(row[1], "E_SCE_V")
		eSHE, err2 := parseFloatField(row[2], "E_SHE_V")
		if err := firstErr(err1, err2); err != nil {
			log.Warn("astm_g82_galvanic_series.csv row %d: %v, skipping", i+2, err)
			continue
		}
		r := GalvanicRow{
			Material:         strings.TrimSpace(row[0]),
			ESCEVolts:        eSCE,
			ESHEVolts:        eSHE,
			ActivityCategory: strings.TrimSpace(row[3]),
			Source:           strings.TrimSpace(row[4]),
			Notes:            strings.TrimSpace(row[5]),
		}
		if r.Source == "" {
			log.Warn("astm_g82_galvanic_series.csv row %d: missing source citation, skipping", i+2)
			continue
		}
		t.Galvanic[normalizeKey(r.Material)] = r
	}
	return nil
}

func loadORRLimits(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileORRLimits)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 7 {
			log.Warn("orr_diffusion_limits.csv row %d: malformed, skipping", i+2)
			continue
		}
		tempC, err1 := parseFloatField(row[1], "temperature_C")
		iLimM2, err2 := parseFloatField(row[3], "i_lim_A_m2")
		iLimCm2, err3 := parseFloatField(row[4], "i_lim_mA_cm2")
		if err := firstErr(err1, err2, err3); err != nil {
			log.Warn("orr_diffusion_limits.csv row %d: %v, skipping", i+2, err)
			continue
		}
		r := ORRDiffusionLimitRow{
			Condition:          strings.TrimSpace(row[0]),
			TemperatureCelsius: tempC,
			Electrolyte:        strings.TrimSpace(row[2]),
			ILimAPerM2:         iLimM2,
			ILimMAPerCm2:       iLimCm2,
			Source:             strings.TrimSpace(row[5]),
			Notes:              strings.TrimSpace(row[6]),
		}
		if r.Source == "" {
			log.Warn("orr_diffusion_limits.csv row %d: missing source citation, skipping", i+2)
			continue
		}
		t.ORRDiffusionLimits = append(t.ORRDiffusionLimits, r)
	}
	return nil
}

func loadChlorideThresholds(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileChlorideThresholds)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 8 {
			log.Warn("iso18070_chloride_thresholds.csv row %d: malformed, skipping", i+2)
			continue
		}
		threshold, err1 := parseFloatField(row[2], "threshold_25C_mg_L")
		pH, err2 := parseFloatField(row[3], "pH")
		tempC, err3 := parseFloatField(row[4], "temperature_C")
		if err := firstErr(err1, err2, err3); err != nil {
			log.Warn("iso18070_chloride_thresholds.csv row %d: %v, skipping", i+2, err)
			continue
		}
		r := ChlorideThresholdRow{
			Material:           strings.TrimSpace(row[0]),
			UNS:                strings.TrimSpace(row[1]),
			Threshold25CMgL:    threshold,
			PH:                 pH,
			TemperatureCelsius: tempC,
			Source:             strings.TrimSpace(row[5]),
			Notes:              strings.TrimSpace(row[6]),
			ResistanceCategory: strings.TrimSpace(row[7]),
		}
		if r.Source == "" {
			log.Warn("iso18070_chloride_thresholds.csv row %d: missing source citation, skipping", i+2)
			continue
		}
		t.ChlorideThresholds[normalizeKey(r.Material)] = r
	}
	return nil
}

func loadTemperatureCoeffs(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileTemperatureCoeffs)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 5 {
			log.Warn("iso18070_temperature_coefficients.csv row %d: malformed, skipping", i+2)
			continue
		}
		k, err1 := parseFloatField(row[1], "temp_coefficient_per_C")
		if err := firstErr(err1); err != nil {
			log.Warn("iso18070_temperature_coefficients.csv row %d: %v, skipping", i+2, err)
			continue
		}
		r := TemperatureCoefficientRow{
			GradeType:           GradeFamily(normalizeKey(row[0])),
			TempCoefficientPerC: k,
			Source:              strings.TrimSpace(row[2]),
			Notes:               strings.TrimSpace(row[3]),
			Formula:             strings.TrimSpace(row[4]),
		}
		if r.Source == "" {
			log.Warn("iso18070_temperature_coefficients.csv row %d: missing source citation, skipping", i+2)
			continue
		}
		t.TemperatureCoeffs[r.GradeType] = r
	}
	return nil
}

func loadAliases(t *Tables, read rowReader, log *corrlog.Logger) error {
	rows, err := read(fileAliases)
	if err != nil {
		return err
	}
	aliases := make(AliasTable)
	for i, row := range rows {
		if len(row) < 3 {
			log.Warn("materials_aliases.csv row %d: malformed, skipping", i+2)
			continue
		}
		canonical := normalizeKey(row[0])
		alias := normalizeKey(row[1])
		if canonical == "" || alias == "" {
			continue
		}
		aliases[alias] = canonical
	}
	t.Aliases = aliases
	return nil
}

func loadReactionCoefficients(t *Tables, dataDir string, log *corrlog.Logger) error {
	coeffsDir := filepath.Join(dataDir, "coeffs")
	entries, err := os.ReadDir(coeffsDir)
	if err != nil {
		return errs.NewCatalogLoad("coeffs/", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "Coeffs.csv") {
			continue
		}
		material, reaction, ok := parseCoeffsFilename(entry.Name())
		if !ok {
			log.Warn("coeffs/%s: unrecognized filename pattern, skipping", entry.Name())
			continue
		}
		path := filepath.Join(coeffsDir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return errs.NewCatalogLoad(entry.Name(), err)
		}
		rc, err := parseCoeffsFile(f, material, reaction)
		f.Close()
		if err != nil {
			return errs.NewCatalogLoad(entry.Name(), err)
		}
		t.ReactionCoefficients[reactionKey(material, reaction)] = rc
	}
	return nil
}

// parseCoeffsFilename splits "{material}{reaction}Coeffs.csv" into the
// material id and reaction name. Reaction names are capitalized tokens (ORR,
// HER, Oxidation, Passivation, Pitting) per spec.md §6.2's filename example.
func parseCoeffsFilename(name string) (material, reaction string, ok bool) {
	base := strings.TrimSuffix(name, "Coeffs.csv")
	if base == name {
		return "", "", false
	}
	for _, r := range knownReactions {
		if strings.HasSuffix(base, r) {
			return strings.TrimSuffix(base, r), r, true
		}
	}
	return "", "", false
}

var knownReactions = []string{"ORR", "HER", "Oxidation", "Passivation", "Pitting"}

// parseCoeffsFile reads the single data row: p00, p10, p01, p20, p11, p02,
// optionally followed by pH_min, pH_max. If the pH range is absent the
// conservative default [6.0, 9.0] (typical seawater/wastewater band) is used
// and a warning is not needed — the absence is a valid, documented shorthand
// for "no pH dependence beyond the standard interpolation".
func parseCoeffsFile(r io.Reader, material, reaction string) (ReactionCoefficients, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return ReactionCoefficients{}, err
	}
	if len(rows) < 1 || len(rows[0]) < 6 {
		return ReactionCoefficients{}, fmt.Errorf("expected at least 6 coefficient fields")
	}
	row := rows[0]
	vals := make([]float64, 6)
	for i := 0; i < 6; i++ {
		v, err := parseFloatField(row[i], fmt.Sprintf("coefficient %d", i))
		if err != nil {
			return ReactionCoefficients{}, err
		}
		vals[i] = v
	}
	phMin, phMax := 6.0, 9.0
	if len(row) >= 8 {
		if v, err := parseFloatField(row[6], "pH_min"); err == nil {
			phMin = v
		}
		if v, err := parseFloatField(row[7], "pH_max"); err == nil {
			phMax = v
		}
	}
	return ReactionCoefficients{
		Material: material,
		Reaction: reaction,
		P00:      vals[0],
		P10:      vals[1],
		P01:      vals[2],
		P20:      vals[3],
		P11:      vals[4],
		P02:      vals[5],
		PHMin:    phMin,
		PHMax:    phMax,
	}, nil
}

func reactionKey(material, reaction string) string {
	return normalizeKey(material) + "|" + normalizeKey(reaction)
}

// ReactionCoefficientsFor looks up the response-surface coefficients for a
// (material, reaction) pair.
func (t *Tables) ReactionCoefficientsFor(material, reaction string) (ReactionCoefficients, bool) {
	rc, ok := t.ReactionCoefficients[reactionKey(material, reaction)]
	return rc, ok
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
