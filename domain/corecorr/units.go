package corecorr

import (
	"fmt"

	"corrosionengine/domain/constants"
)

// Temperature carries its own unit so a Celsius value can never be passed
// where Kelvin is required (spec.md Design Notes §9: this was a documented
// repository-wide bug in the response-surface evaluator). Construct with
// FromCelsius or FromKelvin; read back with Celsius() or Kelvin().
type Temperature struct {
	kelvin float64
}

// FromCelsius builds a Temperature from a Celsius value.
func FromCelsius(celsius float64) Temperature {
	return Temperature{kelvin: celsius + constants.CelsiusToKelvinOffset}
}

// FromKelvin builds a Temperature from a Kelvin value.
func FromKelvin(kelvin float64) Temperature {
	return Temperature{kelvin: kelvin}
}

// Celsius returns the temperature in °C.
func (t Temperature) Celsius() float64 { return t.kelvin - constants.CelsiusToKelvinOffset }

// Kelvin returns the temperature in K — the only unit the response-surface
// polynomial and Butler-Volmer exponentials accept.
func (t Temperature) Kelvin() float64 { return t.kelvin }

func (t Temperature) String() string { return fmt.Sprintf("%.2f°C", t.Celsius()) }

// Reference identifies which reference electrode a Potential is expressed
// against. Crossing a reference boundary without recording the conversion was
// a documented bug in the galvanic series handling (Design Notes §9).
type Reference int

const (
	SHE Reference = iota
	SCE
	AgAgClSatKCl
)

func (r Reference) String() string {
	switch r {
	case SHE:
		return "SHE"
	case SCE:
		return "SCE"
	case AgAgClSatKCl:
		return "Ag/AgCl (sat. KCl)"
	default:
		return "unknown reference"
	}
}

// offsetVsSHE returns the electrode's offset in volts vs SHE, i.e.
// E(ref) = E(SHE) - offsetVsSHE, E(SHE) = E(ref) + offsetVsSHE.
func offsetVsSHE(r Reference) float64 {
	switch r {
	case SCE:
		return constants.ESCEvsSHE
	case AgAgClSatKCl:
		return constants.EAgAgClSatKClvsSHE
	default:
		return 0
	}
}

// Potential is a voltage tagged with the reference electrode it is expressed
// against. All internal computation carries SHE; SCE is used at I/O
// boundaries for ASTM G82 compatibility (spec.md §4.1).
type Potential struct {
	volts float64
	ref   Reference
}

// NewPotential builds a Potential in the given reference frame.
func NewPotential(volts float64, ref Reference) Potential {
	return Potential{volts: volts, ref: ref}
}

// Volts returns the raw value in this Potential's own reference frame.
func (p Potential) Volts() float64 { return p.volts }

// Reference returns the reference electrode this Potential is expressed against.
func (p Potential) Reference() Reference { return p.ref }

// SHE converts to volts vs the Standard Hydrogen Electrode.
func (p Potential) SHE() float64 {
	return p.volts + offsetVsSHE(p.ref)
}

// As converts to a Potential expressed against a different reference
// electrode. This is the only place a potential may change reference frame;
// the conversion is a linear addition per spec.md §4.1.
func (p Potential) As(ref Reference) Potential {
	if ref == p.ref {
		return p
	}
	she := p.SHE()
	return Potential{volts: she - offsetVsSHE(ref), ref: ref}
}

func (p Potential) String() string {
	return fmt.Sprintf("%.4f V vs %s", p.volts, p.ref)
}
