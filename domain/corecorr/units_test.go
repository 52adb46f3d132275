package corecorr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureRoundTrip(t *testing.T) {
	temp := FromCelsius(25.0)
	assert.InDelta(t, 298.15, temp.Kelvin(), 1e-9)
	assert.InDelta(t, 25.0, temp.Celsius(), 1e-9)

	fromK := FromKelvin(298.15)
	assert.InDelta(t, 25.0, fromK.Celsius(), 1e-9)
}

func TestPotentialReferenceRoundTrip(t *testing.T) {
	// spec.md §8 property 7: SHE -> SCE -> SHE is identity within 1 µV.
	original := NewPotential(-0.450, SHE)
	roundTripped := original.As(SCE).As(SHE)
	assert.InDelta(t, original.Volts(), roundTripped.Volts(), 1e-6)
}

func TestPotentialSHEConversion(t *testing.T) {
	// A potential of 0 V vs SCE is +0.241 V vs SHE.
	p := NewPotential(0, SCE)
	assert.InDelta(t, 0.241, p.SHE(), 1e-9)
}

func TestPotentialAgAgClConversion(t *testing.T) {
	p := NewPotential(0, AgAgClSatKCl)
	assert.InDelta(t, 0.197, p.SHE(), 1e-9)

	back := p.As(AgAgClSatKCl)
	assert.InDelta(t, 0, back.Volts(), 1e-9)
}
