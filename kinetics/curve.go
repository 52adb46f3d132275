package kinetics

import (
	"corrosionengine/domain/corecorr"

	"gonum.org/v1/gonum/floats"
	"github.com/montanaflynn/stats"
)

// DefaultGridPoints is the default polarization-curve sample count (spec.md
// §3.2: 501 points spanning [E_corr-0.5V, E_corr+0.5V]).
const DefaultGridPoints = 501

// MaxGridPoints bounds the grid to cap memory per call (spec.md §5).
const MaxGridPoints = 5001

// Point is one sample of a polarization curve.
type Point struct {
	EVoltsSHE float64
	IAnodic   float64
	ICathodic float64
	INet      float64
}

// Curve is an ordered polarization curve plus lightweight descriptive
// statistics over the net current, used for diagnostics and provenance.
type Curve struct {
	Points      []Point
	NetCurrentStats CurveStats
}

// CurveStats summarizes INet across the sampled grid.
type CurveStats struct {
	Min, Max, Mean float64
}

// Sample evaluates electrode across a potential grid of n points spanning
// [center-halfSpan, center+halfSpan] (n <= 0 selects DefaultGridPoints and n
// is capped at MaxGridPoints; center and halfSpan have no defaults),
// using gonum/floats to build the grid the same way the rest of the core
// builds numeric sequences.
func Sample(electrode Electrode, temp corecorr.Temperature, center float64, halfSpan float64, n int) (Curve, error) {
	if n <= 0 {
		n = DefaultGridPoints
	}
	if n > MaxGridPoints {
		n = MaxGridPoints
	}
	grid := make([]float64, n)
	floats.Span(grid, center-halfSpan, center+halfSpan)

	points := make([]Point, n)
	net := make([]float64, n)
	for i, e := range grid {
		i_, err := electrode.Evaluate(e, temp)
		if err != nil {
			return Curve{}, err
		}
		p := Point{EVoltsSHE: e}
		if electrode.ReactionKind() == Anodic {
			p.IAnodic = i_
		} else {
			p.ICathodic = i_
		}
		p.INet = p.IAnodic + p.ICathodic
		points[i] = p
		net[i] = p.INet
	}

	min, _ := stats.Min(net)
	max, _ := stats.Max(net)
	mean, _ := stats.Mean(net)

	return Curve{
		Points:          points,
		NetCurrentStats: CurveStats{Min: min, Max: max, Mean: mean},
	}, nil
}
