package motionplan

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/GlinZhu/apollo/spatialmath"
	"github.com/GlinZhu/apollo/utils"
)

// SegmentType identifies the constant-curvature primitive a path segment
// follows.
type SegmentType uint8

// The segment kinds a Reeds-Shepp word is built from.
const (
	Straight SegmentType = iota
	Left
	Right
)

func (st SegmentType) String() string {
	switch st {
	case Straight:
		return "S"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// ReedsSheppPath is one candidate path between two poses. During the search
// SegLengths are signed arc parameters in unit-curvature space, negative where
// the vehicle reverses. After discretization the lengths are metric and the
// parallel sequences X, Y, Phi and Gear hold the sampled trajectory in the
// global frame; Gear is true where the vehicle moves forward.
type ReedsSheppPath struct {
	SegLengths  []float64
	SegTypes    []SegmentType
	TotalLength float64
	X           []float64
	Y           []float64
	Phi         []float64
	Gear        []bool
}

// Word returns the path's segment types as a compact string such as "LRSL".
func (p *ReedsSheppPath) Word() string {
	var b strings.Builder
	for _, st := range p.SegTypes {
		b.WriteString(st.String())
	}
	return b.String()
}

// assembleRSP builds a candidate record from parallel length and type slices,
// with the total as the sum of absolute segment lengths. A negative total is
// impossible under correct arithmetic and reported as an internal defect.
func assembleRSP(lengths []float64, types []SegmentType) (ReedsSheppPath, error) {
	total := floats.Norm(lengths, 1)
	if total < 0 {
		return ReedsSheppPath{}, errors.Errorf("candidate path total length is negative: %f", total)
	}
	return ReedsSheppPath{SegLengths: lengths, SegTypes: types, TotalLength: total}, nil
}

// interpolate advances a single sample along a segment of type m: a signed
// arc parameter pd measured from the segment's local anchor (ox, oy, ophi).
// Anchor positions are metric in the path-local frame while pd and headings
// stay in unit-curvature space. These exact chord forms, not a generic
// integrator, keep the samples consistent with the analytic segment lengths.
func (rs *ReedsShepp) interpolate(pd float64, m SegmentType, ox, oy, ophi float64) (float64, float64, float64) {
	if m == Straight {
		return ox + pd/rs.maxKappa*math.Cos(ophi), oy + pd/rs.maxKappa*math.Sin(ophi), ophi
	}
	ldx := math.Sin(pd) / rs.maxKappa
	ldy := (1.0 - math.Cos(pd)) / rs.maxKappa
	phi := ophi + pd
	if m == Right {
		ldy = -ldy
		phi = ophi - pd
	}
	gdx := math.Cos(-ophi)*ldx + math.Sin(-ophi)*ldy
	gdy := -math.Sin(-ophi)*ldx + math.Cos(-ophi)*ldy
	return ox + gdx, oy + gdy, phi
}

// discretize walks the path's segments at the configured step, samples poses
// in the path-local frame, transforms them into the global frame of the given
// start pose, and rescales segment lengths to metric units. Within a segment
// a sample is emitted at every interior multiple of the step and one final
// sample exactly at the segment end, so spacing never exceeds the step and
// segment boundaries are not sampled twice.
func (rs *ReedsShepp) discretize(path *ReedsSheppPath, start spatialmath.Pose2) {
	sizeHint := int(path.TotalLength/rs.stepSize) + len(path.SegLengths) + 3
	px := make([]float64, 0, sizeHint)
	py := make([]float64, 0, sizeHint)
	pphi := make([]float64, 0, sizeHint)
	gear := make([]bool, 0, sizeHint)

	px = append(px, 0)
	py = append(py, 0)
	pphi = append(pphi, 0)
	gear = append(gear, len(path.SegLengths) > 0 && path.SegLengths[0] > 0)

	var ox, oy, ophi float64
	for i, l := range path.SegLengths {
		if l == 0 {
			// a zero-length segment would duplicate the previous boundary sample
			continue
		}
		m := path.SegTypes[i]
		d := rs.stepSize
		if l < 0 {
			d = -rs.stepSize
		}
		for pd := d; math.Abs(pd) < math.Abs(l); pd += d {
			x, y, phi := rs.interpolate(pd, m, ox, oy, ophi)
			px = append(px, x)
			py = append(py, y)
			pphi = append(pphi, phi)
			gear = append(gear, pd > 0)
		}
		x, y, phi := rs.interpolate(l, m, ox, oy, ophi)
		px = append(px, x)
		py = append(py, y)
		pphi = append(pphi, phi)
		gear = append(gear, l > 0)
		ox, oy, ophi = x, y, phi
	}
	if len(px) == 1 {
		// fully degenerate path; still emit a distinct end sample
		px = append(px, ox)
		py = append(py, oy)
		pphi = append(pphi, ophi)
		gear = append(gear, gear[0])
	}

	// rotate and translate the local samples into the global frame
	c := math.Cos(-start.Heading())
	s := math.Sin(-start.Heading())
	path.X = make([]float64, len(px))
	path.Y = make([]float64, len(px))
	path.Phi = make([]float64, len(px))
	for i := range px {
		path.X[i] = c*px[i] + s*py[i] + start.Point().X
		path.Y[i] = -s*px[i] + c*py[i] + start.Point().Y
		path.Phi[i] = utils.NormalizeAngle(pphi[i] + start.Heading())
	}
	path.Gear = gear

	for i := range path.SegLengths {
		path.SegLengths[i] /= rs.maxKappa
	}
	path.TotalLength /= rs.maxKappa
}
