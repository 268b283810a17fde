// Package motionplan plans kinematically feasible paths for vehicles with a
// bounded turning radius.
package motionplan

import (
	"math"
	"sort"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/GlinZhu/apollo/spatialmath"
)

// ReedsShepp plans shortest paths for a vehicle that can drive both forward
// and backward at bounded curvature. It enumerates every combinatorially
// distinct word of circular arcs and straight segments between two poses,
// keeps the geometrically valid candidates, and discretizes the shortest one
// into a drivable trajectory.
type ReedsShepp struct {
	maxKappa float64
	stepSize float64
	logger   golog.Logger
}

// NewReedsShepp creates a planner for the given vehicle geometry. stepSize
// controls the arc-length spacing of discretized samples, in unit-curvature
// space.
func NewReedsShepp(vehicle VehicleConfig, stepSize float64, logger golog.Logger) (*ReedsShepp, error) {
	kappa, err := vehicle.MaxCurvature()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create reeds-shepp planner")
	}
	if stepSize <= 0 {
		return nil, errors.Errorf("step size must be positive, got %f", stepSize)
	}
	if logger == nil {
		logger = golog.Global()
	}
	return &ReedsShepp{maxKappa: kappa, stepSize: stepSize, logger: logger}, nil
}

// familyFunc generates all symmetry variants of one topological family from
// the normalized relative pose.
type familyFunc func(x, y, phi float64, paths *[]ReedsSheppPath) error

// AllPaths returns every geometrically valid candidate path between the two
// poses, with segment lengths signed by drive direction and expressed in
// unit-curvature space. When sorted is true the candidates are ordered by
// total length, shortest first; otherwise they appear in deterministic family
// order. A family contributing no candidate is normal for most pose pairs.
func (rs *ReedsShepp) AllPaths(start, goal spatialmath.Pose2, sorted bool) ([]ReedsSheppPath, error) {
	dx := goal.Point().X - start.Point().X
	dy := goal.Point().Y - start.Point().Y
	dphi := goal.Heading() - start.Heading()
	c := math.Cos(start.Heading())
	s := math.Sin(start.Heading())
	// normalize so the start pose is the origin with zero heading and the
	// curvature bound is 1
	x := (c*dx + s*dy) * rs.maxKappa
	y := (-s*dx + c*dy) * rs.maxKappa

	families := []struct {
		name string
		run  familyFunc
	}{
		{"SCS", rs.scs},
		{"CSC", rs.csc},
		{"CCC", rs.ccc},
		{"CCCC", rs.cccc},
		{"CCSC", rs.ccsc},
		{"CCSCC", rs.ccscc},
	}

	// each family touches only its own slot, so they can run concurrently and
	// still concatenate in a stable order
	results := make([][]ReedsSheppPath, len(families))
	errs := make([]error, len(families))
	var wg sync.WaitGroup
	wg.Add(len(families))
	for i, family := range families {
		i, run := i, family.run
		goutils.PanicCapturingGo(func() {
			defer wg.Done()
			errs[i] = run(x, y, dphi, &results[i])
		})
	}
	wg.Wait()
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	paths := make([]ReedsSheppPath, 0)
	for i, res := range results {
		if len(res) == 0 {
			rs.logger.Debugf("family %s contributed no candidate paths", families[i].name)
		}
		paths = append(paths, res...)
	}
	if sorted {
		sort.SliceStable(paths, func(i, j int) bool {
			return paths[i].TotalLength < paths[j].TotalLength
		})
	}
	return paths, nil
}

// ShortestRSP returns the minimum-length path between the two poses,
// discretized at the configured step into (x, y, heading, gear) samples in
// the global frame, with segment lengths rescaled to metric units. When no
// candidate is geometrically valid, a no-path error is returned; callers are
// expected to treat that as a normal planning failure.
func (rs *ReedsShepp) ShortestRSP(start, goal spatialmath.Pose2) (*ReedsSheppPath, error) {
	paths, err := rs.AllPaths(start, goal, false)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, NewNoRSPathError()
	}

	// ties go to the earliest candidate, so the family order above is part of
	// the observable contract
	best := 0
	for i := 1; i < len(paths); i++ {
		if paths[i].TotalLength < paths[best].TotalLength {
			best = i
		}
	}
	optimal := paths[best]
	rs.discretize(&optimal, start)
	return &optimal, nil
}
