package motionplan

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/GlinZhu/apollo/spatialmath"
	"github.com/GlinZhu/apollo/utils"
)

// unitPlanner returns a planner with the curvature bound pinned to exactly 1
// so geometric expectations stay in unit turning-radius terms.
func unitPlanner(t *testing.T, stepSize float64) *ReedsShepp {
	t.Helper()
	return &ReedsShepp{maxKappa: 1, stepSize: stepSize, logger: golog.NewTestLogger(t)}
}

func pose(x, y, heading float64) spatialmath.Pose2 {
	return spatialmath.NewPose2(r2.Point{X: x, Y: y}, heading)
}

func TestNewReedsShepp(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := NewReedsShepp(VehicleConfig{FrontEdgeToCenter: 0, MaxSteeringAngle: 0.5}, 0.1, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewReedsShepp(VehicleConfig{FrontEdgeToCenter: 3.89, MaxSteeringAngle: 0}, 0.1, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewReedsShepp(VehicleConfig{FrontEdgeToCenter: 3.89, MaxSteeringAngle: 0.52}, 0, logger)
	test.That(t, err, test.ShouldNotBeNil)

	planner, err := NewReedsShepp(VehicleConfig{FrontEdgeToCenter: 3.89, MaxSteeringAngle: utils.DegToRad(30)}, 0.1, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, planner.maxKappa, test.ShouldAlmostEqual, math.Tan(utils.DegToRad(30))/3.89)
}

func TestShortestRSPStraightAhead(t *testing.T) {
	rs := unitPlanner(t, 1.0)
	path, err := rs.ShortestRSP(pose(0, 0, 0), pose(5, 0, 0))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.TotalLength, test.ShouldAlmostEqual, 5, 1e-9)

	// the winner degenerates to a single straight segment
	var straightLen float64
	for i, l := range path.SegLengths {
		if path.SegTypes[i] == Straight {
			straightLen += math.Abs(l)
		} else {
			test.That(t, l, test.ShouldAlmostEqual, 0, 1e-9)
		}
	}
	test.That(t, straightLen, test.ShouldAlmostEqual, 5, 1e-9)

	test.That(t, len(path.X), test.ShouldBeGreaterThanOrEqualTo, 2)
	test.That(t, path.X[0], test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, path.Y[0], test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, path.X[len(path.X)-1], test.ShouldAlmostEqual, 5, 1e-9)
	for i := range path.X {
		test.That(t, path.Phi[i], test.ShouldAlmostEqual, 0, 1e-9)
		if i > 0 {
			test.That(t, path.X[i], test.ShouldBeGreaterThanOrEqualTo, path.X[i-1])
			// every sample that actually advances is driven forward
			if path.X[i] > path.X[i-1]+1e-12 {
				test.That(t, path.Gear[i], test.ShouldBeTrue)
			}
		}
	}
}

func TestShortestRSPMirrorSymmetry(t *testing.T) {
	rs := unitPlanner(t, 0.5)
	goals := [][3]float64{
		{1, 2, 0.5},
		{3, -1, -2},
		{0.5, 0.5, 2.5},
		{-2, 1, 1},
		{4, 4, math.Pi / 2},
	}
	for _, g := range goals {
		path, err := rs.ShortestRSP(pose(0, 0, 0), pose(g[0], g[1], g[2]))
		test.That(t, err, test.ShouldBeNil)
		mirrored, err := rs.ShortestRSP(pose(0, 0, 0), pose(g[0], -g[1], -g[2]))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mirrored.TotalLength, test.ShouldAlmostEqual, path.TotalLength, 1e-9)
	}
}

func TestShortestRSPDegenerate(t *testing.T) {
	rs := unitPlanner(t, 0.5)
	start := pose(1, 2, 0.7)
	path, err := rs.ShortestRSP(start, start)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.TotalLength, test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, len(path.X), test.ShouldBeGreaterThanOrEqualTo, 2)
	for i := range path.X {
		test.That(t, math.IsNaN(path.X[i]) || math.IsNaN(path.Y[i]) || math.IsNaN(path.Phi[i]), test.ShouldBeFalse)
		test.That(t, path.X[i], test.ShouldAlmostEqual, 1, 1e-9)
		test.That(t, path.Y[i], test.ShouldAlmostEqual, 2, 1e-9)
	}
}

func TestShortestRSPInPlaceReversal(t *testing.T) {
	rs := unitPlanner(t, 0.1)
	path, err := rs.ShortestRSP(pose(0, 0, 0), pose(0, 0, math.Pi))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.TotalLength, test.ShouldAlmostEqual, math.Pi, 1e-9)

	// a pure multi-turn reversal, not a straight-line detour
	for i, l := range path.SegLengths {
		if math.Abs(l) > 1e-9 {
			test.That(t, path.SegTypes[i], test.ShouldNotEqual, Straight)
		}
	}
	var sawForward, sawReverse bool
	for _, g := range path.Gear {
		if g {
			sawForward = true
		} else {
			sawReverse = true
		}
	}
	test.That(t, sawForward, test.ShouldBeTrue)
	test.That(t, sawReverse, test.ShouldBeTrue)
}

func TestAllPathsMinimality(t *testing.T) {
	rs := unitPlanner(t, 0.5)
	start := pose(0, 0, 0)
	goal := pose(4, 4, math.Pi/2)

	all, err := rs.AllPaths(start, goal, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(all), test.ShouldBeGreaterThan, 0)
	for _, p := range all {
		test.That(t, p.TotalLength, test.ShouldBeGreaterThanOrEqualTo, 0)
		var sum float64
		for _, l := range p.SegLengths {
			sum += math.Abs(l)
		}
		test.That(t, p.TotalLength, test.ShouldAlmostEqual, sum, 1e-12)
	}

	ordered, err := rs.AllPaths(start, goal, true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(ordered), test.ShouldEqual, len(all))
	for i := 1; i < len(ordered); i++ {
		test.That(t, ordered[i].TotalLength, test.ShouldBeGreaterThanOrEqualTo, ordered[i-1].TotalLength)
	}

	shortest, err := rs.ShortestRSP(start, goal)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, shortest.TotalLength, test.ShouldAlmostEqual, ordered[0].TotalLength, 1e-9)
}

func TestShortestRSPReachesGoal(t *testing.T) {
	rs := unitPlanner(t, 0.1)
	cases := []struct {
		start, goal spatialmath.Pose2
	}{
		{pose(0, 0, 0), pose(4, 4, math.Pi)},
		{pose(0, 0, 0), pose(2, -3, 1.2)},
		{pose(1, -1, 0.3), pose(-1, 2, -2.4)},
		{pose(-2, 0.5, -1.1), pose(0.5, 0, 3.0)},
	}
	for _, tc := range cases {
		path, err := rs.ShortestRSP(tc.start, tc.goal)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(path.X), test.ShouldBeGreaterThanOrEqualTo, 2)

		first := pose(path.X[0], path.Y[0], path.Phi[0])
		test.That(t, spatialmath.Pose2AlmostEqual(first, tc.start, 1e-9), test.ShouldBeTrue)

		n := len(path.X) - 1
		last := pose(path.X[n], path.Y[n], path.Phi[n])
		test.That(t, spatialmath.Pose2AlmostEqual(last, tc.goal, 1e-6), test.ShouldBeTrue)

		// unit curvature bound: consecutive samples can never be farther
		// apart than the step
		for i := 1; i < len(path.X); i++ {
			dist := math.Hypot(path.X[i]-path.X[i-1], path.Y[i]-path.Y[i-1])
			test.That(t, dist, test.ShouldBeLessThanOrEqualTo, rs.stepSize+1e-9)
		}
	}
}
