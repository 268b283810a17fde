package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestPose2(t *testing.T) {
	p := NewPose2(r2.Point{X: 1, Y: -2}, 0.5)
	test.That(t, p.Point().X, test.ShouldEqual, 1)
	test.That(t, p.Point().Y, test.ShouldEqual, -2)
	test.That(t, p.Heading(), test.ShouldEqual, 0.5)

	zero := NewZeroPose2()
	test.That(t, zero.Point().X, test.ShouldEqual, 0)
	test.That(t, zero.Heading(), test.ShouldEqual, 0)
}

func TestPose2AlmostEqual(t *testing.T) {
	a := NewPose2(r2.Point{X: 1, Y: 2}, math.Pi/2)
	b := NewPose2(r2.Point{X: 1 + 1e-9, Y: 2}, math.Pi/2+1e-9)
	test.That(t, Pose2AlmostEqual(a, b, 1e-6), test.ShouldBeTrue)
	test.That(t, Pose2AlmostEqual(a, b, 1e-12), test.ShouldBeFalse)

	// headings a full turn apart are the same pose
	c := NewPose2(r2.Point{X: 1, Y: 2}, math.Pi/2+2*math.Pi)
	test.That(t, Pose2AlmostEqual(a, c, 1e-9), test.ShouldBeTrue)

	d := NewPose2(r2.Point{X: 1, Y: 2.1}, math.Pi/2)
	test.That(t, Pose2AlmostEqual(a, d, 1e-6), test.ShouldBeFalse)
}
