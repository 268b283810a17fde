// Package spatialmath provides primitives for working with planar rigid-body poses.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/GlinZhu/apollo/utils"
)

// Pose2 is a planar pose: a position in the plane plus a heading in radians.
// Pose2 values are immutable.
type Pose2 struct {
	point   r2.Point
	heading float64
}

// NewPose2 creates a pose at the given point with the given heading in radians.
func NewPose2(point r2.Point, heading float64) Pose2 {
	return Pose2{point: point, heading: heading}
}

// NewZeroPose2 returns the pose at the origin with zero heading.
func NewZeroPose2() Pose2 {
	return Pose2{}
}

// Point returns the position of the pose.
func (p Pose2) Point() r2.Point {
	return p.point
}

// Heading returns the heading of the pose in radians.
func (p Pose2) Heading() float64 {
	return p.heading
}

// Pose2AlmostEqual returns whether both position and heading of the two poses
// are within epsilon of each other. Headings are compared on the circle, so
// headings that differ by a full turn compare equal.
func Pose2AlmostEqual(a, b Pose2, epsilon float64) bool {
	return math.Abs(a.point.X-b.point.X) <= epsilon &&
		math.Abs(a.point.Y-b.point.Y) <= epsilon &&
		math.Abs(utils.NormalizeAngle(a.heading-b.heading)) <= epsilon
}
