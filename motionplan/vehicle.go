package motionplan

import (
	"math"

	"github.com/pkg/errors"
)

// VehicleConfig holds the geometry limits that bound a vehicle's path
// curvature.
type VehicleConfig struct {
	// FrontEdgeToCenter is the distance from the vehicle's rotation center to
	// its front edge, in meters.
	FrontEdgeToCenter float64 `json:"front_edge_to_center"`
	// MaxSteeringAngle is the steering limit in radians.
	MaxSteeringAngle float64 `json:"max_steering_angle"`
}

// MaxCurvature converts the steering limit into the maximum achievable path
// curvature.
func (vc VehicleConfig) MaxCurvature() (float64, error) {
	if vc.FrontEdgeToCenter <= 0 {
		return 0, errors.Errorf("front edge to center must be positive, got %f", vc.FrontEdgeToCenter)
	}
	kappa := math.Tan(vc.MaxSteeringAngle) / vc.FrontEdgeToCenter
	if kappa <= 0 || math.IsInf(kappa, 0) || math.IsNaN(kappa) {
		return 0, errors.Errorf("max curvature must be positive and finite, got %f", kappa)
	}
	return kappa, nil
}
