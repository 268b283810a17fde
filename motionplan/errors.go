package motionplan

import "errors"

// NewNoRSPathError returns the error for when no valid Reeds-Shepp path
// exists between two poses.
func NewNoRSPathError() error {
	return errors.New("unable to find a valid reeds-shepp path between poses")
}
