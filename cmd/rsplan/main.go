// Package main contains a command to plan a shortest Reeds-Shepp path between
// two poses and print the resulting trajectory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	goutils "go.viam.com/utils"

	"github.com/GlinZhu/apollo/motionplan"
	"github.com/GlinZhu/apollo/spatialmath"
	"github.com/GlinZhu/apollo/utils"
)

var logger = golog.NewDevelopmentLogger("rsplan")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	StartX       float64 `flag:"start-x,usage=start x position (m)"`
	StartY       float64 `flag:"start-y,usage=start y position (m)"`
	StartHeading float64 `flag:"start-heading,usage=start heading (deg)"`
	GoalX        float64 `flag:"goal-x,usage=goal x position (m)"`
	GoalY        float64 `flag:"goal-y,usage=goal y position (m)"`
	GoalHeading  float64 `flag:"goal-heading,usage=goal heading (deg)"`
	FrontEdge    float64 `flag:"front-edge,usage=front edge to center distance (m)"`
	MaxSteering  float64 `flag:"max-steering,usage=max steering angle (deg)"`
	StepSize     float64 `flag:"step,usage=sample spacing in unit-curvature space"`
	JSON         bool    `flag:"json,usage=emit the full path as JSON"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.FrontEdge == 0 {
		argsParsed.FrontEdge = 3.89
	}
	if argsParsed.MaxSteering == 0 {
		argsParsed.MaxSteering = 30
	}
	if argsParsed.StepSize == 0 {
		argsParsed.StepSize = 0.1
	}

	vehicle := motionplan.VehicleConfig{
		FrontEdgeToCenter: argsParsed.FrontEdge,
		MaxSteeringAngle:  utils.DegToRad(argsParsed.MaxSteering),
	}
	planner, err := motionplan.NewReedsShepp(vehicle, argsParsed.StepSize, logger)
	if err != nil {
		return err
	}

	start := spatialmath.NewPose2(
		r2.Point{X: argsParsed.StartX, Y: argsParsed.StartY},
		utils.DegToRad(argsParsed.StartHeading),
	)
	goal := spatialmath.NewPose2(
		r2.Point{X: argsParsed.GoalX, Y: argsParsed.GoalY},
		utils.DegToRad(argsParsed.GoalHeading),
	)

	path, err := planner.ShortestRSP(start, goal)
	if err != nil {
		return err
	}

	logger.Infof("shortest path %s, total length %.3fm over %d samples", path.Word(), path.TotalLength, len(path.X))
	for i, l := range path.SegLengths {
		logger.Infof("  segment %d: %s %+.3fm", i, path.SegTypes[i], l)
	}

	if argsParsed.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(path)
	}
	for i := range path.X {
		gear := "fwd"
		if !path.Gear[i] {
			gear = "rev"
		}
		fmt.Fprintf(os.Stdout, "%9.3f %9.3f %9.3f %s\n", path.X[i], path.Y[i], path.Phi[i], gear)
	}
	return nil
}
