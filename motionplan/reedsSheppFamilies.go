package motionplan

import "math"

// solverFunc is a closed-form primitive solver over the normalized relative
// pose.
type solverFunc func(x, y, phi float64) rspParam

// layoutFunc maps solved arc parameters onto the signed lengths of a family's
// segment word.
type layoutFunc func(p rspParam) []float64

func layoutTUV(p rspParam) []float64 {
	return []float64{p.t, p.u, p.v}
}

func layoutFourTurnN(p rspParam) []float64 {
	return []float64{p.t, p.u, -p.u, p.v}
}

func layoutFourTurnP(p rspParam) []float64 {
	return []float64{p.t, p.u, p.u, p.v}
}

func layoutViaStraight(p rspParam) []float64 {
	return []float64{p.t, -0.5 * math.Pi, p.u, p.v}
}

func layoutDoubleViaStraight(p rspParam) []float64 {
	return []float64{p.t, -0.5 * math.Pi, p.u, -0.5 * math.Pi, p.v}
}

func word(types ...SegmentType) []SegmentType {
	return types
}

// mirrorWord swaps left and right turns.
func mirrorWord(w []SegmentType) []SegmentType {
	out := make([]SegmentType, len(w))
	for i, st := range w {
		switch st {
		case Left:
			out[i] = Right
		case Right:
			out[i] = Left
		default:
			out[i] = st
		}
	}
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// addVariant solves one primitive under one symmetry of the normalized pose
// and, if the configuration is feasible, appends the resulting candidate.
// timeflip negates x and phi and all resulting lengths; reflect negates y and
// phi and mirrors the type word; backwards reverses segment order and the
// word (the caller passes the time-reversed pose). An infeasible solve is a
// normal outcome and appends nothing.
func addVariant(paths *[]ReedsSheppPath, solve solverFunc, lay layoutFunc, w []SegmentType,
	x, y, phi float64, timeflip, reflect, backwards bool,
) error {
	sx, sy, sphi := x, y, phi
	if timeflip {
		sx, sphi = -sx, -sphi
	}
	if reflect {
		sy, sphi = -sy, -sphi
	}
	p := solve(sx, sy, sphi)
	if !p.valid {
		return nil
	}

	lengths := lay(p)
	if timeflip {
		for i := range lengths {
			lengths[i] = -lengths[i]
		}
	}
	if reflect {
		w = mirrorWord(w)
	} else {
		w = append([]SegmentType(nil), w...)
	}
	if backwards {
		reverse(lengths)
		reverse(w)
	}

	path, err := assembleRSP(lengths, w)
	if err != nil {
		return err
	}
	*paths = append(*paths, path)
	return nil
}

// addSignVariants enumerates the four sign symmetries of one primitive:
// identity, time-flip, reflect, and both composed.
func addSignVariants(paths *[]ReedsSheppPath, solve solverFunc, lay layoutFunc, w []SegmentType,
	x, y, phi float64, backwards bool,
) error {
	for _, reflect := range []bool{false, true} {
		for _, timeflip := range []bool{false, true} {
			if err := addVariant(paths, solve, lay, w, x, y, phi, timeflip, reflect, backwards); err != nil {
				return err
			}
		}
	}
	return nil
}

// timeReversed views the same relative transform from the goal looking back
// at the start; families with that much symmetry re-run their solvers on it
// with segment order reversed.
func timeReversed(x, y, phi float64) (float64, float64) {
	xb := x*math.Cos(phi) + y*math.Sin(phi)
	yb := x*math.Sin(phi) - y*math.Cos(phi)
	return xb, yb
}

// scs generates the straight-turn-straight family: only the identity and
// reflected variants of the sls solver exist for this topology.
func (rs *ReedsShepp) scs(x, y, phi float64, paths *[]ReedsSheppPath) error {
	if err := addVariant(paths, sls, layoutTUV, word(Straight, Left, Straight), x, y, phi, false, false, false); err != nil {
		return err
	}
	return addVariant(paths, sls, layoutTUV, word(Straight, Left, Straight), x, y, phi, false, true, false)
}

// csc generates the turn-straight-turn family, four sign variants for each of
// the same-direction and opposite-direction solvers.
func (rs *ReedsShepp) csc(x, y, phi float64, paths *[]ReedsSheppPath) error {
	if err := addSignVariants(paths, lsl, layoutTUV, word(Left, Straight, Left), x, y, phi, false); err != nil {
		return err
	}
	return addSignVariants(paths, lsr, layoutTUV, word(Left, Straight, Right), x, y, phi, false)
}

// ccc generates the three-turn family: four sign variants plus four more on
// the time-reversed pose, eight in all.
func (rs *ReedsShepp) ccc(x, y, phi float64, paths *[]ReedsSheppPath) error {
	if err := addSignVariants(paths, lrl, layoutTUV, word(Left, Right, Left), x, y, phi, false); err != nil {
		return err
	}
	xb, yb := timeReversed(x, y, phi)
	return addSignVariants(paths, lrl, layoutTUV, word(Left, Right, Left), xb, yb, phi, true)
}

// cccc generates the four-turn family from both four-turn solvers.
func (rs *ReedsShepp) cccc(x, y, phi float64, paths *[]ReedsSheppPath) error {
	if err := addSignVariants(paths, lrlrn, layoutFourTurnN, word(Left, Right, Left, Right), x, y, phi, false); err != nil {
		return err
	}
	return addSignVariants(paths, lrlrp, layoutFourTurnP, word(Left, Right, Left, Right), x, y, phi, false)
}

// ccsc generates the four-segment family with an embedded straight: eight
// variants per solver, half of them on the time-reversed pose.
func (rs *ReedsShepp) ccsc(x, y, phi float64, paths *[]ReedsSheppPath) error {
	if err := addSignVariants(paths, lrsl, layoutViaStraight, word(Left, Right, Straight, Left), x, y, phi, false); err != nil {
		return err
	}
	if err := addSignVariants(paths, lrsr, layoutViaStraight, word(Left, Right, Straight, Right), x, y, phi, false); err != nil {
		return err
	}
	xb, yb := timeReversed(x, y, phi)
	if err := addSignVariants(paths, lrsl, layoutViaStraight, word(Left, Right, Straight, Left), xb, yb, phi, true); err != nil {
		return err
	}
	return addSignVariants(paths, lrsr, layoutViaStraight, word(Left, Right, Straight, Right), xb, yb, phi, true)
}

// ccscc generates the five-segment family, four sign variants of the single
// five-segment solver.
func (rs *ReedsShepp) ccscc(x, y, phi float64, paths *[]ReedsSheppPath) error {
	return addSignVariants(paths, lrslr, layoutDoubleViaStraight, word(Left, Right, Straight, Left, Right), x, y, phi, false)
}
