package motionplan

import (
	"math"

	"github.com/GlinZhu/apollo/utils"
)

// rspParam is the output of one closed-form segment solver: the signed arc
// parameters (t, u, v) of the first, middle, and last segments in
// unit-curvature space. valid is false when the relative pose has no solution
// in the solver's domain; the zero value is then returned and must be ignored.
type rspParam struct {
	t, u, v float64
	valid   bool
}

// calcTauOmega resolves the first and last arc angles for the four-turn
// solvers, given the two middle turn magnitudes and the relative offset. The
// branch on t2 guards the degenerate configuration where the naive atan2
// angle is off by pi. Two families build on this, so the form must stay
// bit-for-bit stable.
func calcTauOmega(u, v, xi, eta, phi float64) (float64, float64) {
	delta := utils.NormalizeAngle(u - v)
	a := math.Sin(u) - math.Sin(delta)
	b := math.Cos(u) - math.Cos(delta) - 1.0

	t1 := math.Atan2(eta*a-xi*b, xi*a+eta*b)
	t2 := 2.0*(math.Cos(delta)-math.Cos(v)-math.Cos(u)) + 3.0
	var tau float64
	if t2 < 0 {
		tau = utils.NormalizeAngle(t1 + math.Pi)
	} else {
		tau = utils.NormalizeAngle(t1)
	}
	omega := utils.NormalizeAngle(tau - u + v - phi)
	return tau, omega
}

// lsl solves the turn-straight-turn pattern with both turns in the same
// direction.
func lsl(x, y, phi float64) rspParam {
	u, t := utils.CartesianToPolar(x-math.Sin(phi), y-1.0+math.Cos(phi))
	if t < 0 {
		return rspParam{}
	}
	v := utils.NormalizeAngle(phi - t)
	if v < 0 {
		return rspParam{}
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}

// lsr solves the turn-straight-turn pattern with opposite turns. The squared
// chord must be at least 4 before the straight length sqrt(u1-4) exists.
func lsr(x, y, phi float64) rspParam {
	rho, t1 := utils.CartesianToPolar(x+math.Sin(phi), y-1.0-math.Cos(phi))
	u1 := rho * rho
	if u1 < 4.0 {
		return rspParam{}
	}
	u := math.Sqrt(u1 - 4.0)
	theta := math.Atan2(2.0, u)
	t := utils.NormalizeAngle(t1 + theta)
	v := utils.NormalizeAngle(t - phi)
	if t < 0 || v < 0 {
		return rspParam{}
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}

// lrl solves the three-turn pattern; the middle turn runs opposite to the
// outer two, so u carries the opposite sign of t.
func lrl(x, y, phi float64) rspParam {
	u1, t1 := utils.CartesianToPolar(x-math.Sin(phi), y-1.0+math.Cos(phi))
	if u1 > 4.0 {
		return rspParam{}
	}
	u := -2.0 * math.Asin(0.25*u1)
	t := utils.NormalizeAngle(t1 + 0.5*u + math.Pi)
	v := utils.NormalizeAngle(phi - t + u)
	if t < 0 || u > 0 {
		return rspParam{}
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}

// sls solves the straight-turn-straight pattern. The middle turn angle must
// stay clear of pi, where the tangent construction degenerates, and the goal
// cannot sit on the start's axis.
func sls(x, y, phi float64) rspParam {
	phiMod := utils.NormalizeAngle(phi)
	if y == 0 || phiMod <= 0 || phiMod >= math.Pi*0.99 {
		return rspParam{}
	}
	xd := -y/math.Tan(phiMod) + x
	t := xd - math.Tan(phiMod/2.0)
	u := phiMod
	v := math.Sqrt(utils.Square(x-xd)+utils.Square(y)) - math.Tan(phiMod/2.0)
	if y < 0 {
		v = -math.Sqrt(utils.Square(x-xd)+utils.Square(y)) - math.Tan(phiMod/2.0)
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}

// lrlrn solves the four-turn pattern whose two middle arcs run in opposite
// directions and share the magnitude u.
func lrlrn(x, y, phi float64) rspParam {
	xi := x + math.Sin(phi)
	eta := y - 1.0 - math.Cos(phi)
	rho := 0.25 * (2.0 + math.Sqrt(xi*xi+eta*eta))
	if rho > 1.0 {
		return rspParam{}
	}
	u := math.Acos(rho)
	if u < 0 || u > 0.5*math.Pi {
		return rspParam{}
	}
	tau, omega := calcTauOmega(u, -u, xi, eta, phi)
	if tau < 0 || omega > 0 {
		return rspParam{}
	}
	return rspParam{t: tau, u: u, v: omega, valid: true}
}

// lrlrp solves the four-turn pattern whose two middle arcs share both sign
// and magnitude.
func lrlrp(x, y, phi float64) rspParam {
	xi := x + math.Sin(phi)
	eta := y - 1.0 - math.Cos(phi)
	rho := (20.0 - xi*xi - eta*eta) / 16.0
	if rho < 0 || rho > 1.0 {
		return rspParam{}
	}
	u := -math.Acos(rho)
	if u < -0.5*math.Pi {
		return rspParam{}
	}
	tau, omega := calcTauOmega(u, u, xi, eta, phi)
	if tau < 0 || omega < 0 {
		return rspParam{}
	}
	return rspParam{t: tau, u: u, v: omega, valid: true}
}

// lrsl solves the turn-turn-straight-turn pattern ending in the same
// direction as it starts.
func lrsl(x, y, phi float64) rspParam {
	xi := x - math.Sin(phi)
	eta := y - 1.0 + math.Cos(phi)
	rho, theta := utils.CartesianToPolar(xi, eta)
	if rho < 2.0 {
		return rspParam{}
	}
	r := math.Sqrt(rho*rho - 4.0)
	u := 2.0 - r
	t := utils.NormalizeAngle(theta + math.Atan2(r, -2.0))
	v := utils.NormalizeAngle(phi - 0.5*math.Pi - t)
	if t < 0 || u > 0 || v > 0 {
		return rspParam{}
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}

// lrsr solves the turn-turn-straight-turn pattern ending opposite to how it
// starts.
func lrsr(x, y, phi float64) rspParam {
	xi := x + math.Sin(phi)
	eta := y - 1.0 - math.Cos(phi)
	rho, theta := utils.CartesianToPolar(-eta, xi)
	if rho < 2.0 {
		return rspParam{}
	}
	t := theta
	u := 2.0 - rho
	v := utils.NormalizeAngle(t + 0.5*math.Pi - phi)
	if t < 0 || u > 0 || v > 0 {
		return rspParam{}
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}

// lrslr solves the five-segment turn-turn-straight-turn-turn pattern.
func lrslr(x, y, phi float64) rspParam {
	xi := x + math.Sin(phi)
	eta := y - 1.0 - math.Cos(phi)
	rho, _ := utils.CartesianToPolar(xi, eta)
	if rho < 2.0 {
		return rspParam{}
	}
	u := 4.0 - math.Sqrt(rho*rho-4.0)
	if u > 0 {
		return rspParam{}
	}
	t := utils.NormalizeAngle(math.Atan2((4.0-u)*xi-2.0*eta, -2.0*xi+(u-4.0)*eta))
	v := utils.NormalizeAngle(t - phi)
	if t < 0 || v < 0 {
		return rspParam{}
	}
	return rspParam{t: t, u: u, v: v, valid: true}
}
