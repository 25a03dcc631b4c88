// Package anim holds the easing curves and the damped spring used by the
// transitions and overlays.
package anim

import (
	"fmt"
	"math"
)

const epsilon = 1e-8

// FPS returns the frame duration in seconds for n frames per second.
func FPS(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 1 / float64(n)
}

// Spring is an analytic damped harmonic oscillator stepped by a fixed delta
// time. Its four coefficients are precomputed so each step is two multiplies
// per output.
type Spring struct {
	posPos, posVel float64
	velPos, velVel float64
}

// NewSpring precomputes a spring for dt seconds per step, angular frequency
// omega and damping ratio zeta. Ratios below, at and above 1 give under-,
// critically and over-damped motion.
func NewSpring(dt, omega, zeta float64) Spring {
	omega = math.Max(0, omega)
	zeta = math.Max(0, zeta)

	if omega < epsilon {
		return Spring{posPos: 1, velVel: 1}
	}

	switch {
	case zeta > 1+epsilon:
		return overDamped(dt, omega, zeta)
	case zeta < 1-epsilon:
		return underDamped(dt, omega, zeta)
	default:
		return criticallyDamped(dt, omega)
	}
}

func criticallyDamped(dt, omega float64) Spring {
	e := math.Exp(-omega * dt)
	te := dt * e
	tef := te * omega
	return Spring{
		posPos: tef + e,
		posVel: te,
		velPos: -omega * tef,
		velVel: -tef + e,
	}
}

func underDamped(dt, omega, zeta float64) Spring {
	oz := omega * zeta
	alpha := omega * math.Sqrt(1-zeta*zeta)

	e := math.Exp(-oz * dt)
	c := math.Cos(alpha * dt)
	s := math.Sin(alpha * dt)

	es := e * s
	ec := e * c
	ezs := e * oz * s / alpha

	return Spring{
		posPos: ec + ezs,
		posVel: es / alpha,
		velPos: -es*alpha - oz*ezs,
		velVel: ec - ezs,
	}
}

func overDamped(dt, omega, zeta float64) Spring {
	za := -omega * zeta
	zb := omega * math.Sqrt(zeta*zeta-1)
	z1 := za - zb
	z2 := za + zb

	e1 := math.Exp(z1 * dt)
	e2 := math.Exp(z2 * dt)
	inv := 1 / (2 * zb)

	e1i := e1 * inv
	e2i := e2 * inv
	z1e1i := z1 * e1i
	z2e2i := z2 * e2i

	return Spring{
		posPos: e1i*z2 - z2e2i + e2,
		posVel: -e1i + e2i,
		velPos: (z1e1i - z2e2i + e2) * z2,
		velVel: -z1e1i + z2e2i,
	}
}

// Update advances one step towards target and returns the new position and
// velocity.
func (s Spring) Update(pos, vel, target float64) (float64, float64) {
	p := pos - target
	return p*s.posPos + vel*s.posVel + target, p*s.velPos + vel*s.velVel
}

func (s Spring) String() string {
	return fmt.Sprintf("Spring(pp=%.4f pv=%.4f vp=%.4f vv=%.4f)", s.posPos, s.posVel, s.velPos, s.velVel)
}

// Follower tracks a value that springs towards a target.
type Follower struct {
	Spring Spring
	Pos    float64
	Vel    float64
	Target float64
}

// NewFollower returns a follower at rest on target.
func NewFollower(s Spring, target float64) *Follower {
	return &Follower{Spring: s, Pos: target, Target: target}
}

// Set changes the target without disturbing the current motion.
func (f *Follower) Set(target float64) { f.Target = target }

// Step advances one frame and returns the new position.
func (f *Follower) Step() float64 {
	f.Pos, f.Vel = f.Spring.Update(f.Pos, f.Vel, f.Target)
	return f.Pos
}

// Settled reports whether the follower is within tol of its target and nearly
// at rest.
func (f *Follower) Settled(tol float64) bool {
	return math.Abs(f.Pos-f.Target) <= tol && math.Abs(f.Vel) <= tol
}
