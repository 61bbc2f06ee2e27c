// Package interval implements closed arithmetic over inclusive real
// intervals [lower, upper], the numeric algebra the STN scheduling core
// uses to propagate execution windows (see the schedule package).
//
// All operations are total and pure: they never panic and never return
// an error. Meet may produce an invalid interval (Lower > Upper); callers
// interpret that as infeasibility rather than treating it as a distinct
// error type, matching the source algebra's own convention.
package interval

import "math"

// M is the largest finite representable magnitude, used as the bound of
// the distinguished "unconstrained" interval [-M, M].
const M = math.MaxFloat64

// ConvergenceEpsilon is the default tolerance below which an interval is
// considered converged (see Converged). Schedule-level callers may use a
// different tolerance via schedule.WithEpsilon; this constant is the
// package default for standalone use.
const ConvergenceEpsilon = 1e-3

// Interval is an inclusive range [Lower, Upper] of real numbers.
type Interval struct {
	Lower float64
	Upper float64
}

// New returns the interval [lower, upper]. It does not validate
// lower <= upper; use Valid to check.
func New(lower, upper float64) Interval {
	return Interval{Lower: lower, Upper: upper}
}

// Zero is the additive identity [0, 0].
func Zero() Interval {
	return Interval{Lower: 0, Upper: 0}
}

// Unconstrained is the distinguished "no information yet" interval
// [-M, M].
func Unconstrained() Interval {
	return Interval{Lower: -M, Upper: M}
}

// Add returns i + other = [i.Lower+other.Lower, i.Upper+other.Upper].
func (i Interval) Add(other Interval) Interval {
	return Interval{Lower: i.Lower + other.Lower, Upper: i.Upper + other.Upper}
}

// Neg returns -i = [-i.Upper, -i.Lower].
func (i Interval) Neg() Interval {
	return Interval{Lower: -i.Upper, Upper: -i.Lower}
}

// Sub returns i - other = i + (-other) = [i.Lower-other.Upper, i.Upper-other.Lower].
func (i Interval) Sub(other Interval) Interval {
	return i.Add(other.Neg())
}

// Meet returns the intersection i ∧ other = [max(lowers), min(uppers)].
// The result may be invalid (Lower > Upper) when i and other do not
// overlap; callers must check Valid before trusting the result as a
// feasible window.
func (i Interval) Meet(other Interval) Interval {
	return Interval{
		Lower: math.Max(i.Lower, other.Lower),
		Upper: math.Min(i.Upper, other.Upper),
	}
}

// Contains reports whether tau lies within [Lower, Upper] inclusive.
func (i Interval) Contains(tau float64) bool {
	return tau >= i.Lower && tau <= i.Upper
}

// Valid reports whether Lower <= Upper.
func (i Interval) Valid() bool {
	return i.Lower <= i.Upper
}

// Converged reports whether the interval has collapsed to within
// ConvergenceEpsilon of a point.
func (i Interval) Converged() bool {
	return math.Abs(i.Upper-i.Lower) < ConvergenceEpsilon
}

// ConvergedWithin reports whether the interval has collapsed to within
// eps of a point. Used by schedule.Schedule when a non-default epsilon
// was configured via WithEpsilon.
func (i Interval) ConvergedWithin(eps float64) bool {
	return math.Abs(i.Upper-i.Lower) < eps
}
