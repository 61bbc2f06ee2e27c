package schedule

// Option configures a Schedule at construction time via the functional-
// options pattern.
type Option func(*Schedule)

// WithEpsilon overrides the convergence threshold (default 1e-3, the
// same constant as interval.ConvergenceEpsilon) used by Schedule-level
// convergence queries. Panics if eps <= 0: invalid configuration is a
// programmer error, caught as early as possible rather than surfaced
// as a runtime condition.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("schedule: epsilon must be positive")
	}
	return func(s *Schedule) {
		s.epsilon = eps
	}
}

// WithUnconstrainedMagnitude overrides M, the bound of the
// unconstrained window [-M,+M] assigned to every event on creation.
// Exists for testability: a human-readable "infinity" is easier to
// assert against than math.MaxFloat64 in fixtures and golden output.
// The default magnitude is unchanged unless this option is supplied.
// Panics if m <= 0.
func WithUnconstrainedMagnitude(m float64) Option {
	if m <= 0 {
		panic("schedule: unconstrained magnitude must be positive")
	}
	return func(s *Schedule) {
		s.magnitude = m
	}
}
