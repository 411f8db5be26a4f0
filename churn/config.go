package churn

import "github.com/rs/zerolog"

// Suspect/dead thresholds are expressed as multiples of the caller's
// heartbeat period.
const (
	defaultSuspectMultiplier = 3
	defaultDeadMultiplier    = 5
)

// Option configures a Controller via functional arguments.
type Option func(*Controller)

// WithLogger attaches a zerolog.Logger for rebuild and dead-set
// diagnostics. The default is zerolog.Nop(), which discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithThresholds overrides the suspect/dead multipliers applied to the
// heartbeat period. Both must be positive and dead must exceed suspect.
func WithThresholds(suspectMultiplier, deadMultiplier int64) Option {
	return func(c *Controller) {
		c.suspectMultiplier = suspectMultiplier
		c.deadMultiplier = deadMultiplier
	}
}
