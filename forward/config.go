package forward

// Tuned defaults reproducing the reported ~1.7x stretch. The interaction
// between recoveryMargin and pressureDecay is a tuned pair without a
// derivation; treat both as configurable rather than load-bearing
// constants.
const (
	defaultPressureDecay     = 0.95
	defaultPressureIncrement = 5.0
	defaultRecoveryMargin    = 1e-3
)

// Option configures a Forwarder via functional arguments.
type Option func(*Forwarder)

// WithPressureDecay overrides the per-hop decay multiplier applied to
// every entry in a packet's pressure map.
func WithPressureDecay(d float64) Option {
	return func(f *Forwarder) { f.pressureDecay = d }
}

// WithPressureIncrement overrides the amount added to the chosen
// neighbor's pressure value on each Pressure-mode hop.
func WithPressureIncrement(v float64) Option {
	return func(f *Forwarder) { f.pressureIncrement = v }
}

// WithRecoveryMargin overrides δ, the strict-improvement margin required
// to leave Pressure mode back into Gravity.
func WithRecoveryMargin(m float64) Option {
	return func(f *Forwarder) { f.recoveryMargin = m }
}
