package tzoracle

// defaultLandmarkConstant is the k≈1 multiplier in the |L|=⌈k·√n⌉ target.
const defaultLandmarkConstant = 1.0

// Option configures Build via functional arguments.
type Option func(*config)

type config struct {
	landmarkConstant float64
}

func newConfig(opts ...Option) *config {
	cfg := &config{landmarkConstant: defaultLandmarkConstant}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLandmarkConstant overrides the k constant in |L|=⌈k·√n⌉.
func WithLandmarkConstant(k float64) Option {
	return func(cfg *config) { cfg.landmarkConstant = k }
}
