package pie

// angularSafetyGap is the small angular margin kept between sibling
// windows so that floating-point rounding never lets two children share a
// boundary ray.
const angularSafetyGap = 1e-3

// defaultDepthConstant is the c≈1 tunable from the embedding radius
// r_d = tanh(c·d/2).
const defaultDepthConstant = 1.0

// Option configures Embed via functional arguments.
type Option func(*config)

type config struct {
	depthConstant float64
	rootSelector  func([]string) string
	randomRoot    bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{depthConstant: defaultDepthConstant}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDepthConstant overrides the c constant in r_d = tanh(c·d/2).
func WithDepthConstant(c float64) Option {
	return func(cfg *config) { cfg.depthConstant = c }
}

// WithRootSelector overrides automatic max-degree root selection. fn
// receives the view's node ids (lexicographically sorted) and must return
// one of them.
func WithRootSelector(fn func([]string) string) Option {
	return func(cfg *config) { cfg.rootSelector = fn }
}

// WithRandomRoot breaks max-degree ties by drawing among the tied nodes
// with Embed's seed instead of always taking the smallest id. Ignored if
// WithRootSelector is also given.
func WithRandomRoot() Option {
	return func(cfg *config) { cfg.randomRoot = true }
}
