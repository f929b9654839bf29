package graticule

import "github.com/gogpu/graticule/grid"

// Option configures a Layer during creation.
//
// Example:
//
//	layer := graticule.NewLayer(factory, graticule.WithAngleFormat(grid.Decimal))
type Option func(*layerOptions)

type layerOptions struct {
	policy grid.Policy
}

func defaultOptions() layerOptions {
	return layerOptions{
		policy: grid.LatLon{Format: grid.Sexagesimal},
	}
}

// WithAngleFormat selects between minute/second and decimal subdivision.
// The factory should format labels the same way.
func WithAngleFormat(f grid.AngleFormat) Option {
	return func(o *layerOptions) {
		o.policy = grid.LatLon{Format: f}
	}
}

// WithPolicy replaces the subdivision and level-of-detail policy.
// A nil policy keeps the default.
func WithPolicy(p grid.Policy) Option {
	return func(o *layerOptions) {
		if p != nil {
			o.policy = p
		}
	}
}
