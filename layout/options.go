package layout

import "github.com/go-gl/mathgl/mgl32"

// Option configures Instances.
type Option func(*options)

type options struct {
	left, right float32
	depth       float32
	angle       float32 // radians
}

func defaultOptions() options {
	return options{
		left:  DefaultLeft,
		right: DefaultRight,
		depth: DefaultDepth,
	}
}

// WithBounds sets the world-space x range the line spans.
func WithBounds(left, right float32) Option {
	return func(o *options) {
		o.left, o.right = left, right
	}
}

// WithDepth sets the z coordinate of every glyph.
func WithDepth(z float32) Option {
	return func(o *options) {
		o.depth = z
	}
}

// WithRotation turns every glyph by degrees about the axis through the
// origin and its position.
func WithRotation(degrees float32) Option {
	return func(o *options) {
		o.angle = mgl32.DegToRad(degrees)
	}
}
