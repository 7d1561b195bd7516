package texture

// DefaultSeed seeds the static generator when WithSeed is not given.
const DefaultSeed uint64 = 0x6c657474657273

// Option configures a generator.
//
// Example:
//
//	tex, err := texture.FractalStatic(64, 8, texture.WithSize(256), texture.WithSeed(7))
type Option func(*options)

type options struct {
	size int
	seed uint64
}

func defaultOptions() options {
	return options{
		size: DefaultSize,
		seed: DefaultSeed,
	}
}

// WithSize sets the edge length of the square texture.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithSeed sets the pseudo-random seed. Equal seeds give identical output.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
