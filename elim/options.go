package elim

// DefaultMaxSuffix is the largest numeric suffix tried for new non-terminals,
// i.e. the last candidate is "Z99".
const DefaultMaxSuffix = 99

type config struct {
	maxSuffix int
}

func defaults() config {
	return config{maxSuffix: DefaultMaxSuffix}
}

func configure(opts []Option) config {
	conf := defaults()
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

// Option configures the rewriting.
type Option func(*config)

// MaxSuffix sets the largest numeric suffix the allocator for new
// non-terminals will try. With n = 0, only the letters A…Z are
// available. Negative values are treated as 0.
func MaxSuffix(n int) Option {
	return func(conf *config) {
		if n < 0 {
			n = 0
		}
		conf.maxSuffix = n
	}
}
