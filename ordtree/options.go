package ordtree

type config struct {
	capacity uint64
}

// Option configures a Tree created by New or NewSynced.
type Option func(*config)

// WithCapacity limits the tree to at most n nodes. Insert and CopyFrom
// return ErrAllocation rather than grow past the limit. Zero means no limit.
func WithCapacity(n uint64) Option {
	return func(c *config) {
		c.capacity = n
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
