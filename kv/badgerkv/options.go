package badgerkv

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	inMemory bool
	sync     bool
	logger   *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

// MemBacked keeps the DB entirely in memory.
func MemBacked() Option {
	return func(o *options) { o.inMemory = true }
}

// WithLogger routes badger's own log output to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSync makes every write wait for the value log to be synced to disk.
func WithSync() Option {
	return func(o *options) { o.sync = true }
}
