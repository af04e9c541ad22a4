package namespace

import (
	"github.com/arya-analytics/keyspace/alamos"
	"github.com/arya-analytics/keyspace/codec"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	logger *zap.Logger
	exp    alamos.Experiment
	codec  codec.Codec
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
	if o.codec == nil {
		o.codec = codec.JSON
	}

	// || LOGGER ||

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

// WithLogger logs Space scans and writes at debug level to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithExperiment records scan metrics to a "namespace" sub-experiment of exp.
func WithExperiment(exp alamos.Experiment) Option {
	return func(o *options) { o.exp = alamos.Sub(exp, "namespace") }
}

// WithCodec sets the codec used by typed reads and writes. Defaults to
// codec.JSON.
func WithCodec(c codec.Codec) Option {
	return func(o *options) { o.codec = c }
}
