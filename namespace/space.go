package namespace

import (
	"github.com/arya-analytics/keyspace/alamos"
	"github.com/arya-analytics/keyspace/kv"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Space binds a kv.Store to a namespace prefix. Reads and writes use keys
// relative to the prefix. The root Space (returned by New) has an empty prefix
// and covers the whole store.
//
// Space holds no mutable state and can be shared between goroutines if the
// underlying store can.
type Space struct {
	store   kv.Store
	prefix  []byte
	opts    *options
	metrics metrics
}

type metrics struct {
	scanDuration alamos.Duration
	scanCount    alamos.Metric[int]
	decodeErrors alamos.Metric[int]
}

func newMetrics(exp alamos.Experiment) metrics {
	return metrics{
		scanDuration: alamos.NewSeriesDuration(exp, "scan.duration"),
		scanCount:    alamos.NewSeries[int](exp, "scan.count"),
		decodeErrors: alamos.NewSeries[int](exp, "decode.errors"),
	}
}

// New returns the root Space of store.
func New(store kv.Store, opts ...Option) *Space {
	o := newOptions(opts...)
	return &Space{store: store, prefix: []byte{}, opts: o, metrics: newMetrics(o.exp)}
}

// Sub returns the Space nested under s by segments. Nesting composes:
// s.Sub(a, b) is equivalent to s.Sub(a) followed by Sub(b).
func (s *Space) Sub(segments ...[]byte) (*Space, error) {
	p, err := EncodeNested(segments...)
	if err != nil {
		return nil, err
	}
	return &Space{store: s.store, prefix: Concat(s.prefix, p), opts: s.opts, metrics: s.metrics}, nil
}

// MustSub is Sub, but panics on error.
func (s *Space) MustSub(segments ...[]byte) *Space {
	sub, err := s.Sub(segments...)
	if err != nil {
		panic(err)
	}
	return sub
}

// Prefix returns a copy of the encoded prefix of s.
func (s *Space) Prefix() []byte { return Concat(s.prefix, nil) }

// Get returns the value stored at the relative key. Returns an error
// satisfying errors.Is(err, kv.ErrNotFound) if it doesn't exist.
func (s *Space) Get(key []byte) ([]byte, error) {
	v, err := s.store.Get(Concat(s.prefix, key))
	if err != nil {
		return nil, errors.Wrapf(err, "[keyspace.namespace] - get %x", key)
	}
	return v, nil
}

// Set stores value at the relative key.
func (s *Space) Set(key, value []byte) error {
	if err := s.store.Set(Concat(s.prefix, key), value); err != nil {
		return errors.Wrapf(err, "[keyspace.namespace] - set %x", key)
	}
	s.opts.logger.Debug("set namespace key", zap.Binary("prefix", s.prefix), zap.Binary("key", key))
	return nil
}

// Delete removes the relative key.
func (s *Space) Delete(key []byte) error {
	if err := s.store.Delete(Concat(s.prefix, key)); err != nil {
		return errors.Wrapf(err, "[keyspace.namespace] - delete %x", key)
	}
	s.opts.logger.Debug("deleted namespace key", zap.Binary("prefix", s.prefix), zap.Binary("key", key))
	return nil
}

// Range scans the entries of s between the relative bounds start and end. See
// the package level Range.
func (s *Space) Range(start, end []byte, order kv.Order) *Iterator {
	absStart, absEnd := Bounds(s.prefix, start, end)
	s.opts.logger.Debug("opening namespace scan",
		zap.Binary("prefix", s.prefix),
		zap.Binary("start", absStart),
		zap.Binary("end", absEnd),
		zap.Stringer("order", order),
	)
	sw := s.metrics.scanDuration.Stopwatch()
	sw.Start()
	iter := Range(s.store, s.prefix, start, end, order)
	iter.onClose = func(count int, err error) {
		d := sw.Stop()
		s.metrics.scanCount.Record(count)
		s.opts.logger.Debug("closed namespace scan",
			zap.Binary("prefix", s.prefix),
			zap.Int("count", count),
			zap.Duration("duration", d),
			zap.Error(err),
		)
	}
	return iter
}

// GetTyped decodes the value stored at the relative key in s using the Space's
// codec.
func GetTyped[T any](s *Space, key []byte) (T, error) {
	var v T
	b, err := s.Get(key)
	if err != nil {
		return v, err
	}
	if err := s.opts.codec.Decode(b, &v); err != nil {
		return v, newDecodeError(key, err)
	}
	return v, nil
}

// SetTyped encodes value with the Space's codec and stores it at the relative
// key in s.
func SetTyped[T any](s *Space, key []byte, value T) error {
	b, err := s.opts.codec.Encode(value)
	if err != nil {
		return errors.Wrapf(err, "[keyspace.namespace] - failed to encode value for key %x", key)
	}
	return s.Set(key, b)
}

// RangeOf is Space.Range, decoding each value into a T with the Space's codec.
func RangeOf[T any](s *Space, start, end []byte, order kv.Order) *TypedIterator[T] {
	t := newTypedIterator[T](s.Range(start, end, order), s.opts.codec)
	t.onErr = func() { s.metrics.decodeErrors.Record(1) }
	return t
}
