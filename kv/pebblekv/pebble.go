// Package pebblekv implements kv.Store on top of a Pebble DB instance.
package pebblekv

import (
	"bytes"

	"github.com/arya-analytics/keyspace/kv"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"
)

// DB implements kv.Store and wraps a Pebble DB instance.
type DB struct {
	db   *pebble.DB
	opts *options
}

var _ kv.Store = (*DB)(nil)

// Open opens a Pebble DB in dirname and wraps it. See Option for
// configuration.
func Open(dirname string, opts ...Option) (*DB, error) {
	o := newOptions(opts...)
	pdb, err := pebble.Open(dirname, &pebble.Options{
		FS:     o.fs,
		Logger: o.logger.Sugar(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "[keyspace.pebblekv] - failed to open db at %q", dirname)
	}
	o.logger.Debug("opened pebble db", zap.String("dirname", dirname))
	return &DB{db: pdb, opts: o}, nil
}

// Wrap wraps an already opened Pebble DB. Closing the returned DB closes db.
func Wrap(db *pebble.DB, opts ...Option) *DB {
	return &DB{db: db, opts: newOptions(opts...)}
}

// Get implements kv.Reader.
func (d *DB) Get(key []byte) ([]byte, error) {
	v, c, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(kv.ErrNotFound, "key %x", key)
	}
	if err != nil {
		return nil, err
	}
	// v is only valid until c is closed.
	v = bytes.Clone(v)
	return v, c.Close()
}

// Set implements kv.Writer.
func (d *DB) Set(key, value []byte) error {
	return d.db.Set(key, value, d.opts.writeOpts())
}

// Delete implements kv.Writer.
func (d *DB) Delete(key []byte) error {
	return d.db.Delete(key, d.opts.writeOpts())
}

// Range implements kv.Reader.
func (d *DB) Range(start, end []byte, order kv.Order) kv.Iterator {
	if kv.IsEmptyRange(start, end) {
		return kv.EmptyIterator()
	}
	iter, err := d.db.NewIter(&pebble.IterOptions{LowerBound: start, UpperBound: end})
	if err != nil {
		return &iterator{err: err}
	}
	return &iterator{internal: iter, order: order}
}

// Close implements io.Closer.
func (d *DB) Close() error { return d.db.Close() }

type iterator struct {
	internal *pebble.Iterator
	order    kv.Order
	started  bool
	done     bool
	closed   bool
	err      error
}

// Next implements kv.Iterator.
func (i *iterator) Next() bool {
	if i.internal == nil || i.closed || i.done {
		return false
	}
	i.done = !i.move()
	return !i.done
}

// move advances the underlying iterator in scan order. It must not be called
// again once it returns false.
func (i *iterator) move() bool {
	if !i.started {
		i.started = true
		if i.order == kv.Descending {
			return i.internal.Last()
		}
		return i.internal.First()
	}
	if i.order == kv.Descending {
		return i.internal.Prev()
	}
	return i.internal.Next()
}

// Key implements kv.Iterator.
func (i *iterator) Key() []byte { return i.internal.Key() }

// Value implements kv.Iterator.
func (i *iterator) Value() []byte { return i.internal.Value() }

// Error implements kv.Iterator.
func (i *iterator) Error() error {
	if i.err != nil || i.internal == nil || i.closed {
		return i.err
	}
	return i.internal.Error()
}

// Close implements kv.Iterator.
func (i *iterator) Close() error {
	if i.internal == nil || i.closed {
		return i.err
	}
	i.closed = true
	if err := i.internal.Close(); err != nil && i.err == nil {
		i.err = err
	}
	return i.err
}
