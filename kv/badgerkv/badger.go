// Package badgerkv implements kv.Store on top of a Badger DB instance.
package badgerkv

import (
	"bytes"

	"github.com/arya-analytics/keyspace/kv"
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// DB implements kv.Store and wraps a Badger DB instance.
type DB struct {
	db *badger.DB
}

var _ kv.Store = (*DB)(nil)

// Open opens a Badger DB in dirname and wraps it.
func Open(dirname string, opts ...Option) (*DB, error) {
	o := newOptions(opts...)
	bo := badger.DefaultOptions(dirname).
		WithInMemory(o.inMemory).
		WithSyncWrites(o.sync).
		WithLogger(logger{o.logger.Sugar()})
	if o.inMemory {
		bo = bo.WithDir("").WithValueDir("")
	}
	bdb, err := badger.Open(bo)
	if err != nil {
		return nil, errors.Wrapf(err, "[keyspace.badgerkv] - failed to open db at %q", dirname)
	}
	o.logger.Debug("opened badger db", zap.String("dirname", dirname), zap.Bool("inMemory", o.inMemory))
	return &DB{db: bdb}, nil
}

// Wrap wraps an already opened Badger DB. Closing the returned DB closes db.
func Wrap(db *badger.DB) *DB { return &DB{db: db} }

// Get implements kv.Reader.
func (d *DB) Get(key []byte) (v []byte, err error) {
	err = d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		v, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(kv.ErrNotFound, "key %x", key)
	}
	return v, err
}

// Set implements kv.Writer.
func (d *DB) Set(key, value []byte) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bytes.Clone(key), bytes.Clone(value))
	})
}

// Delete implements kv.Writer.
func (d *DB) Delete(key []byte) error {
	return d.db.Update(func(txn *badger.Txn) error { return txn.Delete(bytes.Clone(key)) })
}

// Range implements kv.Reader. The scan runs inside a read-only transaction
// that is discarded when the iterator is closed.
func (d *DB) Range(start, end []byte, order kv.Order) kv.Iterator {
	if kv.IsEmptyRange(start, end) {
		return kv.EmptyIterator()
	}
	txn := d.db.NewTransaction(false)
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.Reverse = order == kv.Descending
	return &iterator{
		txn:      txn,
		internal: txn.NewIterator(iterOpts),
		start:    start,
		end:      end,
		order:    order,
	}
}

// Close implements io.Closer.
func (d *DB) Close() error { return d.db.Close() }

type iterator struct {
	txn        *badger.Txn
	internal   *badger.Iterator
	start, end []byte
	order      kv.Order
	started    bool
	done       bool
	closed     bool
	value      []byte
	err        error
}

// Next implements kv.Iterator.
func (i *iterator) Next() bool {
	if i.closed || i.done || i.err != nil {
		return false
	}
	if !i.started {
		i.started = true
		i.seekFirst()
	} else {
		i.internal.Next()
	}
	if !i.internal.Valid() || !i.inBounds(i.internal.Item().Key()) {
		i.done = true
		return false
	}
	i.value, i.err = i.internal.Item().ValueCopy(i.value[:0])
	return i.err == nil
}

func (i *iterator) seekFirst() {
	if i.order == kv.Ascending {
		if i.start == nil {
			i.internal.Rewind()
		} else {
			i.internal.Seek(i.start)
		}
		return
	}
	if i.end == nil {
		i.internal.Rewind()
		return
	}
	// A reverse seek lands on the largest key <= end, but end is exclusive.
	i.internal.Seek(i.end)
	if i.internal.Valid() && bytes.Equal(i.internal.Item().Key(), i.end) {
		i.internal.Next()
	}
}

func (i *iterator) inBounds(key []byte) bool {
	if i.order == kv.Ascending {
		return i.end == nil || bytes.Compare(key, i.end) < 0
	}
	return i.start == nil || bytes.Compare(key, i.start) >= 0
}

// Key implements kv.Iterator.
func (i *iterator) Key() []byte { return i.internal.Item().Key() }

// Value implements kv.Iterator.
func (i *iterator) Value() []byte { return i.value }

// Error implements kv.Iterator.
func (i *iterator) Error() error { return i.err }

// Close implements kv.Iterator.
func (i *iterator) Close() error {
	if i.closed {
		return i.err
	}
	i.closed = true
	i.internal.Close()
	i.txn.Discard()
	return i.err
}
