// Package levelkv implements kv.Store on top of a goleveldb instance.
package levelkv

import (
	"github.com/arya-analytics/keyspace/kv"
	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

// DB implements kv.Store and wraps a goleveldb instance.
type DB struct {
	db        *leveldb.DB
	writeOpts *opt.WriteOptions
}

var _ kv.Store = (*DB)(nil)

// Open opens a goleveldb instance in dirname and wraps it.
func Open(dirname string, opts ...Option) (*DB, error) {
	o := newOptions(opts...)
	var (
		ldb *leveldb.DB
		err error
	)
	if o.inMemory {
		ldb, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		ldb, err = leveldb.OpenFile(dirname, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[keyspace.levelkv] - failed to open db at %q", dirname)
	}
	o.logger.Debug("opened leveldb", zap.String("dirname", dirname), zap.Bool("inMemory", o.inMemory))
	return &DB{db: ldb, writeOpts: &opt.WriteOptions{Sync: o.sync}}, nil
}

// Get implements kv.Reader.
func (d *DB) Get(key []byte) ([]byte, error) {
	v, err := d.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(kv.ErrNotFound, "key %x", key)
	}
	return v, err
}

// Set implements kv.Writer.
func (d *DB) Set(key, value []byte) error { return d.db.Put(key, value, d.writeOpts) }

// Delete implements kv.Writer.
func (d *DB) Delete(key []byte) error { return d.db.Delete(key, d.writeOpts) }

// Range implements kv.Reader. The scan reads from an implicit snapshot taken
// when Range is called.
func (d *DB) Range(start, end []byte, order kv.Order) kv.Iterator {
	if kv.IsEmptyRange(start, end) {
		return kv.EmptyIterator()
	}
	return &iter{
		internal: d.db.NewIterator(&util.Range{Start: start, Limit: end}, nil),
		order:    order,
	}
}

// Close implements io.Closer.
func (d *DB) Close() error { return d.db.Close() }

type iter struct {
	internal iterator.Iterator
	order    kv.Order
	started  bool
	done     bool
	closed   bool
}

func (i *iter) Next() bool {
	if i.closed || i.done {
		return false
	}
	i.done = !i.move()
	return !i.done
}

func (i *iter) move() bool {
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

func (i *iter) Key() []byte { return i.internal.Key() }

func (i *iter) Value() []byte { return i.internal.Value() }

func (i *iter) Error() error { return i.internal.Error() }

func (i *iter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	err := i.internal.Error()
	i.internal.Release()
	return err
}
