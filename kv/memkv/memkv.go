// Package memkv implements an in-memory kv.Store backed by a B-tree. It's
// intended for tests and ephemeral namespaces.
package memkv

import (
	"bytes"
	"sync"

	"github.com/arya-analytics/keyspace/kv"
	"github.com/cockroachdb/errors"
	"github.com/google/btree"
)

const degree = 32

type item struct {
	key   []byte
	value []byte
}

func less(a, b item) bool { return bytes.Compare(a.key, b.key) < 0 }

// DB is a goroutine-safe, in-memory kv.Store.
type DB struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[item]
}

var _ kv.Store = (*DB)(nil)

// Open returns a new, empty DB.
func Open() *DB { return &DB{tree: btree.NewG[item](degree, less)} }

// Get implements kv.Reader.
func (d *DB) Get(key []byte) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i, ok := d.tree.Get(item{key: key})
	if !ok {
		return nil, errors.Wrapf(kv.ErrNotFound, "key %x", key)
	}
	return bytes.Clone(i.value), nil
}

// Set implements kv.Writer.
func (d *DB) Set(key, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tree.ReplaceOrInsert(item{key: bytes.Clone(key), value: bytes.Clone(value)})
	return nil
}

// Delete implements kv.Writer.
func (d *DB) Delete(key []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tree.Delete(item{key: key})
	return nil
}

// Range implements kv.Reader. The returned iterator walks a copy-on-write
// clone of the tree taken when Range is called, so writes made during the scan
// are not observed.
func (d *DB) Range(start, end []byte, order kv.Order) kv.Iterator {
	if kv.IsEmptyRange(start, end) {
		return kv.EmptyIterator()
	}
	// Clone updates the copy-on-write context of the original tree.
	d.mu.Lock()
	snapshot := d.tree.Clone()
	d.mu.Unlock()
	return &iterator{snapshot: snapshot, start: start, end: end, order: order}
}

// Close implements io.Closer. Close discards all data in the DB.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tree.Clear(false)
	return nil
}

type iterator struct {
	snapshot *btree.BTreeG[item]
	start    []byte
	end      []byte
	order    kv.Order
	current  item
	started  bool
}

// Next implements kv.Iterator. Each call seeks from the previous key, so the
// iterator holds no more than one item at a time.
func (i *iterator) Next() bool {
	if i.snapshot == nil {
		return false
	}
	var ok bool
	if i.order == kv.Descending {
		i.current, ok = i.prev()
	} else {
		i.current, ok = i.next()
	}
	i.started = true
	if !ok {
		i.snapshot = nil
	}
	return ok
}

// next returns the smallest item after the current one that is below end.
func (i *iterator) next() (found item, ok bool) {
	visit := func(it item) bool {
		if i.started && bytes.Equal(it.key, i.current.key) {
			return true
		}
		if i.end != nil && bytes.Compare(it.key, i.end) >= 0 {
			return false
		}
		found, ok = it, true
		return false
	}
	switch {
	case i.started:
		i.snapshot.AscendGreaterOrEqual(i.current, visit)
	case i.start != nil:
		i.snapshot.AscendGreaterOrEqual(item{key: i.start}, visit)
	default:
		i.snapshot.Ascend(visit)
	}
	return found, ok
}

// prev returns the largest item before the current one that is at or above
// start.
func (i *iterator) prev() (found item, ok bool) {
	var pivot []byte
	if i.started {
		pivot = i.current.key
	} else {
		pivot = i.end
	}
	visit := func(it item) bool {
		if pivot != nil && bytes.Equal(it.key, pivot) {
			return true
		}
		if i.start != nil && bytes.Compare(it.key, i.start) < 0 {
			return false
		}
		found, ok = it, true
		return false
	}
	if pivot == nil {
		i.snapshot.Descend(visit)
	} else {
		i.snapshot.DescendLessOrEqual(item{key: pivot}, visit)
	}
	return found, ok
}

func (i *iterator) Key() []byte { return i.current.key }

func (i *iterator) Value() []byte { return i.current.value }

func (i *iterator) Error() error { return nil }

func (i *iterator) Close() error {
	i.snapshot = nil
	i.current = item{}
	return nil
}
