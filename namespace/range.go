package namespace

import (
	"bytes"

	"github.com/arya-analytics/keyspace/kv"
)

// Range scans the keys stored under prefix in r. start and end are relative to
// prefix (they must not include it); a nil start scans from the first key in
// the namespace and a nil end scans to the last. The scan covers
// [prefix+start, prefix+end) in the given order.
//
// The returned Iterator yields keys with prefix removed. It must be closed.
func Range(r kv.Reader, prefix, start, end []byte, order kv.Order) *Iterator {
	absStart, absEnd := Bounds(prefix, start, end)
	return &Iterator{internal: r.Range(absStart, absEnd, order), prefix: prefix}
}

// Bounds returns the absolute [start, end) range Range scans for the given
// prefix and relative bounds.
func Bounds(prefix, start, end []byte) ([]byte, []byte) {
	absStart := Concat(prefix, start)
	var absEnd []byte
	if end != nil {
		absEnd = Concat(prefix, end)
	} else {
		absEnd = UpperBound(prefix)
	}
	return absStart, absEnd
}

// Iterator is a pull-based cursor over the entries of a namespace. Keys are
// relative to the namespace prefix. Keys and values returned by Iterator are
// owned by the caller.
//
// Iterator is not goroutine safe. Close must be called on every exit path; it
// releases the underlying scan and is safe to call more than once.
type Iterator struct {
	internal kv.Iterator
	prefix   []byte
	key      []byte
	value    []byte
	closed   bool
	err      error
	onClose  func(count int, err error)
	count    int
}

// Next advances the iterator to the next entry. Returns false when the
// namespace is exhausted or the underlying store failed; use Error to
// distinguish the two.
func (i *Iterator) Next() bool {
	if i.closed || !i.internal.Next() {
		i.key, i.value = nil, nil
		return false
	}
	i.key = Trim(i.prefix, i.internal.Key())
	i.value = bytes.Clone(i.internal.Value())
	i.count++
	return true
}

// Key returns the relative key of the current entry.
func (i *Iterator) Key() []byte { return i.key }

// Value returns the raw value of the current entry.
func (i *Iterator) Value() []byte { return i.value }

// Error returns the error encountered by the underlying store, if any.
func (i *Iterator) Error() error {
	if i.closed {
		return i.err
	}
	return i.internal.Error()
}

// Close releases the underlying scan.
func (i *Iterator) Close() error {
	if i.closed {
		return i.err
	}
	i.closed = true
	i.err = i.internal.Close()
	if i.onClose != nil {
		i.onClose(i.count, i.err)
	}
	return i.err
}
