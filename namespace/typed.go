package namespace

import (
	"github.com/arya-analytics/keyspace/codec"
	"github.com/arya-analytics/keyspace/kv"
)

// Entry is a decoded namespace entry. If the stored value could not be
// decoded, Err is set (marked ErrDecode) and Value is the zero value.
type Entry[T any] struct {
	Key   []byte
	Value T
	Err   error
}

// TypedIterator decodes the values yielded by an Iterator with a codec. A
// value that fails to decode does not stop iteration: its Entry carries the
// error and the next call to Next moves on.
type TypedIterator[T any] struct {
	*Iterator
	codec codec.Codec
	entry Entry[T]
	onErr func()
}

// RangeTyped is Range, decoding each value into a T with c.
func RangeTyped[T any](r kv.Reader, prefix, start, end []byte, order kv.Order, c codec.Codec) *TypedIterator[T] {
	return newTypedIterator[T](Range(r, prefix, start, end, order), c)
}

func newTypedIterator[T any](iter *Iterator, c codec.Codec) *TypedIterator[T] {
	if c == nil {
		c = codec.JSON
	}
	return &TypedIterator[T]{Iterator: iter, codec: c}
}

// Next advances the iterator and decodes the value at the new position.
func (t *TypedIterator[T]) Next() bool {
	t.entry = Entry[T]{}
	if !t.Iterator.Next() {
		return false
	}
	t.entry.Key = t.Iterator.Key()
	if err := t.codec.Decode(t.Iterator.Value(), &t.entry.Value); err != nil {
		var zero T
		t.entry.Value = zero
		t.entry.Err = newDecodeError(t.entry.Key, err)
		if t.onErr != nil {
			t.onErr()
		}
	}
	return true
}

// Value returns the decoded entry at the current position.
func (t *TypedIterator[T]) Value() Entry[T] { return t.entry }

// Collect drains the iterator into a slice and closes it. Entries that failed
// to decode are included with their Err set. The returned error is the store
// error, if any.
func (t *TypedIterator[T]) Collect() ([]Entry[T], error) {
	var entries []Entry[T]
	for t.Next() {
		entries = append(entries, t.Value())
	}
	if err := t.Error(); err != nil {
		_ = t.Close()
		return entries, err
	}
	return entries, t.Close()
}
