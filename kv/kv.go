// Package kv defines the narrow capability interface that the namespace layer
// requires from an ordered, byte-keyed store. Implementations live in the
// subpackages (pebblekv, badgerkv, levelkv, memkv).
package kv

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Reader.Get when a key does not exist.
var ErrNotFound = errors.New("[keyspace.kv] - key not found")

// |||||| ORDER ||||||

// Order is the direction of a range scan.
type Order uint8

const (
	// Ascending scans keys in increasing byte-lexicographic order.
	Ascending Order = iota
	// Descending scans keys in decreasing byte-lexicographic order.
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "unknown"
}

// |||||| STORE ||||||

// Reader reads from an ordered key-value store.
type Reader interface {
	// Get returns the value stored at key. Returns an error satisfying
	// errors.Is(err, ErrNotFound) if the key does not exist.
	Get(key []byte) ([]byte, error)
	// Range opens an iterator over the half-open range [start, end) in the given
	// order. A nil start is unbounded below and a nil end is unbounded above.
	// Errors encountered while opening or advancing the scan are reported by
	// Iterator.Error.
	Range(start, end []byte, order Order) Iterator
}

// Writer writes to an ordered key-value store.
type Writer interface {
	Set(key, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error
}

// Store is a Reader and Writer that holds resources which must be released.
type Store interface {
	Reader
	Writer
	io.Closer
}

// |||||| ITERATOR ||||||

// Iterator is a pull-based cursor over a range of key-value pairs. The first
// call to Next positions the iterator on the first pair in scan order.
//
// Key and Value are only valid until the next call to Next. Iterator is not
// goroutine safe, but it's safe to open several iterators over the same store.
// Close must be called on every exit path, including early termination.
type Iterator interface {
	// Next advances the iterator. Returns false when the range is exhausted or
	// an error occurred.
	Next() bool
	Key() []byte
	Value() []byte
	// Error returns the first error encountered by the iterator.
	Error() error
	// Close releases the iterator and returns any error encountered.
	Close() error
}

// IsEmptyRange returns true if [start, end) can't contain any keys.
func IsEmptyRange(start, end []byte) bool {
	return start != nil && end != nil && bytes.Compare(start, end) >= 0
}

// EmptyIterator returns an Iterator that yields nothing.
func EmptyIterator() Iterator { return emptyIterator{} }

type emptyIterator struct{}

func (emptyIterator) Next() bool    { return false }
func (emptyIterator) Key() []byte   { return nil }
func (emptyIterator) Value() []byte { return nil }
func (emptyIterator) Error() error  { return nil }
func (emptyIterator) Close() error  { return nil }
