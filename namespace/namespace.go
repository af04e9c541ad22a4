// Package namespace lets a flat, byte-ordered key-value store hold nested
// namespaces that never collide.
//
// A namespace is identified by a sequence of segments. Each segment is encoded
// as a 2-byte big-endian length followed by its bytes, so the namespace
// ("foo") can never share keys with ("food"), and ("a", "bc") can never share
// keys with ("ab", "c"):
//
//	EncodeNested([]byte("a"), []byte("ab")) == "\x00\x01a\x00\x02ab"
//
// All keys stored under a namespace share its encoded prefix and lie in the
// half-open range [prefix, Bound(prefix)). Range scans that range on a
// kv.Reader and strips the prefix from the returned keys.
package namespace

import "github.com/cockroachdb/errors"

var (
	// ErrSegmentTooLong is returned when a segment is longer than MaxSegmentLength.
	ErrSegmentTooLong = errors.New("[keyspace.namespace] - segment too long")
	// ErrDecode is attached to entries whose value could not be decoded.
	ErrDecode = errors.New("[keyspace.namespace] - failed to decode value")
)

func newDecodeError(key []byte, err error) error {
	return errors.Mark(errors.Wrapf(err, "[keyspace.namespace] - failed to decode value at key %x", key), ErrDecode)
}
