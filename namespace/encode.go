package namespace

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// MaxSegmentLength is the longest segment that fits in a 2-byte length tag.
const MaxSegmentLength = math.MaxUint16

const lengthTagSize = 2

// EncodeNested encodes segments into a single namespace prefix. Returns an
// error marked ErrSegmentTooLong if any segment is longer than
// MaxSegmentLength. The returned slice has no spare capacity.
func EncodeNested(segments ...[]byte) ([]byte, error) {
	size := 0
	for i, s := range segments {
		if len(s) > MaxSegmentLength {
			return nil, errors.Wrapf(ErrSegmentTooLong, "segment %d has length %d, max is %d", i, len(s), MaxSegmentLength)
		}
		size += lengthTagSize + len(s)
	}
	out := make([]byte, size)
	off := 0
	for _, s := range segments {
		binary.BigEndian.PutUint16(out[off:], uint16(len(s)))
		off += lengthTagSize
		off += copy(out[off:], s)
	}
	return out, nil
}

// MustEncodeNested is EncodeNested, but panics on error.
func MustEncodeNested(segments ...[]byte) []byte {
	p, err := EncodeNested(segments...)
	if err != nil {
		panic(err)
	}
	return p
}

// Concat returns prefix followed by key in a newly allocated slice.
func Concat(prefix, key []byte) []byte {
	out := make([]byte, len(prefix)+len(key))
	copy(out[copy(out, prefix):], key)
	return out
}

// Trim returns a copy of key with its first len(prefix) bytes removed. key is
// assumed to begin with prefix.
func Trim(prefix, key []byte) []byte {
	out := make([]byte, len(key)-len(prefix))
	copy(out, key[len(prefix):])
	return out
}
