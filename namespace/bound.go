package namespace

// Bound returns the exclusive upper bound of the keys that begin with prefix,
// keeping the length of prefix: trailing 0xFF bytes roll over to 0x00 and the
// last byte that isn't 0xFF is incremented.
//
// Two inaccuracies are accepted. If prefix consists only of 0xFF bytes, no
// finite bound exists and Bound returns all zeros. If prefix ends in 0xFF, the
// range [prefix, Bound(prefix)) also holds the shorter key formed by the
// incremented bytes alone (e.g. "fp" for "fo\xff"). Range uses UpperBound,
// which has neither problem.
func Bound(prefix []byte) []byte {
	out := make([]byte, len(prefix))
	copy(out, prefix)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 0xff {
			out[i] = 0
			continue
		}
		out[i]++
		break
	}
	return out
}

// UpperBound returns the smallest key greater than every key that begins with
// prefix, so that [prefix, UpperBound(prefix)) holds exactly those keys.
// Trailing 0xFF bytes are dropped rather than rolled over. Returns nil
// (unbounded) when prefix is empty or consists only of 0xFF bytes, since then
// every key greater than or equal to prefix begins with it.
func UpperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			out := make([]byte, i+1)
			copy(out, prefix)
			out[i]++
			return out
		}
	}
	return nil
}
