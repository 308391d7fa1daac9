package codec

import "github.com/arloliu/polyline/errs"

// Lookup-table strategy: precomputed tables replace the per-chunk bias and
// continuation arithmetic of the reference loop. Both directions must stay
// byte-identical to the loop strategy for valid input and report the same
// error kind at the same offset for malformed input; table_test.go pins that
// equivalence.

// chunkChars maps a 6-bit chunk (continuation bit included) to its biased
// output byte.
var chunkChars = buildChunkChars()

func buildChunkChars() (t [64]byte) {
	for i := range t {
		t[i] = byte(i) + chunkBias
	}

	return t
}

// chunkEntry is the decode table row for one input byte.
type chunkEntry struct {
	value uint8 // low 5 bits of the debiased byte
	cont  bool  // continuation bit set
	valid bool  // byte inside the 63..126 encoded range
}

var chunkEntries = buildChunkEntries()

func buildChunkEntries() (t [256]chunkEntry) {
	for b := chunkBias; b <= chunkMaxByte; b++ {
		chunk := uint8(b - chunkBias)
		t[b] = chunkEntry{
			value: chunk & chunkMask,
			cont:  chunk&continuationBit != 0,
			valid: true,
		}
	}

	return t
}

// emitChunksTable is the table counterpart of emitChunksLoop.
func emitChunksTable(dst []byte, delta int64) []byte {
	folded := zigzag(delta)
	for folded >= continuationBit {
		dst = append(dst, chunkChars[folded&chunkMask|continuationBit])
		folded >>= chunkBits
	}

	return append(dst, chunkChars[folded])
}

// readValueTable is the table counterpart of readValueLoop.
func readValueTable(s string, pos int) (uint64, int, error) {
	var folded uint64
	var shift uint
	for i := pos; i < len(s); i++ {
		entry := chunkEntries[s[i]]
		if !entry.valid {
			return 0, 0, &DecodeError{Offset: i, err: errs.ErrInvalidByte}
		}
		if shift > maxShift {
			return 0, 0, &DecodeError{Offset: i, err: errs.ErrOverflow}
		}

		folded |= uint64(entry.value) << shift
		shift += chunkBits

		if !entry.cont {
			return folded, i + 1, nil
		}
	}

	return 0, 0, &DecodeError{Offset: len(s), err: errs.ErrUnterminatedChunk}
}
