package codec

// Coordinate is a single point of a polyline. X is the longitude-like axis
// and Y the latitude-like axis; the codec does not validate either against
// real-world ranges. Values are immutable once read and carry no identity
// beyond their value.
type Coordinate struct {
	X float64
	Y float64
}

const (
	chunkBits = 5
	chunkMask = 0x1f

	// continuationBit marks every chunk byte except the most significant one.
	continuationBit = 0x20

	// chunkBias is added to each 5-bit-plus-continuation group, shifting the
	// output into the printable range. chunkMaxByte is the highest byte value
	// the encoder can produce (0x20|0x1f + 63).
	chunkBias    = 63
	chunkMaxByte = 126

	// maxShift is the largest bit position a chunk may be shifted to when
	// reassembling a folded value. A run needing shift beyond this would
	// exceed the 64-bit accumulator; it is rejected before the shift happens.
	maxShift = 64 - chunkBits

	// maxChunkBytes is the most bytes a single folded value may occupy; a run
	// needing a chunk at shift maxShift or beyond is rejected.
	maxChunkBytes = 12
)

// maxFolded is the largest folded value maxChunkBytes chunks can carry. The
// encoder refuses deltas beyond it so that every encoded string stays within
// the decoder's chunk-count bound.
const maxFolded = uint64(1)<<(maxChunkBytes*chunkBits) - 1

// maxScaled is 2^63 as a float64, the first magnitude that no longer fits in
// int64. Scaled values must satisfy -maxScaled <= v < maxScaled.
const maxScaled = float64(1 << 63)

// zigzag folds a signed delta into an unsigned value: the magnitude shifted
// left one bit, with all bits inverted when the delta is negative.
func zigzag(delta int64) uint64 {
	return uint64(delta<<1) ^ uint64(delta>>63)
}

// unfold reverses zigzag: a set low bit marks a negative delta.
func unfold(folded uint64) int64 {
	if folded&1 != 0 {
		return int64(^(folded >> 1))
	}

	return int64(folded >> 1)
}
