package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
)

// DecodeError reports a decode failure together with the byte offset of the
// offending input. It unwraps to one of the errs sentinels, so callers can
// tell malformed text (errs.ErrInvalidByte, errs.ErrUnterminatedChunk,
// errs.ErrTruncatedCoordinate) apart from values out of representable range
// (errs.ErrOverflow).
type DecodeError struct {
	// Offset is the byte position in the input the error was detected at:
	// the offending byte for invalid bytes and rejected chunk counts, the end
	// of input for unterminated chunks, and the start of the incomplete point
	// for truncated coordinates and accumulator overflow.
	Offset int

	err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode polyline at offset %d: %v", e.Offset, e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

// Decoder transforms encoded polyline strings back into coordinate sequences.
//
// Like Encoder, a Decoder holds only configuration; the per-axis running
// accumulators are local to each Decode call, so a single Decoder is safe for
// concurrent use.
type Decoder struct {
	precision int
	factor    float64
	read      func(s string, pos int) (uint64, int, error)
}

// NewDecoder creates a polyline decoder.
//
// Defaults: precision 5 (format.PrecisionDefault) and the reference loop
// strategy. The precision must match the one the string was encoded with;
// the format carries no record of it.
//
// Returns an error if an option is invalid.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	read := readValueLoop
	if cfg.strategy == format.StrategyTable {
		read = readValueTable
	}

	return &Decoder{
		precision: cfg.precision,
		factor:    math.Pow10(cfg.precision),
		read:      read,
	}, nil
}

// Precision returns the number of decimal digits this decoder assumes.
func (d *Decoder) Precision() int {
	return d.precision
}

// Decode decodes an encoded polyline string into its coordinate sequence.
//
// The input is scanned byte by byte: each point is reassembled from two chunk
// runs (Y axis first, then X), zigzag unfolded, accumulated against the
// per-axis running value and divided back by 10^precision. An empty string
// decodes to an empty sequence.
//
// On failure no partial sequence is returned; the error is a *DecodeError
// carrying the byte offset. Chunk runs longer than the 64-bit accumulator
// allows are rejected before the out-of-range shift is performed.
func (d *Decoder) Decode(s string) ([]Coordinate, error) {
	coords := make([]Coordinate, 0, len(s)/4)

	var accX, accY int64
	pos := 0
	for pos < len(s) {
		pointStart := pos

		foldedY, next, err := d.read(s, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		if pos >= len(s) {
			return nil, &DecodeError{Offset: pointStart, err: errs.ErrTruncatedCoordinate}
		}

		foldedX, next, err := d.read(s, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		accY, err = addChecked(accY, unfold(foldedY))
		if err != nil {
			return nil, &DecodeError{Offset: pointStart, err: err}
		}
		accX, err = addChecked(accX, unfold(foldedX))
		if err != nil {
			return nil, &DecodeError{Offset: pointStart, err: err}
		}

		coords = append(coords, Coordinate{
			X: float64(accX) / d.factor,
			Y: float64(accY) / d.factor,
		})
	}

	return coords, nil
}

// addChecked adds a delta to a running accumulator, rejecting sums outside
// the int64 range before they reach the output.
func addChecked(acc, delta int64) (int64, error) {
	sum := acc + delta
	if (acc^delta) >= 0 && (sum^acc) < 0 {
		return 0, errs.ErrOverflow
	}

	return sum, nil
}

// readValueLoop reassembles one zigzag-folded value starting at pos using the
// reference loop: subtract the bias, accumulate the low 5 bits of each byte
// shifted by 5*index, stop at the first byte without the continuation bit.
// Returns the folded value and the position just past the run.
func readValueLoop(s string, pos int) (uint64, int, error) {
	var folded uint64
	var shift uint
	for i := pos; i < len(s); i++ {
		b := s[i]
		if b < chunkBias || b > chunkMaxByte {
			return 0, 0, &DecodeError{Offset: i, err: errs.ErrInvalidByte}
		}
		if shift > maxShift {
			// One more chunk would shift past the accumulator width.
			return 0, 0, &DecodeError{Offset: i, err: errs.ErrOverflow}
		}

		chunk := b - chunkBias
		folded |= uint64(chunk&chunkMask) << shift
		shift += chunkBits

		if chunk&continuationBit == 0 {
			return folded, i + 1, nil
		}
	}

	return 0, 0, &DecodeError{Offset: len(s), err: errs.ErrUnterminatedChunk}
}

// DecodePolyline decodes s at the given precision using the reference loop
// strategy. It is shorthand for NewDecoder(WithPrecision(precision)) followed
// by Decode.
func DecodePolyline(s string, precision int) ([]Coordinate, error) {
	dec, err := NewDecoder(WithPrecision(precision))
	if err != nil {
		return nil, err
	}

	return dec.Decode(s)
}
