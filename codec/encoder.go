package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
	"github.com/arloliu/polyline/internal/pool"
)

// EncodeError reports an encode failure together with the index of the
// coordinate that caused it. It unwraps to one of the errs sentinels.
type EncodeError struct {
	// Index is the position of the offending coordinate in the input sequence.
	Index int

	err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode coordinate %d: %v", e.Index, e.err)
}

func (e *EncodeError) Unwrap() error {
	return e.err
}

// Encoder transforms coordinate sequences into encoded polyline strings.
//
// An Encoder holds only its configuration; all running state (the per-axis
// previous scaled values) is local to each Encode call, so a single Encoder
// is safe for concurrent use.
type Encoder struct {
	precision int
	factor    float64
	emit      func(dst []byte, delta int64) []byte
}

// NewEncoder creates a polyline encoder.
//
// Defaults: precision 5 (format.PrecisionDefault) and the reference loop
// strategy. Use WithPrecision, WithTableLookup or WithStrategy to override.
//
// Returns an error if an option is invalid.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	emit := emitChunksLoop
	if cfg.strategy == format.StrategyTable {
		emit = emitChunksTable
	}

	return &Encoder{
		precision: cfg.precision,
		factor:    math.Pow10(cfg.precision),
		emit:      emit,
	}, nil
}

// Precision returns the number of decimal digits this encoder preserves.
func (e *Encoder) Precision() int {
	return e.precision
}

// Encode encodes the coordinate sequence into a polyline string.
//
// Each point is quantized to 10^precision fixed-point (round half away from
// zero), delta-chained against the previous point per axis, zigzag folded and
// emitted as biased 5-bit chunks, Y axis first then X axis. An empty sequence
// encodes to the empty string.
//
// On failure no partial string is returned. The error is an *EncodeError
// wrapping errs.ErrOverflow when a scaled value, a delta, or the resulting
// chunk run exceeds the representable fixed-point range (extreme magnitudes,
// NaN or infinite input).
func (e *Encoder) Encode(coords []Coordinate) (string, error) {
	if len(coords) == 0 {
		return "", nil
	}

	buf := pool.GetLineBuffer()
	defer pool.PutLineBuffer(buf)

	// Typical points at precision 5/6 take 2-6 bytes per axis.
	buf.Grow(len(coords) * 12)

	var prevX, prevY int64
	for i, coord := range coords {
		scaledY, err := e.scale(coord.Y)
		if err != nil {
			return "", &EncodeError{Index: i, err: err}
		}
		scaledX, err := e.scale(coord.X)
		if err != nil {
			return "", &EncodeError{Index: i, err: err}
		}

		deltaY, err := deltaOf(scaledY, prevY)
		if err != nil {
			return "", &EncodeError{Index: i, err: err}
		}
		deltaX, err := deltaOf(scaledX, prevX)
		if err != nil {
			return "", &EncodeError{Index: i, err: err}
		}

		if zigzag(deltaY) > maxFolded || zigzag(deltaX) > maxFolded {
			return "", &EncodeError{Index: i, err: errs.ErrOverflow}
		}

		buf.B = e.emit(buf.B, deltaY)
		buf.B = e.emit(buf.B, deltaX)

		prevX, prevY = scaledX, scaledY
	}

	return buf.String(), nil
}

// scale quantizes one axis value to its fixed-point representation.
func (e *Encoder) scale(value float64) (int64, error) {
	scaled := math.Round(value * e.factor)
	if math.IsNaN(scaled) || scaled >= maxScaled || scaled < -maxScaled {
		return 0, errs.ErrOverflow
	}

	return int64(scaled), nil
}

// deltaOf computes scaled-prev, rejecting deltas outside the int64 range
// before they reach the zigzag fold.
func deltaOf(scaled, prev int64) (int64, error) {
	delta := scaled - prev
	if (scaled^prev) < 0 && (delta^scaled) < 0 {
		return 0, errs.ErrOverflow
	}

	return delta, nil
}

// emitChunksLoop appends the chunk run for one folded delta using the
// reference bit-shift loop: low 5 bits per chunk, least significant first,
// continuation bit on every chunk but the last, bias 63 on each byte.
func emitChunksLoop(dst []byte, delta int64) []byte {
	folded := zigzag(delta)
	for folded >= continuationBit {
		dst = append(dst, byte(folded&chunkMask|continuationBit)+chunkBias)
		folded >>= chunkBits
	}

	return append(dst, byte(folded)+chunkBias)
}

// EncodeCoordinates encodes coords at the given precision using the reference
// loop strategy. It is shorthand for NewEncoder(WithPrecision(precision))
// followed by Encode.
func EncodeCoordinates(coords []Coordinate, precision int) (string, error) {
	enc, err := NewEncoder(WithPrecision(precision))
	if err != nil {
		return "", err
	}

	return enc.Encode(coords)
}
