package bundle

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/polyline/codec"
	"github.com/arloliu/polyline/compress"
	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
	"github.com/arloliu/polyline/internal/hash"
	"github.com/arloliu/polyline/internal/pool"
)

// EncoderOption configures a bundle Encoder at construction time.
type EncoderOption func(*Encoder) error

// WithPrecision sets the precision the bundled polylines are encoded with.
// It is recorded in the bundle header, making the bundle self-describing.
func WithPrecision(precision int) EncoderOption {
	return func(e *Encoder) error {
		if precision < 0 || precision > format.MaxPrecision {
			return fmt.Errorf("%w: %d (want 0..%d)", errs.ErrInvalidPrecision, precision, format.MaxPrecision)
		}
		e.precision = precision

		return nil
	}
}

// WithCompression sets the payload compression algorithm. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	}
}

// WithTableLookup makes the embedded polyline encoder use the lookup-table
// strategy. Bundle output is unchanged; only encoding throughput differs.
func WithTableLookup() EncoderOption {
	return func(e *Encoder) error {
		e.strategy = format.StrategyTable

		return nil
	}
}

// Encoder accumulates encoded polylines and frames them into a bundle blob.
//
// Unlike the codec types, an Encoder is stateful and must not be shared
// between goroutines while records are being added.
type Encoder struct {
	precision   int
	compression format.CompressionType
	strategy    format.StrategyType

	enc   *codec.Encoder
	buf   *pool.ByteBuffer
	count int
}

// NewEncoder creates a bundle encoder.
//
// Defaults: precision 5 (format.PrecisionDefault), no compression, loop
// strategy for the embedded polyline encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		precision:   format.PrecisionDefault,
		compression: format.CompressionNone,
		strategy:    format.StrategyLoop,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	enc, err := codec.NewEncoder(
		codec.WithPrecision(e.precision),
		codec.WithStrategy(e.strategy),
	)
	if err != nil {
		return nil, err
	}
	e.enc = enc
	e.buf = pool.GetBundleBuffer()

	return e, nil
}

// Add encodes one coordinate sequence at the bundle's precision and appends
// it as a record. Encode failures leave the bundle unchanged.
func (e *Encoder) Add(coords []codec.Coordinate) error {
	encoded, err := e.enc.Encode(coords)
	if err != nil {
		return err
	}

	e.appendRecord(encoded)

	return nil
}

// AddEncoded appends an already-encoded polyline string as a record.
//
// The string is framed as-is; it must have been encoded at the bundle's
// precision for decoding to yield meaningful coordinates.
func (e *Encoder) AddEncoded(encoded string) error {
	e.appendRecord(encoded)

	return nil
}

func (e *Encoder) appendRecord(encoded string) {
	e.buf.Grow(binary.MaxVarintLen32 + len(encoded))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(encoded)))
	e.buf.MustWrite([]byte(encoded))
	e.count++
}

// Count returns the number of records added since the last Finish.
func (e *Encoder) Count() int {
	return e.count
}

// Finish frames the accumulated records into a bundle blob and resets the
// encoder for reuse.
//
// The payload checksum is computed before compression, so decoders verify
// integrity against the uncompressed bytes.
func (e *Encoder) Finish() ([]byte, error) {
	payload := e.buf.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, errs.ErrInvalidPolylineSize
	}

	hdr := header{
		Magic:            MagicBundleV1,
		Compression:      e.compression,
		Precision:        uint8(e.precision),
		Count:            uint32(e.count),
		Checksum:         hash.Sum(payload),
		UncompressedSize: uint32(len(payload)),
	}

	cdc, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := cdc.Compress(payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = hdr.appendTo(out)
	out = append(out, compressed...)

	pool.PutBundleBuffer(e.buf)
	e.buf = pool.GetBundleBuffer()
	e.count = 0

	return out, nil
}
