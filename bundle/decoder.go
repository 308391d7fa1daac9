package bundle

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/arloliu/polyline/codec"
	"github.com/arloliu/polyline/compress"
	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
	"github.com/arloliu/polyline/internal/hash"
)

// Decoder reads the records of a bundle blob.
//
// All validation happens in NewDecoder: header fields, payload checksum and
// record framing are checked up front, so the accessors below cannot fail.
// A Decoder is read-only after construction and safe for concurrent use.
type Decoder struct {
	precision   int
	compression format.CompressionType
	records     []string
}

// NewDecoder parses and validates a bundle blob.
//
// Errors unwrap to the errs sentinels: ErrInvalidHeaderSize, ErrInvalidMagic,
// ErrInvalidVersion, ErrInvalidCompression, ErrInvalidPrecision,
// ErrChecksumMismatch, ErrTruncatedPayload and ErrInvalidPolylineSize.
// Nothing is yielded from a bundle that fails any check.
func NewDecoder(data []byte) (*Decoder, error) {
	var hdr header
	if err := hdr.parse(data); err != nil {
		return nil, err
	}

	cdc, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := cdc.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, err
	}

	if uint64(len(payload)) > math.MaxUint32 || uint32(len(payload)) != hdr.UncompressedSize {
		return nil, errs.ErrTruncatedPayload
	}
	if hash.Sum(payload) != hdr.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	records, err := splitRecords(payload, int(hdr.Count))
	if err != nil {
		return nil, err
	}

	return &Decoder{
		precision:   int(hdr.Precision),
		compression: hdr.Compression,
		records:     records,
	}, nil
}

// splitRecords walks the uvarint length-prefixed records, validating the
// framing against the payload bounds and the header count.
func splitRecords(payload []byte, count int) ([]string, error) {
	records := make([]string, 0, count)
	pos := 0
	for range count {
		length, n := binary.Uvarint(payload[pos:])
		if n <= 0 {
			return nil, errs.ErrTruncatedPayload
		}
		if length > math.MaxInt32 {
			return nil, errs.ErrInvalidPolylineSize
		}
		pos += n
		if uint64(len(payload)-pos) < length {
			return nil, errs.ErrTruncatedPayload
		}

		records = append(records, string(payload[pos:pos+int(length)]))
		pos += int(length)
	}

	if pos != len(payload) {
		// Trailing bytes beyond the declared record count.
		return nil, errs.ErrInvalidPolylineSize
	}

	return records, nil
}

// Count returns the number of records in the bundle.
func (d *Decoder) Count() int {
	return len(d.records)
}

// Precision returns the precision recorded in the bundle header.
func (d *Decoder) Precision() int {
	return d.precision
}

// Compression returns the payload compression recorded in the bundle header.
func (d *Decoder) Compression() format.CompressionType {
	return d.compression
}

// All iterates over the encoded polyline strings in record order.
func (d *Decoder) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, record := range d.records {
			if !yield(i, record) {
				return
			}
		}
	}
}

// Strings returns the encoded polyline strings in record order.
func (d *Decoder) Strings() []string {
	return d.records
}

// Coordinates decodes every record into its coordinate sequence using the
// bundle's precision. A malformed record fails the whole call with the
// record's *codec.DecodeError; no partial result is returned.
func (d *Decoder) Coordinates() ([][]codec.Coordinate, error) {
	dec, err := codec.NewDecoder(codec.WithPrecision(d.precision))
	if err != nil {
		return nil, err
	}

	out := make([][]codec.Coordinate, 0, len(d.records))
	for _, record := range d.records {
		coords, err := dec.Decode(record)
		if err != nil {
			return nil, err
		}
		out = append(out, coords)
	}

	return out, nil
}
