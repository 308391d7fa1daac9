// Package polyline implements the Google Encoded Polyline format: a lossy,
// compact transcoding between ordered sequences of coordinates and printable
// ASCII strings.
//
// The codec is pure and stateless - no I/O, no persistence, no networking.
// Encoding quantizes each coordinate to 10^precision fixed-point, delta-chains
// successive points, zigzag-folds the signed deltas and emits them as biased
// 5-bit chunk bytes (values 63..126); decoding inverts the process. Round
// trips are lossy by design, bounded by 0.5 * 10^-precision per axis.
//
// # Basic Usage
//
//	import "github.com/arloliu/polyline"
//
//	coords := []polyline.Coordinate{
//	    {X: -120.2, Y: 38.5},
//	    {X: -120.95, Y: 40.7},
//	    {X: -126.453, Y: 43.252},
//	}
//
//	encoded, err := polyline.Encode(coords)
//	// encoded == "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
//
//	decoded, err := polyline.Decode(encoded)
//
// X is the longitude-like axis and Y the latitude-like axis; on the wire each
// point is emitted Y first, matching the Google convention. The default
// precision is 5; use the WithPrecision variants for providers that encode
// with 6 (format.PrecisionHigh).
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, simplifying the most common use cases. For strategy selection,
// reusable encoder/decoder instances or offset-carrying error details, use
// the codec package directly. The bundle package frames many encoded
// polylines into a single checksummed, optionally compressed blob.
package polyline

import (
	"github.com/arloliu/polyline/codec"
	"github.com/arloliu/polyline/format"
	"github.com/arloliu/polyline/internal/hash"
)

// Coordinate is a single {X, Y} point of a polyline.
type Coordinate = codec.Coordinate

// DefaultPrecision is the conventional 5-digit precision of Google's public
// polyline format.
const DefaultPrecision = format.PrecisionDefault

// Encode encodes the coordinate sequence at the default precision of 5.
//
// An empty sequence encodes to the empty string. On failure the returned
// error is a *codec.EncodeError wrapping errs.ErrOverflow.
func Encode(coords []Coordinate) (string, error) {
	return codec.EncodeCoordinates(coords, format.PrecisionDefault)
}

// EncodeWithPrecision encodes the coordinate sequence preserving the given
// number of decimal digits (0..format.MaxPrecision).
func EncodeWithPrecision(coords []Coordinate, precision int) (string, error) {
	return codec.EncodeCoordinates(coords, precision)
}

// Decode decodes an encoded polyline string at the default precision of 5.
//
// The empty string decodes to an empty sequence. On failure the returned
// error is a *codec.DecodeError carrying the offending byte offset and
// wrapping one of the errs sentinels.
func Decode(encoded string) ([]Coordinate, error) {
	return codec.DecodePolyline(encoded, format.PrecisionDefault)
}

// DecodeWithPrecision decodes an encoded polyline string with the given
// number of decimal digits (0..format.MaxPrecision). The precision must match
// the one used for encoding; the format does not record it.
func DecodeWithPrecision(encoded string, precision int) ([]Coordinate, error) {
	return codec.DecodePolyline(encoded, precision)
}

// Fingerprint computes the xxHash64 of an encoded polyline string.
//
// Two equal strings always share a fingerprint, which makes it a cheap cache
// or deduplication key for encoded geometries. It is not a cryptographic
// hash.
func Fingerprint(encoded string) uint64 {
	return hash.ID(encoded)
}
