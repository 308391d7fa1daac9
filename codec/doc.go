// Package codec implements the Google Encoded Polyline format: a lossy,
// compact text encoding of an ordered sequence of coordinates into a
// printable ASCII string, and the inverse decoding operation.
//
// The encoding quantizes each coordinate to a fixed-point integer
// (10^precision scale, round half away from zero), delta-chains successive
// points per axis, folds the signed delta with zigzag encoding, and emits the
// result as 5-bit groups with a continuation bit (0x20) and a bias offset of
// 63, least-significant group first. Output bytes are always in the printable
// 63..126 range.
//
// # Axis Order
//
// Coordinates enter and leave as {X, Y} pairs where X is the longitude-like
// axis and Y the latitude-like axis. On the wire each point is emitted Y-axis
// first, then X-axis, matching the Google polyline convention. The format
// itself does not record axis order, so callers mixing implementations must
// pay attention to the order they feed in.
//
// # Strategies
//
// Two interchangeable implementations are provided: the reference bit-shift
// loop (format.StrategyLoop, the default) and a precomputed lookup-table
// variant (format.StrategyTable, selected with WithTableLookup). They produce
// byte-identical output for every valid input and the identical error kind at
// the identical byte offset for every malformed input; the table variant
// exists purely for throughput.
//
// # Errors
//
// All failures are typed and all-or-nothing: no partial string or partial
// sequence is ever returned. Decode errors carry the byte offset of the
// offending input and unwrap to the sentinels in the errs package
// (errs.ErrInvalidByte, errs.ErrUnterminatedChunk, errs.ErrTruncatedCoordinate,
// errs.ErrOverflow); encode errors carry the coordinate index. Overflow is
// detected before the arithmetic that would wrap, so malformed input can
// never reach an out-of-range shift.
//
// # Basic Usage
//
//	coords := []codec.Coordinate{{X: -120.2, Y: 38.5}, {X: -120.95, Y: 40.7}}
//	encoded, err := codec.EncodeCoordinates(coords, format.PrecisionDefault)
//	if err != nil {
//	    return err
//	}
//	decoded, err := codec.DecodePolyline(encoded, format.PrecisionDefault)
//
// For repeated use or non-default configuration, construct an Encoder or
// Decoder once and reuse it; both are safe for concurrent use since all
// per-call state is local.
package codec
