// Package errs defines the sentinel error values shared across the polyline
// packages.
//
// Errors returned by the codec and bundle packages wrap these sentinels, so
// callers can classify failures with errors.Is without depending on the
// concrete error types:
//
//	coords, err := polyline.Decode(encoded)
//	if errors.Is(err, errs.ErrInvalidByte) {
//	    // malformed text
//	}
//	if errors.Is(err, errs.ErrOverflow) {
//	    // value out of representable range
//	}
package errs

import "errors"

// Codec errors.
var (
	// ErrInvalidPrecision indicates a precision outside the accepted
	// 0..format.MaxPrecision range.
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrOverflow indicates a value that cannot be represented in the codec's
	// signed 64-bit fixed-point range: an encode-side coordinate whose scaled
	// or delta value exceeds int64, or a decode-side chunk run longer than the
	// integer width allows. The chunk-count check fires before the offending
	// shift is performed.
	ErrOverflow = errors.New("value overflows fixed-point range")

	// ErrInvalidByte indicates a byte outside the valid encoded range (63..126)
	// where a chunk byte was expected.
	ErrInvalidByte = errors.New("invalid polyline byte")

	// ErrUnterminatedChunk indicates input that ends while a continuation bit
	// is still set (truncated mid-value).
	ErrUnterminatedChunk = errors.New("unterminated polyline chunk")

	// ErrTruncatedCoordinate indicates input that ends between the two axes of
	// a point: the first axis decoded cleanly but the second never starts.
	ErrTruncatedCoordinate = errors.New("truncated coordinate")
)

// Bundle errors.
var (
	ErrInvalidMagic        = errors.New("invalid bundle magic")
	ErrInvalidVersion      = errors.New("unsupported bundle version")
	ErrInvalidHeaderSize   = errors.New("invalid bundle header size")
	ErrChecksumMismatch    = errors.New("bundle checksum mismatch")
	ErrTruncatedPayload    = errors.New("truncated bundle payload")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidPolylineSize = errors.New("invalid polyline record size")
)
