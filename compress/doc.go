// Package compress provides compression and decompression codecs for bundled
// polyline payloads.
//
// Encoded polylines are already compact, but routes sharing road geometry
// produce highly repetitive chunk runs, so bundles of many polylines still
// compress well with general-purpose algorithms. Compression is applied at
// the bundle payload level, after polyline encoding.
//
// Supported algorithms:
//   - None (format.CompressionNone): bypass, fastest, largest
//   - Zstd (format.CompressionZstd): best ratio, moderate speed; uses the cgo
//     gozstd binding when cgo is available and the pure-Go implementation
//     otherwise
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fast decompression, moderate ratio
//
// All codecs implement the Codec interface and are safe for concurrent use.
package compress
