// Package bundle frames many encoded polylines into a single checksummed,
// optionally compressed blob for storage or transport.
//
// A bundle is a fixed little-endian header followed by a payload of uvarint
// length-prefixed polyline strings:
//
//	offset 0-1   magic and format version (0xEC11)
//	offset 2     compression type (format.CompressionType)
//	offset 3     precision the polylines were encoded with
//	offset 4-7   polyline count
//	offset 8-15  xxHash64 checksum of the uncompressed payload
//	offset 16-19 uncompressed payload size
//	offset 20-   payload, compressed per the compression type
//
// The header records the precision so that a bundle is self-describing; the
// polyline format itself carries no precision information. The checksum is
// computed over the uncompressed payload and verified before any record is
// handed out, so a Decoder never yields data from a corrupted bundle.
//
// Usage:
//
//	enc, _ := bundle.NewEncoder(
//	    bundle.WithPrecision(format.PrecisionHigh),
//	    bundle.WithCompression(format.CompressionZstd),
//	)
//	for _, route := range routes {
//	    if err := enc.Add(route); err != nil {
//	        return err
//	    }
//	}
//	blob, err := enc.Finish()
//
//	dec, err := bundle.NewDecoder(blob)
//	for i, encoded := range dec.All() {
//	    ...
//	}
package bundle
