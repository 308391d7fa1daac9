package bundle

import (
	"encoding/binary"

	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
)

const (
	// MagicBundleV1 is the version 1 magic number for the polyline bundle
	// format: the magic occupies bits 4-15, the format version bits 0-3.
	MagicBundleV1 = 0xEC11

	magicMask   = 0xFFF0
	versionMask = 0x000F
	versionV1   = 0x1

	// HeaderSize is the fixed byte size of the bundle header.
	HeaderSize = 20
)

// header is the fixed-size section at the start of a bundle. All fields are
// serialized little-endian.
type header struct {
	Magic            uint16
	Compression      format.CompressionType
	Precision        uint8
	Count            uint32
	Checksum         uint64
	UncompressedSize uint32
}

func (h *header) appendTo(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, h.Magic)
	dst = append(dst, uint8(h.Compression), h.Precision)
	dst = binary.LittleEndian.AppendUint32(dst, h.Count)
	dst = binary.LittleEndian.AppendUint64(dst, h.Checksum)
	dst = binary.LittleEndian.AppendUint32(dst, h.UncompressedSize)

	return dst
}

func (h *header) parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Magic = binary.LittleEndian.Uint16(data[0:2])
	if h.Magic&magicMask != MagicBundleV1&magicMask {
		return errs.ErrInvalidMagic
	}
	if h.Magic&versionMask != versionV1 {
		return errs.ErrInvalidVersion
	}

	h.Compression = format.CompressionType(data[2])
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompression
	}

	h.Precision = data[3]
	if h.Precision > format.MaxPrecision {
		return errs.ErrInvalidPrecision
	}

	h.Count = binary.LittleEndian.Uint32(data[4:8])
	h.Checksum = binary.LittleEndian.Uint64(data[8:16])
	h.UncompressedSize = binary.LittleEndian.Uint32(data[16:20])

	return nil
}
