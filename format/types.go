package format

type (
	StrategyType    uint8
	CompressionType uint8
)

const (
	StrategyLoop  StrategyType = 0x1 // StrategyLoop represents the reference bit-shift loop implementation.
	StrategyTable StrategyType = 0x2 // StrategyTable represents the precomputed lookup-table implementation.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// PrecisionDefault is the conventional 5-decimal-digit precision used by
	// Google's public polyline format.
	PrecisionDefault = 5

	// PrecisionHigh is the 6-decimal-digit precision used by providers such as
	// OSRM and Valhalla.
	PrecisionHigh = 6

	// MaxPrecision is the largest accepted precision. Beyond 12 digits the
	// scale factor exhausts the float64 mantissa for earth-scale coordinates.
	MaxPrecision = 12
)

func (s StrategyType) String() string {
	switch s {
	case StrategyLoop:
		return "Loop"
	case StrategyTable:
		return "Table"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
