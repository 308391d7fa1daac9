package codec

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
)

// === Decoder Tests ===

func TestDecoder_KnownVectors_Precision5(t *testing.T) {
	coords, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@", 5)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	want := []Coordinate{
		{X: -120.2, Y: 38.5},
		{X: -120.95, Y: 40.7},
		{X: -126.453, Y: 43.252},
	}
	for i, w := range want {
		require.InDelta(t, w.X, coords[i].X, 1e-9)
		require.InDelta(t, w.Y, coords[i].Y, 1e-9)
	}
}

func TestDecoder_KnownVectors_Precision6(t *testing.T) {
	coords, err := DecodePolyline("~fdtjD~niivI_oiivI__tsmT~fdtjD~niivI", 6)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	want := []Coordinate{
		{X: -180.0, Y: -90.0},
		{X: 180.0, Y: 90.0},
		{X: 0.0, Y: 0.0},
	}
	for i, w := range want {
		require.InDelta(t, w.X, coords[i].X, 1e-9)
		require.InDelta(t, w.Y, coords[i].Y, 1e-9)
	}
}

func TestDecoder_RoundingBelowPrecision(t *testing.T) {
	coords, err := DecodePolyline("cr_iI}co{@?dB", 5)
	require.NoError(t, err)
	require.Len(t, coords, 2)
	require.InDelta(t, 9.91311, coords[0].X, 1e-9)
	require.InDelta(t, 54.07026, coords[0].Y, 1e-9)
	require.InDelta(t, 9.91260, coords[1].X, 1e-9)
	require.InDelta(t, 54.07026, coords[1].Y, 1e-9)
}

func TestDecoder_EmptyInput(t *testing.T) {
	coords, err := DecodePolyline("", 5)
	require.NoError(t, err)
	require.Empty(t, coords)
}

func TestDecoder_InvalidByte(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{
			name:       "control character",
			input:      "_p~iF\x1f~ps|U",
			wantOffset: 5,
		},
		{
			name:       "byte above encoded range",
			input:      "_p~iF~ps|U_u\xf0\x9f\x97\x91lLnnqC",
			wantOffset: 12,
		},
		{
			name:       "space at start",
			input:      " _p~iF",
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := DecodePolyline(tt.input, 5)
			require.Nil(t, coords)
			require.ErrorIs(t, err, errs.ErrInvalidByte)

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			require.Equal(t, tt.wantOffset, decErr.Offset)
		})
	}
}

func TestDecoder_UnterminatedChunk(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{
			name:       "ends mid chunk run",
			input:      "_p~iF~ps|U_u",
			wantOffset: 12,
		},
		{
			name:       "all continuation bytes",
			input:      "ugh_ugh",
			wantOffset: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := DecodePolyline(tt.input, 5)
			require.Nil(t, coords)
			require.ErrorIs(t, err, errs.ErrUnterminatedChunk)

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			require.Equal(t, tt.wantOffset, decErr.Offset)
		})
	}
}

func TestDecoder_TruncatedCoordinate(t *testing.T) {
	// Three complete chunk runs: the third point has a Y axis but no X axis.
	coords, err := DecodePolyline("_ibE_seK_seK", 5)
	require.Nil(t, coords)
	require.ErrorIs(t, err, errs.ErrTruncatedCoordinate)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, 8, decErr.Offset)
}

func TestDecoder_ChunkCountOverflow(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{
			name: "thirteen continuation chunks",
			// Each '`' carries the continuation bit; the 13th chunk would
			// shift past the 64-bit accumulator.
			input:      strings.Repeat("`", 14),
			wantOffset: 12,
		},
		{
			name:       "plain text forcing a long run",
			input:      "invalid_polyline_that_should_be_handled_gracefully",
			wantOffset: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := DecodePolyline(tt.input, 5)
			require.Nil(t, coords)
			require.ErrorIs(t, err, errs.ErrOverflow)

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			require.Equal(t, tt.wantOffset, decErr.Offset)
		})
	}
}

func TestDecoder_AccumulatorOverflow(t *testing.T) {
	// Each 12-byte run decodes to the maximum negative delta (-2^59); the
	// per-axis accumulator hits MinInt64 exactly after 16 runs and must
	// reject the 17th before it wraps.
	run := strings.Repeat("~", 11) + "^"
	input := strings.Repeat(run, 34)

	coords, err := DecodePolyline(input, 5)
	require.Nil(t, coords)
	require.ErrorIs(t, err, errs.ErrOverflow)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, 32*len(run), decErr.Offset)
}

func TestDecoder_ErrorClassificationIdempotent(t *testing.T) {
	inputs := []string{
		"_p~iF\x1f~ps|U",
		"_p~iF~ps|U_u",
		"_ibE_seK_seK",
		strings.Repeat("`", 14),
	}

	for _, input := range inputs {
		_, err1 := DecodePolyline(input, 5)
		_, err2 := DecodePolyline(input, 5)
		require.Error(t, err1)
		require.Equal(t, err1.Error(), err2.Error())
	}
}

func TestDecoder_InvalidPrecision(t *testing.T) {
	_, err := DecodePolyline("_ibE_seK", -1)
	require.ErrorIs(t, err, errs.ErrInvalidPrecision)

	_, err = DecodePolyline("_ibE_seK", format.MaxPrecision+1)
	require.ErrorIs(t, err, errs.ErrInvalidPrecision)
}

// === Round-Trip Tests ===

func TestRoundTrip_KnownVectors(t *testing.T) {
	coords := []Coordinate{
		{X: -120.2, Y: 38.5},
		{X: -120.95, Y: 40.7},
		{X: -126.453, Y: 43.252},
	}

	for _, precision := range []int{format.PrecisionDefault, format.PrecisionHigh} {
		encoded, err := EncodeCoordinates(coords, precision)
		require.NoError(t, err)

		decoded, err := DecodePolyline(encoded, precision)
		require.NoError(t, err)
		require.Len(t, decoded, len(coords))

		tolerance := 0.5 * math.Pow10(-precision)
		for i := range coords {
			require.InDelta(t, coords[i].X, decoded[i].X, tolerance)
			require.InDelta(t, coords[i].Y, decoded[i].Y, tolerance)
		}
	}
}

func TestRoundTrip_RandomCoordinates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, precision := range []int{format.PrecisionDefault, format.PrecisionHigh} {
		coords := make([]Coordinate, 200)
		for i := range coords {
			coords[i] = Coordinate{
				X: rng.Float64()*360.0 - 180.0,
				Y: rng.Float64()*180.0 - 90.0,
			}
		}

		encoded, err := EncodeCoordinates(coords, precision)
		require.NoError(t, err)

		decoded, err := DecodePolyline(encoded, precision)
		require.NoError(t, err)
		require.Len(t, decoded, len(coords))

		tolerance := 0.5 * math.Pow10(-precision)
		for i := range coords {
			require.InDelta(t, coords[i].X, decoded[i].X, tolerance)
			require.InDelta(t, coords[i].Y, decoded[i].Y, tolerance)
		}
	}
}
