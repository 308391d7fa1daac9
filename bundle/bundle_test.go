package bundle

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polyline/codec"
	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
)

func testRoutes() [][]codec.Coordinate {
	return [][]codec.Coordinate{
		{{X: -120.2, Y: 38.5}, {X: -120.95, Y: 40.7}, {X: -126.453, Y: 43.252}},
		{{X: 2.0, Y: 1.0}, {X: 4.0, Y: 3.0}},
		{}, // empty route encodes to an empty record
		{{X: 9.9131118, Y: 54.0702648}, {X: 9.9126013, Y: 54.0702578}},
	}
}

func buildBundle(t *testing.T, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	for _, route := range testRoutes() {
		require.NoError(t, enc.Add(route))
	}
	require.Equal(t, len(testRoutes()), enc.Count())

	data, err := enc.Finish()
	require.NoError(t, err)
	require.Equal(t, 0, enc.Count())

	return data
}

func TestBundle_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			data := buildBundle(t,
				WithPrecision(format.PrecisionDefault),
				WithCompression(compression),
			)

			dec, err := NewDecoder(data)
			require.NoError(t, err)
			require.Equal(t, len(testRoutes()), dec.Count())
			require.Equal(t, format.PrecisionDefault, dec.Precision())
			require.Equal(t, compression, dec.Compression())

			routes, err := dec.Coordinates()
			require.NoError(t, err)
			require.Len(t, routes, len(testRoutes()))

			for i, want := range testRoutes() {
				require.Len(t, routes[i], len(want))
				for j := range want {
					require.InDelta(t, want[j].X, routes[i][j].X, 0.5e-5)
					require.InDelta(t, want[j].Y, routes[i][j].Y, 0.5e-5)
				}
			}
		})
	}
}

func TestBundle_RecordsMatchStandaloneEncoding(t *testing.T) {
	data := buildBundle(t, WithPrecision(format.PrecisionHigh))

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	for i, record := range dec.All() {
		want, err := codec.EncodeCoordinates(testRoutes()[i], format.PrecisionHigh)
		require.NoError(t, err)
		require.Equal(t, want, record)
	}
}

func TestBundle_TableStrategyIdenticalOutput(t *testing.T) {
	loop := buildBundle(t, WithCompression(format.CompressionS2))
	table := buildBundle(t, WithCompression(format.CompressionS2), WithTableLookup())
	require.Equal(t, loop, table)
}

func TestBundle_AddEncoded(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	encoded, err := codec.EncodeCoordinates(testRoutes()[0], format.PrecisionDefault)
	require.NoError(t, err)
	require.NoError(t, enc.AddEncoded(encoded))

	data, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, []string{encoded}, dec.Strings())
}

func TestBundle_Empty(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	data, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Count())
	require.Empty(t, dec.Strings())

	routes, err := dec.Coordinates()
	require.NoError(t, err)
	require.Empty(t, routes)
}

func TestBundle_AddOverflowLeavesBundleUnchanged(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	require.NoError(t, enc.Add(testRoutes()[0]))
	require.ErrorIs(t, enc.Add([]codec.Coordinate{{X: 1e300, Y: 0}}), errs.ErrOverflow)
	require.Equal(t, 1, enc.Count())
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder(WithPrecision(format.MaxPrecision + 1))
	require.ErrorIs(t, err, errs.ErrInvalidPrecision)

	_, err = NewEncoder(WithCompression(format.CompressionType(0xFF)))
	require.Error(t, err)
}

// === Malformed Bundle Tests ===

func TestNewDecoder_HeaderErrors(t *testing.T) {
	valid := buildBundle(t)

	t.Run("short header", func(t *testing.T) {
		_, err := NewDecoder(valid[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint16(data[0:2], 0x1234)
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("bad version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint16(data[0:2], MagicBundleV1&magicMask|0x2)
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidVersion)
	})

	t.Run("bad compression type", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[2] = 0xFF
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("bad precision", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[3] = format.MaxPrecision + 1
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidPrecision)
	})
}

func TestNewDecoder_PayloadErrors(t *testing.T) {
	t.Run("corrupted payload byte", func(t *testing.T) {
		data := buildBundle(t)
		data[HeaderSize] ^= 0xFF
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		data := buildBundle(t)
		_, err := NewDecoder(data[:len(data)-3])
		require.ErrorIs(t, err, errs.ErrTruncatedPayload)
	})

	t.Run("count exceeds records", func(t *testing.T) {
		data := buildBundle(t)
		count := binary.LittleEndian.Uint32(data[4:8])
		binary.LittleEndian.PutUint32(data[4:8], count+1)
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrTruncatedPayload)
	})

	t.Run("count below records", func(t *testing.T) {
		data := buildBundle(t)
		count := binary.LittleEndian.Uint32(data[4:8])
		binary.LittleEndian.PutUint32(data[4:8], count-1)
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidPolylineSize)
	})

	t.Run("malformed record fails Coordinates", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, enc.AddEncoded("_p~iF~ps|U_u")) // unterminated chunk
		data, err := enc.Finish()
		require.NoError(t, err)

		dec, err := NewDecoder(data)
		require.NoError(t, err)

		_, err = dec.Coordinates()
		require.ErrorIs(t, err, errs.ErrUnterminatedChunk)
	})
}
