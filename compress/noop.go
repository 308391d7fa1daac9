package compress

// NoOpCompressor bypasses data without compression.
//
// Useful for benchmark baselines and for bundles whose payload is too small
// for compression to pay off.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without any processing or copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without any processing or copying.
//
// The same aliasing note as Compress applies.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
