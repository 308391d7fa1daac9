package codec

import (
	"fmt"

	"github.com/arloliu/polyline/errs"
	"github.com/arloliu/polyline/format"
)

type config struct {
	precision int
	strategy  format.StrategyType
}

// Option configures an Encoder or Decoder at construction time.
type Option func(*config) error

func defaultConfig() config {
	return config{
		precision: format.PrecisionDefault,
		strategy:  format.StrategyLoop,
	}
}

// WithPrecision sets the number of decimal digits preserved by the fixed-point
// quantization. Accepted values are 0..format.MaxPrecision; the precision is
// fixed for an entire encode or decode call, never per coordinate.
func WithPrecision(precision int) Option {
	return func(c *config) error {
		if precision < 0 || precision > format.MaxPrecision {
			return fmt.Errorf("%w: %d (want 0..%d)", errs.ErrInvalidPrecision, precision, format.MaxPrecision)
		}
		c.precision = precision

		return nil
	}
}

// WithTableLookup selects the precomputed lookup-table strategy instead of the
// reference bit-shift loop. Output and error behavior are identical; only the
// constant factor changes.
func WithTableLookup() Option {
	return func(c *config) error {
		c.strategy = format.StrategyTable

		return nil
	}
}

// WithStrategy selects the chunk processing strategy explicitly.
func WithStrategy(strategy format.StrategyType) Option {
	return func(c *config) error {
		switch strategy {
		case format.StrategyLoop, format.StrategyTable:
			c.strategy = strategy
		default:
			return fmt.Errorf("invalid strategy type: %d", strategy)
		}

		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}
