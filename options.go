package listsort

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tychoish/listsort/ers"
)

// OptionProvider modifies a configuration value. Providers are applied
// in order, so later providers override earlier ones.
type OptionProvider[T any] func(T) error

// ApplyOptions applies every non-nil provider to the option value and
// then, if the value has a Validate method, validates it. All errors,
// including panics in a provider, are aggregated.
func ApplyOptions[T any](opt T, opts ...OptionProvider[T]) (err error) {
	defer func() { err = multierr.Append(err, ers.ParsePanic(recover())) }()
	for idx := range opts {
		if opts[idx] == nil {
			continue
		}
		err = multierr.Append(err, opts[idx](opt))
	}

	if validator, ok := any(opt).(interface{ Validate() error }); ok {
		err = multierr.Append(err, validator.Validate())
	}
	return err
}

// Join combines the providers into a single provider that applies
// them in order.
func (op OptionProvider[T]) Join(opts ...OptionProvider[T]) OptionProvider[T] {
	return func(opt T) (err error) {
		for _, next := range append([]OptionProvider[T]{op}, opts...) {
			if next != nil {
				err = multierr.Append(err, next(opt))
			}
		}
		return err
	}
}

// WithConfig replaces the whole configuration with a copy of conf.
func WithConfig(conf *Config) OptionProvider[*Config] {
	return func(c *Config) error {
		if conf == nil {
			return fmt.Errorf("nil config: %w", ers.ErrInvalidInput)
		}
		*c = *conf
		return nil
	}
}

// WithVariant selects the sort algorithm.
func WithVariant(v Variant) OptionProvider[*Config] {
	return func(c *Config) error {
		if !v.Valid() {
			return fmt.Errorf("%s: %w", v, ers.ErrInvalidInput)
		}
		c.Variant = v
		return nil
	}
}

// WithCounter sets the counter that observes every comparison that
// does not report equality. The counter is not reset.
func WithCounter(counter *uint64) OptionProvider[*Config] {
	return func(c *Config) error { c.Counter = counter; return nil }
}

// WithLogger sets the logger for the sort. A nil logger disables
// logging.
func WithLogger(logger *zap.Logger) OptionProvider[*Config] {
	return func(c *Config) error { c.Logger = logger; return nil }
}

// WithMinGallop sets the initial gallop threshold. Values less than 1
// are an error.
func WithMinGallop(n int) OptionProvider[*Config] {
	return func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("min gallop %d: %w", n, ers.ErrInvalidInput)
		}
		c.MinGallop = n
		return nil
	}
}
