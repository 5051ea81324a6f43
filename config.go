package listsort

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tychoish/listsort/ers"
	"github.com/tychoish/listsort/seq"
)

// Config describes a sort. The zero value sorts with the kernel's
// list sort, counts nothing, and logs nothing.
//
// The Extension and Merge fields, when set, override the strategies
// of a timsort variant's preset; they cannot be combined with
// VariantListSort.
type Config struct {
	Variant   Variant            `toml:"variant"`
	Extension *seq.Extension     `toml:"extension"`
	Merge     *seq.MergeStrategy `toml:"merge"`
	// MinGallop is the initial gallop threshold. Zero uses
	// seq.MinGallop; negative values are invalid.
	MinGallop int           `toml:"min_gallop"`
	LogLevel  zapcore.Level `toml:"log_level"`

	// Counter is incremented once for every comparison that does
	// not report equality.
	Counter *uint64 `toml:"-"`
	// Logger receives the debug events of the sort. Nil loggers
	// discard everything.
	Logger *zap.Logger `toml:"-"`
}

// ParseConfig decodes a TOML document into a validated Config. Keys
// that the Config does not know about are an error.
func ParseConfig(in []byte) (*Config, error) {
	conf := &Config{}
	md, err := toml.Decode(string(in), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ers.ErrMalformedConfiguration, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ers.ErrMalformedConfiguration, undecoded)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate reports every problem with the configuration at once, and
// fills in the default gallop threshold. All errors are rooted in
// ers.ErrMalformedConfiguration.
func (c *Config) Validate() error {
	var err error

	if !c.Variant.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: invalid variant %s", ers.ErrMalformedConfiguration, c.Variant))
	}
	if c.Extension != nil && !c.Extension.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: invalid run extension %s", ers.ErrMalformedConfiguration, *c.Extension))
	}
	if c.Merge != nil && !c.Merge.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: invalid merge strategy %s", ers.ErrMalformedConfiguration, *c.Merge))
	}
	if c.Variant == VariantListSort && (c.Extension != nil || c.Merge != nil) {
		err = multierr.Append(err, fmt.Errorf("%w: %s does not take strategy overrides", ers.ErrMalformedConfiguration, c.Variant))
	}
	if c.MinGallop < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: min_gallop %d is negative", ers.ErrMalformedConfiguration, c.MinGallop))
	}
	if c.LogLevel < zapcore.DebugLevel || c.LogLevel > zapcore.FatalLevel {
		err = multierr.Append(err, fmt.Errorf("%w: unsupported log level %s", ers.ErrMalformedConfiguration, c.LogLevel))
	}

	if c.MinGallop == 0 {
		c.MinGallop = seq.MinGallop
	}

	return err
}

// BuildLogger constructs a development logger that writes entries at
// or above the configured level to standard error.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	conf := zap.NewDevelopmentConfig()
	conf.Level = zap.NewAtomicLevelAt(c.LogLevel)
	conf.DisableStacktrace = true
	return conf.Build()
}

// SortOptions resolves the configuration into the options of a
// single sort engine invocation.
func (c *Config) SortOptions() seq.SortOptions {
	opts := seq.SortOptions{
		Extension: c.Variant.Extension(),
		Merge:     c.Variant.Merge(),
		MinGallop: c.MinGallop,
		Counter:   c.Counter,
		Logger:    c.Logger,
	}
	if c.Extension != nil {
		opts.Extension = *c.Extension
	}
	if c.Merge != nil {
		opts.Merge = *c.Merge
	}
	return opts
}
