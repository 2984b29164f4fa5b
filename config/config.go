// Package config loads altersql settings from TOML files.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap/zapcore"

	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/translator"
)

// Config contains configuration options.
type Config struct {
	// Dialect of the input SQL: mysql, mariadb or tidb.
	Dialect string `toml:"dialect" json:"dialect"`
	// ANSIQuotes reads double-quoted text as identifiers.
	ANSIQuotes bool `toml:"ansi-quotes" json:"ansi-quotes"`

	Format Format `toml:"format" json:"format"`
	Log    Log    `toml:"log" json:"log"`
}

// Format is the format section of config.
type Format struct {
	// KeywordCase is upper or lower.
	KeywordCase string `toml:"keyword-case" json:"keyword-case"`
	// TargetDialect of the rendered text. Empty means the source dialect.
	TargetDialect string `toml:"target-dialect" json:"target-dialect"`
	// QuoteStyle is preserve, always or minimal.
	QuoteStyle string `toml:"quote-style" json:"quote-style"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json or text.
	Format string `toml:"format" json:"format"`
	// Log file, empty logs to stderr.
	File string `toml:"file" json:"file"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Dialect: "mysql",
		Format: Format{
			KeywordCase: translator.KeywordUpper.String(),
			QuoteStyle:  translator.QuotePreserve.String(),
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load overlays the settings in confFile onto c. Unknown keys are rejected.
func (c *Config) Load(confFile string) error {
	md, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Errorf("config file %s contained invalid configuration options: %s",
			confFile, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every setting that names a dialect, style or level.
func (c *Config) Validate() error {
	if _, err := c.SourceDialect(); err != nil {
		return err
	}
	if _, err := c.FormatOptions(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Annotate(err, "log.level")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("invalid log.format %q (want text or json)", c.Log.Format)
	}
	return nil
}

// SourceDialect resolves the input dialect.
func (c *Config) SourceDialect() (*dialect.Dialect, error) {
	d, err := dialect.Lookup(c.Dialect)
	if err != nil {
		return nil, errors.Annotate(err, "dialect")
	}
	if c.ANSIQuotes {
		d = d.WithANSIQuotes()
	}
	return d, nil
}

// FormatOptions converts the format section to translator options.
func (c *Config) FormatOptions() (translator.Options, error) {
	kc, err := translator.ParseKeywordCase(c.Format.KeywordCase)
	if err != nil {
		return translator.Options{}, errors.Annotate(err, "format.keyword-case")
	}
	qs, err := translator.ParseQuoteStyle(c.Format.QuoteStyle)
	if err != nil {
		return translator.Options{}, errors.Annotate(err, "format.quote-style")
	}

	opts := translator.Options{KeywordCase: kc, QuoteStyle: qs}
	if c.Format.TargetDialect == "" {
		opts.TargetDialect, err = c.SourceDialect()
	} else {
		opts.TargetDialect, err = dialect.Lookup(c.Format.TargetDialect)
		err = errors.Annotate(err, "format.target-dialect")
	}
	if err != nil {
		return translator.Options{}, err
	}
	return opts, nil
}

// ToLogConfig converts *Log to *log.Config.
func (l *Log) ToLogConfig() *log.Config {
	return &log.Config{
		Level:  l.Level,
		Format: l.Format,
		File:   log.FileLogConfig{Filename: l.File},
	}
}
