package parser

import "go.uber.org/zap"

// Config is the serializable decoder configuration.
type Config struct {
	// StrictFields rejects ascii records with fields left over after the
	// last declared property. By default they are ignored.
	StrictFields bool
	// MaxListLength rejects list counts above this value. Zero means no limit.
	MaxListLength int
}

// DefaultConfig returns the permissive default configuration.
func DefaultConfig() Config {
	return Config{}
}

// Option configures a Parser.
type Option func(*options)

type options struct {
	logger *zap.Logger
	Config
}

// WithLogger sets the logger used by this parser instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrictFields rejects trailing fields on ascii record lines.
func WithStrictFields() Option {
	return func(o *options) {
		o.StrictFields = true
	}
}

// WithMaxListLength rejects list properties longer than n.
func WithMaxListLength(n int) Option {
	return func(o *options) {
		o.MaxListLength = n
	}
}

// WithConfig applies every field of c.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.Config = c
	}
}
