package host

import (
	"go.uber.org/zap"

	"github.com/wippyai/textconv/utf"
)

// DefaultModuleName is the import module name guests link against.
const DefaultModuleName = "textconv"

type config struct {
	logger  *zap.Logger
	metrics *Metrics
	name    string
	flags   utf.Flags
}

// Option configures the host module.
type Option func(*config)

// WithModuleName sets the import module name.
func WithModuleName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithFlags sets flags applied to every call in addition to the ones the
// guest passes.
func WithFlags(flags utf.Flags) Option {
	return func(c *config) {
		c.flags = flags
	}
}

// WithLogger overrides the package logger for this module.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

func newConfig(opts []Option) *config {
	c := &config{name: DefaultModuleName}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = Logger()
	}
	return c
}
