package dispatcher

// Config configures dispatcher behavior.
type Config struct {
	// RecoverFromPanic turns handler panics into error results.
	RecoverFromPanic bool

	// EnableMetrics enables per-action dispatch statistics.
	EnableMetrics bool
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}
