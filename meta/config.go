package meta

import "github.com/andribas404/aho-corasick/segment"

// MaxPatternLimit is the largest accepted value of Config.MaxPatternLen.
const MaxPatternLimit = 1 << 24

// Config controls compilation and search.
//
// Example:
//
//	config := meta.DefaultConfig().WithStrategy(meta.UseFailureLinks)
//	engine, err := meta.CompileWithConfig(pattern, config)
type Config struct {
	// Strategy selects the automaton form.
	// Default: UseFlat
	Strategy Strategy

	// Wildcard is the pattern byte matching any text byte.
	// Default: '?'
	Wildcard byte

	// MaxPatternLen rejects longer patterns at compile time.
	// Default: 1<<16
	MaxPatternLen int

	// EnablePrefilter lets searches skip the text before the first
	// possible occurrence.
	// Default: true
	EnablePrefilter bool

	// MinPrefilterText is the shortest text on which the prefilter runs.
	// Default: 64
	MinPrefilterText int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:         UseFlat,
		Wildcard:         segment.Wildcard,
		MaxPatternLen:    1 << 16,
		EnablePrefilter:  true,
		MinPrefilterText: 64,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Strategy: UseFlat, UseCompleted or UseFailureLinks
//   - MaxPatternLen: 0 to MaxPatternLimit
//   - MinPrefilterText: >= 0
func (c Config) Validate() error {
	if !c.Strategy.valid() {
		return &ConfigError{
			Field:   "Strategy",
			Message: "unknown strategy " + c.Strategy.String(),
		}
	}
	if c.MaxPatternLen < 0 || c.MaxPatternLen > MaxPatternLimit {
		return &ConfigError{
			Field:   "MaxPatternLen",
			Message: "must be between 0 and 16,777,216",
		}
	}
	if c.MinPrefilterText < 0 {
		return &ConfigError{
			Field:   "MinPrefilterText",
			Message: "must not be negative",
		}
	}
	return nil
}

// WithStrategy returns a new config with the specified strategy
func (c Config) WithStrategy(s Strategy) Config {
	c.Strategy = s
	return c
}

// WithWildcard returns a new config with the specified wildcard byte
func (c Config) WithWildcard(w byte) Config {
	c.Wildcard = w
	return c
}

// WithMaxPatternLen returns a new config with the specified pattern limit
func (c Config) WithMaxPatternLen(n int) Config {
	c.MaxPatternLen = n
	return c
}

// WithPrefilter returns a new config with prefilter enabled/disabled
func (c Config) WithPrefilter(enabled bool) Config {
	c.EnablePrefilter = enabled
	return c
}

// WithMinPrefilterText returns a new config with the specified prefilter threshold
func (c Config) WithMinPrefilterText(n int) Config {
	c.MinPrefilterText = n
	return c
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "wildmatch: invalid config: " + e.Field + ": " + e.Message
}
