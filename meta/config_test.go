package meta

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		field  string
	}{
		{"bad_strategy", DefaultConfig().WithStrategy(Strategy(42)), "Strategy"},
		{"negative_strategy", DefaultConfig().WithStrategy(Strategy(-1)), "Strategy"},
		{"negative_max_len", DefaultConfig().WithMaxPatternLen(-1), "MaxPatternLen"},
		{"huge_max_len", DefaultConfig().WithMaxPatternLen(MaxPatternLimit + 1), "MaxPatternLen"},
		{"negative_min_text", DefaultConfig().WithMinPrefilterText(-5), "MinPrefilterText"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestConfigBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, MaxPatternLimit} {
		if err := DefaultConfig().WithMaxPatternLen(n).Validate(); err != nil {
			t.Errorf("MaxPatternLen %d: %v", n, err)
		}
	}
}

func TestWithBuilders(t *testing.T) {
	c := DefaultConfig().
		WithStrategy(UseCompleted).
		WithWildcard('.').
		WithMaxPatternLen(10).
		WithPrefilter(false).
		WithMinPrefilterText(0)

	if c.Strategy != UseCompleted || c.Wildcard != '.' || c.MaxPatternLen != 10 ||
		c.EnablePrefilter || c.MinPrefilterText != 0 {
		t.Errorf("unexpected config %+v", c)
	}
	if d := DefaultConfig(); d.Strategy != UseFlat || d.Wildcard != '?' {
		t.Errorf("builders modified the default config: %+v", d)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{UseFlat, UseCompleted, UseFailureLinks} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStrategy("lazy"); err == nil {
		t.Error("ParseStrategy(lazy) should fail")
	}
	if got := Strategy(9).String(); got != "Strategy(9)" {
		t.Errorf("String() = %q", got)
	}
}
