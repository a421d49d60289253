package gridkit

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pagecraft/gridkit/grid"
)

// Config represents the grid.toml configuration file.
type Config struct {
	Grid        GridSection       `toml:"grid"`
	Breakpoints BreakpointSection `toml:"breakpoints"`
	Adaptation  AdaptationSection `toml:"adaptation"`
}

// GridSection configures the column grid itself.
type GridSection struct {
	// Columns is the grid width. The designer uses a 24-column grid.
	Columns int `toml:"columns"`
}

// BreakpointSection configures the pixel thresholds between breakpoints.
type BreakpointSection struct {
	TabletMin  int `toml:"tablet_min"`
	DesktopMin int `toml:"desktop_min"`
}

// AdaptationSection configures responsive resolution behavior.
type AdaptationSection struct {
	// Strategy is one of "mobile-first", "desktop-first" or "closest".
	Strategy string `toml:"strategy"`
	// Fallback names the breakpoint consulted when a responsive value has
	// no entry in the strategy's scan range.
	Fallback string `toml:"fallback"`
	// DebounceMs is the resize quiet period before the breakpoint is
	// recomputed.
	DebounceMs       int  `toml:"debounce_ms"`
	SmoothTransition bool `toml:"smooth_transition"`
	TransitionMs     int  `toml:"transition_ms"`
}

// DefaultConfig returns the standard 24-column, mobile-first configuration.
func DefaultConfig() Config {
	reg := grid.DefaultRegistry()
	return Config{
		Grid: GridSection{Columns: grid.DefaultColumns},
		Breakpoints: BreakpointSection{
			TabletMin:  reg.TabletMin,
			DesktopMin: reg.DesktopMin,
		},
		Adaptation: AdaptationSection{
			Strategy:     grid.MobileFirst.String(),
			Fallback:     grid.Mobile.String(),
			DebounceMs:   100,
			TransitionMs: 300,
		},
	}
}

// LoadConfig reads a grid.toml file. Fields absent from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the whole configuration and reports the first problem.
func (c Config) Validate() error {
	if c.Grid.Columns <= 0 {
		return fmt.Errorf("grid.columns must be positive, got %d", c.Grid.Columns)
	}
	if err := c.Registry().Validate(); err != nil {
		return err
	}
	if _, err := grid.ParseStrategy(c.Adaptation.Strategy); err != nil {
		return err
	}
	if _, err := grid.ParseBreakpoint(c.Adaptation.Fallback); err != nil {
		return err
	}
	if c.Adaptation.DebounceMs < 0 {
		return fmt.Errorf("adaptation.debounce_ms must not be negative, got %d", c.Adaptation.DebounceMs)
	}
	return nil
}

// Registry returns the breakpoint thresholds as a grid.Registry.
func (c Config) Registry() grid.Registry {
	return grid.Registry{
		TabletMin:  c.Breakpoints.TabletMin,
		DesktopMin: c.Breakpoints.DesktopMin,
	}
}

// Adaptation returns the resolution settings as a grid.AdaptationConfig.
// Call Validate first; unparseable names fall back to defaults here.
func (c Config) AdaptationConfig() grid.AdaptationConfig {
	cfg := grid.DefaultAdaptation()
	if s, err := grid.ParseStrategy(c.Adaptation.Strategy); err == nil {
		cfg.Strategy = s
	}
	if b, err := grid.ParseBreakpoint(c.Adaptation.Fallback); err == nil {
		cfg.Fallback = b
	}
	cfg.SmoothTransition = c.Adaptation.SmoothTransition
	if c.Adaptation.TransitionMs > 0 {
		cfg.TransitionDuration = time.Duration(c.Adaptation.TransitionMs) * time.Millisecond
	}
	return cfg
}

// DebounceWindow returns the configured resize quiet period.
func (c Config) DebounceWindow() time.Duration {
	return time.Duration(c.Adaptation.DebounceMs) * time.Millisecond
}
