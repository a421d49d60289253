package grid

import (
	"errors"
	"testing"
)

func cfgWith(s Strategy) AdaptationConfig {
	cfg := DefaultAdaptation()
	cfg.Strategy = s
	return cfg
}

// A bare scalar resolves to itself at every breakpoint under every strategy.
func TestResolveScalarShortCircuit(t *testing.T) {
	v := Uniform(42)
	for _, strategy := range []Strategy{MobileFirst, DesktopFirst, Closest} {
		for _, b := range Order() {
			got, err := Resolve(v, b, cfgWith(strategy))
			if err != nil {
				t.Fatalf("Resolve(uniform, %v, %v) error: %v", b, strategy, err)
			}
			if got != 42 {
				t.Errorf("Resolve(uniform, %v, %v) = %d, want 42", b, strategy, got)
			}
		}
	}
}

func TestResolveStrategies(t *testing.T) {
	// mobile and desktop defined, tablet deliberately absent
	sparse := PerBreakpoint(map[Breakpoint]string{
		Mobile:  "A",
		Desktop: "C",
	})
	desktopOnly := PerBreakpoint(map[Breakpoint]string{Desktop: "C"})
	mobileOnly := PerBreakpoint(map[Breakpoint]string{Mobile: "A"})

	tests := []struct {
		name     string
		value    Value[string]
		current  Breakpoint
		strategy Strategy
		want     string
	}{
		// Mobile-first falls back toward the base.
		{"mobile-first at mobile", sparse, Mobile, MobileFirst, "A"},
		{"mobile-first at tablet falls back to mobile", sparse, Tablet, MobileFirst, "A"},
		{"mobile-first at desktop", sparse, Desktop, MobileFirst, "C"},
		// No smaller value defined: first defined anywhere (ascending).
		{"mobile-first below all definitions", desktopOnly, Mobile, MobileFirst, "C"},

		// Desktop-first is symmetric.
		{"desktop-first at desktop", sparse, Desktop, DesktopFirst, "C"},
		{"desktop-first at tablet falls up to desktop", sparse, Tablet, DesktopFirst, "C"},
		{"desktop-first at mobile", sparse, Mobile, DesktopFirst, "A"},
		{"desktop-first above all definitions", mobileOnly, Desktop, DesktopFirst, "A"},

		// Closest: distance tie at tablet breaks toward the smaller
		// breakpoint, deterministically.
		{"closest tie prefers smaller breakpoint", sparse, Tablet, Closest, "A"},
		{"closest exact hit", sparse, Desktop, Closest, "C"},
		{"closest single neighbor", desktopOnly, Tablet, Closest, "C"},
		{"closest far neighbor", desktopOnly, Mobile, Closest, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.value, tt.current, cfgWith(tt.strategy))
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The tie-break must hold on every invocation, not just once: map iteration
// order must never leak into resolution.
func TestResolveClosestDeterministic(t *testing.T) {
	v := PerBreakpoint(map[Breakpoint]string{Mobile: "A", Desktop: "C"})
	for i := 0; i < 100; i++ {
		got, err := Resolve(v, Tablet, cfgWith(Closest))
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "A" {
			t.Fatalf("iteration %d: Resolve() = %q, want stable %q", i, got, "A")
		}
	}
}

func TestResolveFallbackBreakpoint(t *testing.T) {
	// Desktop-only value, resolved at mobile under desktop-first... the
	// scan succeeds. Force the fallback path with a tablet-only value and
	// a desktop-first scan starting at desktop.
	v := PerBreakpoint(map[Breakpoint]int{Tablet: 7})

	cfg := cfgWith(DesktopFirst)
	cfg.Fallback = Tablet
	got, err := Resolve(v, Desktop, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != 7 {
		t.Errorf("Resolve() = %d, want fallback value 7", got)
	}

	// Without a matching fallback the last-defined-anywhere rule applies.
	cfg.Fallback = Mobile
	got, err = Resolve(v, Desktop, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != 7 {
		t.Errorf("Resolve() = %d, want 7 via descending scan", got)
	}
}

func TestResolveEmptyMapping(t *testing.T) {
	empty := PerBreakpoint(map[Breakpoint]int{})
	_, err := Resolve(empty, Tablet, DefaultAdaptation())
	if !errors.Is(err, ErrNoValue) {
		t.Errorf("Resolve(empty) error = %v, want ErrNoValue", err)
	}

	var unset Value[int]
	_, err = Resolve(unset, Tablet, DefaultAdaptation())
	if !errors.Is(err, ErrNoValue) {
		t.Errorf("Resolve(unset) error = %v, want ErrNoValue", err)
	}
}

func TestResolveOr(t *testing.T) {
	var unset Value[int]
	if got := ResolveOr(unset, Tablet, DefaultAdaptation(), 24); got != 24 {
		t.Errorf("ResolveOr(unset) = %d, want default 24", got)
	}

	v := PerBreakpoint(map[Breakpoint]int{Tablet: 12})
	if got := ResolveOr(v, Tablet, DefaultAdaptation(), 24); got != 12 {
		t.Errorf("ResolveOr(defined) = %d, want 12", got)
	}
}

// Unknown breakpoint keys are dropped at construction, so resolution only
// ever sees the three defined breakpoints.
func TestPerBreakpointDropsUnknownKeys(t *testing.T) {
	v := PerBreakpoint(map[Breakpoint]int{
		Mobile:         1,
		Breakpoint(42): 9,
	})
	bps := v.Breakpoints()
	if len(bps) != 1 || bps[0] != Mobile {
		t.Errorf("Breakpoints() = %v, want [mobile]", bps)
	}
}
