package grid

import (
	"fmt"
	"math"
)

// Breakpoint identifies one of the three fixed viewport-width classes,
// ordered smallest-first.
type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop

	numBreakpoints = 3
)

// String returns the lowercase name used in class prefixes and config files.
func (b Breakpoint) String() string {
	switch b {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the three defined breakpoints.
func (b Breakpoint) Valid() bool {
	return b >= Mobile && b <= Desktop
}

// Next returns the next-larger breakpoint, or false at the top end.
func (b Breakpoint) Next() (Breakpoint, bool) {
	if !b.Valid() || b == Desktop {
		return 0, false
	}
	return b + 1, true
}

// Previous returns the next-smaller breakpoint, or false at the bottom end.
func (b Breakpoint) Previous() (Breakpoint, bool) {
	if !b.Valid() || b == Mobile {
		return 0, false
	}
	return b - 1, true
}

// ParseBreakpoint converts a config or props key into a Breakpoint.
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch s {
	case "mobile":
		return Mobile, nil
	case "tablet":
		return Tablet, nil
	case "desktop":
		return Desktop, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBreakpoint, s)
	}
}

// Order returns the breakpoints in ascending order. Every scan in this
// package iterates this explicit list, never map key order.
func Order() []Breakpoint {
	return []Breakpoint{Mobile, Tablet, Desktop}
}

// Registry holds the pixel thresholds that split the viewport-width axis
// into the three breakpoint ranges. A width belongs to tablet when it is
// at least TabletMin and below DesktopMin, so the ranges always partition
// [0, inf) with no gaps or overlaps.
type Registry struct {
	TabletMin  int
	DesktopMin int
}

// DefaultRegistry returns the standard thresholds: mobile up to 767px,
// tablet 768-1023px, desktop 1024px and above.
func DefaultRegistry() Registry {
	return Registry{
		TabletMin:  768,
		DesktopMin: 1024,
	}
}

// Validate checks that the thresholds are strictly increasing and positive.
func (r Registry) Validate() error {
	if r.TabletMin <= 0 {
		return fmt.Errorf("%w: tablet threshold %d must be positive", ErrInvalidRegistry, r.TabletMin)
	}
	if r.DesktopMin <= r.TabletMin {
		return fmt.Errorf("%w: desktop threshold %d must exceed tablet threshold %d",
			ErrInvalidRegistry, r.DesktopMin, r.TabletMin)
	}
	return nil
}

// ForWidth returns the breakpoint whose range contains the given width.
// Negative widths are treated as zero. Total over the whole domain.
func (r Registry) ForWidth(widthPx int) Breakpoint {
	if widthPx >= r.DesktopMin {
		return Desktop
	}
	if widthPx >= r.TabletMin {
		return Tablet
	}
	return Mobile
}

// Range returns the inclusive pixel range owned by b. The desktop range
// is unbounded above and reports math.MaxInt as its maximum.
func (r Registry) Range(b Breakpoint) (min, max int) {
	switch b {
	case Mobile:
		return 0, r.TabletMin - 1
	case Tablet:
		return r.TabletMin, r.DesktopMin - 1
	default:
		return r.DesktopMin, math.MaxInt
	}
}
