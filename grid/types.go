package grid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Strategy selects how a responsive value collapses to a single scalar for
// the current breakpoint.
type Strategy int

const (
	// MobileFirst treats smaller-breakpoint definitions as the base that
	// larger breakpoints override; lookups fall back toward the base.
	MobileFirst Strategy = iota
	// DesktopFirst is the symmetric rule: lookups fall back toward the
	// largest defined breakpoint.
	DesktopFirst
	// Closest picks the defined breakpoint nearest to the current one by
	// ordinal distance; the smaller breakpoint wins a distance tie.
	Closest
)

// String returns the name used in config files and CLI flags.
func (s Strategy) String() string {
	switch s {
	case MobileFirst:
		return "mobile-first"
	case DesktopFirst:
		return "desktop-first"
	case Closest:
		return "closest"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a config or flag value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "mobile-first":
		return MobileFirst, nil
	case "desktop-first":
		return DesktopFirst, nil
	case "closest":
		return Closest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// AdaptationConfig controls resolution behavior for one adapter instance.
// Immutable after construction except via Adapter.Reconfigure.
type AdaptationConfig struct {
	Strategy Strategy
	// Fallback is consulted when no value is defined in the strategy's
	// scan range.
	Fallback Breakpoint
	// SmoothTransition adds a transition declaration to generated style
	// fragments so breakpoint changes animate instead of snapping.
	SmoothTransition   bool
	TransitionDuration time.Duration
}

// DefaultAdaptation returns the standard mobile-first configuration.
func DefaultAdaptation() AdaptationConfig {
	return AdaptationConfig{
		Strategy:           MobileFirst,
		Fallback:           Mobile,
		TransitionDuration: 300 * time.Millisecond,
	}
}

// Value is a layout property that is either uniform across breakpoints or a
// partial per-breakpoint mapping. The two cases are an explicit tagged
// variant so resolution never depends on runtime type inspection. The zero
// Value is unset.
type Value[T any] struct {
	uniform *T
	perBP   map[Breakpoint]T
}

// Uniform wraps a scalar that applies at every breakpoint.
func Uniform[T any](v T) Value[T] {
	return Value[T]{uniform: &v}
}

// PerBreakpoint wraps a partial breakpoint mapping. Keys outside the three
// defined breakpoints are dropped with a warning. The map is copied.
func PerBreakpoint[T any](m map[Breakpoint]T) Value[T] {
	cp := make(map[Breakpoint]T, len(m))
	for b, v := range m {
		if !b.Valid() {
			logger().Warn("ignoring unknown breakpoint in responsive value",
				zap.Int("breakpoint", int(b)))
			continue
		}
		cp[b] = v
	}
	return Value[T]{perBP: cp}
}

// IsSet reports whether the value carries any data at all.
func (v Value[T]) IsSet() bool {
	return v.uniform != nil || len(v.perBP) > 0
}

// IsUniform reports whether the value is a bare scalar.
func (v Value[T]) IsUniform() bool {
	return v.uniform != nil
}

// At returns the value defined exactly at b. A uniform value is defined at
// every breakpoint.
func (v Value[T]) At(b Breakpoint) (T, bool) {
	if v.uniform != nil {
		return *v.uniform, true
	}
	val, ok := v.perBP[b]
	return val, ok
}

// Breakpoints returns the breakpoints with an explicit entry, ascending.
// A uniform value reports no explicit breakpoints.
func (v Value[T]) Breakpoints() []Breakpoint {
	if len(v.perBP) == 0 {
		return nil
	}
	out := make([]Breakpoint, 0, len(v.perBP))
	for _, b := range Order() {
		if _, ok := v.perBP[b]; ok {
			out = append(out, b)
		}
	}
	return out
}

// AlignSelf is the per-item cross-axis alignment keyword.
type AlignSelf string

const (
	AlignAuto     AlignSelf = "auto"
	AlignStart    AlignSelf = "start"
	AlignEnd      AlignSelf = "end"
	AlignCenter   AlignSelf = "center"
	AlignStretch  AlignSelf = "stretch"
	AlignBaseline AlignSelf = "baseline"
)

// Normalize maps unrecognized input to AlignAuto. Alignment never fails;
// bad values degrade to the browser default.
func (a AlignSelf) Normalize() AlignSelf {
	switch a {
	case AlignAuto, AlignStart, AlignEnd, AlignCenter, AlignStretch, AlignBaseline:
		return a
	default:
		return AlignAuto
	}
}

// CSS returns the align-self declaration value.
func (a AlignSelf) CSS() string {
	switch a.Normalize() {
	case AlignStart:
		return "flex-start"
	case AlignEnd:
		return "flex-end"
	default:
		return string(a.Normalize())
	}
}

// Spacing is a padding or margin amount: a single pixel value, an {x, y}
// axis pair, or explicit top/right/bottom/left edges.
type Spacing struct {
	kind                     spacingKind
	all                      float64
	x, y                     float64
	top, right, bottom, left float64
}

type spacingKind uint8

const (
	spacingNone spacingKind = iota
	spacingAll
	spacingAxes
	spacingEdges
)

// Px builds a uniform spacing value.
func Px(n float64) Spacing {
	return Spacing{kind: spacingAll, all: n}
}

// Axes builds a horizontal/vertical spacing pair.
func Axes(x, y float64) Spacing {
	return Spacing{kind: spacingAxes, x: x, y: y}
}

// Edges builds a four-edge spacing value.
func Edges(top, right, bottom, left float64) Spacing {
	return Spacing{kind: spacingEdges, top: top, right: right, bottom: bottom, left: left}
}

// IsSet reports whether the spacing carries a value.
func (s Spacing) IsSet() bool {
	return s.kind != spacingNone
}

// CSS returns the shorthand declaration value: "8px", "4px 8px" (y then x,
// matching CSS vertical-horizontal order), or the 4-value form.
func (s Spacing) CSS() string {
	switch s.kind {
	case spacingAll:
		return px(s.all)
	case spacingAxes:
		return px(s.y) + " " + px(s.x)
	case spacingEdges:
		return px(s.top) + " " + px(s.right) + " " + px(s.bottom) + " " + px(s.left)
	default:
		return ""
	}
}

func px(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + "px"
}

// GridSpanProps is the layout property bag for one grid item. Every field
// may be uniform or per-breakpoint. Span lives in 1..totalColumns and
// offset in 0..totalColumns-1; out-of-range values are clamped at use.
type GridSpanProps struct {
	Span       Value[int]       `yaml:"span" json:"span,omitzero"`
	Offset     Value[int]       `yaml:"offset" json:"offset,omitzero"`
	Order      Value[int]       `yaml:"order" json:"order,omitzero"`
	Hidden     Value[bool]      `yaml:"hidden" json:"hidden,omitzero"`
	Flex       Value[string]    `yaml:"flex" json:"flex,omitzero"`
	FlexGrow   Value[float64]   `yaml:"flexGrow" json:"flexGrow,omitzero"`
	FlexShrink Value[float64]   `yaml:"flexShrink" json:"flexShrink,omitzero"`
	FlexBasis  Value[string]    `yaml:"flexBasis" json:"flexBasis,omitzero"`
	AlignSelf  Value[AlignSelf] `yaml:"alignSelf" json:"alignSelf,omitzero"`
}

// ContainerProps is the layout property bag for a row or container element.
type ContainerProps struct {
	Direction Value[string]  `yaml:"direction" json:"direction,omitzero"`
	Justify   Value[string]  `yaml:"justify" json:"justify,omitzero"`
	Align     Value[string]  `yaml:"align" json:"align,omitzero"`
	Wrap      Value[bool]    `yaml:"wrap" json:"wrap,omitzero"`
	Gutter    Value[int]     `yaml:"gutter" json:"gutter,omitzero"`
	Padding   Value[Spacing] `yaml:"padding" json:"padding,omitzero"`
	Margin    Value[Spacing] `yaml:"margin" json:"margin,omitzero"`
}

// Fingerprint returns a canonical key for caching generated output. Field
// and breakpoint order are fixed, so equal props always produce equal keys.
func (p GridSpanProps) Fingerprint() string {
	var sb strings.Builder
	fpValue(&sb, "span", p.Span)
	fpValue(&sb, "offset", p.Offset)
	fpValue(&sb, "order", p.Order)
	fpValue(&sb, "hidden", p.Hidden)
	fpValue(&sb, "flex", p.Flex)
	fpValue(&sb, "grow", p.FlexGrow)
	fpValue(&sb, "shrink", p.FlexShrink)
	fpValue(&sb, "basis", p.FlexBasis)
	fpValue(&sb, "self", p.AlignSelf)
	return sb.String()
}

func fpValue[T any](sb *strings.Builder, name string, v Value[T]) {
	if !v.IsSet() {
		return
	}
	sb.WriteString(name)
	sb.WriteByte('=')
	if v.IsUniform() {
		val, _ := v.At(Mobile)
		fmt.Fprint(sb, val)
	} else {
		for i, b := range v.Breakpoints() {
			if i > 0 {
				sb.WriteByte(',')
			}
			val, _ := v.At(b)
			sb.WriteString(b.String())
			sb.WriteByte(':')
			fmt.Fprint(sb, val)
		}
	}
	sb.WriteByte(';')
}
