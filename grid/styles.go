package grid

import (
	"strconv"
	"time"
)

// Style is a resolved fragment of CSS-like declarations for a single
// breakpoint. Empty fields are unset; Merge copies only set fields, so
// fragments layer the same way partial utility styles do.
type Style struct {
	Display        string `json:"display,omitempty"`
	FlexDirection  string `json:"flexDirection,omitempty"`
	JustifyContent string `json:"justifyContent,omitempty"`
	AlignItems     string `json:"alignItems,omitempty"`
	FlexWrap       string `json:"flexWrap,omitempty"`
	Flex           string `json:"flex,omitempty"`
	FlexGrow       string `json:"flexGrow,omitempty"`
	FlexShrink     string `json:"flexShrink,omitempty"`
	FlexBasis      string `json:"flexBasis,omitempty"`
	MaxWidth       string `json:"maxWidth,omitempty"`
	MarginLeft     string `json:"marginLeft,omitempty"`
	AlignSelf      string `json:"alignSelf,omitempty"`
	Order          string `json:"order,omitempty"`
	Padding        string `json:"padding,omitempty"`
	Margin         string `json:"margin,omitempty"`
	Gap            string `json:"gap,omitempty"`
	Transition     string `json:"transition,omitempty"`
}

// Merge overlays over onto s. Fields set in over win; unset fields never
// erase existing values.
func (s Style) Merge(over Style) Style {
	if over.Display != "" {
		s.Display = over.Display
	}
	if over.FlexDirection != "" {
		s.FlexDirection = over.FlexDirection
	}
	if over.JustifyContent != "" {
		s.JustifyContent = over.JustifyContent
	}
	if over.AlignItems != "" {
		s.AlignItems = over.AlignItems
	}
	if over.FlexWrap != "" {
		s.FlexWrap = over.FlexWrap
	}
	if over.Flex != "" {
		s.Flex = over.Flex
	}
	if over.FlexGrow != "" {
		s.FlexGrow = over.FlexGrow
	}
	if over.FlexShrink != "" {
		s.FlexShrink = over.FlexShrink
	}
	if over.FlexBasis != "" {
		s.FlexBasis = over.FlexBasis
	}
	if over.MaxWidth != "" {
		s.MaxWidth = over.MaxWidth
	}
	if over.MarginLeft != "" {
		s.MarginLeft = over.MarginLeft
	}
	if over.AlignSelf != "" {
		s.AlignSelf = over.AlignSelf
	}
	if over.Order != "" {
		s.Order = over.Order
	}
	if over.Padding != "" {
		s.Padding = over.Padding
	}
	if over.Margin != "" {
		s.Margin = over.Margin
	}
	if over.Gap != "" {
		s.Gap = over.Gap
	}
	if over.Transition != "" {
		s.Transition = over.Transition
	}
	return s
}

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Map returns the set declarations keyed by their CSS-in-JS property names.
func (s Style) Map() map[string]string {
	m := make(map[string]string)
	put := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	put("display", s.Display)
	put("flexDirection", s.FlexDirection)
	put("justifyContent", s.JustifyContent)
	put("alignItems", s.AlignItems)
	put("flexWrap", s.FlexWrap)
	put("flex", s.Flex)
	put("flexGrow", s.FlexGrow)
	put("flexShrink", s.FlexShrink)
	put("flexBasis", s.FlexBasis)
	put("maxWidth", s.MaxWidth)
	put("marginLeft", s.MarginLeft)
	put("alignSelf", s.AlignSelf)
	put("order", s.Order)
	put("padding", s.Padding)
	put("margin", s.Margin)
	put("gap", s.Gap)
	put("transition", s.Transition)
	return m
}

// ItemStyle resolves a grid item's props at the current breakpoint and
// returns the inline style fragment for it. This is the style-object output
// mode: one breakpoint, concrete values. Invalid spans and offsets are
// clamped, never fatal.
func ItemStyle(props GridSpanProps, current Breakpoint, cfg AdaptationConfig, total int) Style {
	if total <= 0 {
		total = DefaultColumns
	}

	if ResolveOr(props.Hidden, current, cfg, false) {
		return Style{Display: "none"}
	}

	var s Style
	if props.Span.IsSet() {
		span := ResolveOr(props.Span, current, cfg, total)
		offset := ResolveOr(props.Offset, current, cfg, 0)
		s = ColumnStyles(span, offset, total)
	} else if props.Offset.IsSet() {
		if p := ColumnOffsetPercent(ResolveOr(props.Offset, current, cfg, 0), total); p > 0 {
			s.MarginLeft = Percent(p)
		}
	}

	if props.Order.IsSet() {
		s.Order = strconv.Itoa(ResolveOr(props.Order, current, cfg, 0))
	}
	if props.Flex.IsSet() {
		s.Flex = ResolveOr(props.Flex, current, cfg, "")
	}
	if props.FlexGrow.IsSet() {
		s.FlexGrow = formatNumber(ResolveOr(props.FlexGrow, current, cfg, 0))
	}
	if props.FlexShrink.IsSet() {
		s.FlexShrink = formatNumber(ResolveOr(props.FlexShrink, current, cfg, 0))
	}
	if props.FlexBasis.IsSet() {
		// An explicit basis overrides the span-derived one.
		if basis := ResolveOr(props.FlexBasis, current, cfg, ""); basis != "" {
			s.FlexBasis = basis
		}
	}
	if props.AlignSelf.IsSet() {
		s.AlignSelf = ResolveOr(props.AlignSelf, current, cfg, AlignAuto).CSS()
	}

	return withTransition(s, cfg)
}

// ContainerStyle resolves a row or container's props at the current
// breakpoint into its flex-container style fragment.
func ContainerStyle(props ContainerProps, current Breakpoint, cfg AdaptationConfig) Style {
	s := Style{Display: "flex"}

	s.FlexDirection = ResolveOr(props.Direction, current, cfg, "row")
	if props.Justify.IsSet() {
		s.JustifyContent = ResolveOr(props.Justify, current, cfg, "")
	}
	if props.Align.IsSet() {
		s.AlignItems = ResolveOr(props.Align, current, cfg, "")
	}
	if props.Wrap.IsSet() {
		if ResolveOr(props.Wrap, current, cfg, false) {
			s.FlexWrap = "wrap"
		} else {
			s.FlexWrap = "nowrap"
		}
	}
	if props.Gutter.IsSet() {
		if g := ResolveOr(props.Gutter, current, cfg, 0); g > 0 {
			s.Gap = px(float64(g))
		}
	}
	if props.Padding.IsSet() {
		s.Padding = ResolveOr(props.Padding, current, cfg, Spacing{}).CSS()
	}
	if props.Margin.IsSet() {
		s.Margin = ResolveOr(props.Margin, current, cfg, Spacing{}).CSS()
	}

	return withTransition(s, cfg)
}

func withTransition(s Style, cfg AdaptationConfig) Style {
	if !cfg.SmoothTransition || s.IsZero() || s.Display == "none" {
		return s
	}
	dur := cfg.TransitionDuration
	if dur <= 0 {
		dur = 300 * time.Millisecond
	}
	s.Transition = "all " + strconv.FormatInt(dur.Milliseconds(), 10) + "ms ease"
	return s
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
