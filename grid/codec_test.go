package grid

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestUnmarshalYAMLProps(t *testing.T) {
	doc := `
span:
  mobile: 24
  tablet: 12
  desktop: 8
offset: 0
order:
  desktop: 2
hidden:
  mobile: true
  desktop: false
alignSelf: center
`
	var props GridSpanProps
	if err := yaml.Unmarshal([]byte(doc), &props); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	if props.Span.IsUniform() {
		t.Error("span should be per-breakpoint")
	}
	if v, ok := props.Span.At(Tablet); !ok || v != 12 {
		t.Errorf("span at tablet = %d, %v; want 12, true", v, ok)
	}
	if !props.Offset.IsUniform() {
		t.Error("offset should be uniform")
	}
	if v, _ := props.Offset.At(Desktop); v != 0 {
		t.Errorf("offset = %d, want 0", v)
	}
	if _, ok := props.Order.At(Mobile); ok {
		t.Error("order should have no mobile entry")
	}
	if v, _ := props.Hidden.At(Mobile); !v {
		t.Error("hidden at mobile should be true")
	}
	if v, _ := props.AlignSelf.At(Tablet); v != AlignCenter {
		t.Errorf("alignSelf = %q, want center", v)
	}
}

// Unknown keys inside a responsive mapping are skipped, not fatal.
func TestUnmarshalYAMLUnknownBreakpoint(t *testing.T) {
	doc := `
span:
  mobile: 24
  widescreen: 6
`
	var props GridSpanProps
	if err := yaml.Unmarshal([]byte(doc), &props); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	bps := props.Span.Breakpoints()
	if len(bps) != 1 || bps[0] != Mobile {
		t.Errorf("Breakpoints() = %v, want [mobile]", bps)
	}
}

// A mapping without breakpoint keys decodes as a uniform value of the
// field type - a spacing object is not a responsive mapping.
func TestUnmarshalYAMLSpacing(t *testing.T) {
	doc := `
padding:
  x: 16
  y: 8
margin:
  mobile: 8
  desktop:
    top: 1
    right: 2
    bottom: 3
    left: 4
gutter: 16
`
	var props ContainerProps
	if err := yaml.Unmarshal([]byte(doc), &props); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	if !props.Padding.IsUniform() {
		t.Fatal("padding should be uniform")
	}
	p, _ := props.Padding.At(Mobile)
	if p.CSS() != "8px 16px" {
		t.Errorf("padding CSS = %q, want \"8px 16px\"", p.CSS())
	}

	m, ok := props.Margin.At(Desktop)
	if !ok {
		t.Fatal("margin should have a desktop entry")
	}
	if m.CSS() != "1px 2px 3px 4px" {
		t.Errorf("margin CSS = %q, want \"1px 2px 3px 4px\"", m.CSS())
	}
	if m, _ := props.Margin.At(Mobile); m.CSS() != "8px" {
		t.Errorf("mobile margin CSS = %q, want \"8px\"", m.CSS())
	}
}

func TestUnmarshalJSONProps(t *testing.T) {
	doc := `{
		"span": {"mobile": 24, "tablet": 12},
		"offset": 6,
		"flexGrow": 1
	}`
	var props GridSpanProps
	if err := json.Unmarshal([]byte(doc), &props); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if v, _ := props.Span.At(Tablet); v != 12 {
		t.Errorf("span at tablet = %d, want 12", v)
	}
	if !props.Offset.IsUniform() {
		t.Error("offset should be uniform")
	}
	if v, _ := props.FlexGrow.At(Mobile); v != 1 {
		t.Errorf("flexGrow = %v, want 1", v)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	props := GridSpanProps{
		Span:   PerBreakpoint(map[Breakpoint]int{Mobile: 24, Desktop: 8}),
		Offset: Uniform(6),
	}
	data, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var back GridSpanProps
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if v, _ := back.Span.At(Desktop); v != 8 {
		t.Errorf("span at desktop after round trip = %d, want 8", v)
	}
	if v, _ := back.Offset.At(Mobile); v != 6 {
		t.Errorf("offset after round trip = %d, want 6", v)
	}
	// Unset fields are omitted entirely.
	if string(data) == "" || jsonHasKey(data, "hidden") {
		t.Errorf("unset fields should be omitted: %s", data)
	}
}

func jsonHasKey(data []byte, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func TestSpacingJSON(t *testing.T) {
	var s Spacing
	if err := json.Unmarshal([]byte(`12`), &s); err != nil {
		t.Fatalf("json.Unmarshal(12): %v", err)
	}
	if s.CSS() != "12px" {
		t.Errorf("CSS = %q, want 12px", s.CSS())
	}

	if err := json.Unmarshal([]byte(`{"x": 4, "y": 2}`), &s); err != nil {
		t.Fatalf("json.Unmarshal(axes): %v", err)
	}
	if s.CSS() != "2px 4px" {
		t.Errorf("CSS = %q, want \"2px 4px\"", s.CSS())
	}

	if err := json.Unmarshal([]byte(`{"nope": 1}`), &s); err == nil {
		t.Error("expected error for spacing object without known keys")
	}
}

func TestFingerprintStable(t *testing.T) {
	a := GridSpanProps{
		Span:   PerBreakpoint(map[Breakpoint]int{Desktop: 8, Mobile: 24}),
		Offset: Uniform(6),
	}
	b := GridSpanProps{
		Span:   PerBreakpoint(map[Breakpoint]int{Mobile: 24, Desktop: 8}),
		Offset: Uniform(6),
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("equal props, different fingerprints: %q vs %q", a.Fingerprint(), b.Fingerprint())
	}

	c := GridSpanProps{Span: Uniform(12)}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different props should not collide")
	}
}
