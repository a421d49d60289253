package grid

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDebounce = 20 * time.Millisecond

// waitSettled gives the debouncer time to fire and the transition to land.
func waitSettled() {
	time.Sleep(5 * testDebounce)
}

func newTestAdapter(t *testing.T, width int, opts ...Option) (*Adapter, *SimulatedViewport) {
	t.Helper()
	vp := NewSimulatedViewport(width)
	opts = append([]Option{WithDebounce(testDebounce)}, opts...)
	a := NewAdapter(vp, DefaultAdaptation(), opts...)
	t.Cleanup(a.Destroy)
	return a, vp
}

func TestAdapterInitialBreakpoint(t *testing.T) {
	a, _ := newTestAdapter(t, 800)
	assert.Equal(t, Tablet, a.CurrentBreakpoint())

	_, ok := a.PreviousBreakpoint()
	assert.False(t, ok, "no transition yet")
}

func TestAdapterHeadless(t *testing.T) {
	a := NewAdapter(nil, DefaultAdaptation())
	defer a.Destroy()
	assert.Equal(t, Mobile, a.CurrentBreakpoint())
}

func TestAdapterTransition(t *testing.T) {
	a, vp := newTestAdapter(t, 375)

	var mu sync.Mutex
	var calls [][2]Breakpoint
	a.AddListener(func(cur, prev Breakpoint) {
		mu.Lock()
		calls = append(calls, [2]Breakpoint{cur, prev})
		mu.Unlock()
	})

	vp.SetWidth(1280)
	waitSettled()

	assert.Equal(t, Desktop, a.CurrentBreakpoint())
	prev, ok := a.PreviousBreakpoint()
	require.True(t, ok)
	assert.Equal(t, Mobile, prev)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, [2]Breakpoint{Desktop, Mobile}, calls[0])
}

// Ten resize signals inside one debounce window across three breakpoints
// must produce exactly one notification, reflecting only the final width.
func TestAdapterDebounce(t *testing.T) {
	a, vp := newTestAdapter(t, 375)

	var mu sync.Mutex
	var calls int
	var last Breakpoint
	a.AddListener(func(cur, _ Breakpoint) {
		mu.Lock()
		calls++
		last = cur
		mu.Unlock()
	})

	widths := []int{400, 800, 1200, 500, 900, 1400, 600, 1100, 700, 1024}
	for _, w := range widths {
		vp.SetWidth(w)
	}
	waitSettled()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "intermediate breakpoints must be coalesced")
	assert.Equal(t, Desktop, last)
	assert.Equal(t, Desktop, a.CurrentBreakpoint())
}

// A resize that settles on a width inside the current breakpoint's range
// fires no notification at all.
func TestAdapterNoTransitionSameBreakpoint(t *testing.T) {
	a, vp := newTestAdapter(t, 800)

	var calls int
	var mu sync.Mutex
	a.AddListener(func(_, _ Breakpoint) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	vp.SetWidth(900) // still tablet
	waitSettled()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
	assert.Equal(t, Tablet, a.CurrentBreakpoint())
}

// A panicking listener must not starve later-registered listeners of the
// same transition.
func TestAdapterListenerIsolation(t *testing.T) {
	a, vp := newTestAdapter(t, 375)

	a.AddListener(func(_, _ Breakpoint) {
		panic("listener bug")
	})

	var mu sync.Mutex
	var got [2]Breakpoint
	var called bool
	a.AddListener(func(cur, prev Breakpoint) {
		mu.Lock()
		got = [2]Breakpoint{cur, prev}
		called = true
		mu.Unlock()
	})

	vp.SetWidth(800)
	waitSettled()

	mu.Lock()
	defer mu.Unlock()
	require.True(t, called, "second listener must still run")
	assert.Equal(t, [2]Breakpoint{Tablet, Mobile}, got)
}

func TestAdapterUnsubscribe(t *testing.T) {
	a, vp := newTestAdapter(t, 375)

	var mu sync.Mutex
	var calls int
	remove := a.AddListener(func(_, _ Breakpoint) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	remove()
	remove() // second call is harmless

	vp.SetWidth(1280)
	waitSettled()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestAdapterShouldShow(t *testing.T) {
	tests := []struct {
		strategy Strategy
		current  Breakpoint
		show     []Breakpoint
		hide     []Breakpoint
	}{
		{MobileFirst, Tablet, []Breakpoint{Mobile, Tablet}, []Breakpoint{Desktop}},
		{MobileFirst, Desktop, []Breakpoint{Mobile, Tablet, Desktop}, nil},
		{DesktopFirst, Tablet, []Breakpoint{Tablet, Desktop}, []Breakpoint{Mobile}},
		{Closest, Tablet, []Breakpoint{Tablet}, []Breakpoint{Mobile, Desktop}},
	}
	for _, tt := range tests {
		cfg := DefaultAdaptation()
		cfg.Strategy = tt.strategy
		widths := map[Breakpoint]int{Mobile: 375, Tablet: 800, Desktop: 1280}
		a := NewAdapter(NewSimulatedViewport(widths[tt.current]), cfg)
		for _, b := range tt.show {
			assert.True(t, a.ShouldShow(b), "%v at %v should show %v", tt.strategy, tt.current, b)
		}
		for _, b := range tt.hide {
			assert.False(t, a.ShouldShow(b), "%v at %v should hide %v", tt.strategy, tt.current, b)
		}
		a.Destroy()
	}
}

func TestAdapterResolveCurrent(t *testing.T) {
	a, _ := newTestAdapter(t, 800)

	v := PerBreakpoint(map[Breakpoint]int{Mobile: 24, Tablet: 12})
	got, err := ResolveCurrent(a, v)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	var unset Value[int]
	assert.Equal(t, 24, ResolveCurrentOr(a, unset, 24))
}

func TestAdapterStyles(t *testing.T) {
	a, _ := newTestAdapter(t, 800)

	style := a.Styles(GridSpanProps{
		Span: PerBreakpoint(map[Breakpoint]int{Mobile: 24, Tablet: 12}),
	})
	assert.Equal(t, "50%", style.FlexBasis)
	assert.Equal(t, "50%", style.MaxWidth)
	assert.Empty(t, style.MarginLeft)
}

func TestAdapterReconfigure(t *testing.T) {
	a, vp := newTestAdapter(t, 800) // tablet under defaults

	var mu sync.Mutex
	var calls int
	a.AddListener(func(_, _ Breakpoint) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	// Under the new thresholds 800px is desktop; the reconfigure itself
	// must fire the transition.
	cfg := DefaultAdaptation()
	cfg.Strategy = Closest
	a.Reconfigure(Registry{TabletMin: 500, DesktopMin: 700}, cfg, 12)

	assert.Equal(t, Desktop, a.CurrentBreakpoint())
	assert.Equal(t, 12, a.Columns())
	assert.Equal(t, Closest, a.Config().Strategy)
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()

	// Invalid thresholds are rejected, keeping the previous registry.
	a.Reconfigure(Registry{TabletMin: 900, DesktopMin: 600}, cfg, 0)
	assert.Equal(t, Desktop, a.CurrentBreakpoint())
	assert.Equal(t, 12, a.Columns())

	_ = vp
}

func TestAdapterDestroy(t *testing.T) {
	vp := NewSimulatedViewport(375)
	a := NewAdapter(vp, DefaultAdaptation(), WithDebounce(testDebounce))

	var mu sync.Mutex
	var calls int
	a.AddListener(func(_, _ Breakpoint) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	a.Destroy()
	a.Destroy() // idempotent

	// Resizes after destroy must not fire anything, even with a pending
	// debounce timer.
	vp.SetWidth(1280)
	waitSettled()

	mu.Lock()
	assert.Zero(t, calls)
	mu.Unlock()

	// Remaining methods are safe no-ops.
	assert.Equal(t, Mobile, a.CurrentBreakpoint())
	remove := a.AddListener(func(_, _ Breakpoint) {})
	remove()
}

func TestSimulatedViewport(t *testing.T) {
	vp := NewSimulatedViewport(-10)
	assert.Zero(t, vp.Width(), "negative widths clamp to zero")

	var got []int
	unsub := vp.Subscribe(func(w int) { got = append(got, w) })
	vp.SetWidth(500)
	vp.SetWidth(700)
	unsub()
	vp.SetWidth(900)

	assert.Equal(t, []int{500, 700}, got)
	assert.Equal(t, 900, vp.Width())
}
