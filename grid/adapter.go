package grid

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pagecraft/gridkit/internal/debounce"
)

// ChangeListener is invoked after a breakpoint transition with the new and
// previous breakpoints.
type ChangeListener func(current, previous Breakpoint)

// Adapter tracks the live current breakpoint for a viewport and notifies
// subscribers when it changes. Resize signals are debounced so a transition
// fires once per quiet period, not per pixel. An Adapter is safe for
// concurrent use; breakpoint state is only ever mutated by the adapter
// itself.
type Adapter struct {
	mu        sync.Mutex
	registry  Registry
	cfg       AdaptationConfig
	columns   int
	log       *zap.Logger
	viewport  ViewportSource
	unsub     func()
	deb       *debounce.Debouncer
	window    time.Duration
	current   Breakpoint
	previous  Breakpoint
	hasPrev   bool
	listeners []ChangeListener
	destroyed bool
}

// Option customizes adapter construction.
type Option func(*Adapter)

// WithLogger sets the logger for listener-failure and clamp warnings.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithDebounce overrides the resize debounce window.
func WithDebounce(window time.Duration) Option {
	return func(a *Adapter) { a.window = window }
}

// WithRegistry overrides the breakpoint thresholds.
func WithRegistry(r Registry) Option {
	return func(a *Adapter) { a.registry = r }
}

// WithColumns overrides the grid width used by the style helpers.
func WithColumns(n int) Option {
	return func(a *Adapter) {
		if n > 0 {
			a.columns = n
		}
	}
}

// NewAdapter creates an adapter bound to the given viewport. The initial
// breakpoint is computed from the viewport's current width; with a nil
// viewport (headless contexts) it starts at Mobile and never transitions.
func NewAdapter(viewport ViewportSource, cfg AdaptationConfig, opts ...Option) *Adapter {
	a := &Adapter{
		registry: DefaultRegistry(),
		cfg:      cfg,
		columns:  DefaultColumns,
		log:      zap.NewNop(),
		viewport: viewport,
		window:   debounce.DefaultWindow,
		current:  Mobile,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.registry.Validate(); err != nil {
		a.log.Warn("invalid breakpoint registry, using defaults", zap.Error(err))
		a.registry = DefaultRegistry()
	}
	a.deb = debounce.New(a.window)

	if viewport != nil {
		a.current = a.registry.ForWidth(viewport.Width())
		a.unsub = viewport.Subscribe(func(int) {
			a.deb.Trigger(a.recompute)
		})
	}
	return a
}

// CurrentBreakpoint returns the breakpoint the adapter last settled on.
func (a *Adapter) CurrentBreakpoint() Breakpoint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// PreviousBreakpoint returns the breakpoint before the last transition, or
// false if no transition has happened yet.
func (a *Adapter) PreviousBreakpoint() (Breakpoint, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.previous, a.hasPrev
}

// AddListener registers a transition callback, invoked synchronously in
// registration order. The returned function removes it; slots are nilled
// rather than reordered so earlier unsubscribers stay valid.
func (a *Adapter) AddListener(fn ChangeListener) (remove func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return func() {}
	}
	a.listeners = append(a.listeners, fn)
	idx := len(a.listeners) - 1
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if idx < len(a.listeners) {
			a.listeners[idx] = nil
		}
	}
}

// recompute runs after the debounce window. It reads the settled viewport
// width, and only when the mapped breakpoint differs from the stored one
// does it swap state and notify.
func (a *Adapter) recompute() {
	a.mu.Lock()
	if a.destroyed || a.viewport == nil {
		a.mu.Unlock()
		return
	}
	next := a.registry.ForWidth(a.viewport.Width())
	a.shiftLocked(next)
}

// shiftLocked performs the transition under a.mu and releases the lock. The
// (new, previous) pair is captured before unlocking so listeners always
// observe a consistent transition even if another resize lands mid-notify.
func (a *Adapter) shiftLocked(next Breakpoint) {
	if next == a.current {
		a.mu.Unlock()
		return
	}
	a.previous = a.current
	a.current = next
	a.hasPrev = true
	cur, prev := a.current, a.previous
	fns := make([]ChangeListener, len(a.listeners))
	copy(fns, a.listeners)
	log := a.log
	a.mu.Unlock()

	for _, fn := range fns {
		if fn == nil {
			continue
		}
		notifyOne(fn, cur, prev, log)
	}
}

// notifyOne isolates listener failures: one panicking subscriber must not
// starve the rest.
func notifyOne(fn ChangeListener, cur, prev Breakpoint, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("breakpoint listener panicked",
				zap.Any("panic", r),
				zap.Stringer("current", cur),
				zap.Stringer("previous", prev))
		}
	}()
	fn(cur, prev)
}

// ShouldShow is the strategy-dependent visibility predicate: mobile-first
// shows breakpoints at or below the current one, desktop-first at or above,
// closest only the exact current breakpoint.
func (a *Adapter) ShouldShow(b Breakpoint) bool {
	a.mu.Lock()
	cur, strategy := a.current, a.cfg.Strategy
	a.mu.Unlock()

	switch strategy {
	case DesktopFirst:
		return b >= cur
	case Closest:
		return b == cur
	default:
		return b <= cur
	}
}

// Config returns the adaptation configuration in effect.
func (a *Adapter) Config() AdaptationConfig {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Columns returns the grid width used by the style helpers.
func (a *Adapter) Columns() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.columns
}

// Reconfigure swaps the registry and adaptation config at runtime (config
// hot-reload). The current breakpoint is recomputed under the new
// thresholds and listeners fire if it moved.
func (a *Adapter) Reconfigure(registry Registry, cfg AdaptationConfig, columns int) {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	if err := registry.Validate(); err != nil {
		a.log.Warn("rejecting invalid registry on reconfigure", zap.Error(err))
	} else {
		a.registry = registry
	}
	a.cfg = cfg
	if columns > 0 {
		a.columns = columns
	}
	if a.viewport == nil {
		a.mu.Unlock()
		return
	}
	next := a.registry.ForWidth(a.viewport.Width())
	a.shiftLocked(next)
}

// Styles resolves a grid item's props at the current breakpoint.
func (a *Adapter) Styles(props GridSpanProps) Style {
	a.mu.Lock()
	cur, cfg, cols := a.current, a.cfg, a.columns
	a.mu.Unlock()
	return ItemStyle(props, cur, cfg, cols)
}

// ContainerStyles resolves a container's props at the current breakpoint.
func (a *Adapter) ContainerStyles(props ContainerProps) Style {
	a.mu.Lock()
	cur, cfg := a.current, a.cfg
	a.mu.Unlock()
	return ContainerStyle(props, cur, cfg)
}

// Classes emits the breakpoint-independent class list for a grid item.
func (a *Adapter) Classes(props GridSpanProps) string {
	return Classes(props, a.Columns())
}

// Destroy detaches from the viewport, cancels any pending debounce timer
// and drops all listeners. Idempotent; other methods become no-ops that
// return the last settled state.
func (a *Adapter) Destroy() {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.destroyed = true
	unsub := a.unsub
	a.unsub = nil
	a.listeners = nil
	a.mu.Unlock()

	a.deb.Cancel()
	if unsub != nil {
		unsub()
	}
}

// ResolveCurrent resolves a responsive value at the adapter's current
// breakpoint under its configured strategy.
func ResolveCurrent[T any](a *Adapter, v Value[T]) (T, error) {
	a.mu.Lock()
	cur, cfg := a.current, a.cfg
	a.mu.Unlock()
	return Resolve(v, cur, cfg)
}

// ResolveCurrentOr is ResolveCurrent with a default for unset and empty
// values.
func ResolveCurrentOr[T any](a *Adapter, v Value[T], def T) T {
	a.mu.Lock()
	cur, cfg := a.current, a.cfg
	a.mu.Unlock()
	return ResolveOr(v, cur, cfg, def)
}
