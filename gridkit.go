// Package gridkit is the responsive layout engine behind the page
// designer: it resolves per-breakpoint layout props into concrete style
// fragments or utility class strings, and tracks the live breakpoint of a
// viewport.
//
// Most applications use the process-wide instance: call Configure and
// SetViewport once at startup, then Styles, Classes and Current from
// anywhere. Construction from scratch via grid.NewAdapter is a first-class
// path; the singleton is only a convenience for call sites that want
// shared state.
package gridkit

import (
	"sync"

	"go.uber.org/zap"

	"github.com/pagecraft/gridkit/grid"
)

// Re-exports for consumer convenience, so simple call sites only import
// the root package.
type (
	GridSpanProps  = grid.GridSpanProps
	ContainerProps = grid.ContainerProps
	Style          = grid.Style
	Breakpoint     = grid.Breakpoint
	Report         = grid.Report
)

const (
	Mobile  = grid.Mobile
	Tablet  = grid.Tablet
	Desktop = grid.Desktop
)

var (
	mu       sync.Mutex
	config   = DefaultConfig()
	viewport grid.ViewportSource
	adapter  *grid.Adapter
	rootLog  = zap.NewNop()
)

// classCache memoizes generated class strings for repeated prop bags; the
// same component props are rendered over and over while the designer is
// open.
var (
	classCache   = make(map[string]string)
	classCacheMu sync.RWMutex
)

// SetLogger registers the logger used for engine warnings, both here and in
// the grid package helpers.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	rootLog = l
	mu.Unlock()
	grid.SetLogger(l)
}

// SetViewport binds the process-wide adapter to a viewport source. Any
// existing adapter is destroyed and rebuilt on next use.
func SetViewport(v grid.ViewportSource) {
	mu.Lock()
	defer mu.Unlock()
	viewport = v
	if adapter != nil {
		adapter.Destroy()
		adapter = nil
	}
}

// Configure installs a validated configuration. A live adapter is
// reconfigured in place and the class cache is invalidated.
func Configure(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mu.Lock()
	config = c
	if adapter != nil {
		adapter.Reconfigure(c.Registry(), c.AdaptationConfig(), c.Grid.Columns)
	}
	mu.Unlock()

	classCacheMu.Lock()
	classCache = make(map[string]string)
	classCacheMu.Unlock()
	return nil
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	mu.Lock()
	defer mu.Unlock()
	return config
}

// Default returns the process-wide adapter, creating it on first use from
// the registered viewport and configuration.
func Default() *grid.Adapter {
	mu.Lock()
	defer mu.Unlock()
	if adapter == nil {
		adapter = grid.NewAdapter(viewport, config.AdaptationConfig(),
			grid.WithRegistry(config.Registry()),
			grid.WithColumns(config.Grid.Columns),
			grid.WithDebounce(config.DebounceWindow()),
			grid.WithLogger(rootLog),
		)
	}
	return adapter
}

// Reset destroys the process-wide adapter and restores defaults. Intended
// for tests.
func Reset() {
	mu.Lock()
	if adapter != nil {
		adapter.Destroy()
		adapter = nil
	}
	viewport = nil
	config = DefaultConfig()
	mu.Unlock()

	classCacheMu.Lock()
	classCache = make(map[string]string)
	classCacheMu.Unlock()
}

// Current returns the live breakpoint of the process-wide adapter.
func Current() Breakpoint {
	return Default().CurrentBreakpoint()
}

// Styles resolves a grid item's props at the live breakpoint.
func Styles(props GridSpanProps) Style {
	return Default().Styles(props)
}

// ContainerStyles resolves a container's props at the live breakpoint.
func ContainerStyles(props ContainerProps) Style {
	return Default().ContainerStyles(props)
}

// Validate runs the aggregate props check against the configured grid width.
func Validate(props GridSpanProps) Report {
	mu.Lock()
	cols := config.Grid.Columns
	mu.Unlock()
	return grid.ValidateGridProps(props, cols)
}

// Classes returns the breakpoint-independent class string for a grid item,
// memoized per canonical props fingerprint.
func Classes(props GridSpanProps) string {
	key := props.Fingerprint()

	classCacheMu.RLock()
	if cached, ok := classCache[key]; ok {
		classCacheMu.RUnlock()
		return cached
	}
	classCacheMu.RUnlock()

	mu.Lock()
	cols := config.Grid.Columns
	mu.Unlock()
	classes := grid.Classes(props, cols)

	classCacheMu.Lock()
	defer classCacheMu.Unlock()
	// Double-check after acquiring the write lock.
	if cached, ok := classCache[key]; ok {
		return cached
	}
	classCache[key] = classes
	return classes
}
