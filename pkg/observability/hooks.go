// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about color transformations and palette
// optimization runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTransformHooks(&myTransformHooks{})
//	    // ... use the library
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Transform().OnTransformStart(scheme, shape)
//	// ... colorize ...
//	observability.Transform().OnTransformComplete(scheme, shape, duration, err)
package observability

import (
	"sync"
	"time"
)

// TransformHooks receives events from the colorization pipeline.
type TransformHooks interface {
	// OnTransformStart records the beginning of a transform call.
	OnTransformStart(scheme string, shape []int)

	// OnTransformComplete records a finished transform, successful or not.
	OnTransformComplete(scheme string, shape []int, duration time.Duration, err error)
}

// OptimizeHooks receives events from palette optimization runs.
type OptimizeHooks interface {
	// OnOptimizeStart records the beginning of an optimization for n colors.
	OnOptimizeStart(n int)

	// OnOptimizeComplete records a finished optimization with its final
	// objective value.
	OnOptimizeComplete(n int, objective float64, duration time.Duration, err error)
}

// NoopTransformHooks is a no-op implementation of TransformHooks.
type NoopTransformHooks struct{}

func (NoopTransformHooks) OnTransformStart(string, []int) {}
func (NoopTransformHooks) OnTransformComplete(string, []int, time.Duration, error) {}

// NoopOptimizeHooks is a no-op implementation of OptimizeHooks.
type NoopOptimizeHooks struct{}

func (NoopOptimizeHooks) OnOptimizeStart(int) {}
func (NoopOptimizeHooks) OnOptimizeComplete(int, float64, time.Duration, error) {}

var (
	transformHooks TransformHooks = NoopTransformHooks{}
	optimizeHooks  OptimizeHooks  = NoopOptimizeHooks{}
	hooksMu        sync.RWMutex
)

// SetTransformHooks registers custom transform hooks.
// This should be called once at application startup.
func SetTransformHooks(h TransformHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transformHooks = h
	}
}

// SetOptimizeHooks registers custom optimization hooks.
// This should be called once at application startup.
func SetOptimizeHooks(h OptimizeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		optimizeHooks = h
	}
}

// Transform returns the registered transform hooks.
func Transform() TransformHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transformHooks
}

// Optimize returns the registered optimization hooks.
func Optimize() OptimizeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return optimizeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	transformHooks = NoopTransformHooks{}
	optimizeHooks = NoopOptimizeHooks{}
}
