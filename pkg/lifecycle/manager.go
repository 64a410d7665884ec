// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/invowk/surfacegen/pkg/foreign"
)

var (
	// ErrAlreadyInitialized is returned by Init unless the manager is Unresolved.
	ErrAlreadyInitialized = errors.New("surface already initialized")
	// ErrNotResolved is returned by Surface unless the manager is Resolved.
	ErrNotResolved = errors.New("surface not resolved")
)

type (
	// ResolveFunc builds the surface from the host's primary api head.
	ResolveFunc[S any] func(head foreign.Addr) (S, error)

	// Manager holds one surface for the lifetime of a loaded module.
	// All methods are safe for concurrent use.
	Manager[S any] struct {
		// state is read lock-free; transitions use compare-and-swap.
		state atomic.Int32

		// mu guards surface and lastErr and serializes Init with Terminate.
		mu      sync.Mutex
		surface S
		lastErr error

		resolve ResolveFunc[S]
		logger  *log.Logger
	}

	// Option configures a Manager.
	Option func(*options)

	options struct {
		logger *log.Logger
	}
)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns an Unresolved manager that builds its surface with resolve.
func New[S any](resolve ResolveFunc[S], opts ...Option) *Manager[S] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return &Manager[S]{resolve: resolve, logger: o.logger}
}

// State returns the current state (atomic, lock-free read).
func (m *Manager[S]) State() State {
	return State(m.state.Load())
}

// Init resolves the surface from head. Exactly one Init per Terminate can
// run; every other call returns ErrAlreadyInitialized. A resolution error
// leaves the manager Failed and is returned unchanged.
func (m *Manager[S]) Init(head foreign.Addr) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.CompareAndSwap(int32(StateUnresolved), int32(StateResolving)) {
		return fmt.Errorf("%w: state %s", ErrAlreadyInitialized, m.State())
	}

	m.logger.Debug("resolving surface", "head", head)
	surface, err := m.resolve(head)
	if err != nil {
		m.lastErr = err
		m.state.Store(int32(StateFailed))
		m.logger.Error("surface resolution failed", "error", err)
		return err
	}

	m.surface = surface
	m.lastErr = nil
	m.state.Store(int32(StateResolved))
	m.logger.Debug("surface resolved")
	return nil
}

// Surface returns the resolved surface.
func (m *Manager[S]) Surface() (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero S
	switch state := m.State(); state {
	case StateResolved:
		return m.surface, nil
	case StateFailed:
		return zero, fmt.Errorf("%w: %w", ErrNotResolved, m.lastErr)
	default:
		return zero, fmt.Errorf("%w: state %s", ErrNotResolved, state)
	}
}

// Terminate drops the surface and returns the manager to Unresolved. It
// waits for an Init in progress and is a no-op unless Init has finished.
func (m *Manager[S]) Terminate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.State()
	if !state.IsTerminal() {
		return
	}
	var zero S
	m.surface = zero
	m.lastErr = nil
	m.state.Store(int32(StateUnresolved))
	m.logger.Debug("surface terminated", "from", state)
}
