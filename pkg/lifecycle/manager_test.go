// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/surfacegen/pkg/foreign"
	"github.com/invowk/surfacegen/pkg/foreign/memtest"
)

type surface struct {
	head  foreign.Addr
	alloc foreign.Addr
}

// newResolver resolves a one-function surface out of a memtest arena.
func newResolver(t *testing.T) (foreign.Addr, ResolveFunc[*surface]) {
	t.Helper()

	arena := memtest.New(foreign.Layout{PointerSize: 8})
	alloc := arena.Func()
	head := arena.Head(0, 1, 0, alloc)

	tables := []foreign.Table{{Struct: "core_api", Triple: foreign.Triple{Category: "CORE", Major: 1}, Head: true}}
	slots := []foreign.Slot{{Table: 0, Index: 0, Name: "core_alloc"}}

	return head, func(h foreign.Addr) (*surface, error) {
		res, err := foreign.Resolve(arena, h, tables, slots, foreign.WithLayout(arena.Layout()))
		if err != nil {
			return nil, err
		}
		fn, _ := res.Func("core_alloc")
		return &surface{head: h, alloc: fn}, nil
	}
}

func quiet() Option {
	return WithLogger(log.New(io.Discard))
}

func TestManagerLifecycle(t *testing.T) {
	t.Parallel()

	head, resolve := newResolver(t)
	m := New(resolve, quiet())

	require.Equal(t, StateUnresolved, m.State())
	_, err := m.Surface()
	require.ErrorIs(t, err, ErrNotResolved)

	require.NoError(t, m.Init(head))
	require.Equal(t, StateResolved, m.State())
	s, err := m.Surface()
	require.NoError(t, err)
	assert.Equal(t, head, s.head)
	assert.NotZero(t, s.alloc)

	assert.ErrorIs(t, m.Init(head), ErrAlreadyInitialized)

	m.Terminate()
	require.Equal(t, StateUnresolved, m.State())
	_, err = m.Surface()
	assert.ErrorIs(t, err, ErrNotResolved)

	assert.NoError(t, m.Init(head))
}

func TestManagerFailedIsSticky(t *testing.T) {
	t.Parallel()

	head, resolve := newResolver(t)
	m := New(resolve, quiet())

	err := m.Init(head + 0x100000)
	require.Error(t, err)
	require.Equal(t, StateFailed, m.State())

	_, surfErr := m.Surface()
	assert.ErrorIs(t, surfErr, ErrNotResolved)
	assert.ErrorIs(t, surfErr, err, "Surface carries the resolution cause")

	// No retry without Terminate, even with a good head.
	assert.ErrorIs(t, m.Init(head), ErrAlreadyInitialized)

	m.Terminate()
	require.Equal(t, StateUnresolved, m.State())
	_, surfErr = m.Surface()
	assert.False(t, errors.Is(surfErr, err), "Terminate clears the cause: %v", surfErr)
	assert.NoError(t, m.Init(head))
}

func TestManagerMissingAPI(t *testing.T) {
	t.Parallel()

	arena := memtest.New(foreign.Layout{PointerSize: 8})
	head := arena.Head(0, 1, 0)
	m := New(func(h foreign.Addr) (foreign.Addr, error) {
		return foreign.NewLocator(arena, arena.Layout(), h).Locate(foreign.Triple{Category: "CORE", Major: 1, Minor: 1})
	}, quiet())

	assert.ErrorIs(t, m.Init(head), foreign.ErrAPINotFound)
}

func TestManagerConcurrentInit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	m := New(func(foreign.Addr) (int, error) {
		calls.Add(1)
		return 42, nil
	}, quiet())

	const n = 16
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Init(1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrAlreadyInitialized):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(n-1), rejected.Load())
	assert.Equal(t, int32(1), calls.Load(), "resolve runs once")
	v, err := m.Surface()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTerminateUnresolvedIsNoop(t *testing.T) {
	t.Parallel()

	m := New(func(foreign.Addr) (int, error) { return 0, nil }, quiet())
	m.Terminate()
	assert.Equal(t, StateUnresolved, m.State())
}
