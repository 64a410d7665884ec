// SPDX-License-Identifier: MPL-2.0

// Package memtest builds synthetic host memory for exercising the foreign
// package without a real host process.
//
// An Arena is a little-endian byte slice mapped at a fake base address. It
// implements foreign.View, so the locator reads it exactly as it would read
// host memory, and it can lay out api structs with the same header and slot
// offsets a host would use.
package memtest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"

	"github.com/invowk/surfacegen/pkg/foreign"
)

// BaseAddr is the fake address of the first arena byte.
const BaseAddr foreign.Addr = 0x10000

// ErrOutOfBounds is returned for reads outside the arena.
var ErrOutOfBounds = errors.New("address outside arena")

type (
	// Arena is synthetic foreign memory.
	Arena struct {
		layout foreign.Layout
		mem    []byte
	}

	// Binder is a foreign.Binder that binds registered Go funcs by address.
	Binder struct {
		funcs map[foreign.Addr]any
	}
)

// New returns an empty arena using layout.
func New(layout foreign.Layout) *Arena {
	return &Arena{layout: layout}
}

// Layout returns the arena's layout.
func (a *Arena) Layout() foreign.Layout {
	return a.layout
}

// Alloc reserves size zeroed bytes aligned to the pointer size.
func (a *Arena) Alloc(size uintptr) foreign.Addr {
	align := int(a.layout.PointerSize)
	for len(a.mem)%align != 0 {
		a.mem = append(a.mem, 0)
	}
	addr := BaseAddr + foreign.Addr(len(a.mem))
	a.mem = append(a.mem, make([]byte, size)...)
	return addr
}

// Func reserves a distinct non-null address standing in for a function.
func (a *Arena) Func() foreign.Addr {
	return a.Alloc(a.layout.PointerSize)
}

// Head lays out a primary head struct with the given slots and no extensions.
func (a *Arena) Head(tag foreign.Tag, major, minor uint32, funcs ...foreign.Addr) foreign.Addr {
	return a.table(true, tag, major, minor, funcs)
}

// Table lays out a non-head api struct with the given slots.
func (a *Arena) Table(tag foreign.Tag, major, minor uint32, funcs ...foreign.Addr) foreign.Addr {
	return a.table(false, tag, major, minor, funcs)
}

// Link sets from's next pointer to to.
func (a *Arena) Link(from, to foreign.Addr) {
	a.PutPointer(from, a.layout.NextOffset(), to)
}

// SetExtensions publishes exts as the extension heads of the primary head.
func (a *Arena) SetExtensions(head foreign.Addr, exts ...foreign.Addr) {
	array := a.Alloc(uintptr(len(exts)) * a.layout.PointerSize)
	for i, ext := range exts {
		a.PutPointer(array, uintptr(i)*a.layout.PointerSize, ext)
	}
	a.PutUint32(head, a.layout.NumExtensionsOffset(), uint32(len(exts)))
	a.PutPointer(head, a.layout.ExtensionsOffset(), array)
}

// SetSlot overwrites function slot i of table.
func (a *Arena) SetSlot(table foreign.Addr, head bool, i int, fn foreign.Addr) {
	a.PutPointer(table, a.layout.SlotOffset(head, i), fn)
}

// PutUint32 writes v at addr+off.
func (a *Arena) PutUint32(addr foreign.Addr, off uintptr, v uint32) {
	binary.LittleEndian.PutUint32(a.bytes(addr, off, 4), v)
}

// PutPointer writes p at addr+off using the layout's pointer size.
func (a *Arena) PutPointer(addr foreign.Addr, off uintptr, p foreign.Addr) {
	b := a.bytes(addr, off, a.layout.PointerSize)
	if a.layout.PointerSize == 4 {
		binary.LittleEndian.PutUint32(b, uint32(p))
		return
	}
	binary.LittleEndian.PutUint64(b, uint64(p))
}

// ReadField implements foreign.View.
func (a *Arena) ReadField(base foreign.Addr, offset, size uintptr) (uint64, error) {
	if base == 0 {
		return 0, fmt.Errorf("read field at offset %d: %w", offset, foreign.ErrNullPointer)
	}
	b, err := a.slice(base, offset, size)
	if err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case 8:
		return binary.LittleEndian.Uint64(b), nil
	default:
		return 0, fmt.Errorf("%w: %d", foreign.ErrFieldSize, size)
	}
}

// ReadPointerArray implements foreign.View.
func (a *Arena) ReadPointerArray(base foreign.Addr, n int) ([]foreign.Addr, error) {
	if n < 0 {
		return nil, fmt.Errorf("read pointer array: negative length %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if base == 0 {
		return nil, fmt.Errorf("read pointer array of %d: %w", n, foreign.ErrNullPointer)
	}

	out := make([]foreign.Addr, n)
	for i := range out {
		p, err := a.ReadField(base, uintptr(i)*a.layout.PointerSize, a.layout.PointerSize)
		if err != nil {
			return nil, err
		}
		out[i] = foreign.Addr(p)
	}
	return out, nil
}

func (a *Arena) table(head bool, tag foreign.Tag, major, minor uint32, funcs []foreign.Addr) foreign.Addr {
	size := a.layout.SlotOffset(head, len(funcs))
	addr := a.Alloc(size)
	a.PutUint32(addr, 0, uint32(tag))
	a.PutUint32(addr, 4, major)
	a.PutUint32(addr, 8, minor)
	for i, fn := range funcs {
		a.SetSlot(addr, head, i, fn)
	}
	return addr
}

func (a *Arena) slice(addr foreign.Addr, off, size uintptr) ([]byte, error) {
	start := int64(addr) - int64(BaseAddr) + int64(off)
	end := start + int64(size)
	if start < 0 || end > int64(len(a.mem)) {
		return nil, fmt.Errorf("%w: %s+%d", ErrOutOfBounds, addr, off)
	}
	return a.mem[start:end], nil
}

func (a *Arena) bytes(addr foreign.Addr, off, size uintptr) []byte {
	b, err := a.slice(addr, off, size)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBinder returns an empty Binder.
func NewBinder() *Binder {
	return &Binder{funcs: make(map[foreign.Addr]any)}
}

// Register makes fn the implementation bound for addr.
func (b *Binder) Register(addr foreign.Addr, fn any) {
	b.funcs[addr] = fn
}

// Bind implements foreign.Binder. The registered func must have exactly the
// target's type.
func (b *Binder) Bind(fn any, addr foreign.Addr) error {
	impl, ok := b.funcs[addr]
	if !ok {
		return fmt.Errorf("no function registered at %s", addr)
	}

	target := reflect.ValueOf(fn)
	if target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Func {
		return fmt.Errorf("bind target must be a pointer to a func, got %T", fn)
	}
	v := reflect.ValueOf(impl)
	if v.Type() != target.Elem().Type() {
		return fmt.Errorf("function at %s has type %s, want %s", addr, v.Type(), target.Elem().Type())
	}
	target.Elem().Set(v)
	return nil
}
