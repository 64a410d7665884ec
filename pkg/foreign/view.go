// SPDX-License-Identifier: MPL-2.0

package foreign

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrNullPointer is returned when a read goes through a null base address.
	ErrNullPointer = errors.New("null pointer")
	// ErrFieldSize is returned for a field width other than 1, 2, 4 or 8 bytes.
	ErrFieldSize = errors.New("invalid field size")
)

type (
	// Addr is an address in foreign (non-Go) memory.
	Addr uintptr

	// View reads foreign memory. It is the only way the locator touches
	// host structures.
	View interface {
		// ReadField reads the size-byte unsigned field at base+offset.
		ReadField(base Addr, offset, size uintptr) (uint64, error)
		// ReadPointerArray reads n consecutive pointers starting at base.
		ReadPointerArray(base Addr, n int) ([]Addr, error)
	}

	// NativeView reads the memory of the current process. Addresses must
	// point at memory the host keeps alive and unmoved, never at the Go heap.
	NativeView struct{}
)

// String formats the address in hex.
func (a Addr) String() string {
	return fmt.Sprintf("%#x", uintptr(a))
}

// ReadField implements View.
func (NativeView) ReadField(base Addr, offset, size uintptr) (uint64, error) {
	if base == 0 {
		return 0, fmt.Errorf("read field at offset %d: %w", offset, ErrNullPointer)
	}

	p := unsafe.Add(unsafe.Pointer(base), offset) //nolint:govet // host memory, not Go heap
	switch size {
	case 1:
		return uint64(*(*uint8)(p)), nil
	case 2:
		return uint64(*(*uint16)(p)), nil
	case 4:
		return uint64(*(*uint32)(p)), nil
	case 8:
		return *(*uint64)(p), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrFieldSize, size)
	}
}

// ReadPointerArray implements View.
func (NativeView) ReadPointerArray(base Addr, n int) ([]Addr, error) {
	if n < 0 {
		return nil, fmt.Errorf("read pointer array: negative length %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if base == 0 {
		return nil, fmt.Errorf("read pointer array of %d: %w", n, ErrNullPointer)
	}

	src := unsafe.Slice((*uintptr)(unsafe.Pointer(base)), n) //nolint:govet // host memory, not Go heap
	out := make([]Addr, n)
	for i, p := range src {
		out[i] = Addr(p)
	}
	return out, nil
}
