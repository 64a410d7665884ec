// SPDX-License-Identifier: MPL-2.0

package foreign

import "unsafe"

const (
	tagOffset   uintptr = 0
	majorOffset uintptr = 4
	minorOffset uintptr = 8
	u32Size     uintptr = 4
)

// Layout computes the byte offsets of the api struct header for a given
// pointer width. Field offsets follow the C rules for the natural alignment
// of uint32 and pointers.
type Layout struct {
	PointerSize uintptr
}

// HostLayout returns the layout for the running process.
func HostLayout() Layout {
	return Layout{PointerSize: unsafe.Sizeof(uintptr(0))}
}

// NextOffset is the offset of the link to the next revision.
func (l Layout) NextOffset() uintptr {
	return alignUp(minorOffset+u32Size, l.PointerSize)
}

// NumExtensionsOffset is the offset of the primary head's extension count.
func (l Layout) NumExtensionsOffset() uintptr {
	return l.NextOffset() + l.PointerSize
}

// ExtensionsOffset is the offset of the primary head's extension array pointer.
func (l Layout) ExtensionsOffset() uintptr {
	return alignUp(l.NumExtensionsOffset()+u32Size, l.PointerSize)
}

// SlotOffset is the offset of function slot i. head selects the primary
// head's longer header.
func (l Layout) SlotOffset(head bool, i int) uintptr {
	first := l.NextOffset() + l.PointerSize
	if head {
		first = l.ExtensionsOffset() + l.PointerSize
	}
	return first + uintptr(i)*l.PointerSize
}

func alignUp(off, align uintptr) uintptr {
	return (off + align - 1) &^ (align - 1)
}
