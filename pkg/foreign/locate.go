// SPDX-License-Identifier: MPL-2.0

package foreign

import (
	"errors"
	"fmt"
)

// MaxChainLength bounds how many revisions are followed in one chain.
const MaxChainLength = 1024

var (
	// ErrAPINotFound is the sentinel wrapped by APINotFoundError.
	ErrAPINotFound = errors.New("API not found")
	// ErrCorruptChain is returned when a revision chain does not terminate
	// within MaxChainLength links.
	ErrCorruptChain = errors.New("corrupt revision chain")
)

type (
	// Tag is the host's numeric api-type enumerant.
	Tag uint32

	// Triple identifies a revision: category tag plus exact version.
	Triple struct {
		// Category is the manifest tag, used in messages only.
		Category string
		Tag      Tag
		Major    uint32
		Minor    uint32
	}

	// APINotFoundError is returned when no chain publishes the requested revision.
	APINotFoundError struct {
		Triple Triple
	}

	// Locator walks the host's api struct chains.
	Locator struct {
		view   View
		layout Layout
		head   Addr
	}

	header struct {
		tag   Tag
		major uint32
		minor uint32
		next  Addr
	}
)

// String returns "CATEGORY major.minor".
func (t Triple) String() string {
	name := t.Category
	if name == "" {
		name = fmt.Sprintf("type %d", t.Tag)
	}
	return fmt.Sprintf("%s %d.%d", name, t.Major, t.Minor)
}

// Error implements the error interface.
func (e *APINotFoundError) Error() string {
	return fmt.Sprintf("couldn't find API: %s", e.Triple)
}

// Unwrap returns ErrAPINotFound for errors.Is.
func (e *APINotFoundError) Unwrap() error { return ErrAPINotFound }

// NewLocator returns a Locator rooted at the primary head.
func NewLocator(view View, layout Layout, head Addr) *Locator {
	return &Locator{view: view, layout: layout, head: head}
}

// Locate returns the address of the revision matching want exactly.
// The primary chain is searched first, then every extension chain in the
// order the host lists them. There is no compatibility fallback: a request
// for 1.0 never accepts a published 1.1.
func (l *Locator) Locate(want Triple) (Addr, error) {
	if l.head == 0 {
		return 0, fmt.Errorf("locate %s: primary head: %w", want, ErrNullPointer)
	}

	addr, found, err := l.walk(l.head, want)
	if err != nil || found {
		return addr, err
	}

	extensions, err := l.Extensions()
	if err != nil {
		return 0, fmt.Errorf("locate %s: %w", want, err)
	}
	for _, ext := range extensions {
		addr, found, err := l.walk(ext, want)
		if err != nil || found {
			return addr, err
		}
	}

	return 0, &APINotFoundError{Triple: want}
}

// Extensions returns the extension head pointers published by the primary head.
func (l *Locator) Extensions() ([]Addr, error) {
	count, err := l.view.ReadField(l.head, l.layout.NumExtensionsOffset(), u32Size)
	if err != nil {
		return nil, fmt.Errorf("read extension count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	array, err := l.view.ReadField(l.head, l.layout.ExtensionsOffset(), l.layout.PointerSize)
	if err != nil {
		return nil, fmt.Errorf("read extension array: %w", err)
	}
	heads, err := l.view.ReadPointerArray(Addr(array), int(count))
	if err != nil {
		return nil, fmt.Errorf("read %d extension heads: %w", count, err)
	}
	return heads, nil
}

func (l *Locator) walk(start Addr, want Triple) (Addr, bool, error) {
	node := start
	for hops := 0; node != 0; hops++ {
		if hops == MaxChainLength {
			return 0, false, fmt.Errorf("locate %s from %s: %w", want, start, ErrCorruptChain)
		}

		h, err := l.header(node)
		if err != nil {
			return 0, false, fmt.Errorf("locate %s: read header at %s: %w", want, node, err)
		}
		if h.tag == want.Tag && h.major == want.Major && h.minor == want.Minor {
			return node, true, nil
		}
		node = h.next
	}
	return 0, false, nil
}

func (l *Locator) header(node Addr) (header, error) {
	tag, err := l.view.ReadField(node, tagOffset, u32Size)
	if err != nil {
		return header{}, err
	}
	major, err := l.view.ReadField(node, majorOffset, u32Size)
	if err != nil {
		return header{}, err
	}
	minor, err := l.view.ReadField(node, minorOffset, u32Size)
	if err != nil {
		return header{}, err
	}
	next, err := l.view.ReadField(node, l.layout.NextOffset(), l.layout.PointerSize)
	if err != nil {
		return header{}, err
	}
	return header{tag: Tag(tag), major: uint32(major), minor: uint32(minor), next: Addr(next)}, nil
}
