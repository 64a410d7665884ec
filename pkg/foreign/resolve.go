// SPDX-License-Identifier: MPL-2.0

package foreign

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMissingFunction is the sentinel wrapped by MissingFunctionError.
var ErrMissingFunction = errors.New("API function missing")

type (
	// Table is one required api struct revision.
	Table struct {
		// Struct is the C struct name, used in messages.
		Struct string
		// Triple is the revision to locate.
		Triple Triple
		// Head marks the primary chain head, whose slots start after the
		// extension fan-out fields.
		Head bool
	}

	// Slot is one required function pointer.
	Slot struct {
		// Table indexes the Table the slot belongs to.
		Table int
		// Index is the slot's position within its table.
		Index int
		// Name is the function name.
		Name string
	}

	// MissingFunctionError is returned when a located table has a null slot.
	MissingFunctionError struct {
		Table    string
		Function string
	}

	// Resolution is the immutable result of a successful Resolve.
	Resolution struct {
		tables []Addr
		funcs  []Addr
		names  []string
		index  map[string]int
	}

	// Option configures Resolve.
	Option func(*resolveOptions)

	resolveOptions struct {
		layout Layout
	}
)

// Error implements the error interface.
func (e *MissingFunctionError) Error() string {
	return fmt.Sprintf("API function missing: %s.%s", e.Table, e.Function)
}

// Unwrap returns ErrMissingFunction for errors.Is.
func (e *MissingFunctionError) Unwrap() error { return ErrMissingFunction }

// WithLayout overrides HostLayout, e.g. to read a 32-bit host image.
func WithLayout(layout Layout) Option {
	return func(o *resolveOptions) {
		o.layout = layout
	}
}

// Resolve locates every table and reads every slot. It returns either a
// complete Resolution or an error; nothing partial escapes.
func Resolve(view View, head Addr, tables []Table, slots []Slot, opts ...Option) (*Resolution, error) {
	options := resolveOptions{layout: HostLayout()}
	for _, opt := range opts {
		opt(&options)
	}

	locator := NewLocator(view, options.layout, head)
	tableAddrs := make([]Addr, len(tables))
	for i, table := range tables {
		addr, err := locator.Locate(table.Triple)
		if err != nil {
			return nil, err
		}
		tableAddrs[i] = addr
	}

	res := &Resolution{
		tables: tableAddrs,
		funcs:  make([]Addr, len(slots)),
		names:  make([]string, len(slots)),
		index:  make(map[string]int, len(slots)),
	}
	for i, slot := range slots {
		if slot.Table < 0 || slot.Table >= len(tables) {
			return nil, fmt.Errorf("slot %s refers to table %d of %d", slot.Name, slot.Table, len(tables))
		}
		if _, dup := res.index[slot.Name]; dup {
			return nil, fmt.Errorf("slot %s declared twice", slot.Name)
		}

		table := tables[slot.Table]
		offset := options.layout.SlotOffset(table.Head, slot.Index)
		fn, err := view.ReadField(tableAddrs[slot.Table], offset, options.layout.PointerSize)
		if err != nil {
			return nil, fmt.Errorf("read %s.%s: %w", table.Struct, slot.Name, err)
		}
		if fn == 0 {
			return nil, &MissingFunctionError{Table: table.Struct, Function: slot.Name}
		}

		res.funcs[i] = Addr(fn)
		res.names[i] = slot.Name
		res.index[slot.Name] = i
	}
	return res, nil
}

// Len returns the number of resolved functions.
func (r *Resolution) Len() int {
	return len(r.funcs)
}

// Table returns the address of the i-th required table.
func (r *Resolution) Table(i int) Addr {
	return r.tables[i]
}

// At returns the function pointer of the i-th slot.
func (r *Resolution) At(i int) Addr {
	return r.funcs[i]
}

// Func returns the function pointer resolved for name.
func (r *Resolution) Func(name string) (Addr, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.funcs[i], true
}

// Names returns the resolved function names in slot order.
func (r *Resolution) Names() []string {
	return slices.Clone(r.names)
}
