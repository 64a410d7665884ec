// SPDX-License-Identifier: MPL-2.0

package foreign

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type (
	// Binder turns a resolved function pointer into a callable Go func.
	// fn is a pointer to a func-typed variable.
	Binder interface {
		Bind(fn any, addr Addr) error
	}

	// PuregoBinder binds C function pointers with purego, so no cgo is
	// needed to call through the surface.
	PuregoBinder struct{}
)

// Bind implements Binder. purego panics on signatures it cannot marshal;
// the panic is returned as an error.
func (PuregoBinder) Bind(fn any, addr Addr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bind function at %s: %v", addr, r)
		}
	}()

	purego.RegisterFunc(fn, uintptr(addr))
	return nil
}

// BindAll binds every resolved slot into the matching target, in slot order.
func (r *Resolution) BindAll(binder Binder, targets []any) error {
	if len(targets) != len(r.funcs) {
		return fmt.Errorf("bind %d targets to %d resolved functions", len(targets), len(r.funcs))
	}
	for i, target := range targets {
		if err := binder.Bind(target, r.funcs[i]); err != nil {
			return fmt.Errorf("bind %s: %w", r.names[i], err)
		}
	}
	return nil
}
