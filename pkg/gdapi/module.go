// SPDX-License-Identifier: MPL-2.0

package gdapi

import (
	"github.com/invowk/surfacegen/pkg/foreign"
	"github.com/invowk/surfacegen/pkg/lifecycle"
)

// NewManager returns the lifetime manager for a module built on this
// surface. The module's init hook calls Init with the head the host passes
// in; its terminate hook calls Terminate.
func NewManager(view foreign.View, binder foreign.Binder, opts ...foreign.Option) *lifecycle.Manager[*Surface] {
	return lifecycle.New(func(head foreign.Addr) (*Surface, error) {
		return Resolve(view, head, binder, opts...)
	})
}
