// SPDX-License-Identifier: MPL-2.0

package synth

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/invowk/surfacegen/pkg/catalog"
	"github.com/invowk/surfacegen/pkg/ctype"
	"github.com/invowk/surfacegen/pkg/manifest"
)

// resolutionMethod is the accessor of the Surface's resolution.
const resolutionMethod = "Resolution"

// ErrInvalidPackage is returned when Options.Package is not a Go identifier.
var ErrInvalidPackage = errors.New("invalid package name")

type (
	// Options controls the rendered file's header.
	Options struct {
		// Package is the Go package clause of the generated file.
		Package string
		// Source names the manifest in the "Code generated" header.
		Source string
		// BuildTag, when set, becomes a //go:build constraint.
		BuildTag string
	}

	// Plan is everything Render needs, fully decided.
	Plan struct {
		Package  string
		Source   string
		BuildTag string
		Tables   []Table
		Funcs    []Func
	}

	// Table is one flattened revision.
	Table struct {
		// Struct is the host's C struct name.
		Struct string
		// Tag is the manifest category tag.
		Tag string
		// Enumerant is the host's api-type constant name.
		Enumerant string
		// Value is the enumerant's numeric value.
		Value uint32
		// Version is the revision's version.
		Version manifest.Version
		// Head marks the primary chain head.
		Head bool
		// Extension is the extension name, empty on the primary chain.
		Extension string
	}

	// Func is one function slot.
	Func struct {
		// CName is the host function name.
		CName string
		// Field is the unexported Surface field holding the callable.
		Field string
		// Accessor is the exported forwarding method.
		Accessor string
		// Table indexes Plan.Tables.
		Table int
		// Slot is the position within the table.
		Slot int
		// Params are the Go parameters in declaration order.
		Params []Param
		// Result is the Go result type, empty for void.
		Result string
		// CSignature is the C prototype, kept for the field comment.
		CSignature string
	}

	// Param is one Go parameter.
	Param struct {
		Name string
		Type string
		// Const records a read-only C target; Go cannot express it.
		Const bool
	}
)

// Build plans the surface for m.
func Build(m *manifest.Manifest, opts Options) (*Plan, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, opts.Package)
	}

	plan := &Plan{Package: opts.Package, Source: opts.Source, BuildTag: opts.BuildTag}
	accessors := make(map[string]string)
	var chainName string
	for _, rev := range m.Revisions() {
		if rev.Head {
			chainName = rev.Name
		}
		table, err := planTable(rev, chainName)
		if err != nil {
			return nil, err
		}
		plan.Tables = append(plan.Tables, table)
		tableIndex := len(plan.Tables) - 1

		for slot, fn := range rev.Functions {
			f, err := planFunc(fn, tableIndex, slot)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", rev.Key(), fn.Name, err)
			}
			if prev, dup := accessors[f.Accessor]; dup {
				return nil, &manifest.MalformedManifestError{
					File:  m.FilePath,
					Field: fn.Name,
					Cause: fmt.Errorf("derived name %s collides with %s", f.Accessor, prev),
				}
			}
			accessors[f.Accessor] = fn.Name
			plan.Funcs = append(plan.Funcs, f)
		}
	}
	return plan, nil
}

// FuncsOf returns the functions of table i in slot order.
func (p *Plan) FuncsOf(i int) []Func {
	var funcs []Func
	for _, f := range p.Funcs {
		if f.Table == i {
			funcs = append(funcs, f)
		}
	}
	return funcs
}

// UsesUnsafe reports whether any signature mentions unsafe.Pointer.
func (p *Plan) UsesUnsafe() bool {
	for _, f := range p.Funcs {
		if strings.Contains(f.Result, "unsafe.") {
			return true
		}
		for _, param := range f.Params {
			if strings.Contains(param.Type, "unsafe.") {
				return true
			}
		}
	}
	return false
}

// Signature returns the Go parameter list and result, e.g.
// "(self_ *godot_variant) int64".
func (f Func) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name + " " + p.Type
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if f.Result != "" {
		sig += " " + f.Result
	}
	return sig
}

// Args returns the forwarded argument list.
func (f Func) Args() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// planTable describes rev. chainName is the name declared on rev's chain
// head, which later revisions inherit.
func planTable(rev manifest.Revision, chainName string) (Table, error) {
	entry, err := catalog.Lookup(rev.Tag)
	if err != nil {
		return Table{}, err
	}
	structName, err := catalog.StructName(rev.Tag, rev.Version.Major, rev.Version.Minor)
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Struct:    structName,
		Tag:       rev.Tag,
		Enumerant: entry.Enumerant,
		Value:     entry.Value,
		Version:   rev.Version,
		Head:      rev.Primary && rev.Head,
	}
	if !rev.Primary {
		t.Extension = chainName
	}
	return t, nil
}

func planFunc(fn manifest.Function, table, slot int) (Func, error) {
	f := Func{
		CName:    fn.Name,
		Field:    fieldName(fn.Name),
		Accessor: exportedName(fn.Name),
		Table:    table,
		Slot:     slot,
	}
	if f.Accessor == "" {
		return Func{}, fmt.Errorf("no Go name can be derived from %q", fn.Name)
	}
	if f.Accessor == resolutionMethod {
		f.Accessor += "_"
	}

	ret, err := ctype.Map(fn.ReturnType)
	if err != nil {
		return Func{}, fmt.Errorf("return type: %w", err)
	}
	if f.Result, err = ret.GoResult(); err != nil {
		return Func{}, fmt.Errorf("return type: %w", err)
	}

	namer := newParamNamer()
	cParams := make([]string, len(fn.Arguments))
	for i, arg := range fn.Arguments {
		desc, err := ctype.Map(arg.Type)
		if err != nil {
			return Func{}, fmt.Errorf("argument %d: %w", i, err)
		}
		goType, err := desc.GoType()
		if err != nil {
			return Func{}, fmt.Errorf("argument %d: %w", i, err)
		}
		f.Params = append(f.Params, Param{Name: namer.name(arg.Name, i), Type: goType, Const: desc.Const})
		cParams[i] = cDecl(arg.Type, arg.Name)
	}
	f.CSignature = cDecl(fn.ReturnType, fn.Name) + "(" + strings.Join(cParams, ", ") + ")"
	return f, nil
}

// cDecl joins a raw C type and a name the way a header would write it,
// with the pointer markers attached to the name.
func cDecl(cType, name string) string {
	base := strings.TrimRight(cType, " \t*")
	stars := strings.Count(cType[len(base):], "*")
	decl := strings.Join(strings.Fields(base), " ")
	if stars > 0 {
		decl += " " + strings.Repeat("*", stars)
		return decl + name
	}
	if name == "" {
		return decl
	}
	return decl + " " + name
}
