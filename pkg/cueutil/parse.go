// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult contains the result of a successful parse.
type ParseResult[T any] struct {
	// Value is the decoded Go value.
	Value *T

	// Unified is the unified CUE value.
	Unified cue.Value
}

// Compile compiles data, unifies it with the schemaPath definition of schema
// and validates the result. The returned value is ready to be decoded or
// exported.
func Compile(schema, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	options := applyOptions(opts)

	if err := CheckFileSize(data, options.maxFileSize, options.filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()
	root, err := schemaRoot(ctx, schema, schemaPath)
	if err != nil {
		return cue.Value{}, err
	}

	userValue := ctx.CompileBytes(data, cue.Filename(options.filename))
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), options.filename)
	}

	return validate(root.Unify(userValue), options)
}

// Unify encodes an already decoded Go value (for example the result of a
// TOML decode), unifies it with the schemaPath definition of schema and
// validates the result.
func Unify(schema []byte, schemaPath string, value any, opts ...Option) (cue.Value, error) {
	options := applyOptions(opts)

	ctx := cuecontext.New()
	root, err := schemaRoot(ctx, schema, schemaPath)
	if err != nil {
		return cue.Value{}, err
	}

	userValue := ctx.Encode(value)
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), options.filename)
	}

	return validate(root.Unify(userValue), options)
}

// ParseAndDecode runs Compile and decodes the unified value into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	unified, err := Compile(schema, data, schemaPath, opts...)
	if err != nil {
		return nil, err
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, applyOptions(opts).filename)
	}

	return &ParseResult[T]{Value: &result, Unified: unified}, nil
}

func schemaRoot(ctx *cue.Context, schema []byte, schemaPath string) (cue.Value, error) {
	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}
	return root, nil
}

func validate(unified cue.Value, options parseOptions) (cue.Value, error) {
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return cue.Value{}, FormatError(err, options.filename)
	}
	return unified, nil
}
