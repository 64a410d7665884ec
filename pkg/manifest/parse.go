// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/surfacegen/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FormatCUE covers both CUE and JSON documents (JSON is valid CUE).
	FormatCUE Format = "cue"
	// FormatTOML is a TOML document with the same structure.
	FormatTOML Format = "toml"

	// MaxFileSize is the largest manifest accepted (the host's full API
	// description is a little over 1MB).
	MaxFileSize int64 = 32 * 1024 * 1024

	schemaPath = "#Manifest"
)

var (
	//go:embed manifest_schema.cue
	manifestSchema []byte

	// ErrUnknownFormat is returned for a manifest format that cannot be read.
	ErrUnknownFormat = errors.New("unknown manifest format")
)

type (
	// Format selects the decoder used for a manifest document.
	Format string

	rawManifest struct {
		Core       *rawCategory  `json:"core"`
		Primary    *rawCategory  `json:"primary"`
		Extensions []rawCategory `json:"extensions"`
	}

	rawCategory struct {
		Name      string        `json:"name"`
		Type      string        `json:"type"`
		Tag       string        `json:"tag"`
		Version   Version       `json:"version"`
		Next      *rawCategory  `json:"next"`
		API       []rawFunction `json:"api"`
		Functions []rawFunction `json:"functions"`
	}

	rawFunction struct {
		Name          string        `json:"name"`
		ReturnType    string        `json:"return_type"`
		ReturnTypeAlt string        `json:"returnType"`
		Arguments     []rawArgument `json:"arguments"`
	}

	rawArgument struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
)

// FormatForPath picks the format from the file extension. Anything that is
// not .toml is compiled by CUE.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatCUE
}

// Parse reads and parses the manifest at path.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path, FormatForPath(path))
}

// ParseBytes parses manifest content. filename is only used in errors.
func ParseBytes(data []byte, filename string, format Format) (*Manifest, error) {
	opts := []cueutil.Option{
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(MaxFileSize),
	}

	var (
		exported []byte
		err      error
	)
	switch format {
	case FormatCUE:
		unified, cueErr := cueutil.Compile(manifestSchema, data, schemaPath, opts...)
		if cueErr != nil {
			return nil, &MalformedManifestError{File: filename, Cause: cueErr}
		}
		exported, err = unified.MarshalJSON()
	case FormatTOML:
		if sizeErr := cueutil.CheckFileSize(data, MaxFileSize, filename); sizeErr != nil {
			return nil, &MalformedManifestError{File: filename, Cause: sizeErr}
		}
		var doc map[string]any
		if tomlErr := toml.Unmarshal(data, &doc); tomlErr != nil {
			return nil, &MalformedManifestError{File: filename, Cause: tomlErr}
		}
		unified, cueErr := cueutil.Unify(manifestSchema, schemaPath, doc, opts...)
		if cueErr != nil {
			return nil, &MalformedManifestError{File: filename, Cause: cueErr}
		}
		exported, err = unified.MarshalJSON()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, &MalformedManifestError{File: filename, Cause: err}
	}

	var raw rawManifest
	if err := json.Unmarshal(exported, &raw); err != nil {
		return nil, &MalformedManifestError{File: filename, Cause: err}
	}

	m, err := raw.build(filename)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalJSON accepts both the [type, name] pair and the {type, name} object.
func (a *rawArgument) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("argument must be a [type, name] pair, got %d elements", len(pair))
		}
		a.Type, a.Name = pair[0], pair[1]
		return nil
	}

	type plain rawArgument
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = rawArgument(obj)
	return nil
}

func (r *rawManifest) build(file string) (*Manifest, error) {
	var primary *rawCategory
	switch {
	case r.Core != nil && r.Primary != nil:
		return nil, malformed(file, "primary", "both core and primary are set")
	case r.Core != nil:
		primary = r.Core
	case r.Primary != nil:
		primary = r.Primary
	default:
		return nil, malformed(file, "primary", "missing primary category")
	}

	if r.Extensions == nil {
		return nil, malformed(file, "extensions", "missing extensions list")
	}

	m := &Manifest{FilePath: file}
	head, err := primary.build(file, "primary", 0)
	if err != nil {
		return nil, err
	}
	m.Primary = *head

	m.Extensions = make([]Category, 0, len(r.Extensions))
	for i := range r.Extensions {
		ext, err := r.Extensions[i].build(file, fmt.Sprintf("extensions[%d]", i), 0)
		if err != nil {
			return nil, err
		}
		m.Extensions = append(m.Extensions, *ext)
	}
	return m, nil
}

func (c *rawCategory) build(file, field string, depth int) (*Category, error) {
	if depth >= MaxChainLength {
		return nil, malformed(file, field, "revision chain longer than %d", MaxChainLength)
	}

	tag := c.Tag
	if tag == "" {
		tag = c.Type
	}
	if c.Tag != "" && c.Type != "" && c.Tag != c.Type {
		return nil, malformed(file, field, "tag %q and type %q disagree", c.Tag, c.Type)
	}
	if tag == "" {
		return nil, malformed(file, field+".tag", "missing category tag")
	}

	var functions []rawFunction
	switch {
	case c.API != nil && c.Functions != nil:
		return nil, malformed(file, field, "both api and functions are set")
	case c.API != nil:
		functions = c.API
	case c.Functions != nil:
		functions = c.Functions
	default:
		return nil, malformed(file, field+".functions", "missing function list (api or functions)")
	}

	cat := &Category{
		Name:      c.Name,
		Tag:       tag,
		Version:   c.Version,
		Functions: make([]Function, 0, len(functions)),
	}
	for i, fn := range functions {
		fnField := fmt.Sprintf("%s.functions[%d]", field, i)
		ret := fn.ReturnType
		if ret == "" {
			ret = fn.ReturnTypeAlt
		}
		if ret == "" {
			return nil, malformed(file, fnField+".returnType", "missing return type of %s", fn.Name)
		}
		if fn.Arguments == nil {
			return nil, malformed(file, fnField+".arguments", "missing arguments of %s", fn.Name)
		}
		args := make([]Argument, 0, len(fn.Arguments))
		for _, arg := range fn.Arguments {
			args = append(args, Argument(arg))
		}
		cat.Functions = append(cat.Functions, Function{Name: fn.Name, ReturnType: ret, Arguments: args})
	}

	if c.Next != nil {
		next, err := c.Next.build(file, field+".next", depth+1)
		if err != nil {
			return nil, err
		}
		cat.Next = next
	}
	return cat, nil
}
