// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry. Zero means no entry.
type Id int

const (
	ManifestNotFoundId Id = iota + 1
	MalformedManifestId
	UnsupportedTypeId
	UnknownCategoryId
	OutputWriteFailedId
	ConfigLoadFailedId
	InvalidPackageId
	SurfaceStaleId
)

type (
	// MarkdownMsg is catalog text in Markdown.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is one catalog entry.
	Issue struct {
		id       Id
		title    string
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the entry's identifier.
func (i *Issue) Id() Id {
	return i.id
}

// Title returns the one-line summary.
func (i *Issue) Title() string {
	return i.title
}

// MarkdownMsg returns the guidance text.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the entry's reference links.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the entry for a terminal. stylePath is a glamour style
// name ("dark", "light", "notty") or a path to a style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString("# ")
	md.WriteString(i.title)
	md.WriteString("\n")
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	catalog = []*Issue{
		{
			id:    ManifestNotFoundId,
			title: "Manifest not found",
			mdMsg: `
The API manifest could not be read.

## Things you can try
- Pass the manifest explicitly:
~~~
$ surfacegen generate --manifest path/to/gdnative_api.json
~~~
- Or set ` + "`manifest`" + ` in ` + "`surfacegen.cue`" + `.`,
		},
		{
			id:    MalformedManifestId,
			title: "Malformed manifest",
			mdMsg: `
The manifest does not match the expected shape.

## Common causes
- A category without a ` + "`version`" + ` or without ` + "`type`" + `/` + "`tag`" + `
- A function without ` + "`name`" + ` or ` + "`return_type`" + `
- An argument that is neither ` + "`[type, name]`" + ` nor ` + "`{type, name}`" + `
- The same function name declared in two categories

## Things you can try
~~~
$ surfacegen check gdnative_api.json
~~~`,
			docLinks: []HttpLink{"https://cuelang.org/docs/reference/spec/"},
		},
		{
			id:    UnsupportedTypeId,
			title: "Unsupported C type",
			mdMsg: `
A function signature uses a C type with no Go spelling.

Supported shapes are ` + "`T`, `const T`, `T *`, `const T *` and `const T **`" + `.
` + "`void`" + ` and ` + "`JNIEnv`" + ` are only valid behind a pointer, except ` + "`void`" + ` as a return type.

## Things you can try
- See how surfacegen reads a type:
~~~
$ surfacegen maptype "const godot_string **"
~~~`,
		},
		{
			id:    UnknownCategoryId,
			title: "Unknown API category",
			mdMsg: `
A category tag, or a tag and version pair, has no known host struct.

Known tags: CORE, NATIVESCRIPT, PLUGINSCRIPT, ANDROID, ARVR, VIDEODECODER, NET.
Only CORE and NATIVESCRIPT publish more than one version.`,
		},
		{
			id:    OutputWriteFailedId,
			title: "Could not write the surface",
			mdMsg: `
The generated file could not be written. The previous output, if any, is untouched.

## Things you can try
- Check that the output directory exists and is writable
- Make sure the output path is not a directory`,
		},
		{
			id:    ConfigLoadFailedId,
			title: "Configuration could not be loaded",
			mdMsg: `
` + "`surfacegen.cue`" + ` exists but could not be parsed or validated.

## Things you can try
- Print the effective configuration:
~~~
$ surfacegen config show
~~~
- Remove the file to fall back to defaults`,
			docLinks: []HttpLink{"https://cuelang.org/docs/"},
		},
		{
			id:    InvalidPackageId,
			title: "Invalid package name",
			mdMsg: `
The ` + "`--package`" + ` value must be a Go identifier, for example ` + "`gdapi`" + `.`,
		},
		{
			id:    SurfaceStaleId,
			title: "Generated surface is stale",
			mdMsg: `
The checked-in surface differs from what the manifest generates.

## Things you can try
~~~
$ go generate ./...
~~~`,
		},
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := slices.Clone(catalog)
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	i := slices.IndexFunc(catalog, func(is *Issue) bool { return is.id == id })
	if i < 0 {
		return nil
	}
	return catalog[i]
}
