// SPDX-License-Identifier: MPL-2.0

package synth

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"text/template"
)

//go:embed surface.go.tmpl
var surfaceTemplate string

var tmpl = template.Must(template.New("surface").Parse(surfaceTemplate))

// Render emits plan as formatted Go source.
func Render(plan *Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, plan); err != nil {
		return nil, fmt.Errorf("render surface: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
