package format

import (
	_ "embed"
	"io"
	"text/template"
)

//go:embed templates/tokens.txt.tmpl
var textTempl string

// textTemplate is the parsed token listing text/template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var textTemplate = template.Must(template.New("text").Parse(textTempl))

// TextExporter is an [Exporter] that renders token streams as a plain
// text listing, one token per line.
type TextExporter struct{}

// Export implements [Exporter] for [TextExporter].
func (t TextExporter) Export(w io.Writer, doc Document) error {
	return textTemplate.Execute(w, doc)
}
