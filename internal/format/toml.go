package format

import (
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLExporter is an [Exporter] that transforms token streams into TOML documents.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given document
// as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, doc Document) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(doc)
}
