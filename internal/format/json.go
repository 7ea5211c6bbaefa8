package format

import (
	"encoding/json"
	"io"
)

// JSONExporter is an [Exporter] that transforms token streams into JSON documents.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given document
// as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(doc)
}
