package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/sling/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Renderer writes the result of a use case to the user
type Renderer[T any] interface {
	Render(result T) error
}

// writeStructured writes v as indented JSON or YAML
func writeStructured(out io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
