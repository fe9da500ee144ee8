package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InspectRenderer renders artifact details
type InspectRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewInspectRenderer creates a new inspect renderer
func NewInspectRenderer(out io.Writer, format config.OutputFormat) Renderer[*usecase.InspectArtifactResult] {
	return &InspectRenderer{out: out, format: format}
}

type inspectView struct {
	Name         string                     `json:"name" yaml:"name"`
	Path         string                     `json:"path" yaml:"path"`
	Format       string                     `json:"format" yaml:"format"`
	Compiler     string                     `json:"compiler,omitempty" yaml:"compiler,omitempty"`
	BytecodeSize int                        `json:"bytecodeSize" yaml:"bytecodeSize"`
	Constructor  string                     `json:"constructor" yaml:"constructor"`
	Payable      bool                       `json:"payable" yaml:"payable"`
	Inputs       []usecase.ConstructorInput `json:"inputs" yaml:"inputs"`
	Functions    []string                   `json:"functions" yaml:"functions"`
	Events       []string                   `json:"events" yaml:"events"`
}

// Render writes the artifact description in the configured format
func (r *InspectRenderer) Render(result *usecase.InspectArtifactResult) error {
	a := result.Artifact
	if r.format != config.OutputText {
		return writeStructured(r.out, r.format, inspectView{
			Name:         a.Name,
			Path:         a.Path,
			Format:       string(a.Format),
			Compiler:     a.Compiler,
			BytecodeSize: result.BytecodeSize,
			Constructor:  result.Constructor,
			Payable:      result.Payable,
			Inputs:       nonNil(result.Inputs),
			Functions:    nonNil(result.Functions),
			Events:       nonNil(result.Events),
		})
	}

	compiler := a.Compiler
	if compiler == "" {
		compiler = "unknown"
	}

	fmt.Fprintln(r.out, headerStyle.Sprint(a.Name))
	fmt.Fprintln(r.out, kvTable([][2]string{
		{"Path", a.Path},
		{"Format", cases.Title(language.English).String(string(a.Format))},
		{"Compiler", compiler},
		{"Bytecode", fmt.Sprintf("%d bytes", result.BytecodeSize)},
		{"Constructor", result.Constructor},
		{"Payable", strconv.FormatBool(result.Payable)},
		{"Functions", strconv.Itoa(len(result.Functions))},
		{"Events", strconv.Itoa(len(result.Events))},
	}))

	if len(result.Inputs) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, headerStyle.Sprint("Constructor arguments:"))
		t := newTable()
		t.AppendHeader(table.Row{"#", "Name", "Type"})
		for i, in := range result.Inputs {
			t.AppendRow(table.Row{i, in.Name, in.Type})
		}
		fmt.Fprintln(r.out, t.Render())
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
