package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// OutputOptions selects how results are printed.
type OutputOptions struct {
	Format string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Format, "output", "o", OutputText,
		`Output format. One of "text", "json" or "yaml".`)
}

// Validate rejects unknown formats.
func (o *OutputOptions) Validate() error {
	switch o.Format {
	case "", OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", o.Format)
	}
}

// Structured reports whether output is machine readable.
func (o *OutputOptions) Structured() bool {
	return o.Format == OutputJSON || o.Format == OutputYAML
}

// Write encodes v in the selected structured format.
func (o *OutputOptions) Write(w io.Writer, v interface{}) error {
	switch o.Format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// HandleError reports err as a document on w when output is structured, and
// returns it unchanged otherwise.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if o.Structured() && err != nil {
		if w == nil {
			w = color.Output
		}
		out := map[string]string{
			"error": err.Error(),
		}
		if err := o.Write(w, out); err != nil {
			return err
		}
		return nil
	}
	return err
}
