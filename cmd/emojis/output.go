package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// render writes v as YAML if the output format says so, otherwise it calls
// plain.
func (a *app) render(cmd *cobra.Command, v interface{}, plain func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch format := a.settings.GetString("output.format"); format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "plain", "":
		plain(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
