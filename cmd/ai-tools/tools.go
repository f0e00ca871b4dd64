package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/ai-tools/internal/runtime"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

func newToolsCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := opts.load(true)
			if err != nil {
				return err
			}
			catalog := tool.CatalogFor(runtime.ResolveModel(loaded.dsl, loaded.env))
			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(catalog)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tMODEL\tINPUTS")
			for _, info := range catalog {
				names := make([]string, 0, len(info.Fields))
				for _, field := range info.Fields {
					names = append(names, field.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.DisplayName, info.Model, strings.Join(names, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")

	return cmd
}
