package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/ai-tools/internal/audit"
	"github.com/codex-k8s/ai-tools/internal/runtime"
)

type runOptions struct {
	inputs []string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run <tool>",
		Short: "Execute a tool once and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(opts.inputs)
			if err != nil {
				return err
			}
			loaded, err := root.load(true)
			if err != nil {
				return err
			}
			runner, err := runtime.NewRunner(runtime.Options{
				DSL:       loaded.dsl,
				Env:       loaded.env,
				Logger:    loaded.logger,
				Templates: loaded.templates,
				Audit:     audit.New(loaded.logger),
			})
			if err != nil {
				return err
			}

			result, err := runner.Run(cmd.Context(), runtime.Call{ToolName: args[0], Inputs: inputs})
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.inputs, "input", "i", nil, "tool input as key=value (repeatable)")

	return cmd
}

func parseInputs(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid input %q (want key=value)", pair)
		}
		inputs[key] = value
	}
	return inputs, nil
}
