package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/ai-tools/configs"
	"github.com/codex-k8s/ai-tools/internal/config"
	"github.com/codex-k8s/ai-tools/internal/constants"
	"github.com/codex-k8s/ai-tools/internal/dsl"
	"github.com/codex-k8s/ai-tools/internal/log"
	"github.com/codex-k8s/ai-tools/internal/render"
	"github.com/codex-k8s/ai-tools/internal/templates"
)

type rootOptions struct {
	configPath     string
	embeddedConfig string
}

// environment bundles everything loaded before a command runs.
type environment struct {
	env       config.Config
	dsl       *dsl.Config
	logger    *slog.Logger
	templates *templates.Bundle
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{}

	root := &cobra.Command{
		Use:           "ai-tools",
		Short:         "Execute AI career tools with offline fallback content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config (overrides AI_TOOLS_CONFIG)")
	root.PersistentFlags().StringVar(&opts.embeddedConfig, "embedded-config", "", "use an embedded config from configs/ by filename")

	root.AddCommand(
		newServeCmd(&opts),
		newRunCmd(&opts),
		newToolsCmd(&opts),
	)

	return root
}

// load reads environment settings and the YAML config. Logs go to stdout
// unless stdout is reserved for command output or the MCP stdio stream.
func (o *rootOptions) load(stdoutReserved bool) (*environment, error) {
	envCfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	path := strings.TrimSpace(o.configPath)
	if path == "" {
		path = strings.TrimSpace(envCfg.ConfigPath)
	}

	var rendered []byte
	switch {
	case o.embeddedConfig != "":
		raw, err := configs.Load(o.embeddedConfig)
		if err != nil {
			return nil, err
		}
		rendered, err = render.RenderBytes(o.embeddedConfig, raw)
		if err != nil {
			return nil, fmt.Errorf("render config: %w", err)
		}
	case path != "":
		rendered, err = render.RenderFile(path)
		if err != nil {
			return nil, fmt.Errorf("render config: %w", err)
		}
	default:
		raw, err := configs.Default()
		if err != nil {
			return nil, err
		}
		rendered, err = render.RenderBytes(configs.DefaultName, raw)
		if err != nil {
			return nil, fmt.Errorf("render config: %w", err)
		}
	}

	dslCfg, err := dsl.Load(rendered)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var logOut io.Writer = os.Stdout
	if stdoutReserved || dslCfg.Server.Transport == constants.TransportStdio {
		logOut = os.Stderr
	}
	logger := log.New(envCfg.LogLevel, logOut)

	bundle, err := templates.Load(envCfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	logger.Debug("messages loaded", "lang", bundle.Lang())

	return &environment{env: envCfg, dsl: dslCfg, logger: logger, templates: bundle}, nil
}
