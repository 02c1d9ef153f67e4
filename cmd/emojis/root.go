package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/emojis/internal/config"
	"github.com/npillmayer/emojis/registry"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by all sub-commands.
type app struct {
	cfgFile  string
	output   string
	trace    string
	settings *viper.Viper
	reg      *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{settings: viper.New()}
	root := &cobra.Command{
		Use:           "emojis",
		Short:         "Find, count and classify emoji in text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.trace != "" {
				gtrace.CoreTracer.SetTraceLevel(traceLevel(a.trace))
			}
			a.reg = registry.Default()
			return a.loadSettings()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: plain, yaml")
	root.PersistentFlags().StringVar(&a.trace, "trace", "", "trace level: Debug, Info, Error")

	root.AddCommand(
		a.categoriesCmd(),
		a.scanCmd(),
		a.countCmd(),
		a.distinctCmd(),
		a.replaceCmd(),
		a.demojizeCmd(),
		a.emojizeCmd(),
		a.codepointsCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) loadSettings() error {
	a.settings.SetConfigFile(a.configPath())
	a.settings.SetConfigType(config.FileType)
	a.settings.SetDefault("scan.replacement", "")
	a.settings.SetDefault("output.format", "plain")
	a.settings.SetDefault("output.locale", "")
	if _, err := os.Stat(a.configPath()); err == nil {
		if err = a.settings.ReadInConfig(); err != nil {
			return err
		}
	}
	if a.output != "" {
		a.settings.Set("output.format", a.output)
	}
	return nil
}

func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "emojis", "emojis.toml")
}

func traceLevel(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// text returns the input text, either from args or from stdin.
func text(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
