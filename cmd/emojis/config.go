package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/emojis/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Display all settings",
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := config.Open(a.configPath())
				if err != nil {
					return err
				}
				settings := make(map[string]map[string]string)
				for _, section := range store.Sections() {
					settings[section], _ = store.Options(section)
				}
				return a.render(cmd, settings, func(w io.Writer) {
					for _, section := range store.Sections() {
						fmt.Fprintf(w, "[%s]\n", section)
						options := make([]string, 0, len(settings[section]))
						for option := range settings[section] {
							options = append(options, option)
						}
						sort.Strings(options)
						for _, option := range options {
							fmt.Fprintf(w, "%s = %s\n", option, settings[section][option])
						}
					}
				})
			},
		},
		&cobra.Command{
			Use:   "get <section.option>",
			Short: "Get a setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				section, option, err := splitKey(args[0])
				if err != nil {
					return err
				}
				store, err := config.Open(a.configPath())
				if err != nil {
					return err
				}
				value, err := store.Get(section, option)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <section.option> <value>",
			Short: "Set a setting",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updateStore(args[0], func(store *config.Store, section, option string) error {
					return store.Set(section, option, args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "remove <section.option>",
			Short: "Remove a setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updateStore(args[0], func(store *config.Store, section, option string) error {
					return store.Remove(section, option)
				})
			},
		},
	)
	return cmd
}

func (a *app) updateStore(key string, update func(*config.Store, string, string) error) error {
	section, option, err := splitKey(key)
	if err != nil {
		return err
	}
	store, err := config.Open(a.configPath())
	if err != nil {
		return err
	}
	if err = update(store, section, option); err != nil {
		return err
	}
	return store.Save()
}

func splitKey(key string) (string, string, error) {
	section, option, ok := strings.Cut(key, ".")
	if !ok {
		return "", "", fmt.Errorf("setting %q: expected section.option", key)
	}
	return section, option, nil
}
