package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type occurrenceItem struct {
	Unit     string `yaml:"unit"`
	Position string `yaml:"position"`
	Emoji    bool   `yaml:"emoji"`
	Category string `yaml:"category,omitempty"`
	Name     string `yaml:"name,omitempty"`
}

func (a *app) scanCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "scan [text]",
		Short: "List the emoji of a text with positions and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := text(cmd, args)
			if err != nil {
				return err
			}
			var items []occurrenceItem
			scanner := a.reg.Analyze(t, all)
			for scanner.Next() {
				occ := scanner.Occurrence()
				item := occurrenceItem{Unit: occ.Unit, Position: occ.Pos.String(), Emoji: occ.Emoji}
				if occ.Emoji {
					if c := a.reg.CategoryOf(occ.Unit); c.Found() {
						item.Category = c.Top + "/" + c.Sub
					}
					item.Name, _ = a.reg.NameOf(occ.Unit)
				}
				items = append(items, item)
			}
			if err = scanner.Err(); err != nil {
				return err
			}
			if a.reg.HasReplacementMarker(t) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: text contains replacement characters")
			}
			return a.render(cmd, items, func(w io.Writer) {
				for _, item := range items {
					fmt.Fprintf(w, "%-8s %s\t%s\t%s\n", item.Position, item.Unit, item.Category, item.Name)
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list non-emoji characters, too")
	return cmd
}

func (a *app) countCmd() *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "count [text]",
		Short: "Count the emoji of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := text(cmd, args)
			if err != nil {
				return err
			}
			n := a.reg.Count(t, unique)
			return a.render(cmd, map[string]int{"count": n}, func(w io.Writer) {
				fmt.Fprintln(w, n)
			})
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "count every distinct emoji once")
	return cmd
}

func (a *app) distinctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distinct [text]",
		Short: "List the distinct emoji of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := text(cmd, args)
			if err != nil {
				return err
			}
			units := a.reg.FindDistinct(t)
			return a.render(cmd, units, func(w io.Writer) {
				for _, unit := range units {
					fmt.Fprintln(w, unit)
				}
			})
		},
	}
}

func (a *app) replaceCmd() *cobra.Command {
	var with string
	cmd := &cobra.Command{
		Use:   "replace [text]",
		Short: "Replace every emoji of a text",
		Long: `Replace every emoji of a text by a replacement string. Without
flag --with, setting scan.replacement is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := text(cmd, args)
			if err != nil {
				return err
			}
			replacement := a.settings.GetString("scan.replacement")
			if cmd.Flags().Changed("with") {
				replacement = with
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.reg.Replace(t, replacement))
			return nil
		},
	}
	cmd.Flags().StringVarP(&with, "with", "w", "", "replacement string")
	return cmd
}
