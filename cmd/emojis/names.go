package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

func (a *app) demojizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demojize [text]",
		Short: "List the names of the emoji of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := text(cmd, args)
			if err != nil {
				return err
			}
			var d []string
			for _, unit := range a.reg.FindAll(t) {
				name, err := a.reg.Demojize(unit)
				if err != nil {
					return err
				}
				d = append(d, name)
			}
			return a.render(cmd, d, func(w io.Writer) {
				for _, name := range d {
					fmt.Fprintln(w, name)
				}
			})
		},
	}
}

func (a *app) emojizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emojize name...",
		Short: "Convert demojized names back to emoji",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var units []string
			for _, arg := range args {
				unit, err := a.reg.Emojize(arg)
				if err != nil {
					return err
				}
				units = append(units, unit)
			}
			return a.render(cmd, units, func(w io.Writer) {
				for _, unit := range units {
					fmt.Fprintln(w, unit)
				}
			})
		},
	}
}

type codepointItem struct {
	Unit       string   `yaml:"unit"`
	CodePoints []string `yaml:"codepoints"`
}

func (a *app) codepointsCmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "codepoints [text]",
		Short: "Show the code-points of the emoji of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if decode {
				unit, err := emojis.FromCodePoints(args...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), unit)
				return nil
			}
			t, err := text(cmd, args)
			if err != nil {
				return err
			}
			var items []codepointItem
			for _, unit := range a.reg.FindDistinct(t) {
				items = append(items, codepointItem{Unit: unit, CodePoints: emojis.CodePoints(unit)})
			}
			return a.render(cmd, items, func(w io.Writer) {
				for _, item := range items {
					fmt.Fprintf(w, "%s\t%v\n", item.Unit, item.CodePoints)
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "convert code-points (U+1F600 …) to text")
	return cmd
}
