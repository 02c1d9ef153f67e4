package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/emojis/taxonomy"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type categoryItem struct {
	Name  string   `yaml:"name"`
	Title string   `yaml:"title"`
	Tier  string   `yaml:"tier"`
	Items []string `yaml:"items,omitempty"`
}

func (a *app) categoriesCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "categories [name]",
		Short: "List emoji categories, or the items of a category",
		Long: `Without arguments, categories lists the top-level categories.
For a top-level category it lists the subcategories, for a subcategory
the emoji glyphs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := a.language()
			var names []string
			switch {
			case len(args) == 1:
				names = args
			case all:
				names = a.reg.AllCategories()
			default:
				names = a.reg.TopLevelCategories()
			}
			items := make([]categoryItem, 0, len(names))
			for _, name := range names {
				title, err := a.reg.Title(name, lang)
				if err != nil {
					return err
				}
				item := categoryItem{Name: name, Title: title, Tier: a.reg.TierOf(name).String()}
				if len(args) == 1 {
					seq, err := a.reg.Sequence(name)
					if err != nil {
						return err
					}
					for seq.Next() {
						item.Items = append(item.Items, seq.Text())
					}
				}
				items = append(items, item)
			}
			return a.render(cmd, items, func(w io.Writer) {
				for _, item := range items {
					if item.Tier == taxonomy.SubLevel.String() && len(args) == 0 {
						fmt.Fprintf(w, "  %-40s %s\n", item.Name, item.Title)
					} else {
						fmt.Fprintf(w, "%-42s %s\n", item.Name, item.Title)
					}
					if len(item.Items) > 0 {
						fmt.Fprintln(w, strings.Join(item.Items, " "))
					}
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list subcategories, too")
	return cmd
}

// language returns the language for display titles.
func (a *app) language() language.Tag {
	if locale := a.settings.GetString("output.locale"); locale != "" {
		return language.Make(locale)
	}
	return taxonomy.LanguageFromEnvironment()
}
