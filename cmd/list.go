package cmd

import (
	"fmt"
	"io"

	"github.com/glopal/envswitch/internal/parser"
	"github.com/glopal/envswitch/internal/registry"
	"github.com/gobwas/glob"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List declared categories and their environment variables",
	Long: `List declared categories and their environment variables. An optional glob
pattern filters categories by name, e.g. 'switch list "proj-*"'.`,
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runList,
}

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var listFormat string

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", formatText, "Output format: text, json or yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}
	return listRegistry(cmd.OutOrStdout(), cmd.ErrOrStderr(), reg, pattern, listFormat)
}

// listRegistry renders the categories of reg matching pattern in format.
func listRegistry(out, errOut io.Writer, reg *registry.Registry, pattern, format string) error {
	filtered := filterCategories(reg, pattern)

	switch format {
	case formatText:
		if len(filtered.Categories) == 0 {
			if pattern != "" {
				fmt.Fprintln(errOut, "No matching categories found.")
			}
			return nil
		}
		fmt.Fprint(out, filtered.String())
		return nil
	case formatJSON:
		return parser.EncodeJSON(out, filtered)
	case formatYAML:
		return parser.EncodeYAML(out, filtered)
	default:
		return oops.Errorf("unknown format %q (must be text, json or yaml)", format)
	}
}

// filterCategories keeps the categories whose name matches pattern. An
// invalid glob falls back to exact name matching; an empty pattern keeps
// everything.
func filterCategories(reg *registry.Registry, pattern string) *registry.Registry {
	if pattern == "" {
		return reg
	}

	match := func(name string) bool { return name == pattern }
	if g, err := glob.Compile(pattern); err == nil {
		match = g.Match
	}

	out := registry.New()
	for _, c := range reg.Categories {
		if match(c.Name) {
			out.Categories = append(out.Categories, c)
		}
	}
	return out
}
