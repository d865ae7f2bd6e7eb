package cmd

import (
	"fmt"
	"io"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <category> [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a variable, or a whole category when no name is given",
	Long: `Remove a variable from a category, or the whole category when no name is given.

  switch remove net http_proxy
  switch remove net/http_proxy
  switch remove net`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeSwitches,
	RunE:              runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	category, name, hasName := resolveTarget(args)

	a, reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	if !removeSwitch(cmd.OutOrStdout(), cmd.ErrOrStderr(), reg, category, name, hasName) {
		return nil
	}
	return a.store.Save(reg)
}

// removeSwitch removes name from category, or category itself when hasName
// is false. It reports whether reg changed.
func removeSwitch(out, errOut io.Writer, reg *registry.Registry, category, name string, hasName bool) bool {
	c, ok := reg.Category(category)
	if !ok {
		fmt.Fprintf(errOut, "Category '%s' does not exists!\n", category)
		return false
	}

	if hasName {
		if !c.RemoveVariable(name) {
			fmt.Fprintf(errOut, "Given key '%s' does not have mapped value in category '%s'\n", name, category)
			return false
		}
		fmt.Fprintf(out, "Removed key '%s' from category '%s'\n", name, category)
		return true
	}

	reg.RemoveCategory(category)
	fmt.Fprintf(out, "Category '%s' has been removed!\n", category)
	return true
}
