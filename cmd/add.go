package cmd

import (
	"fmt"
	"io"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <category> <name> <value>",
	Short: "Add an environment variable to a category",
	Long: `Add an environment variable to a category. The category is created if it does
not exist yet. An existing variable is never overwritten; use 'switch edit'.

  switch add net http_proxy http://proxy:3128
  switch add net/http_proxy http://proxy:3128`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	category, name, value, err := resolveAssignment(args)
	if err != nil {
		return err
	}

	a, reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	if !addSwitch(cmd.OutOrStdout(), cmd.ErrOrStderr(), reg, category, name, value) {
		return nil
	}
	return a.store.Save(reg)
}

// addSwitch adds name=value to category, creating the category when
// needed. It reports whether reg changed.
func addSwitch(out, errOut io.Writer, reg *registry.Registry, category, name, value string) bool {
	if c, ok := reg.Category(category); ok {
		if !c.AddVariable(name, value) {
			fmt.Fprintf(errOut, "There is already registered environment variable with key '%s' in category '%s'!\n", name, category)
			return false
		}
	} else {
		c := registry.NewCategory(category)
		c.AddVariable(name, value)
		reg.AddCategory(c)
	}

	fmt.Fprintf(out, "Added entry '%s' -> '%s' to category '%s'\n", name, value, category)
	return true
}
