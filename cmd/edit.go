package cmd

import (
	"fmt"
	"io"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <category> <name> <value>",
	Short: "Change the value of an existing environment variable",
	Long: `Change the value of an existing environment variable. Unlike 'switch add',
this replaces the stored value; the variable must already exist.

  switch edit net http_proxy http://other:3128
  switch edit net/http_proxy http://other:3128`,
	Args:              cobra.RangeArgs(2, 3),
	ValidArgsFunction: completeSwitches,
	RunE:              runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	category, name, value, err := resolveAssignment(args)
	if err != nil {
		return err
	}

	a, reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	if !editSwitch(cmd.OutOrStdout(), cmd.ErrOrStderr(), reg, category, name, value) {
		return nil
	}
	return a.store.Save(reg)
}

// editSwitch overwrites the value of an existing variable. It reports
// whether reg changed.
func editSwitch(out, errOut io.Writer, reg *registry.Registry, category, name, value string) bool {
	c, ok := reg.Category(category)
	if !ok {
		fmt.Fprintf(errOut, "Category '%s' does not exists!\n", category)
		return false
	}
	if !c.SetVariable(name, value) {
		fmt.Fprintf(errOut, "Given key '%s' does not have mapped value in category '%s'\n", name, category)
		return false
	}

	fmt.Fprintf(out, "Updated %s -> '%s'\n", registry.FormatKey(category, name), value)
	return true
}
