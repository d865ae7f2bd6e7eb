package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/glopal/envswitch/internal/apply"
	"github.com/glopal/envswitch/internal/registry"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply [category] [name]",
	Short: "Apply a declared environment variable to the current session",
	Long: `Apply a declared environment variable to the current session. Missing
arguments are asked for interactively.

On Linux the export command is typed into the terminal you run switch from.
On Windows the variable is written to the user environment. Elsewhere, or
with --print, an export statement is printed for the shell to evaluate:

  eval "$(switch apply --print net/http_proxy)"`,
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completeSwitches,
	RunE:              runApply,
}

var applyPrint bool

func init() {
	applyCmd.Flags().BoolVar(&applyPrint, "print", false, "Print an export statement instead of injecting it")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	category, name, _ := resolveTarget(args)

	a, reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	var applier apply.Applier
	if applyPrint {
		applier = apply.NewPrinter(cmd.OutOrStdout())
	} else {
		applier = apply.Native(cmd.OutOrStdout(), a.log)
	}

	return applySwitch(cmd.InOrStdin(), cmd.ErrOrStderr(), reg, category, name, applier)
}

// applySwitch resolves category and name, prompting on in for blank ones,
// and hands the variable to applier. Prompts and messages go to errOut so
// that stdout carries only what the applier prints. Unknown switches are
// reported and yield a nil error.
func applySwitch(in io.Reader, errOut io.Writer, reg *registry.Registry, category, name string, applier apply.Applier) error {
	input := bufio.NewReader(in)

	if category == "" {
		fmt.Fprint(errOut, reg.String())
		fmt.Fprintln(errOut, "Please type in category of variable to apply: ")
		line, err := readLine(input)
		if err != nil {
			return oops.Wrapf(err, "not a valid category name")
		}
		category = line
	}

	if name == "" {
		fmt.Fprintln(errOut, "Please type in name of the variable to apply: ")
		line, err := readLine(input)
		if err != nil {
			return oops.Wrapf(err, "not a valid variable name")
		}
		name = line
	}

	v, err := reg.Lookup(category, name)
	switch {
	case errors.Is(err, registry.ErrCategoryNotFound):
		fmt.Fprintln(errOut, "Given category name is not registered!")
		return nil
	case errors.Is(err, registry.ErrVariableNotFound):
		fmt.Fprintf(errOut, "Could not find environment variable with name '%s' in category '%s'\n", name, category)
		return nil
	case err != nil:
		return err
	}

	if err := applier.Apply(v); err != nil {
		return oops.Wrapf(err, "applying %s", registry.FormatKey(category, name))
	}
	fmt.Fprintf(errOut, "Environment variable '%s' from category '%s' applied!\n", name, category)
	return nil
}

// readLine reads one trimmed line. End of input counts as a line.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
