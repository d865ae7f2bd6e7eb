package cmd

import (
	"fmt"
	"io"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a hand-edited registry for duplicate or empty names",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	issues := reg.Validate()
	reportIssues(cmd.OutOrStdout(), a.store.Path(), issues)
	if len(issues) > 0 {
		return oops.Errorf("registry has %d issue(s)", len(issues))
	}
	return nil
}

func reportIssues(out io.Writer, path string, issues []registry.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(out, "All valid.")
		return
	}

	fmt.Fprintln(out, "PROBLEM")
	fmt.Fprintln(out, "Invalid registry entries")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "AFFECTED KEYS")
	for _, issue := range issues {
		fmt.Fprintf(out, "- %q (%s)\n", issue.Key, issue.Reason)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "FIX")
	fmt.Fprintf(out, "Rename or remove the affected entries in %s\n", path)
}
