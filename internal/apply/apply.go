// Package apply injects a stored switch into the user's running shell.
//
// Each platform has its own mechanism: Linux pushes an export command into
// the controlling terminal, Windows writes the user environment and
// broadcasts the change. Printer works everywhere and leaves evaluation to
// the shell.
package apply

import (
	"fmt"
	"io"
	"regexp"

	"github.com/alessio/shellescape"
	"github.com/glopal/envswitch/internal/registry"
	"github.com/samber/oops"
)

// Applier makes a variable visible to the invoking session.
type Applier interface {
	Apply(v registry.Variable) error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateKey rejects keys that are not shell identifiers. ExportCommand
// does not quote the key, so only valid keys may reach a shell.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return oops.Errorf("key %q is not a valid shell variable name", key)
	}
	return nil
}

// ExportCommand returns a POSIX shell statement exporting v.
func ExportCommand(v registry.Variable) string {
	return fmt.Sprintf("export %s=%s", v.Key, shellescape.Quote(v.Value))
}

// Printer writes the export statement for a variable, suitable for
// eval "$(switch apply --print net proxy)".
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Apply(v registry.Variable) error {
	if err := ValidateKey(v.Key); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.w, ExportCommand(v)); err != nil {
		return oops.Wrapf(err, "printing export for %s", v.Key)
	}
	return nil
}
