//go:build !linux && !windows

package apply

import (
	"io"

	"github.com/rs/zerolog"
)

// Native falls back to printing the export statement on platforms without
// an injection mechanism.
func Native(w io.Writer, log zerolog.Logger) Applier {
	log.Debug().Msg("No native session applier for this platform; printing export instead")
	return NewPrinter(w)
}
