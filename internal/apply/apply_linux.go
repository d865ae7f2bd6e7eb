//go:build linux

package apply

import (
	"io"
	"os"
	"unsafe"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"golang.org/x/sys/unix"
)

// Native returns the terminal injection applier. It types the export
// command into the terminal attached to stdin, as if the user had.
func Native(_ io.Writer, log zerolog.Logger) Applier {
	return &ttyApplier{fd: int(os.Stdin.Fd()), log: log}
}

type ttyApplier struct {
	fd  int
	log zerolog.Logger
}

func (a *ttyApplier) Apply(v registry.Variable) error {
	if err := ValidateKey(v.Key); err != nil {
		return err
	}
	if _, err := unix.IoctlGetTermios(a.fd, unix.TCGETS); err != nil {
		return oops.Wrapf(err, "stdin is not a terminal; use --print with eval instead")
	}

	line := ExportCommand(v) + " && clear\n"
	a.log.Debug().Int("fd", a.fd).Str("key", v.Key).Msg("Injecting export into terminal")
	for i := 0; i < len(line); i++ {
		if err := pushByte(a.fd, line[i]); err != nil {
			return oops.Wrapf(err, "injecting into terminal (TIOCSTI may be disabled); use --print with eval instead")
		}
	}
	return nil
}

// pushByte queues b as terminal input. TIOCSTI takes a pointer to a single
// char, so the ioctl is issued directly rather than through the int helpers.
func pushByte(fd int, b byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(unix.TIOCSTI), uintptr(unsafe.Pointer(&b)))
	if errno != 0 {
		return errno
	}
	return nil
}
