//go:build windows

package apply

import (
	"io"
	"unsafe"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"
)

const (
	environmentKey = "Environment"

	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
	broadcastWaitMs = 1000
)

var procSendMessageTimeout = windows.NewLazySystemDLL("user32.dll").NewProc("SendMessageTimeoutW")

// Native returns the user environment applier. The value is stored under
// HKEY_CURRENT_USER\Environment and running programs are notified; the
// invoking console picks it up on its next environment refresh.
func Native(_ io.Writer, log zerolog.Logger) Applier {
	return &registryApplier{log: log}
}

type registryApplier struct {
	log zerolog.Logger
}

func (a *registryApplier) Apply(v registry.Variable) error {
	k, err := winreg.OpenKey(winreg.CURRENT_USER, environmentKey, winreg.SET_VALUE)
	if err != nil {
		return oops.Wrapf(err, "opening HKCU\\%s", environmentKey)
	}
	err = k.SetStringValue(v.Key, v.Value)
	closeErr := k.Close()
	if err != nil {
		return oops.Wrapf(err, "setting %s in HKCU\\%s", v.Key, environmentKey)
	}
	if closeErr != nil {
		a.log.Warn().Err(closeErr).Msg("Could not close environment key")
	}

	return a.broadcast()
}

func (a *registryApplier) broadcast() error {
	param, err := windows.UTF16PtrFromString(environmentKey)
	if err != nil {
		return oops.Wrapf(err, "encoding broadcast parameter")
	}
	var result uintptr
	ret, _, callErr := procSendMessageTimeout.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		broadcastWaitMs,
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		// The value is already persisted; a slow window only delays pickup.
		a.log.Warn().Err(callErr).Msg("Environment change broadcast timed out or failed")
		return nil
	}
	a.log.Debug().Msg("Environment change broadcast sent")
	return nil
}
