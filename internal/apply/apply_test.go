package apply

import (
	"bytes"
	"errors"
	"testing"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name string
		v    registry.Variable
		want string
	}{
		{"plain", registry.Variable{Key: "http_proxy", Value: "http://x"}, "export http_proxy=http://x"},
		{"spaces", registry.Variable{Key: "GREETING", Value: "hello world"}, "export GREETING='hello world'"},
		{"single quote", registry.Variable{Key: "Q", Value: "it's"}, `export Q='it'"'"'s'`},
		{"empty", registry.Variable{Key: "EMPTY", Value: ""}, "export EMPTY=''"},
		{"command substitution", registry.Variable{Key: "X", Value: "$(rm -rf ~)"}, "export X='$(rm -rf ~)'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportCommand(tt.v))
		})
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	var a Applier = NewPrinter(&buf)

	require.NoError(t, a.Apply(registry.Variable{Key: "http_proxy", Value: "http://x"}))
	assert.Equal(t, "export http_proxy=http://x\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrinterWriteError(t *testing.T) {
	err := NewPrinter(failingWriter{}).Apply(registry.Variable{Key: "K", Value: "v"})
	assert.Error(t, err)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"http_proxy", false},
		{"_PRIVATE", false},
		{"A1", false},
		{"", true},
		{"1A", true},
		{"MY VAR", true},
		{"X=1; touch /tmp/x; Y", true},
		{"a-b", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.key)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrinterRejectsUnsafeKeys(t *testing.T) {
	for _, key := range []string{"MY VAR", "X=1; touch /tmp/x; Y"} {
		t.Run(key, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewPrinter(&buf).Apply(registry.Variable{Key: key, Value: "v"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
			assert.Empty(t, buf.String(), "nothing may reach the shell")
		})
	}
}
