package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRegistry() *registry.Registry {
	r := registry.New()
	net := registry.NewCategory("net")
	net.AddVariable("proxy", "http://x")
	net.AddVariable("no_proxy", "localhost,127.0.0.1")
	r.AddCategory(net)
	r.AddCategory(registry.NewCategory("empty"))
	db := registry.NewCategory("db")
	db.AddVariable("DATABASE_URL", "postgres://u:p@host/db?sslmode=disable&x=<y>")
	r.AddCategory(db)
	return r
}

func TestSerializeLayout(t *testing.T) {
	r := registry.New()
	c := registry.NewCategory("net")
	c.AddVariable("proxy", "http://x")
	r.AddCategory(c)

	data, err := SerializeRegistry(r)
	require.NoError(t, err)

	want := `{
  "categories": [
    {
      "name": "net",
      "variables": [
        {
          "key": "proxy",
          "value": "http://x"
        }
      ]
    }
  ]
}
`
	assert.Equal(t, want, string(data))
}

func TestSerializeEmptyRegistry(t *testing.T) {
	data, err := SerializeRegistry(&registry.Registry{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"categories\": []\n}\n", string(data))
}

func TestSerializeDoesNotEscapeHTML(t *testing.T) {
	data, err := SerializeRegistry(sampleRegistry())
	require.NoError(t, err)
	assert.Contains(t, string(data), "sslmode=disable&x=<y>")
}

func TestRoundTrip(t *testing.T) {
	orig := sampleRegistry()

	first, err := SerializeRegistry(orig)
	require.NoError(t, err)

	parsed, err := ParseRegistryBytes(first)
	require.NoError(t, err)
	assert.Equal(t, orig, parsed)

	second, err := SerializeRegistry(parsed)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestParseNormalizesNulls(t *testing.T) {
	reg, err := ParseRegistryBytes([]byte(`{"categories":[{"name":"net","variables":null}]}`))
	require.NoError(t, err)
	require.Len(t, reg.Categories, 1)
	assert.NotNil(t, reg.Categories[0].Variables)

	reg, err = ParseRegistryBytes([]byte(`{"categories":null}`))
	require.NoError(t, err)
	assert.NotNil(t, reg.Categories)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "categories: []"},
		{"truncated", `{"categories": [`},
		{"wrong type", `{"categories": "net"}`},
		{"trailing data", `{"categories": []} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegistry(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	r := registry.New()
	c := registry.NewCategory("net")
	c.AddVariable("proxy", "http://x")
	r.AddCategory(c)

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, r))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "categories:\n"))
	assert.Contains(t, out, "- name: net")
	assert.Contains(t, out, "- key: proxy")
	assert.Contains(t, out, "value: http://x")

	var back registry.Registry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r, &back)
}
