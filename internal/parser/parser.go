// Package parser encodes and decodes the switch registry. JSON is the
// persisted format; YAML is offered for display only.
package parser

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/glopal/envswitch/internal/registry"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// ParseRegistry decodes a registry from JSON.
func ParseRegistry(r io.Reader) (*registry.Registry, error) {
	var reg registry.Registry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&reg); err != nil {
		return nil, oops.Wrapf(err, "parsing registry JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, oops.Errorf("parsing registry JSON: unexpected data after registry object")
	}
	normalize(&reg)
	return &reg, nil
}

// ParseRegistryBytes decodes a registry from raw JSON content.
func ParseRegistryBytes(data []byte) (*registry.Registry, error) {
	return ParseRegistry(bytes.NewReader(data))
}

// SerializeRegistry encodes reg as indented JSON. The output is stable, so
// serializing the output of SerializeRegistry after a parse reproduces it.
func SerializeRegistry(reg *registry.Registry) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, reg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON writes reg to w as indented JSON.
func EncodeJSON(w io.Writer, reg *registry.Registry) error {
	out := *reg
	normalize(&out)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		return oops.Wrapf(err, "marshaling registry JSON")
	}
	return nil
}

// EncodeYAML writes reg to w as YAML.
func EncodeYAML(w io.Writer, reg *registry.Registry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reg); err != nil {
		return oops.Wrapf(err, "marshaling registry YAML")
	}
	return enc.Close()
}

// normalize replaces null sequences with empty ones so they persist as [].
func normalize(reg *registry.Registry) {
	if reg.Categories == nil {
		reg.Categories = []registry.Category{}
		return
	}
	cats := make([]registry.Category, len(reg.Categories))
	copy(cats, reg.Categories)
	for i := range cats {
		if cats[i].Variables == nil {
			cats[i].Variables = []registry.Variable{}
		}
	}
	reg.Categories = cats
}
