// Package registry holds the in-memory model of the switch registry: an
// ordered list of categories, each an ordered list of key/value switches.
package registry

import "errors"

var (
	// ErrCategoryNotFound is returned by Lookup for an unknown category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrVariableNotFound is returned by Lookup for an unknown key in a known category.
	ErrVariableNotFound = errors.New("variable not found")
)

// Registry is the ordered list of categories persisted in registry.json.
type Registry struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category is a named, ordered group of switches.
type Category struct {
	Name      string     `json:"name" yaml:"name"`
	Variables []Variable `json:"variables" yaml:"variables"`
}

// Variable is a single environment variable switch.
type Variable struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Issue is a structural problem found by Validate.
type Issue struct {
	Key    string
	Reason string
}
