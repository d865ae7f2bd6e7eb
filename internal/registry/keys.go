package registry

import "strings"

// KeySeparator joins a category and a variable name in a switch key.
const KeySeparator = "/"

// ParseKey splits a switch key into its components.
// Category key: "net"
// Variable key: "net/proxy"
func ParseKey(key string) (category, name string, hasName bool) {
	if idx := strings.Index(key, KeySeparator); idx >= 0 {
		return key[:idx], key[idx+len(KeySeparator):], true
	}
	return key, "", false
}

// FormatKey formats a category and variable name as a key. An empty name
// yields the bare category key.
func FormatKey(category, name string) string {
	if name == "" {
		return category
	}
	return category + KeySeparator + name
}
