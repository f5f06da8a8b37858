package inspect

import (
	"strings"

	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// ResolveAttributeName resolves a user-typed attribute name to the declared
// name at level (case-insensitive).
func ResolveAttributeName(reg *schema.Registry, level schema.Level, name string) (string, bool) {
	if _, err := reg.Lookup(level, name); err == nil {
		return name, true
	}
	for _, declared := range reg.Names(level) {
		if strings.EqualFold(declared, name) {
			return declared, true
		}
	}
	return "", false
}

// CompleteAttributeName returns the declared names at level that start with
// prefix, in declaration order.
func CompleteAttributeName(reg *schema.Registry, level schema.Level, prefix string) []string {
	var out []string
	lp := strings.ToLower(prefix)
	for _, declared := range reg.Names(level) {
		if strings.HasPrefix(strings.ToLower(declared), lp) {
			out = append(out, declared)
		}
	}
	return out
}
