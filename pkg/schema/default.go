package schema

import _ "embed"

//go:embed definitions/cmlh5.yaml
var defaultDefinitions []byte

// DefaultDefinitions returns the embedded CML-H5 definition records.
func DefaultDefinitions() (Definitions, error) {
	return ParseDefinitionsYAML(defaultDefinitions)
}

// Default builds a new registry from the embedded CML-H5 definitions.
// Each call returns an independent registry.
func Default() (*Registry, error) {
	defs, err := DefaultDefinitions()
	if err != nil {
		return nil, err
	}
	return Build(defs)
}
