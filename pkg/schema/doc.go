// Package schema holds the CML-H5 metadata definitions.
//
// Definitions declare, per hierarchy level, which attributes a group may
// carry, their unit, their declared type and whether they are mandatory.
// They are loaded from a YAML file, from the three CSV definition tables,
// or from the embedded default set, and are turned into an immutable
// [Registry] with [Build]:
//
//	defs, err := schema.LoadDefinitionsYAML("cmlh5.yaml")
//	if err != nil {
//	    return err
//	}
//	reg, err := schema.Build(defs)
//
// A registry is always constructed explicitly and passed to the validator;
// there is no package-level registry.
//
// The Attr* name constants in names_gen.go are produced from the embedded
// definitions by cmd/cmlh5-defgen.
package schema
