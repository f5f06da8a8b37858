package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Schema errors.
var (
	// ErrSchemaConfiguration is returned when definitions cannot be turned
	// into a registry. It is fatal: no file can be validated without a
	// complete schema.
	ErrSchemaConfiguration = errors.New("schema configuration error")

	ErrUnknownLevel     = errors.New("unknown level")
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// LookupError is returned by Registry.Lookup.
type LookupError struct {
	Level Level
	Name  string
	Err   error
}

func (e *LookupError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Level, e.Err)
	}
	return fmt.Sprintf("%s/%s: %v", e.Level, e.Name, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

type levelTable struct {
	names       []string
	descriptors map[string]Descriptor
}

// Registry maps level and attribute name to a Descriptor.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	version string
	levels  map[Level]*levelTable
}

// Build creates a registry from definition records.
// Every level returned by Levels must be present in defs.
func Build(defs Definitions) (*Registry, error) {
	r := &Registry{
		version: strings.TrimSpace(defs.Version),
		levels:  make(map[Level]*levelTable, 3),
	}

	for level := range defs.Levels {
		if parsed, err := ParseLevel(string(level)); err != nil || parsed != level {
			return nil, fmt.Errorf("%w: unknown level %q", ErrSchemaConfiguration, level)
		}
	}

	for _, level := range Levels() {
		records, ok := defs.Levels[level]
		if !ok {
			return nil, fmt.Errorf("%w: no definitions for level %q", ErrSchemaConfiguration, level)
		}

		table := &levelTable{
			names:       make([]string, 0, len(records)),
			descriptors: make(map[string]Descriptor, len(records)),
		}
		for i, rec := range records {
			name := strings.TrimSpace(rec.Name)
			if name == "" {
				return nil, fmt.Errorf("%w: level %q record %d has no name", ErrSchemaConfiguration, level, i+1)
			}
			if _, dup := table.descriptors[name]; dup {
				return nil, fmt.Errorf("%w: level %q declares %q twice", ErrSchemaConfiguration, level, name)
			}
			table.names = append(table.names, name)
			table.descriptors[name] = rec.Descriptor()
		}
		r.levels[level] = table
	}

	return r, nil
}

// Version returns the definitions version, if the definitions declared one.
func (r *Registry) Version() string {
	return r.version
}

// Lookup returns the descriptor of an attribute.
func (r *Registry) Lookup(level Level, name string) (Descriptor, error) {
	table, ok := r.levels[level]
	if !ok {
		return Descriptor{}, &LookupError{Level: level, Err: ErrUnknownLevel}
	}
	desc, ok := table.descriptors[name]
	if !ok {
		return Descriptor{}, &LookupError{Level: level, Name: name, Err: ErrUnknownAttribute}
	}
	return desc, nil
}

// Names returns the attribute names declared for a level, in declaration
// order. The returned slice is a copy.
func (r *Registry) Names(level Level) []string {
	table, ok := r.levels[level]
	if !ok {
		return nil
	}
	names := make([]string, len(table.names))
	copy(names, table.names)
	return names
}

// Attribute pairs an attribute name with its descriptor.
type Attribute struct {
	Name string
	Descriptor
}

// Attributes returns the attributes declared for a level, in declaration
// order.
func (r *Registry) Attributes(level Level) []Attribute {
	table, ok := r.levels[level]
	if !ok {
		return nil
	}
	attrs := make([]Attribute, len(table.names))
	for i, name := range table.names {
		attrs[i] = Attribute{Name: name, Descriptor: table.descriptors[name]}
	}
	return attrs
}

// Mandatory returns the mandatory attribute names of a level in declaration
// order.
func (r *Registry) Mandatory(level Level) []string {
	table, ok := r.levels[level]
	if !ok {
		return nil
	}
	var names []string
	for _, name := range table.names {
		if table.descriptors[name].Mandatory {
			names = append(names, name)
		}
	}
	return names
}

// Count returns the number of attributes declared for a level.
func (r *Registry) Count(level Level) int {
	table, ok := r.levels[level]
	if !ok {
		return 0
	}
	return len(table.names)
}
