package schema

import (
	"fmt"
	"strings"
)

// Level is one of the three fixed depths of a CML-H5 container.
type Level string

const (
	LevelRoot    Level = "root"    // File root group
	LevelCML     Level = "cml"     // Device (CML) group directly under root
	LevelChannel Level = "channel" // Channel group inside a device
)

// Levels returns all levels in traversal order.
func Levels() []Level {
	return []Level{LevelRoot, LevelCML, LevelChannel}
}

// String returns the level name.
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelRoot:
		return LevelRoot, nil
	case LevelCML:
		return LevelCML, nil
	case LevelChannel:
		return LevelChannel, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// TypeTag is the declared type of an attribute.
//
// The set of supported tags is closed. A Descriptor may still carry an
// unsupported tag: the registry keeps whatever the definitions say and the
// validator reports the bad tag when the attribute is checked.
type TypeTag string

const (
	TypeFloat16 TypeTag = "float16"
	TypeFloat32 TypeTag = "float32"
	TypeFloat64 TypeTag = "float64"
	TypeFloat   TypeTag = "float" // Generic float, checked as float64
	TypeString  TypeTag = "string"
)

// TypeTags returns every supported type tag.
func TypeTags() []TypeTag {
	return []TypeTag{TypeFloat16, TypeFloat32, TypeFloat64, TypeFloat, TypeString}
}

// Valid returns true if the tag is one of the supported tags.
func (t TypeTag) Valid() bool {
	switch t {
	case TypeFloat16, TypeFloat32, TypeFloat64, TypeFloat, TypeString:
		return true
	default:
		return false
	}
}

// IsFloat returns true for any of the float tags.
func (t TypeTag) IsFloat() bool {
	switch t {
	case TypeFloat16, TypeFloat32, TypeFloat64, TypeFloat:
		return true
	default:
		return false
	}
}

// String returns the tag text.
func (t TypeTag) String() string {
	return string(t)
}

// Descriptor describes one attribute declared for a level.
type Descriptor struct {
	// Unit is the physical unit (e.g. "GHz"), empty when dimensionless.
	Unit string

	// Type is the declared type tag.
	Type TypeTag

	// Mandatory is true if the attribute must be present.
	Mandatory bool

	// Description is the free-text description from the definitions.
	Description string
}

// MandatoryToken is the only Record.Mandatory value that marks an
// attribute as mandatory.
const MandatoryToken = "True"

// Record is one external definition row, as found in the definitions
// tables. All fields are text.
type Record struct {
	Name        string `yaml:"name"`
	Units       string `yaml:"units"`
	Type        string `yaml:"type"`
	Mandatory   string `yaml:"mandatory"`
	Description string `yaml:"description"`
}

// Descriptor converts the record. Text fields are trimmed.
func (r Record) Descriptor() Descriptor {
	return Descriptor{
		Unit:        strings.TrimSpace(r.Units),
		Type:        TypeTag(strings.TrimSpace(r.Type)),
		Mandatory:   strings.TrimSpace(r.Mandatory) == MandatoryToken,
		Description: strings.TrimSpace(r.Description),
	}
}

// Definitions holds the definition records of every level, in declaration
// order.
type Definitions struct {
	// Version identifies the definitions revision (optional).
	Version string

	// Levels maps each level to its records.
	Levels map[Level][]Record
}
