// Package version provides CML-H5 format version parsing and compatibility
// checks.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIncompatible is returned when a container was written for a different
// major format version than the definitions describe.
var ErrIncompatible = errors.New("incompatible format version")

// FormatVersion represents a parsed "major.minor" format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string. Surrounding blanks and a
// leading "v" are ignored.
func Parse(s string) (FormatVersion, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
// Before 1.0 every minor release may change the attribute set, so minor
// versions must match as well.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	if v.Major == 0 || other.Major == 0 {
		return v == other
	}
	return v.Major == other.Major
}

// Check compares the format version stored in a container with the version
// of the definitions in use.
func Check(fileVersion, definitionsVersion string) error {
	fv, err := Parse(fileVersion)
	if err != nil {
		return fmt.Errorf("file: %w", err)
	}
	dv, err := Parse(definitionsVersion)
	if err != nil {
		return fmt.Errorf("definitions: %w", err)
	}
	if !fv.Compatible(dv) {
		return fmt.Errorf("%w: file %s, definitions %s", ErrIncompatible, fv, dv)
	}
	return nil
}
