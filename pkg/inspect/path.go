// Package inspect provides container inspection utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "cml_1/channel_1@frequency")
//   - Resolving attribute names against the schema
//   - Reading attributes together with their declarations
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
)

// attrSep separates the group part of a path from the attribute name.
const attrSep = "@"

// Path represents a parsed inspection path.
// Format: [device[/channel]][@attribute]
type Path struct {
	// Device is the CML group name (empty for the root).
	Device string

	// Channel is the channel group name (empty above channel level).
	Channel string

	// Attribute is the attribute name.
	Attribute string

	// IsPartial indicates the path names a group, not an attribute.
	IsPartial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path.
//
// Supported formats:
//   - "/" - the root group
//   - "@title" - a root attribute
//   - "cml_1" - a device group
//   - "cml_1@length" - a device attribute
//   - "cml_1/channel_1" - a channel group
//   - "cml_1/channel_1@frequency" - a channel attribute
//
// A leading slash is accepted. The hierarchy is fixed, so at most two group
// names may appear.
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	p := &Path{Raw: input}

	groups := input
	if i := strings.Index(input, attrSep); i >= 0 {
		groups = input[:i]
		p.Attribute = input[i+len(attrSep):]
		if p.Attribute == "" || strings.ContainsAny(p.Attribute, "/"+attrSep) {
			return nil, fmt.Errorf("%w: bad attribute in %q", ErrInvalidPath, input)
		}
	}
	p.IsPartial = p.Attribute == ""

	groups = strings.TrimPrefix(groups, "/")
	groups = strings.TrimSuffix(groups, "/")
	if groups == "" {
		return p, nil
	}

	parts := strings.Split(groups, "/")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: %q is deeper than channel level", ErrInvalidPath, input)
	}
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, input)
		}
	}

	p.Device = parts[0]
	if len(parts) == 2 {
		p.Channel = parts[1]
	}
	return p, nil
}

// Level returns the hierarchy level of the group the path names.
func (p *Path) Level() schema.Level {
	switch {
	case p.Channel != "":
		return schema.LevelChannel
	case p.Device != "":
		return schema.LevelCML
	default:
		return schema.LevelRoot
	}
}

// GroupPath returns the absolute container path of the group.
func (p *Path) GroupPath() string {
	switch {
	case p.Channel != "":
		return "/" + p.Device + "/" + p.Channel
	case p.Device != "":
		return "/" + p.Device
	default:
		return "/"
	}
}

// String returns the path in canonical form.
func (p *Path) String() string {
	s := p.GroupPath()
	if p.Attribute != "" {
		if s == "/" {
			s = ""
		}
		s += attrSep + p.Attribute
	}
	return s
}
