package inspect

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
	"github.com/cmlh5/cmlh5-go/pkg/validate"
)

// Inspector errors.
var (
	ErrGroupNotFound     = errors.New("group not found")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrPartialPath       = errors.New("path does not name an attribute")
)

// Inspector reads a container together with the schema that describes it.
type Inspector struct {
	root *container.Node
	reg  *schema.Registry
}

// NewInspector creates a new Inspector for the given container root.
func NewInspector(root *container.Node, reg *schema.Registry) *Inspector {
	return &Inspector{root: root, reg: reg}
}

// Root returns the underlying container.
func (i *Inspector) Root() *container.Node {
	return i.root
}

// Registry returns the schema registry.
func (i *Inspector) Registry() *schema.Registry {
	return i.reg
}

// AttributeInfo represents one attribute for display. An attribute may be
// declared but absent, or present but undeclared.
type AttributeInfo struct {
	Name       string
	Value      any
	Present    bool
	Declared   bool
	Descriptor schema.Descriptor
}

// GroupInfo represents a group and its subtree for display.
type GroupInfo struct {
	Name string
	Path string

	// Level is empty for groups below channel level.
	Level      schema.Level
	Attributes []AttributeInfo
	Datasets   []*container.Dataset
	Groups     []GroupInfo
}

// Group returns the group a path names.
func (i *Inspector) Group(p *Path) (*container.Node, error) {
	n, err := i.root.Lookup(p.GroupPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, p.GroupPath())
	}
	return n, nil
}

// ReadAttribute returns a single attribute. The name is matched exactly
// first, then case-insensitively against the declarations of the level.
func (i *Inspector) ReadAttribute(p *Path) (*AttributeInfo, error) {
	if p.IsPartial {
		return nil, ErrPartialPath
	}
	g, err := i.Group(p)
	if err != nil {
		return nil, err
	}

	name := p.Attribute
	if _, ok := g.Attr(name); !ok {
		if declared, ok := ResolveAttributeName(i.reg, p.Level(), name); ok {
			name = declared
		}
	}

	info := i.attributeInfo(g, p.Level(), name)
	if !info.Present && !info.Declared {
		return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, p)
	}
	return &info, nil
}

// Attributes lists the attributes of a group: declared attributes in
// declaration order, present or not, then undeclared ones in storage order.
func (i *Inspector) Attributes(p *Path) ([]AttributeInfo, error) {
	g, err := i.Group(p)
	if err != nil {
		return nil, err
	}
	return i.attributes(g, p.Level()), nil
}

func (i *Inspector) attributes(g *container.Node, level schema.Level) []AttributeInfo {
	var out []AttributeInfo
	var declared []string
	if level != "" {
		declared = i.reg.Names(level)
	}
	for _, name := range declared {
		out = append(out, i.attributeInfo(g, level, name))
	}
	for _, name := range g.AttrNames() {
		if !slices.Contains(declared, name) {
			out = append(out, i.attributeInfo(g, level, name))
		}
	}
	return out
}

func (i *Inspector) attributeInfo(g *container.Node, level schema.Level, name string) AttributeInfo {
	info := AttributeInfo{Name: name}
	info.Value, info.Present = g.Attr(name)
	if level != "" {
		if d, err := i.reg.Lookup(level, name); err == nil {
			info.Declared = true
			info.Descriptor = d
		}
	}
	return info
}

// InspectTree returns the whole container for display.
func (i *Inspector) InspectTree() GroupInfo {
	return i.inspectGroup(i.root, 0)
}

func (i *Inspector) inspectGroup(g *container.Node, depth int) GroupInfo {
	level := levelAt(depth)
	info := GroupInfo{
		Name:       g.Name(),
		Path:       g.Path(),
		Level:      level,
		Attributes: i.attributes(g, level),
		Datasets:   g.Datasets(),
	}
	for _, c := range g.Children() {
		info.Groups = append(info.Groups, i.inspectGroup(c, depth+1))
	}
	return info
}

// levelAt maps a group depth to its hierarchy level.
func levelAt(depth int) schema.Level {
	levels := schema.Levels()
	if depth < len(levels) {
		return levels[depth]
	}
	return ""
}

// Validate validates the container.
func (i *Inspector) Validate(strict bool) (*validate.Tree, validate.Errors) {
	return validate.Validate(i.reg, i.root, strict)
}

// WriteTree writes the group tree rooted at p with formatted metadata.
func (i *Inspector) WriteTree(w io.Writer, p *Path, f *Formatter) error {
	if _, err := i.Group(p); err != nil {
		return err
	}
	tree := i.InspectTree()
	info, ok := findGroup(tree, p.GroupPath())
	if !ok {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, p.GroupPath())
	}
	return writeGroup(w, info, 0, f)
}

func findGroup(g GroupInfo, path string) (GroupInfo, bool) {
	if g.Path == path {
		return g, true
	}
	for _, c := range g.Groups {
		if found, ok := findGroup(c, path); ok {
			return found, true
		}
	}
	return GroupInfo{}, false
}

func writeGroup(w io.Writer, g GroupInfo, depth int, f *Formatter) error {
	header := g.Path
	if g.Level != "" {
		header += " (" + g.Level.String() + ")"
	}
	if _, err := fmt.Fprintln(w, f.Indent(depth, header)); err != nil {
		return err
	}
	for _, a := range g.Attributes {
		if !a.Present && !a.Declared {
			continue
		}
		if _, err := fmt.Fprintln(w, f.Indent(depth+1, f.FormatAttribute(a))); err != nil {
			return err
		}
	}
	for _, d := range g.Datasets {
		if _, err := fmt.Fprintln(w, f.Indent(depth+1, f.FormatDataset(d))); err != nil {
			return err
		}
	}
	for _, c := range g.Groups {
		if err := writeGroup(w, c, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}
