package container

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Container errors.
var (
	ErrInvalidName   = errors.New("invalid name")
	ErrDuplicateName = errors.New("duplicate name")
	ErrNotFound      = errors.New("not found")
)

// Group is a read-only view of one node of a container tree.
type Group interface {
	// Name returns the group name ("" for the root group).
	Name() string

	// Path returns the absolute group path, e.g. "/cml_1/channel_1".
	Path() string

	// Attr returns the value of a named attribute and whether it is present.
	Attr(name string) (any, bool)

	// AttrNames returns the attribute names in storage order.
	AttrNames() []string

	// Groups returns the child groups in enumeration order.
	Groups() []Group
}

// Node is an in-memory container group. It implements Group.
type Node struct {
	name     string
	parent   *Node
	attrs    attrSet
	groups   []*Node
	datasets []*Dataset
}

// NewRoot creates an empty root group.
func NewRoot() *Node {
	return &Node{}
}

// Name returns the group name.
func (n *Node) Name() string {
	return n.name
}

// Path returns the absolute path of the group.
func (n *Node) Path() string {
	if n.parent == nil {
		return "/"
	}
	return path.Join(n.parent.Path(), n.name)
}

// Parent returns the parent group, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) (any, bool) {
	return n.attrs.get(name)
}

// AttrNames returns the attribute names in the order they were first set.
func (n *Node) AttrNames() []string {
	return n.attrs.list()
}

// SetAttr sets an attribute. Values must be one of the container value
// types (floats of any width, integers, bool, string, []byte or nil).
func (n *Node) SetAttr(name string, value any) error {
	return n.attrs.set(name, value)
}

// DeleteAttr removes an attribute if present.
func (n *Node) DeleteAttr(name string) {
	n.attrs.delete(name)
}

// Groups returns the child groups.
func (n *Node) Groups() []Group {
	groups := make([]Group, len(n.groups))
	for i, g := range n.groups {
		groups[i] = g
	}
	return groups
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.groups))
	copy(children, n.groups)
	return children
}

// Child returns the child group with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, g := range n.groups {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}

// CreateGroup adds a child group.
func (n *Node) CreateGroup(name string) (*Node, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if n.hasMember(name) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, path.Join(n.Path(), name))
	}
	child := &Node{name: name, parent: n}
	n.groups = append(n.groups, child)
	return child, nil
}

// Datasets returns the datasets stored in the group.
func (n *Node) Datasets() []*Dataset {
	datasets := make([]*Dataset, len(n.datasets))
	copy(datasets, n.datasets)
	return datasets
}

// Dataset returns the dataset with the given name.
func (n *Node) Dataset(name string) (*Dataset, bool) {
	for _, d := range n.datasets {
		if d.name == name {
			return d, true
		}
	}
	return nil, false
}

// CreateDataset adds a numeric dataset to the group. values must be a
// []float32, []float64 or []int64.
func (n *Node) CreateDataset(name string, values any) (*Dataset, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if n.hasMember(name) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, path.Join(n.Path(), name))
	}
	d, err := newDataset(name, values)
	if err != nil {
		return nil, err
	}
	n.datasets = append(n.datasets, d)
	return d, nil
}

// Lookup resolves a group path relative to n. Absolute paths are resolved
// from the root.
func (n *Node) Lookup(p string) (*Node, error) {
	cur := n
	if strings.HasPrefix(p, "/") {
		for cur.parent != nil {
			cur = cur.parent
		}
	}
	for _, part := range strings.Split(p, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			if cur.parent != nil {
				cur = cur.parent
			}
			continue
		}
		next, ok := cur.Child(part)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path.Join(cur.Path(), part))
		}
		cur = next
	}
	return cur, nil
}

// Walk calls fn for n and every descendant group, depth first, in
// enumeration order.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, g := range n.groups {
		if err := g.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) hasMember(name string) bool {
	if _, ok := n.Child(name); ok {
		return true
	}
	_, ok := n.Dataset(name)
	return ok
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

var _ Group = (*Node)(nil)
