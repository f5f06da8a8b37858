package validate

import (
	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// Tree is the parsed metadata of a container, mirroring its hierarchy.
type Tree struct {
	Path     string
	Metadata Metadata
	Devices  []*Device
}

// Device is the parsed metadata of one CML group and its channels.
type Device struct {
	Name     string
	Path     string
	Metadata Metadata
	Channels []*Channel
}

// Channel is the parsed metadata of one channel group.
type Channel struct {
	Name     string
	Path     string
	Metadata Metadata
}

// Device returns the device with the given group name.
func (t *Tree) Device(name string) (*Device, bool) {
	for _, d := range t.Devices {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// GroupCount returns the number of groups that were resolved.
func (t *Tree) GroupCount() int {
	n := 1
	for _, d := range t.Devices {
		n += 1 + len(d.Channels)
	}
	return n
}

// Channel returns the channel with the given group name.
func (d *Device) Channel(name string) (*Channel, bool) {
	for _, c := range d.Channels {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Validator checks containers against a schema registry.
type Validator struct {
	// Registry holds the attribute definitions.
	Registry *schema.Registry

	// Strict requires float values to have exactly the declared width.
	Strict bool
}

// NewValidator creates a validator in strict mode.
func NewValidator(reg *schema.Registry) *Validator {
	return &Validator{
		Registry: reg,
		Strict:   true,
	}
}

// Walk validates a container. Root attributes are resolved against the
// root level, every child of root against the cml level and every child of
// a device against the channel level. The walk never stops early: the
// returned errors cover the whole container, in traversal order.
func (v *Validator) Walk(root container.Group) (*Tree, Errors) {
	var errs Errors

	md, rootErrs := Resolve(v.Registry, root, schema.LevelRoot, v.Strict)
	errs = append(errs, rootErrs...)
	tree := &Tree{Path: root.Path(), Metadata: md}

	for _, dg := range root.Groups() {
		md, devErrs := Resolve(v.Registry, dg, schema.LevelCML, v.Strict)
		errs = append(errs, devErrs...)
		dev := &Device{Name: dg.Name(), Path: dg.Path(), Metadata: md}

		for _, cg := range dg.Groups() {
			md, chErrs := Resolve(v.Registry, cg, schema.LevelChannel, v.Strict)
			errs = append(errs, chErrs...)
			dev.Channels = append(dev.Channels, &Channel{Name: cg.Name(), Path: cg.Path(), Metadata: md})
		}
		tree.Devices = append(tree.Devices, dev)
	}

	return tree, errs
}

// Validate is a convenience function to validate a container.
func Validate(reg *schema.Registry, root container.Group, strict bool) (*Tree, Errors) {
	v := NewValidator(reg)
	v.Strict = strict
	return v.Walk(root)
}
