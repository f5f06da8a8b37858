package container

import "fmt"

// DType names the element type of a dataset.
type DType string

const (
	DTypeFloat32 DType = "float32"
	DTypeFloat64 DType = "float64"
	DTypeInt64   DType = "int64"
)

// Dataset is a named one-dimensional numeric array, such as the
// received-level time series of a channel.
type Dataset struct {
	name   string
	dtype  DType
	values any
	attrs  attrSet
}

func newDataset(name string, values any) (*Dataset, error) {
	d := &Dataset{name: name, values: values}
	switch values.(type) {
	case []float32:
		d.dtype = DTypeFloat32
	case []float64:
		d.dtype = DTypeFloat64
	case []int64:
		d.dtype = DTypeInt64
	default:
		return nil, fmt.Errorf("dataset %q: %w: %T", name, ErrUnsupportedValue, values)
	}
	return d, nil
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// DType returns the element type.
func (d *Dataset) DType() DType { return d.dtype }

// Values returns the array: a []float32, []float64 or []int64.
func (d *Dataset) Values() any { return d.values }

// Len returns the number of elements.
func (d *Dataset) Len() int {
	switch v := d.values.(type) {
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	case []int64:
		return len(v)
	}
	return 0
}

// Attr returns a dataset attribute.
func (d *Dataset) Attr(name string) (any, bool) { return d.attrs.get(name) }

// AttrNames returns the dataset attribute names.
func (d *Dataset) AttrNames() []string { return d.attrs.list() }

// SetAttr sets a dataset attribute.
func (d *Dataset) SetAttr(name string, value any) error { return d.attrs.set(name, value) }
