package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/x448/float16"
)

// ErrInvalidContainer is returned when container data cannot be decoded.
var ErrInvalidContainer = errors.New("invalid container")

// magic is the CBOR self-describe tag (55799) that starts every file.
var magic = []byte{0xd9, 0xd9, 0xf7}

// CBOR initial bytes of the three float widths.
const (
	headFloat16 = 0xf9
	headFloat32 = 0xfa
	headFloat64 = 0xfb
)

// encMode keeps floats at the width they were stored with. NaN and
// infinities are not shortened either, so a float32 NaN stays float32.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		ShortestFloat: cbor.ShortestFloatNone,
		NaNConvert:    cbor.NaNConvertNone,
		InfConvert:    cbor.InfConvertNone,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create container CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create container CBOR decoder mode: %v", err))
	}
}

type wireAttr struct {
	Name  string          `cbor:"1,keyasint"`
	Value cbor.RawMessage `cbor:"2,keyasint"`
}

type wireDataset struct {
	Name   string          `cbor:"1,keyasint"`
	DType  DType           `cbor:"2,keyasint"`
	Values cbor.RawMessage `cbor:"3,keyasint"`
	Attrs  []wireAttr      `cbor:"4,keyasint,omitempty"`
}

type wireGroup struct {
	Name     string        `cbor:"1,keyasint"`
	Attrs    []wireAttr    `cbor:"2,keyasint,omitempty"`
	Groups   []wireGroup   `cbor:"3,keyasint,omitempty"`
	Datasets []wireDataset `cbor:"4,keyasint,omitempty"`
}

// encodeValue encodes one attribute value. float16 has no Go native
// type, so its major-7 encoding is written by hand.
func encodeValue(v any) (cbor.RawMessage, error) {
	if h, ok := v.(float16.Float16); ok {
		bits := h.Bits()
		return cbor.RawMessage{headFloat16, byte(bits >> 8), byte(bits)}, nil
	}
	if err := checkValue(v); err != nil {
		return nil, err
	}
	return encMode.Marshal(v)
}

// decodeValue decodes one attribute value, keeping the float width of the
// encoded item.
func decodeValue(raw cbor.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty attribute value", ErrInvalidContainer)
	}

	switch raw[0] {
	case headFloat16:
		if len(raw) != 3 {
			return nil, fmt.Errorf("%w: truncated float16", ErrInvalidContainer)
		}
		return float16.Frombits(binary.BigEndian.Uint16(raw[1:])), nil
	case headFloat32:
		if len(raw) != 5 {
			return nil, fmt.Errorf("%w: truncated float32", ErrInvalidContainer)
		}
		return math.Float32frombits(binary.BigEndian.Uint32(raw[1:])), nil
	case headFloat64:
		if len(raw) != 9 {
			return nil, fmt.Errorf("%w: truncated float64", ErrInvalidContainer)
		}
		return math.Float64frombits(binary.BigEndian.Uint64(raw[1:])), nil
	}

	var v any
	if err := decMode.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	switch v.(type) {
	case nil, uint64, int64, bool, string, []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unsupported attribute item %T", ErrInvalidContainer, v)
	}
}

func encodeAttrs(s *attrSet) ([]wireAttr, error) {
	if len(s.names) == 0 {
		return nil, nil
	}
	attrs := make([]wireAttr, 0, len(s.names))
	for _, name := range s.names {
		raw, err := encodeValue(s.values[name])
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		attrs = append(attrs, wireAttr{Name: name, Value: raw})
	}
	return attrs, nil
}

func decodeAttrs(attrs []wireAttr, dst *attrSet) error {
	for _, a := range attrs {
		v, err := decodeValue(a.Value)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		if err := dst.set(a.Name, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidContainer, err)
		}
	}
	return nil
}

func toWire(n *Node) (wireGroup, error) {
	w := wireGroup{Name: n.name}

	attrs, err := encodeAttrs(&n.attrs)
	if err != nil {
		return wireGroup{}, fmt.Errorf("%s: %w", n.Path(), err)
	}
	w.Attrs = attrs

	for _, d := range n.datasets {
		values, err := encMode.Marshal(d.values)
		if err != nil {
			return wireGroup{}, fmt.Errorf("%s/%s: %w", n.Path(), d.name, err)
		}
		dattrs, err := encodeAttrs(&d.attrs)
		if err != nil {
			return wireGroup{}, fmt.Errorf("%s/%s: %w", n.Path(), d.name, err)
		}
		w.Datasets = append(w.Datasets, wireDataset{
			Name:   d.name,
			DType:  d.dtype,
			Values: values,
			Attrs:  dattrs,
		})
	}

	for _, g := range n.groups {
		child, err := toWire(g)
		if err != nil {
			return wireGroup{}, err
		}
		w.Groups = append(w.Groups, child)
	}
	return w, nil
}

func fromWire(w wireGroup, n *Node) error {
	if err := decodeAttrs(w.Attrs, &n.attrs); err != nil {
		return fmt.Errorf("%s: %w", n.Path(), err)
	}

	for _, wd := range w.Datasets {
		var values any
		var err error
		switch wd.DType {
		case DTypeFloat32:
			var v []float32
			err = decMode.Unmarshal(wd.Values, &v)
			values = v
		case DTypeFloat64:
			var v []float64
			err = decMode.Unmarshal(wd.Values, &v)
			values = v
		case DTypeInt64:
			var v []int64
			err = decMode.Unmarshal(wd.Values, &v)
			values = v
		default:
			return fmt.Errorf("%w: %s/%s: unknown dtype %q", ErrInvalidContainer, n.Path(), wd.Name, wd.DType)
		}
		if err != nil {
			return fmt.Errorf("%w: %s/%s: %v", ErrInvalidContainer, n.Path(), wd.Name, err)
		}

		d, err := n.CreateDataset(wd.Name, values)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidContainer, err)
		}
		if err := decodeAttrs(wd.Attrs, &d.attrs); err != nil {
			return fmt.Errorf("%s/%s: %w", n.Path(), wd.Name, err)
		}
	}

	for _, wg := range w.Groups {
		child, err := n.CreateGroup(wg.Name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidContainer, err)
		}
		if err := fromWire(wg, child); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes a container tree.
func Marshal(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a container tree.
func Unmarshal(data []byte) (*Node, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, fmt.Errorf("%w: missing CBOR self-describe tag", ErrInvalidContainer)
	}

	var w wireGroup
	if err := decMode.Unmarshal(data[len(magic):], &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	if w.Name != "" {
		return nil, fmt.Errorf("%w: root group has name %q", ErrInvalidContainer, w.Name)
	}

	root := NewRoot()
	if err := fromWire(w, root); err != nil {
		return nil, err
	}
	return root, nil
}

// Encode writes a container tree to w.
func Encode(w io.Writer, root *Node) error {
	if root.parent != nil {
		return fmt.Errorf("%w: %s is not a root group", ErrInvalidName, root.Path())
	}
	wg, err := toWire(root)
	if err != nil {
		return err
	}
	if _, err := w.Write(magic); err != nil {
		return err
	}
	return encMode.NewEncoder(w).Encode(wg)
}

// Decode reads a container tree from r.
func Decode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

// ReadFile reads a container file.
func ReadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// WriteFile writes a container file, replacing any existing file.
func WriteFile(path string, root *Node) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
