package container

import (
	"errors"
	"fmt"

	"github.com/x448/float16"
)

// ErrUnsupportedValue is returned when an attribute value has a Go type
// that cannot be stored in a container.
var ErrUnsupportedValue = errors.New("unsupported attribute value")

// checkValue verifies v is one of the attribute value types a container
// can hold.
func checkValue(v any) error {
	switch v.(type) {
	case nil,
		float16.Float16, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		bool, string, []byte:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// TypeName returns the storage type name of an attribute value, using the
// numeric width names of the container ("float32", "int64", ...).
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case float16.Float16:
		return "float16"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case int:
		return "int"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case bool:
		return "bool"
	case string:
		return "string"
	case []byte:
		return "bytes"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Text returns the text of a string or byte-string attribute value. Byte
// strings are fixed-length text attributes and read the same as strings.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	}
	return "", false
}

// attrSet is an ordered set of named attribute values.
type attrSet struct {
	names  []string
	values map[string]any
}

func (s *attrSet) get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *attrSet) set(name string, v any) error {
	if name == "" {
		return fmt.Errorf("%w: empty attribute name", ErrInvalidName)
	}
	if err := checkValue(v); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = v
	return nil
}

func (s *attrSet) delete(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

func (s *attrSet) list() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
