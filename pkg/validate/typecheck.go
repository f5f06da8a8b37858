package validate

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// GenericFloatWidth is the concrete width the generic "float" tag requires
// in strict mode.
const GenericFloatWidth = schema.TypeFloat64

// checkFunc checks a normalized value against a declared tag.
type checkFunc func(name string, value any, tag schema.TypeTag, strict bool) error

// checkers is the dispatch table of the type checker. It holds one entry per
// supported type tag.
var checkers = map[schema.TypeTag]checkFunc{
	schema.TypeFloat16: checkFloat,
	schema.TypeFloat32: checkFloat,
	schema.TypeFloat64: checkFloat,
	schema.TypeFloat:   checkFloat,
	schema.TypeString:  checkString,
}

// CheckType checks a normalized attribute value against its declared type.
// It returns nil or an *AttributeError; it never fails for data-shaped
// input.
//
// With strict set, a float value must have exactly the declared width (the
// generic "float" tag means GenericFloatWidth). Without it, any float width
// is accepted. Missing markers are always accepted.
func CheckType(name string, value any, tag schema.TypeTag, strict bool) error {
	check, ok := checkers[tag]
	if !ok {
		return &AttributeError{
			Kind:      KindUnsupportedType,
			Attribute: name,
			Message:   fmt.Sprintf("Metadata type '%s' for '%s' is not supported", tag, name),
		}
	}
	return check(name, value, tag, strict)
}

func checkFloat(name string, value any, tag schema.TypeTag, strict bool) error {
	if !floatCapable(value) {
		return &AttributeError{
			Kind:      KindNotFloat,
			Attribute: name,
			Message: fmt.Sprintf("Metadata '%s' is '%s' with type '%s', but it should be some kind of float",
				name, formatValue(value), container.TypeName(value)),
		}
	}
	if IsMissing(value) {
		return nil
	}

	width, isFloat := floatWidth(value)
	var ok bool
	if strict {
		ok = isFloat && width == concreteWidth(tag)
	} else {
		ok = isFloat
	}
	if ok {
		return nil
	}
	return &AttributeError{
		Kind:      KindTypeMismatch,
		Attribute: name,
		Message: fmt.Sprintf("Metadata '%s' is '%s' with type '%s' which should be %s",
			name, formatValue(value), container.TypeName(value), tag),
	}
}

func checkString(name string, value any, _ schema.TypeTag, _ bool) error {
	switch value.(type) {
	case nil, string, []byte:
		return nil
	}
	return &AttributeError{
		Kind:      KindTypeMismatch,
		Attribute: name,
		Message: fmt.Sprintf("Metadata '%s' is '%s' with type '%s' which should be a string",
			name, formatValue(value), container.TypeName(value)),
	}
}

// floatCapable returns true if a NaN test is meaningful for v: floats of
// any width and integers.
func floatCapable(v any) bool {
	switch v.(type) {
	case float16.Float16, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// floatWidth returns the float tag matching the concrete width of v.
func floatWidth(v any) (schema.TypeTag, bool) {
	switch v.(type) {
	case float16.Float16:
		return schema.TypeFloat16, true
	case float32:
		return schema.TypeFloat32, true
	case float64:
		return schema.TypeFloat64, true
	}
	return "", false
}

func concreteWidth(tag schema.TypeTag) schema.TypeTag {
	if tag == schema.TypeFloat {
		return GenericFloatWidth
	}
	return tag
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case []byte:
		return string(x)
	case float16.Float16:
		return fmt.Sprint(x.Float32())
	}
	return fmt.Sprint(v)
}
