package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
	"github.com/cmlh5/cmlh5-go/pkg/validate"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type, unit and mandatory information
	ShowMetadata bool

	// ShowTypes includes the stored type of each value
	ShowTypes bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue formats a value for display, followed by unit when set.
// Floats print in the shortest form that round-trips at their own width.
func (f *Formatter) FormatValue(value any, unit string) string {
	var s string
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	case []byte:
		return strconv.Quote(string(v))
	case float16.Float16:
		s = formatFloat(float64(v.Float32()), 32)
	case float32:
		s = formatFloat(float64(v), 32)
	case float64:
		s = formatFloat(v, 64)
	default:
		s = fmt.Sprintf("%v", v)
	}
	if unit != "" && s != "NaN" {
		return s + " " + unit
	}
	return s
}

func formatFloat(v float64, bits int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// FormatDescriptor formats a declaration, e.g. "[float32, GHz, mandatory]".
func (f *Formatter) FormatDescriptor(d schema.Descriptor) string {
	parts := []string{d.Type.String()}
	if d.Unit != "" {
		parts = append(parts, d.Unit)
	}
	if d.Mandatory {
		parts = append(parts, "mandatory")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatAttribute formats one attribute line.
func (f *Formatter) FormatAttribute(info AttributeInfo) string {
	var sb strings.Builder
	sb.WriteString(info.Name)
	sb.WriteString(" = ")

	if info.Present {
		sb.WriteString(f.FormatValue(info.Value, info.Descriptor.Unit))
		if f.ShowTypes {
			fmt.Fprintf(&sb, " (%s)", container.TypeName(info.Value))
		}
	} else {
		sb.WriteString("<missing>")
	}

	if f.ShowMetadata {
		sb.WriteString("  ")
		if info.Declared {
			sb.WriteString(f.FormatDescriptor(info.Descriptor))
		} else {
			sb.WriteString("[undeclared]")
		}
	}
	return sb.String()
}

// FormatDataset formats a dataset summary, e.g. "rx_level: float32[1440]".
func (f *Formatter) FormatDataset(d *container.Dataset) string {
	return fmt.Sprintf("%s: %s[%d]", d.Name(), d.DType(), d.Len())
}

// FormatError formats a validation error for display.
func (f *Formatter) FormatError(e validate.ValidationError) string {
	if f.ShowMetadata {
		return fmt.Sprintf("%s: %s (%s)", e.GroupPath, e.Message, e.Kind)
	}
	return e.Error()
}
