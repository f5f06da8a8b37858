package validate

import (
	"fmt"
	"strings"
)

// Kind classifies a validation error.
type Kind int

const (
	// KindMissingMandatory means a mandatory attribute is absent.
	KindMissingMandatory Kind = iota
	// KindTypeMismatch means the value has the wrong type or float width.
	KindTypeMismatch
	// KindNotFloat means a float was declared but the value is not numeric.
	KindNotFloat
	// KindUnsupportedType means the definitions declare an unknown type tag.
	KindUnsupportedType
)

func (k Kind) String() string {
	switch k {
	case KindMissingMandatory:
		return "missing_mandatory"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindNotFloat:
		return "not_float"
	case KindUnsupportedType:
		return "unsupported_type"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindMissingMandatory, KindTypeMismatch, KindNotFloat, KindUnsupportedType} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown error kind %q", s)
}

// AttributeError is a problem with one attribute value, as reported by
// CheckType.
type AttributeError struct {
	Kind      Kind
	Attribute string
	Message   string
}

func (e *AttributeError) Error() string {
	return e.Message
}

// ValidationError is one entry of a validation report.
type ValidationError struct {
	// GroupPath is the path of the group the attribute belongs to.
	GroupPath string

	// Attribute is the attribute name.
	Attribute string

	Kind    Kind
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.GroupPath, e.Message)
}

// Errors is an ordered list of validation errors. Order is traversal
// order: root attributes first, then each device followed by its channels.
type Errors []ValidationError

// Error summarizes the first few errors.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(errs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(errs[i].Error())
	}
	if len(errs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(errs))
	}
	return b.String()
}

// Err returns errs as an error, or nil if there are none.
func (errs Errors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ByGroup returns the errors of one group.
func (errs Errors) ByGroup(path string) Errors {
	var out Errors
	for _, e := range errs {
		if e.GroupPath == path {
			out = append(out, e)
		}
	}
	return out
}

// ByKind returns the errors of one kind.
func (errs Errors) ByKind(kind Kind) Errors {
	var out Errors
	for _, e := range errs {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// CountByKind counts errors per kind.
func (errs Errors) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range errs {
		counts[e.Kind]++
	}
	return counts
}
