package validate

import (
	"errors"
	"fmt"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// Metadata maps attribute names to normalized values for one group.
type Metadata map[string]any

// Resolve reads every attribute the registry declares for level from g.
//
// Attributes are visited in declaration order. A missing mandatory
// attribute is reported; a missing optional one is skipped and left out of
// the result. A present value is normalized and type checked, and is kept
// in the result even when the check fails.
func Resolve(reg *schema.Registry, g container.Group, level schema.Level, strict bool) (Metadata, Errors) {
	md := make(Metadata)
	var errs Errors
	path := g.Path()

	for _, attr := range reg.Attributes(level) {
		raw, ok := g.Attr(attr.Name)
		if !ok {
			if attr.Mandatory {
				errs = append(errs, ValidationError{
					GroupPath: path,
					Attribute: attr.Name,
					Kind:      KindMissingMandatory,
					Message:   fmt.Sprintf("Mandatory metadata '%s' is missing", attr.Name),
				})
			}
			continue
		}

		value := Normalize(raw, attr.Type)
		if err := CheckType(attr.Name, value, attr.Type, strict); err != nil {
			errs = append(errs, toValidationError(path, attr.Name, err))
		}
		md[attr.Name] = value
	}

	return md, errs
}

func toValidationError(path, name string, err error) ValidationError {
	var attrErr *AttributeError
	if errors.As(err, &attrErr) {
		return ValidationError{
			GroupPath: path,
			Attribute: name,
			Kind:      attrErr.Kind,
			Message:   attrErr.Message,
		}
	}
	return ValidationError{
		GroupPath: path,
		Attribute: name,
		Kind:      KindTypeMismatch,
		Message:   err.Error(),
	}
}
