package validate

import (
	"math"

	"github.com/x448/float16"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// Tokens written into files in place of a missing value.
const (
	tokenNA     = "NA"
	tokenNaN    = "NaN"
	tokenNaNLow = "nan"
)

// MissingFloat returns the canonical missing-float marker.
func MissingFloat() float64 {
	return math.NaN()
}

// IsMissing returns true if v is a missing-value marker: nil or a NaN of
// any float width.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float16.Float16:
		return x.IsNaN()
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	}
	return false
}

// Normalize replaces missing-value tokens with the canonical markers.
//
// For any float tag the text tokens "NA", "NaN" and "nan" become a float64
// NaN; for the string tag "NA" becomes nil. Every other value is returned
// unchanged. Normalize is idempotent.
func Normalize(raw any, t schema.TypeTag) any {
	s, ok := container.Text(raw)
	if !ok {
		return raw
	}
	switch {
	case t.IsFloat():
		if s == tokenNA || s == tokenNaN || s == tokenNaNLow {
			return MissingFloat()
		}
	case t == schema.TypeString:
		if s == tokenNA {
			return nil
		}
	}
	return raw
}

