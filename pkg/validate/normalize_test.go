package validate

import (
	"math"
	"testing"

	"github.com/x448/float16"

	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

func TestNormalizeFloatTokens(t *testing.T) {
	floatTags := []schema.TypeTag{schema.TypeFloat16, schema.TypeFloat32, schema.TypeFloat64, schema.TypeFloat}
	tokens := []any{"NA", "NaN", "nan", []byte("NA"), []byte("nan")}

	for _, tag := range floatTags {
		for _, tok := range tokens {
			got := Normalize(tok, tag)
			f, ok := got.(float64)
			if !ok || !math.IsNaN(f) {
				t.Errorf("Normalize(%q, %s) = %#v, want float64 NaN", tok, tag, got)
			}
		}
	}
}

func TestNormalizeStringToken(t *testing.T) {
	if got := Normalize("NA", schema.TypeString); got != nil {
		t.Errorf("Normalize(NA, string) = %#v, want nil", got)
	}
	if got := Normalize([]byte("NA"), schema.TypeString); got != nil {
		t.Errorf("Normalize([]byte NA, string) = %#v, want nil", got)
	}
	// Only "NA" marks a missing string.
	if got := Normalize("NaN", schema.TypeString); got != "NaN" {
		t.Errorf("Normalize(NaN, string) = %#v, want unchanged", got)
	}
}

func TestNormalizePassThrough(t *testing.T) {
	tests := []struct {
		name  string
		value any
		tag   schema.TypeTag
	}{
		{"float value", float32(1.5), schema.TypeFloat32},
		{"other text for float", "n/a", schema.TypeFloat32},
		{"empty text for float", "", schema.TypeFloat64},
		{"empty text for string", "", schema.TypeString},
		{"bool", true, schema.TypeString},
		{"unsupported tag", "NA", schema.TypeTag("int8")},
		{"lower case na", "na", schema.TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.value, tt.tag)
			if got != tt.value {
				t.Errorf("Normalize(%#v, %s) = %#v, want unchanged", tt.value, tt.tag, got)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	values := []any{
		"NA", "NaN", "nan", "text", "",
		float16.Fromfloat32(2), float32(3), 4.0, math.NaN(), float32(math.NaN()),
		int64(5), true, nil, []byte("NA"),
	}
	tags := append(schema.TypeTags(), schema.TypeTag("bogus"))

	for _, tag := range tags {
		for _, v := range values {
			once := Normalize(v, tag)
			twice := Normalize(once, tag)
			if !sameValue(once, twice) {
				t.Errorf("Normalize not idempotent for %#v (%s): %#v then %#v", v, tag, once, twice)
			}
		}
	}
}

// sameValue compares normalized values, treating NaN as equal to itself.
func sameValue(a, b any) bool {
	if IsMissing(a) && IsMissing(b) {
		return (a == nil) == (b == nil)
	}
	if ab, ok := a.([]byte); ok {
		bb, ok := b.([]byte)
		return ok && string(ab) == string(bb)
	}
	return a == b
}

func TestIsMissing(t *testing.T) {
	missing := []any{nil, math.NaN(), float32(math.NaN()), float16.NaN()}
	for _, v := range missing {
		if !IsMissing(v) {
			t.Errorf("IsMissing(%#v) = false", v)
		}
	}
	present := []any{0.0, float32(0), "", "NA", int64(0), false}
	for _, v := range present {
		if IsMissing(v) {
			t.Errorf("IsMissing(%#v) = true", v)
		}
	}
}
