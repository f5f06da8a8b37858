package schema

import (
	"errors"
	"testing"
)

func testDefinitions() Definitions {
	return Definitions{
		Version: " 1.0 ",
		Levels: map[Level][]Record{
			LevelRoot: {
				{Name: " title ", Type: " string ", Mandatory: "True", Description: "  File title  "},
				{Name: "comment", Type: "string", Mandatory: "False"},
			},
			LevelCML: {
				{Name: "cml_id", Type: "string", Mandatory: "True"},
				{Name: "site_a_latitude", Units: " degrees_north", Type: "float32", Mandatory: " True "},
			},
			LevelChannel: {
				{Name: "frequency", Units: "GHz", Type: "float32", Mandatory: "True"},
				{Name: "polarization", Type: "string", Mandatory: "true"},
				{Name: "legacy", Type: "int8", Mandatory: "False"},
			},
		},
	}
}

func TestBuildTrimsFields(t *testing.T) {
	r, err := Build(testDefinitions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if r.Version() != "1.0" {
		t.Errorf("Version() = %q, want %q", r.Version(), "1.0")
	}

	desc, err := r.Lookup(LevelRoot, "title")
	if err != nil {
		t.Fatalf("Lookup(root, title) failed: %v", err)
	}
	if desc.Type != TypeString {
		t.Errorf("Type = %q, want %q", desc.Type, TypeString)
	}
	if !desc.Mandatory {
		t.Error("Mandatory = false, want true")
	}
	if desc.Description != "File title" {
		t.Errorf("Description = %q, want %q", desc.Description, "File title")
	}

	desc, err = r.Lookup(LevelCML, "site_a_latitude")
	if err != nil {
		t.Fatalf("Lookup(cml, site_a_latitude) failed: %v", err)
	}
	if desc.Unit != "degrees_north" {
		t.Errorf("Unit = %q, want degrees_north", desc.Unit)
	}
	if !desc.Mandatory {
		t.Error("padded True should be mandatory")
	}
}

func TestBuildMandatoryIsLiteralTrue(t *testing.T) {
	r, err := Build(testDefinitions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	desc, err := r.Lookup(LevelChannel, "polarization")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if desc.Mandatory {
		t.Error(`"true" must not mark an attribute mandatory`)
	}
}

func TestBuildKeepsUnsupportedTypeTag(t *testing.T) {
	r, err := Build(testDefinitions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	desc, err := r.Lookup(LevelChannel, "legacy")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if desc.Type != "int8" {
		t.Errorf("Type = %q, want int8", desc.Type)
	}
	if desc.Type.Valid() {
		t.Error("int8 must not be a valid tag")
	}
}

func TestBuildMissingLevel(t *testing.T) {
	for _, level := range Levels() {
		t.Run(level.String(), func(t *testing.T) {
			defs := testDefinitions()
			delete(defs.Levels, level)

			_, err := Build(defs)
			if !errors.Is(err, ErrSchemaConfiguration) {
				t.Fatalf("Build error = %v, want ErrSchemaConfiguration", err)
			}
		})
	}
}

func TestBuildEmptyLevelIsAllowed(t *testing.T) {
	defs := testDefinitions()
	defs.Levels[LevelRoot] = []Record{}

	r, err := Build(defs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if r.Count(LevelRoot) != 0 {
		t.Errorf("Count(root) = %d, want 0", r.Count(LevelRoot))
	}
}

func TestBuildRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Definitions)
	}{
		{
			name: "record without name",
			mutate: func(d Definitions) {
				d.Levels[LevelCML] = append(d.Levels[LevelCML], Record{Name: "  ", Type: "string"})
			},
		},
		{
			name: "duplicate name",
			mutate: func(d Definitions) {
				d.Levels[LevelCML] = append(d.Levels[LevelCML], Record{Name: "cml_id ", Type: "string"})
			},
		},
		{
			name: "unknown level",
			mutate: func(d Definitions) {
				d.Levels[Level("array")] = []Record{{Name: "x", Type: "float32"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := testDefinitions()
			tt.mutate(defs)

			_, err := Build(defs)
			if !errors.Is(err, ErrSchemaConfiguration) {
				t.Errorf("Build error = %v, want ErrSchemaConfiguration", err)
			}
		})
	}
}

func TestLookupErrors(t *testing.T) {
	r, err := Build(testDefinitions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	_, err = r.Lookup(LevelRoot, "nope")
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("Lookup(root, nope) = %v, want ErrUnknownAttribute", err)
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("error %T is not a *LookupError", err)
	}
	if lookupErr.Name != "nope" || lookupErr.Level != LevelRoot {
		t.Errorf("LookupError = %+v", lookupErr)
	}

	_, err = r.Lookup(Level("array"), "x")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Lookup(array, x) = %v, want ErrUnknownLevel", err)
	}
}

func TestNamesDeclarationOrder(t *testing.T) {
	r, err := Build(testDefinitions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"frequency", "polarization", "legacy"}
	got := r.Names(LevelChannel)
	if len(got) != len(want) {
		t.Fatalf("Names(channel) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names(channel)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Mutating the returned slice must not affect the registry.
	got[0] = "changed"
	if r.Names(LevelChannel)[0] != "frequency" {
		t.Error("Names returned the registry's own slice")
	}

	mandatory := r.Mandatory(LevelChannel)
	if len(mandatory) != 1 || mandatory[0] != "frequency" {
		t.Errorf("Mandatory(channel) = %v, want [frequency]", mandatory)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"root", LevelRoot, false},
		{" CML ", LevelCML, false},
		{"Channel", LevelChannel, false},
		{"array", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTypeTagPredicates(t *testing.T) {
	for _, tag := range TypeTags() {
		if !tag.Valid() {
			t.Errorf("%s.Valid() = false", tag)
		}
		if tag.IsFloat() == (tag == TypeString) {
			t.Errorf("%s.IsFloat() = %v", tag, tag.IsFloat())
		}
	}
	if TypeTag("double").Valid() {
		t.Error("double must not be valid")
	}
}
