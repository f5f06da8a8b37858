package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlh5/cmlh5-go/pkg/container/mocks"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// testRegistry returns a small registry with a mix of mandatory and
// optional attributes on every level.
func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	reg, err := schema.Build(schema.Definitions{
		Levels: map[schema.Level][]schema.Record{
			schema.LevelRoot: {
				{Name: "title", Type: "string", Mandatory: "True"},
				{Name: "comment", Type: "string", Mandatory: "False"},
			},
			schema.LevelCML: {
				{Name: "cml_id", Type: "string", Mandatory: "True"},
				{Name: "site_a_latitude", Units: "degrees_north", Type: "float32", Mandatory: "True"},
				{Name: "length", Units: "km", Type: "float32", Mandatory: "False"},
			},
			schema.LevelChannel: {
				{Name: "frequency", Units: "GHz", Type: "float32", Mandatory: "True"},
				{Name: "polarization", Type: "string", Mandatory: "True"},
				{Name: "atpc", Type: "string", Mandatory: "False"},
				{Name: "legacy", Type: "int8", Mandatory: "False"},
			},
		},
	})
	require.NoError(t, err)
	return reg
}

func TestResolveMissingMandatory(t *testing.T) {
	reg := testRegistry(t)

	g := mocks.NewMockGroup(t)
	g.EXPECT().Path().Return("/cml_1/channel_1")
	g.EXPECT().Attr("frequency").Return(float32(18), true)
	g.EXPECT().Attr("polarization").Return(nil, false)
	g.EXPECT().Attr("atpc").Return(nil, false)
	g.EXPECT().Attr("legacy").Return(nil, false)

	md, errs := Resolve(reg, g, schema.LevelChannel, true)

	require.Len(t, errs, 1)
	assert.Equal(t, KindMissingMandatory, errs[0].Kind)
	assert.Equal(t, "polarization", errs[0].Attribute)
	assert.Equal(t, "/cml_1/channel_1: Mandatory metadata 'polarization' is missing", errs[0].Error())

	assert.NotContains(t, md, "polarization")
	assert.NotContains(t, md, "atpc", "absent optional attributes have no placeholder")
	assert.Equal(t, Metadata{"frequency": float32(18)}, md)
}

func TestResolveKeepsValueOnTypeError(t *testing.T) {
	reg := testRegistry(t)

	g := mocks.NewMockGroup(t)
	g.EXPECT().Path().Return("/cml_1")
	g.EXPECT().Attr("cml_id").Return(int64(10001), true)
	g.EXPECT().Attr("site_a_latitude").Return(47.5, true)
	g.EXPECT().Attr("length").Return("NaN", true)

	md, errs := Resolve(reg, g, schema.LevelCML, true)

	require.Len(t, errs, 2)
	assert.Equal(t, "cml_id", errs[0].Attribute)
	assert.Equal(t, KindTypeMismatch, errs[0].Kind)
	assert.Equal(t, "site_a_latitude", errs[1].Attribute)
	assert.Equal(t, KindTypeMismatch, errs[1].Kind)

	assert.Equal(t, int64(10001), md["cml_id"])
	assert.Equal(t, 47.5, md["site_a_latitude"])
	length, ok := md["length"].(float64)
	require.True(t, ok, "NaN token normalized to float64")
	assert.True(t, math.IsNaN(length))
}

func TestResolveLenient(t *testing.T) {
	reg := testRegistry(t)

	g := mocks.NewMockGroup(t)
	g.EXPECT().Path().Return("/cml_1")
	g.EXPECT().Attr("cml_id").Return("10001", true)
	g.EXPECT().Attr("site_a_latitude").Return(47.5, true)
	g.EXPECT().Attr("length").Return(nil, false)

	_, errs := Resolve(reg, g, schema.LevelCML, false)
	assert.Empty(t, errs)
}

func TestResolveUnsupportedTypeContinues(t *testing.T) {
	reg := testRegistry(t)

	g := mocks.NewMockGroup(t)
	g.EXPECT().Path().Return("/c/ch")
	g.EXPECT().Attr("frequency").Return(float32(23), true)
	g.EXPECT().Attr("polarization").Return("V", true)
	g.EXPECT().Attr("atpc").Return("NA", true)
	g.EXPECT().Attr("legacy").Return(int64(1), true)

	md, errs := Resolve(reg, g, schema.LevelChannel, true)

	require.Len(t, errs, 1)
	assert.Equal(t, KindUnsupportedType, errs[0].Kind)
	assert.Equal(t, "legacy", errs[0].Attribute)

	assert.Nil(t, md["atpc"], "NA string normalized to nil")
	assert.Contains(t, md, "atpc", "a normalized missing value is still present")
	assert.Equal(t, int64(1), md["legacy"])
}

func TestResolveEmptyValueIsPresent(t *testing.T) {
	reg := testRegistry(t)

	g := mocks.NewMockGroup(t)
	g.EXPECT().Path().Return("/")
	g.EXPECT().Attr("title").Return("", true)
	g.EXPECT().Attr("comment").Return(nil, false)

	md, errs := Resolve(reg, g, schema.LevelRoot, true)
	assert.Empty(t, errs)
	assert.Equal(t, Metadata{"title": ""}, md)
}

func TestResolveOnlyDeclaredAttributes(t *testing.T) {
	reg := testRegistry(t)

	// Undeclared attributes are never read.
	g := mocks.NewMockGroup(t)
	g.EXPECT().Path().Return("/")
	g.EXPECT().Attr("title").Return("t", true)
	g.EXPECT().Attr("comment").Return("c", true)

	md, errs := Resolve(reg, g, schema.LevelRoot, true)
	assert.Empty(t, errs)
	for name := range md {
		_, err := reg.Lookup(schema.LevelRoot, name)
		assert.NoError(t, err)
	}
}
