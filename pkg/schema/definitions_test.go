package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: "1.0"
root:
  - name: title
    type: string
    mandatory: " True"
    description: "  File title "
cml:
  - name: cml_id
    type: string
    mandatory: "True"
  - name: length
    units: km
    type: float32
    mandatory: "False"
channel:
  - name: frequency
    units: GHz
    type: float32
    mandatory: "True"
`

func TestParseDefinitionsYAML(t *testing.T) {
	defs, err := ParseDefinitionsYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1.0", defs.Version)
	require.Len(t, defs.Levels[LevelCML], 2)
	assert.Equal(t, "length", defs.Levels[LevelCML][1].Name)

	assert.Equal(t, " True", defs.Levels[LevelRoot][0].Mandatory)

	r, err := Build(defs)
	require.NoError(t, err)

	desc, err := r.Lookup(LevelRoot, "title")
	require.NoError(t, err)
	assert.True(t, desc.Mandatory)
	assert.Equal(t, "File title", desc.Description)

	desc, err = r.Lookup(LevelCML, "length")
	require.NoError(t, err)
	assert.False(t, desc.Mandatory)
	assert.Equal(t, "km", desc.Unit)
}

func TestParseDefinitionsYAMLMissingLevel(t *testing.T) {
	data := strings.Replace(sampleYAML, "channel:", "other_key:", 1)
	_, err := ParseDefinitionsYAML([]byte(data))
	assert.ErrorIs(t, err, ErrSchemaConfiguration, "unknown keys are rejected")

	data = sampleYAML[:strings.Index(sampleYAML, "channel:")]
	defs, err := ParseDefinitionsYAML([]byte(data))
	require.NoError(t, err)

	_, err = Build(defs)
	assert.ErrorIs(t, err, ErrSchemaConfiguration)
}

func TestParseDefinitionsYAMLRejectsBooleanMandatory(t *testing.T) {
	for _, flag := range []string{"true", "True", "TRUE", "false"} {
		data := strings.Replace(sampleYAML, `mandatory: " True"`, "mandatory: "+flag, 1)
		_, err := ParseDefinitionsYAML([]byte(data))
		assert.ErrorIs(t, err, ErrSchemaConfiguration, "mandatory: %s", flag)
	}
}

func TestParseDefinitionsYAMLInvalid(t *testing.T) {
	_, err := ParseDefinitionsYAML([]byte("root: [unclosed"))
	assert.ErrorIs(t, err, ErrSchemaConfiguration)
}

func TestLoadDefinitionsYAMLMissingFile(t *testing.T) {
	_, err := LoadDefinitionsYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrSchemaConfiguration)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultRegistry(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefinitionsVersion, r.Version())

	for _, level := range Levels() {
		assert.NotZero(t, r.Count(level), "level %s has no attributes", level)
		for _, name := range r.Names(level) {
			desc, err := r.Lookup(level, name)
			require.NoError(t, err)
			assert.True(t, desc.Type.Valid(), "%s/%s has unsupported type %q", level, name, desc.Type)
		}
	}

	desc, err := r.Lookup(LevelChannel, AttrChannelFrequency)
	require.NoError(t, err)
	assert.Equal(t, TypeFloat32, desc.Type)
	assert.Equal(t, "GHz", desc.Unit)
	assert.True(t, desc.Mandatory)

	other, err := Default()
	require.NoError(t, err)
	assert.NotSame(t, r, other, "Default must build a new registry on every call")
}

func TestLoadDispatchesOnPathKind(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "defs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))

	r, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count(LevelCML))

	csvDir := filepath.Join(dir, "csv")
	require.NoError(t, os.Mkdir(csvDir, 0o755))
	writeCSVTables(t, csvDir)

	r, err = Load(csvDir)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count(LevelCML))

	_, err = Load(filepath.Join(dir, "nope"))
	assert.True(t, errors.Is(err, ErrSchemaConfiguration))
}
