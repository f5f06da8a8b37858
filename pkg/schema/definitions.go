package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rawDefinitions is the YAML layout of a definitions file.
type rawDefinitions struct {
	Version string   `yaml:"version"`
	Root    []Record `yaml:"root"`
	CML     []Record `yaml:"cml"`
	Channel []Record `yaml:"channel"`
}

// ParseDefinitionsYAML parses definition records from YAML bytes.
//
// The document holds one list of records per level:
//
//	version: "1.0"
//	root:
//	  - name: file_format
//	    type: string
//	    mandatory: "True"
//	cml:
//	  - ...
//	channel:
//	  - ...
//
// The document is checked with CheckDocument first. The mandatory flag is
// text and must be quoted; an unquoted YAML boolean is rejected. A level key that is
// absent (or null) is left out of the result, so that Build reports it as a
// configuration error.
func ParseDefinitionsYAML(data []byte) (Definitions, error) {
	if err := CheckDocument(data); err != nil {
		return Definitions{}, err
	}

	var raw rawDefinitions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Definitions{}, fmt.Errorf("%w: parsing definitions: %v", ErrSchemaConfiguration, err)
	}

	defs := Definitions{
		Version: raw.Version,
		Levels:  make(map[Level][]Record, 3),
	}
	if raw.Root != nil {
		defs.Levels[LevelRoot] = raw.Root
	}
	if raw.CML != nil {
		defs.Levels[LevelCML] = raw.CML
	}
	if raw.Channel != nil {
		defs.Levels[LevelChannel] = raw.Channel
	}
	return defs, nil
}

// LoadDefinitionsYAML loads definition records from a YAML file.
func LoadDefinitionsYAML(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definitions{}, fmt.Errorf("%w: reading %s: %w", ErrSchemaConfiguration, path, err)
	}
	return ParseDefinitionsYAML(data)
}

// Load builds a registry from a definitions source. A directory is read as
// CSV definition tables, anything else as a YAML definitions file.
func Load(path string) (*Registry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaConfiguration, err)
	}

	var defs Definitions
	if info.IsDir() {
		defs, err = LoadDefinitionsCSVDir(path)
	} else {
		defs, err = LoadDefinitionsYAML(path)
	}
	if err != nil {
		return nil, err
	}
	return Build(defs)
}
