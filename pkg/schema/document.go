package schema

import (
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed definitions/definitions.schema.json
var definitionsSchemaJSON string

// definitionsSchema describes the layout of a YAML definitions document.
var definitionsSchema = jsonschema.MustCompileString("definitions.schema.json", definitionsSchemaJSON)

// CheckDocument checks that data is a well-formed definitions document:
// only known keys, one list per level, and a name and type on every record.
// It does not check the records against each other; Build does that.
func CheckDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: parsing definitions: %v", ErrSchemaConfiguration, err)
	}
	if err := definitionsSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: definitions document: %v", ErrSchemaConfiguration, err)
	}
	return nil
}
