// Schema validation of the output document before it leaves the process.
package region

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

// ValidateDocument checks serialized document bytes against the embedded
// region.v1 JSON Schema.
func ValidateDocument(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("region.v1.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile("region.v1.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("document does not match region.v1: %w", err)
	}
	return nil
}
