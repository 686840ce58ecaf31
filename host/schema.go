package host

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ConfigSchema returns a JSON Schema (Draft 2020-12) describing the
// embedder Config, for embedder tooling that surfaces or validates
// runtime settings.
func ConfigSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Config{})

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config schema: %w", err)
	}
	return out, nil
}
