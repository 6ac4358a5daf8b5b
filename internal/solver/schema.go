package solver

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// solutionSchema is the JSON schema a trustworthy model response must
// satisfy. Responses that fail it are not rejected; they are repaired
// with per-field defaults at reduced confidence.
var solutionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"steps": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"step":        map[string]any{"type": "integer"},
					"description": map[string]any{"type": "string"},
					"formula":     map[string]any{"type": "string"},
					"result":      map[string]any{"type": "string"},
				},
				"required": []any{"step", "description"},
			},
		},
		"explanation": map[string]any{"type": "string"},
		"concepts": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"finalAnswer": map[string]any{"type": "string", "minLength": 1},
		"confidence": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 100,
		},
	},
	"required": []any{"steps", "explanation", "finalAnswer", "confidence"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSolution checks raw model output against solutionSchema.
func validateSolution(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the map.
		defBytes, err := json.Marshal(solutionSchema)
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://math-solution.json", def); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile("schema://math-solution.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile solution schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
