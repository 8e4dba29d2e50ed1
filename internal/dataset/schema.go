package dataset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedSchemaVersion is the newest dataset schema this build reads.
//
//	v1  aroma features authored under split (white) or combined (red) keys
//	v2  aroma features authored under the canonical merged key
const SupportedSchemaVersion = "v2"

// mergedKeysVersion is the first schema version that uses the merged
// aroma-features key natively.
const mergedKeysVersion = "v2"

const schemaURL = "schema://wine-dataset.json"

// documentSchema accepts either a bare list of wine records or an envelope
// with an optional schemaVersion. Only the envelope and record ids are
// constrained; every other field is left to Normalize, which drops what it
// cannot read.
var documentSchema = map[string]any{
	"$defs": map[string]any{
		"wine": map[string]any{
			"type":     "object",
			"required": []any{"id"},
			"properties": map[string]any{
				"id": map[string]any{"type": "string", "minLength": 1},
			},
		},
		"wines": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/wine"},
		},
	},
	"oneOf": []any{
		map[string]any{"$ref": "#/$defs/wines"},
		map[string]any{
			"type":     "object",
			"required": []any{"wines"},
			"properties": map[string]any{
				"schemaVersion": map[string]any{"type": "string"},
				"wines":         map[string]any{"$ref": "#/$defs/wines"},
			},
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants plain JSON values, so round-trip the Go literal.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateDocument checks a parsed JSON document against the dataset schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// checkSchemaVersion accepts an empty version (inferred from keys) or a
// valid semver whose major is not newer than SupportedSchemaVersion.
func checkSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedSchema, v)
	}
	if semver.Compare(semver.Major(v), semver.Major(SupportedSchemaVersion)) > 0 {
		return fmt.Errorf("%w: %s is newer than %s", ErrUnsupportedSchema, v, SupportedSchemaVersion)
	}
	return nil
}

// usesMergedKeys reports whether a declared version authors aroma features
// under the merged key only.
func usesMergedKeys(v string) bool {
	return v != "" && semver.Compare(v, mergedKeysVersion) >= 0
}
