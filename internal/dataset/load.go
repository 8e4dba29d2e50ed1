package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed data/wines.json
var defaultDocument []byte

// Default returns the dataset bundled with the binary.
func Default() (*Dataset, error) {
	ds, err := Decode(bytes.NewReader(defaultDocument))
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return ds, nil
}

// LoadFile reads and builds the dataset stored at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return ds, nil
}

// Load returns the dataset at path, or the bundled one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Decode parses a JSON dataset document: either a list of wine records or
// {"schemaVersion": "...", "wines": [...]}.
func Decode(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &LoadError{Err: err}
	}

	var version string
	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		version, _ = v["schemaVersion"].(string)
		items, _ = v["wines"].([]any)
	}

	records := make([]RawRecord, 0, len(items))
	for _, item := range items {
		// The schema guarantees every item is an object.
		records = append(records, RawRecord(item.(map[string]any)))
	}
	return Build(version, records)
}
