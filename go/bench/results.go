package bench

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/google/renameio"
)

const DefaultResultsFile = "performance_results.json"

// WriteResults atomically replaces path with res as indented JSON.
func WriteResults(path string, res *Results) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	b = append(b, '\n')
	if err := renameio.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func ReadResults(fsys fs.FS, name string) (*Results, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	res := new(Results)
	if err := json.Unmarshal(b, res); err != nil {
		return nil, fmt.Errorf("failed to decode results in %s: %w", name, err)
	}
	return res, nil
}
