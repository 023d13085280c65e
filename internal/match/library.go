package match

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Library is the JSON file listing tracked series.
type Library struct {
	Series []*Series `json:"series"`
}

// DefaultLibraryPath returns ~/.bangumi-tidy/library.json.
func DefaultLibraryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".bangumi-tidy", "library.json"), nil
}

// LoadLibrary reads the library file. A missing file is an empty library,
// not an error; match commands should work out of the box.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Library{}, nil
		}
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse library file: %w", err)
	}
	return &lib, nil
}

// Save writes the library back to disk.
func (lib *Library) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library file: %w", err)
	}
	return nil
}

// Index builds a fresh alias index over the library.
func (lib *Library) Index() *Index {
	ix := NewIndex()
	ix.Rebuild(lib.Series)
	return ix
}
