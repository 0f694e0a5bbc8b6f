package resumefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
	"go.yaml.in/yaml/v3"
)

// Marshal encodes r as YAML for .yaml/.yml paths and as indented JSON otherwise
func Marshal(path string, r types.Resume) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(r)
	default:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Write saves r to path in the format its extension selects
func Write(path string, r types.Resume) error {
	data, err := Marshal(path, r)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
