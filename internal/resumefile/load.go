// Package resumefile loads and writes resume documents in JSON or YAML.
package resumefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-wizard/internal/schemas"
	"github.com/jonathan/resume-wizard/internal/types"
	"go.yaml.in/yaml/v3"
)

// Load reads a resume from a .json, .yaml or .yml file, checks it against the resume
// schema and normalizes it.
func Load(path string) (*types.Resume, error) {
	return load(path, schemas.ValidateResume)
}

// LoadWithSchema is Load with the document checked against the JSON Schema file at
// schemaPath instead of the built-in resume schema.
func LoadWithSchema(path, schemaPath string) (*types.Resume, error) {
	return load(path, func(doc []byte) error {
		return schemas.ValidateJSON(schemaPath, doc)
	})
}

func load(path string, check func(doc []byte) error) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var doc []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		doc = content
	case ".yaml", ".yml":
		doc, err = yamlToJSON(content)
		if err != nil {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported file extension %q (want .json, .yaml or .yml)", ext)}
	}

	return decode(path, doc, check)
}

// Decode checks a JSON document against the resume schema and unmarshals it.
// name identifies the document in errors.
func Decode(name string, doc []byte) (*types.Resume, error) {
	return decode(name, doc, schemas.ValidateResume)
}

func decode(name string, doc []byte, check func(doc []byte) error) (*types.Resume, error) {
	if !json.Valid(doc) {
		return nil, &LoadError{Message: fmt.Sprintf("%s is not valid JSON", name)}
	}

	if err := check(doc); err != nil {
		schemaErr := &SchemaError{Path: name, Cause: err}
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			schemaErr.Errors = validationErr.Errors
		}
		return nil, schemaErr
	}

	var r types.Resume
	if err := json.Unmarshal(doc, &r); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&r)
	return &r, nil
}

// yamlToJSON converts a YAML document into JSON. Resume documents hold no numbers,
// so every scalar other than a boolean or null is kept as a string: an unquoted
// `gpa: 3.8` or `startDate: 2020-01` reads the same as its quoted form.
func yamlToJSON(content []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}

	value, err := nodeValue(&root)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key.Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		default:
			return n.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}
