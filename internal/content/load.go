package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/musantuli/portfolio/internal/schemas"
	"github.com/musantuli/portfolio/internal/types"
	contentschema "github.com/musantuli/portfolio/schemas"
)

// LoadError wraps a failure to read or decode a content file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("content %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a content file (.json, .yaml or .yml), validates it against the
// content schema, and decodes it. Schema violations are returned as
// *schemas.ValidationError wrapped in a *LoadError.
func Load(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, err := ToJSON(path, data)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateJSONBytes(contentschema.Content, doc); err != nil {
		return nil, &LoadError{Path: path, Message: "does not match content schema", Cause: err}
	}

	var profile types.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode", Cause: err}
	}
	if profile.CVURL == "" {
		profile.CVURL = DefaultCVURL
	}
	return &profile, nil
}

// ToJSON converts the content file data to JSON based on the file extension.
func ToJSON(path string, data []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return data, nil
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
		}
		doc, err := json.Marshal(plainDates(v))
		if err != nil {
			return nil, &LoadError{Path: path, Message: "YAML cannot be represented as JSON", Cause: err}
		}
		return doc, nil
	default:
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("unsupported extension %q", filepath.Ext(path))}
	}
}

// plainDates replaces the time.Time values yaml.v3 produces for unquoted
// timestamps with their 2006-01-02 form, which is what the schema expects.
func plainDates(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.DateOnly)
	case map[string]any:
		for k, item := range t {
			t[k] = plainDates(item)
		}
	case []any:
		for i, item := range t {
			t[i] = plainDates(item)
		}
	}
	return v
}
