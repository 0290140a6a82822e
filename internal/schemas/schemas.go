// Package schemas provides JSON Schema validation for the persisted demo
// documents. Schemas are embedded at compile time; validation is used by the
// debug endpoint and by tests to catch documents a buggy writer corrupted.
package schemas

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Document schema names.
const (
	CaseList      = "case_list"
	CaseLog       = "case_log"
	FeedbackQueue = "feedback_queue"
	KBVersions    = "kb_versions"
)

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Schema string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document does not match %s schema: %s", e.Schema, strings.Join(e.Errors, "; "))
}

// Validate checks raw JSON bytes against the named embedded schema.
func Validate(name string, document []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %s: %w", name, err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("failed to validate against %s schema: %w", name, err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return verr
}

// ValidateFile checks the JSON document at path against the named schema.
// A missing file is reported as an error; callers decide whether that is
// acceptable for the document in question.
func ValidateFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Validate(name, data)
}
