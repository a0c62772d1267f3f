package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.FilePath != "" && e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
	}
	if e.FilePath != "" {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
	return e.Message
}

// validate is the shared validator instance; it is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateYAMLSyntax checks if the YAML file has valid syntax.
// Returns nil if valid, or a ValidationError with line/column information.
// A missing or empty file is not an error - defaults apply.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if os.IsPermission(err) {
			return &ValidationError{FilePath: filePath, Message: "permission denied"}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return yamlErrorWithPosition(filePath, err)
	}

	return nil
}

// yamlErrorWithPosition extracts line information from a yaml.v3 error.
// yaml.v3 embeds "line N:" in its messages; surface it as structured data
// when present.
func yamlErrorWithPosition(filePath string, err error) error {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, "yaml: ")

	var line int
	if _, scanErr := fmt.Sscanf(msg, "line %d:", &line); scanErr == nil && line > 0 {
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   1,
			Message:  msg,
		}
	}

	return &ValidationError{FilePath: filePath, Message: msg}
}

// Validate checks that a Grammar satisfies all schema constraints:
// a non-empty type set with no duplicate type keys, non-empty headings,
// a breaking marker, and a sane hash abbreviation length.
func Validate(g *Grammar) error {
	if err := validate.Struct(g); err != nil {
		return translateValidatorError(err)
	}

	return validateUniqueTypes(g)
}

// validateUniqueTypes rejects duplicate type keys. When matching is
// case-insensitive, "Feat" and "feat" collide.
func validateUniqueTypes(g *Grammar) error {
	seen := make(map[string]bool, len(g.Types))
	for i, ts := range g.Types {
		key := ts.Type
		if g.CaseInsensitive {
			key = strings.ToLower(key)
		}
		if seen[key] {
			return &ValidationError{
				Field:   fmt.Sprintf("types[%d].type", i),
				Message: fmt.Sprintf("duplicate type %q", ts.Type),
			}
		}
		seen[key] = true
	}
	return nil
}

// translateValidatorError converts a validator.v10 error into a
// ValidationError naming the first offending field.
func translateValidatorError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Grammar.")

	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Message: "required field is empty"}
	case "min", "max":
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("value out of range (%s=%s)", fe.Tag(), fe.Param()),
		}
	default:
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		}
	}
}
