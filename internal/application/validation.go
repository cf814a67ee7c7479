package application

import (
	"fmt"
	"strings"

	"devfolio/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "documentID" -> "document ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"documentID": "document ID",
		"query":      "query",
		"contentDir": "content directory",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDocumentID checks that an identifier has no empty, "." or ".."
// path segments. A single leading separator is allowed.
func ValidateDocumentID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	for _, part := range strings.Split(domain.NormalizeID(id), "/") {
		if part == "" || part == "." || part == ".." {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("malformed %s: %s", formatFieldName(fieldName), id),
			}
		}
	}
	return nil
}
