package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidatePositive checks that a count or threshold is greater than zero
func ValidatePositive(fieldName string, value float64) error {
	if value <= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be positive, got: %v", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateFraction checks that value lies in [0, 1)
func ValidateFraction(fieldName string, value float64) error {
	if value < 0 || value >= 1 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be in [0, 1), got: %v", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateNonEmpty checks that a list field has at least one entry
func ValidateNonEmpty(fieldName string, values []string) error {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("at least one %s is required", formatFieldName(fieldName)),
	}
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "contentRoot" -> "content root")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"contentRoot":        "content root",
		"reportPath":         "report path",
		"extensions":         "page extension",
		"url":                "url",
		"maxKeywords":        "max keywords",
		"maxPerTarget":       "max suggestions per target",
		"anchorMaxLength":    "anchor length",
		"minSimilarity":      "minimum similarity",
		"starvedBelow":       "link-starved threshold",
		"highMaxPosition":    "high-authority position",
		"highMinImpressions": "high-authority impressions",
		"lowMinPosition":     "low-authority position",
		"lowMaxImpressions":  "low-authority impressions",
		"reportLimit":        "report limit",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
