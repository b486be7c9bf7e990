package security

import (
	"fmt"
	"regexp"
	"strings"
)

// injectionPatterns covers the prompt-injection and code-smuggling attempts
// seen against chat endpoints.
var injectionPatterns = []*regexp.Regexp{
	// Prompt injection
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)override\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)new\s+context\s*:`),
	regexp.MustCompile(`(?i)change\s+context\s*:`),
	regexp.MustCompile(`(?i)instead\s+of\s+the\s+above`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+in\s+developer\s+mode`),
	regexp.MustCompile(`(?i)reveal\s+your\s+system\s+prompt`),

	// Code execution
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)exec\s*\(`),
	regexp.MustCompile(`(?i)system\s*\(`),
	regexp.MustCompile(`(?i)__import__\s*\(`),
	regexp.MustCompile(`(?i)os\.system`),
	regexp.MustCompile(`(?i)subprocess`),
}

// QueryValidator validates chat queries for length and injection attempts
type QueryValidator struct {
	maxLength int
}

func NewQueryValidator(maxLength int) *QueryValidator {
	return &QueryValidator{maxLength: maxLength}
}

// ValidationResult contains validation outcome
type ValidationResult struct {
	Valid   bool
	Message string
}

// Validate checks a query for emptiness, length and dangerous patterns
func (v *QueryValidator) Validate(query string) ValidationResult {
	if strings.TrimSpace(query) == "" {
		return ValidationResult{Valid: false, Message: "user_query is required"}
	}

	if len(query) > v.maxLength {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("query too long: %d chars (max %d)", len(query), v.maxLength),
		}
	}

	for _, pattern := range injectionPatterns {
		if pattern.MatchString(query) {
			return ValidationResult{
				Valid:   false,
				Message: "query contains a disallowed pattern",
			}
		}
	}

	return ValidationResult{Valid: true, Message: "ok"}
}
