package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// Validation patterns and bounds
var (
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	NicknameMinLength = 2
	NicknameMaxLength = 50

	TitleMinLength = 1
	// Matches the VARCHAR(100) column so an oversized title is rejected as
	// caller input instead of failing at the store.
	TitleMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Rule is one validation rule: a field name, a predicate over the value under
// validation, and the message reported when the predicate is false.
type Rule struct {
	Field     string
	Predicate func() bool
	Message   string
}

// Evaluate runs rules in order and returns an invalid-input error for the
// first rule whose predicate fails.
func Evaluate(rules []Rule) error {
	for _, r := range rules {
		if !r.Predicate() {
			return apperrors.NewInvalidInputError(fmt.Sprintf("%s: %s", r.Field, r.Message))
		}
	}
	return nil
}

// NonEmpty builds a rule requiring a non-blank string value.
func NonEmpty(field, value string) Rule {
	return Rule{
		Field:     field,
		Predicate: func() bool { return strings.TrimSpace(value) != "" },
		Message:   "must not be empty",
	}
}

// LengthBetween builds a rule bounding the length of a trimmed string value.
func LengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Field: field,
		Predicate: func() bool {
			n := len(strings.TrimSpace(value))
			return n >= min && n <= max
		},
		Message: fmt.Sprintf("length must be between %d and %d", min, max),
	}
}

// Matches builds a rule requiring the value to match a compiled pattern.
func Matches(field, value string, pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Field:     field,
		Predicate: func() bool { return pattern.MatchString(value) },
		Message:   message,
	}
}

// PositiveID builds a rule requiring a positive identifier.
func PositiveID(field string, id int64) Rule {
	return Rule{
		Field:     field,
		Predicate: func() bool { return id > 0 },
		Message:   "must be a positive id",
	}
}

// NonNegative builds a rule requiring a non-negative integer value.
func NonNegative(field string, value int64) Rule {
	return Rule{
		Field:     field,
		Predicate: func() bool { return value >= 0 },
		Message:   "must not be negative",
	}
}
