package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

func TestEvaluate_FirstFailureWins(t *testing.T) {
	rules := []Rule{
		NonEmpty("nickname", "gopher"),
		PositiveID("studentId", 0),
		NonEmpty("email", ""),
	}

	err := Evaluate(rules)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("want invalid-input error, got %v", err)
	}
	if !strings.Contains(err.Error(), "studentId") {
		t.Errorf("error should name the first failing field, got %q", err.Error())
	}
}

func TestEvaluate_AllPass(t *testing.T) {
	rules := []Rule{
		NonEmpty("nickname", "gopher"),
		LengthBetween("nickname", "gopher", NicknameMinLength, NicknameMaxLength),
		PositiveID("id", 1),
		NonNegative("price", 0),
	}
	if err := Evaluate(rules); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		ok   bool
	}{
		{"non-empty passes", NonEmpty("f", "x"), true},
		{"whitespace only fails", NonEmpty("f", "   "), false},
		{"length in range", LengthBetween("f", "ab", 2, 4), true},
		{"length below min", LengthBetween("f", "a", 2, 4), false},
		{"length above max", LengthBetween("f", "abcde", 2, 4), false},
		{"trimmed before measuring", LengthBetween("f", "  a  ", 2, 4), false},
		{"email matches", Matches("f", "a@b.co", CompiledPatterns.Email, "bad email"), true},
		{"email rejects", Matches("f", "not-an-email", CompiledPatterns.Email, "bad email"), false},
		{"positive id", PositiveID("f", 1), true},
		{"zero id", PositiveID("f", 0), false},
		{"negative value", NonNegative("f", -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Predicate(); got != tt.ok {
				t.Errorf("predicate = %v, want %v", got, tt.ok)
			}
		})
	}
}
