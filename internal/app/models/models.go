package models

import "strings"

// Category defines the lecture category enumeration
type Category string

const (
	CategoryWeb       Category = "WEB"
	CategoryApp       Category = "APP"
	CategoryGame      Category = "GAME"
	CategoryAlgorithm Category = "ALGORITHM"
	CategoryInfra     Category = "INFRA"
	CategoryDatabase  Category = "DATABASE"
)

// AllCategories lists every valid lecture category
var AllCategories = []Category{
	CategoryWeb,
	CategoryApp,
	CategoryGame,
	CategoryAlgorithm,
	CategoryInfra,
	CategoryDatabase,
}

// CategoryNames returns the valid category values as a comma-separated list
func CategoryNames() string {
	names := make([]string, len(AllCategories))
	for i, c := range AllCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// IsValid reports whether c is a member of the category enumeration
func (c Category) IsValid() bool {
	for _, candidate := range AllCategories {
		if c == candidate {
			return true
		}
	}
	return false
}

// WithdrawnMemberNickname is the placeholder shown for enrollments whose
// student has been soft-deleted.
const WithdrawnMemberNickname = "withdrawn member"
