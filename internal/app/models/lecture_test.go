package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

func TestNewLecture(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		instructorID int64
		category     Category
		price        int64
		wantErr      bool
	}{
		{"valid", "Go Basics", 1, CategoryWeb, 35000, false},
		{"free lecture", "Intro", 1, CategoryAlgorithm, 0, false},
		{"empty title", "", 1, CategoryWeb, 35000, true},
		{"title at column bound", strings.Repeat("a", 100), 1, CategoryWeb, 35000, false},
		{"title beyond column bound", strings.Repeat("a", 101), 1, CategoryWeb, 35000, true},
		{"missing instructor", "Go Basics", 0, CategoryWeb, 35000, true},
		{"unknown category", "Go Basics", 1, "COOKING", 35000, true},
		{"negative price", "Go Basics", 1, CategoryWeb, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lecture, err := NewLecture(tt.title, "intro", tt.instructorID, tt.category, tt.price)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidInput) {
					t.Fatalf("want invalid-input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lecture.Published {
				t.Error("new lectures must start unpublished")
			}
		})
	}
}

func TestLecturePublish(t *testing.T) {
	lecture, err := NewLecture("Go Basics", "intro", 1, CategoryWeb, 35000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := lecture.Publish(); err != nil {
		t.Fatalf("first publish failed: %v", err)
	}
	if !lecture.Published {
		t.Fatal("lecture not marked published")
	}

	err = lecture.Publish()
	if !errors.Is(err, apperrors.ErrLectureAlreadyPublished) {
		t.Fatalf("want ErrLectureAlreadyPublished, got %v", err)
	}
	if !lecture.Published {
		t.Error("failed republish must leave the flag set")
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories {
		if !c.IsValid() {
			t.Errorf("category %s should be valid", c)
		}
	}
	if Category("").IsValid() {
		t.Error("empty category should be invalid")
	}
	if Category("web").IsValid() {
		t.Error("category comparison must be case sensitive")
	}
}
