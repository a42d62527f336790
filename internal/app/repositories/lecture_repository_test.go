package repositories

import (
	"strings"
	"testing"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
)

func TestBuildListQuery_Filters(t *testing.T) {
	repo := NewLectureRepository()

	tests := []struct {
		name         string
		filter       dto.ListLecturesFilter
		wantContains []string
		wantArgs     []any
	}{
		{
			name:   "no filters",
			filter: dto.ListLecturesFilter{},
			wantContains: []string{
				"l.deleted = $1",
				"l.published = $2",
				"ORDER BY l.created_at DESC, l.id DESC",
			},
			wantArgs: []any{false, true},
		},
		{
			name:   "category filter",
			filter: dto.ListLecturesFilter{Category: models.CategoryWeb},
			wantContains: []string{
				"l.category = $3",
			},
			wantArgs: []any{false, true, models.CategoryWeb},
		},
		{
			name:   "search filter matches title and introduction",
			filter: dto.ListLecturesFilter{Search: "docker"},
			wantContains: []string{
				"l.title ILIKE $3",
				"l.introduction ILIKE $4",
			},
			wantArgs: []any{false, true, "%docker%", "%docker%"},
		},
		{
			name:   "instructor filter",
			filter: dto.ListLecturesFilter{InstructorID: 7},
			wantContains: []string{
				"l.instructor_id = $3",
			},
			wantArgs: []any{false, true, int64(7)},
		},
		{
			name:   "enrolled student filter",
			filter: dto.ListLecturesFilter{StudentID: 42},
			wantContains: []string{
				"EXISTS (SELECT 1 FROM enrollments e WHERE e.lecture_id = l.id AND e.student_id = $3 AND NOT e.deleted)",
			},
			wantArgs: []any{false, true, int64(42)},
		},
		{
			name:   "popular ordering",
			filter: dto.ListLecturesFilter{Order: dto.LectureOrderPopular},
			wantContains: []string{
				"ORDER BY c.student_count DESC, l.id DESC",
			},
			wantArgs: []any{false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseSelect, _ := repo.buildListQuery(tt.filter)

			sql, args, err := baseSelect.ToSql()
			if err != nil {
				t.Fatalf("ToSql failed: %v", err)
			}

			for _, fragment := range tt.wantContains {
				if !strings.Contains(sql, fragment) {
					t.Errorf("SQL missing fragment %q\ngot: %s", fragment, sql)
				}
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("Args count mismatch\nwant: %d\ngot:  %d (%v)", len(tt.wantArgs), len(args), args)
			}
			for i := range tt.wantArgs {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("Arg %d mismatch\nwant: %v\ngot:  %v", i, tt.wantArgs[i], args[i])
				}
			}
		})
	}
}

func TestBuildListQuery_CountSharesCondition(t *testing.T) {
	repo := NewLectureRepository()
	filter := dto.ListLecturesFilter{Category: models.CategoryDatabase, Search: "sql"}

	baseSelect, countSelect := repo.buildListQuery(filter)

	_, baseArgs, err := baseSelect.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	countSQL, countArgs, err := countSelect.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	if !strings.HasPrefix(countSQL, "SELECT COUNT(*)") {
		t.Errorf("count query must select COUNT(*), got: %s", countSQL)
	}
	if strings.Contains(countSQL, "ORDER BY") {
		t.Errorf("count query must not carry an ordering, got: %s", countSQL)
	}
	if len(baseArgs) != len(countArgs) {
		t.Fatalf("base and count queries diverged: %d vs %d args", len(baseArgs), len(countArgs))
	}
	for i := range baseArgs {
		if baseArgs[i] != countArgs[i] {
			t.Errorf("Arg %d diverged between base and count: %v vs %v", i, baseArgs[i], countArgs[i])
		}
	}
}
