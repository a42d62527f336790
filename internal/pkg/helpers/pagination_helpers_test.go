package helpers

import (
	"testing"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"fifth page custom size", 5, 25, 100, 25},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -3, 10, 0, 10},
		{"zero size falls back to default", 3, 0, 20, DefaultPageSize},
		{"oversized size falls back to default", 1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("got offset=%d limit=%d, want offset=%d limit=%d",
					offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name        string
		totalItems  int64
		page, size  int
		wantPages   int
		wantCurrent int
	}{
		{"exact fit", 20, 1, 10, 2, 1},
		{"partial last page", 21, 1, 10, 3, 1},
		{"empty result keeps one page", 0, 1, 10, 1, 1},
		{"page beyond range clamps", 99, 50, 10, 10, 10},
		{"single item", 1, 1, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.CurrentPage != tt.wantCurrent {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.wantCurrent)
			}
			if info.TotalItems != tt.totalItems {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.totalItems)
			}
		})
	}
}
