package utils

import "testing"

func TestValidateAndNormalizePagination(t *testing.T) {
	tests := []struct {
		name                   string
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"oversized page size", 2, 500, 2, 100},
		{"valid passthrough", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := ValidateAndNormalizePagination(tt.page, tt.pageSize)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("got (%d, %d), want (%d, %d)", page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(45, 2, 20)

	if info.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", info.TotalPages)
	}
	if !info.HasNext || !info.HasPrevious {
		t.Errorf("HasNext = %v, HasPrevious = %v, want both true", info.HasNext, info.HasPrevious)
	}

	empty := CalculatePaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("TotalPages for empty set = %d, want 1", empty.TotalPages)
	}
}

func TestParsePaginationFromQuery(t *testing.T) {
	page, pageSize := ParsePaginationFromQuery("3", "25")
	if page != 3 || pageSize != 25 {
		t.Errorf("got (%d, %d), want (3, 25)", page, pageSize)
	}

	page, pageSize = ParsePaginationFromQuery("junk", "")
	if page != 1 || pageSize != 20 {
		t.Errorf("got (%d, %d), want defaults (1, 20)", page, pageSize)
	}
}
