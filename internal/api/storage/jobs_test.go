package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortColumn(t *testing.T) {
	tests := []struct {
		field    string
		wantCol  string
		sortable bool
	}{
		{"salary", "salary", true},
		{"jobRole", "job_role", true},
		{"companyName", "company_name", true},
		{"createdAt", "created_at", true},
		{"password_hash", "", false},
		{"salary; DROP TABLE jobs", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			col, ok := SortColumn(tt.field)
			assert.Equal(t, tt.sortable, ok)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}
