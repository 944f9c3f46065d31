package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPosterEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"hr@companyname.com", true},
		{"hr@hiring.companyname.com", true},
		{"hr@gmail.com", false},
		{"hr@companyname.org", false},
		{"no-at-sign", false},
		{"trailing@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPosterEmail(tt.email))
		})
	}
}

func TestSplitSkillset(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain list",
			raw:  "go,sql,docker",
			want: []string{"go", "sql", "docker"},
		},
		{
			name: "whitespace trimmed",
			raw:  " go , sql ,docker ",
			want: []string{"go", "sql", "docker"},
		},
		{
			name: "empty entries dropped",
			raw:  "go,,sql,",
			want: []string{"go", "sql"},
		},
		{
			name: "single skill",
			raw:  "go",
			want: []string{"go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSkillset(tt.raw))
		})
	}
}
