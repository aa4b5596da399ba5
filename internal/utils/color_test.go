package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"six digit", "#BBDEFB", true},
		{"lowercase", "#bbdefb", true},
		{"three digit", "#FFF", true},
		{"eight digit ARGB", "#FF112233", true},
		{"missing hash", "BBDEFB", false},
		{"named color", "blue", false},
		{"bad length", "#BBDE", false},
		{"non hex digit", "#BBDEFG", false},
		{"empty", "", false},
		{"hash only", "#", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexColor(tt.input))
		})
	}
}

func TestNormalizeHexColor(t *testing.T) {
	assert.Equal(t, "#FFE0B2", NormalizeHexColor("#FFE0B2", "#BBDEFB"))
	assert.Equal(t, "#BBDEFB", NormalizeHexColor("junk", "#BBDEFB"))
	assert.Equal(t, "#BBDEFB", NormalizeHexColor("", "#BBDEFB"))
}
