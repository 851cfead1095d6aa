package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("student@academia.edu"))
	assert.True(t, ValidEmail("  Jane.Doe@academia.edu "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail(""))
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CSE", true},
		{"BTECH-CSE", true},
		{"CS201", true},
		{"cse", false},
		{"", false},
		{" ", false},
		{"-CSE", false},
		{"CSE-", false},
		{"CS E", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidCode(tt.code), "code %q", tt.code)
	}
}
