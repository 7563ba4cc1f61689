package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{"plain name kept whole", "Port Arthur Refinery", "Port Arthur Refinery"},
		{"digit suffix truncates to first word", "Miami Office 12B Annex", "Miami"},
		{"trailing unit number", "Tower 2", "Tower"},
		{"numeric first word kept", "12 Oaks Mall", "12 Oaks Mall"},
		{"single word", "Galveston", "Galveston"},
		{"extra whitespace", "  Key   West  ", "Key West"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanLabel(tt.label))
		})
	}
}

func TestCleanLabelIdempotent(t *testing.T) {
	for _, label := range []string{"Miami Office 12B Annex", "Port Arthur Refinery", "Tower 2", "12 Oaks Mall"} {
		once := CleanLabel(label)
		assert.Equal(t, once, CleanLabel(once), "label %q", label)
	}
}
