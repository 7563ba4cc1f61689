package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindCategory(t *testing.T) {
	tests := []struct {
		name     string
		kt       float64
		expected string
		ordinal  int
	}{
		{"calm", 0, "Tropical Depression", -1},
		{"just below named", 33.9, "Tropical Depression", -1},
		{"storm threshold", 34, "Tropical Storm", 0},
		{"just below hurricane", 63.9, "Tropical Storm", 0},
		{"hurricane threshold", 64, "Category 1", 1},
		{"category two", 83, "Category 2", 2},
		{"category three", 100, "Category 3", 3},
		{"category four", 113, "Category 4", 4},
		{"category five threshold", 137, "Category 5", 5},
		{"extreme", 200, "Category 5", 5},
		{"negative", -1, "Unknown", -999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindCategory(tt.kt)
			assert.Equal(t, tt.expected, got.Name)
			assert.Equal(t, tt.ordinal, got.Ordinal)
		})
	}
}

func TestPressureCategory(t *testing.T) {
	tests := []struct {
		name    string
		mb      float64
		ordinal int
	}{
		{"weak system", 1005, 0},
		{"storm floor", 990, 0},
		{"category one", 985, 1},
		{"category one floor", 980, 1},
		{"category two", 970, 2},
		{"category three", 950, 3},
		{"category four", 930, 4},
		{"category five", 910, 5},
		{"unreported pressure reads as deepest", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ordinal, PressureCategory(tt.mb).Ordinal)
		})
	}
}

// Lower pressure must never classify weaker.
func TestPressureCategoryMonotonic(t *testing.T) {
	prev := PressureCategory(1020).Ordinal
	for mb := 1019.0; mb >= 900; mb-- {
		cur := PressureCategory(mb).Ordinal
		assert.GreaterOrEqual(t, cur, prev, "pressure %v", mb)
		prev = cur
	}
}

func TestMaxSeverity(t *testing.T) {
	assert.Equal(t, 3, MaxSeverity(WindCategory(70), PressureCategory(950)))
	assert.Equal(t, 1, MaxSeverity(WindCategory(70), PressureCategory(1005)))
	assert.Equal(t, 0, MaxSeverity(CategoryUnknown, PressureCategory(1005)))
	assert.Equal(t, -999, MaxSeverity(CategoryUnknown, CategoryUnknown))
}
