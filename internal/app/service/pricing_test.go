package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupPrice(t *testing.T) {
	tests := []struct {
		level     string
		classSize string
		want      string
	}{
		{"Primary 4", "Small Group", "40"},
		{"Primary 1", "Small Group", "36.67"},
		{"Primary 1", "Big Group", "20"},
		{"Secondary 3", "1 to 1", "55"},
		{"Junior College 1", "1 to 1", "100"},
		{"Junior College 2", "Big Group", "40"},
		{"Primary 4", "Mega Group", ""},
		{"Kindergarten", "Small Group", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupPrice(tt.level, tt.classSize), "%s/%s", tt.level, tt.classSize)
	}
}

func TestPricingTable_EveryLevelHasAllClassSizes(t *testing.T) {
	for level, sizes := range pricingTable {
		for _, classSize := range []string{"Big Group", "Small Group", "1 to 1"} {
			assert.NotEmpty(t, sizes[classSize], "%s/%s", level, classSize)
		}
	}
}
