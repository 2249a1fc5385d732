package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFullAddress(t *testing.T) {
	tests := []struct {
		name     string
		building string
		street   string
		unit     string
		postal   string
		want     string
	}{
		{
			name:     "all fields",
			building: "ABC Building",
			street:   "Orchard Rd",
			unit:     "#01-01",
			postal:   "238896",
			want:     "Orchard Rd, #01-01, ABC Building, Singapore 238896",
		},
		{
			name:   "postal only",
			postal: "238896",
			want:   "238896",
		},
		{
			name:     "missing unit",
			building: "ABC Building",
			street:   "Orchard Rd",
			postal:   "238896",
			want:     "Orchard Rd, ABC Building, Singapore 238896",
		},
		{
			name:   "missing building drops country token",
			street: "Orchard Rd",
			unit:   "#01-01",
			postal: "238896",
			want:   "Orchard Rd, #01-01, 238896",
		},
		{
			name:     "building only",
			building: "ABC Building",
			postal:   "238896",
			want:     "ABC Building, Singapore 238896",
		},
		{
			name: "everything empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFullAddress(tt.building, tt.street, tt.unit, tt.postal)
			assert.Equal(t, tt.want, got)
		})
	}
}
