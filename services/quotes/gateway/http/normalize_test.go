package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProductName_CanonicalKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"uberx maps to standard", "UberX", ProductStandard},
		{"uber x with space maps to standard", "Uber X", ProductStandard},
		{"comfort maps to standard", "Comfort", ProductStandard},
		{"exact lyft maps to standard", "Lyft", ProductStandard},
		{"exact standard maps to standard", "Standard", ProductStandard},
		{"uberxl maps to xl", "UberXL", ProductXL},
		{"lyft xl maps to xl", "Lyft XL", ProductXL},
		{"pool maps to shared", "UberPool", ProductShared},
		{"lyft line maps to shared", "Lyft Line", ProductShared},
		{"shared saver maps to shared", "Shared Saver", ProductShared},
		{"black maps to lux", "Uber Black", ProductLux},
		{"lux maps to lux", "Lyft Lux", ProductLux},
		{"bike maps to bike", "JUMP Bike", ProductBike},
		{"scooter maps to scooter", "Lime Scooter", ProductScooter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeProductName(tt.input))
		})
	}
}

func TestNormalizeProductName_PrecedenceIsStable(t *testing.T) {
	// A name matching several matchers resolves per fixed precedence,
	// not input order: the vehicle class wins over the car class.
	assert.Equal(t, ProductBike, NormalizeProductName("XL Bike"))
	assert.Equal(t, ProductBike, NormalizeProductName("Bike XL"))
	assert.Equal(t, ProductScooter, NormalizeProductName("Lux Scooter"))
	assert.Equal(t, ProductShared, NormalizeProductName("XL Pool"))
}

func TestNormalizeProductName_IsTotal(t *testing.T) {
	// Unmatched names slug down instead of erroring
	assert.Equal(t, "wayve_max_2", NormalizeProductName("Wayve Max-2"))
	assert.Equal(t, "premier", NormalizeProductName("Premier"))

	// Degenerate inputs still map to exactly one key
	assert.Equal(t, ProductUnknown, NormalizeProductName(""))
	assert.Equal(t, ProductUnknown, NormalizeProductName("   "))
	assert.Equal(t, ProductUnknown, NormalizeProductName("!!!"))
}

func TestNormalizeProductName_CaseInsensitive(t *testing.T) {
	assert.Equal(t, NormalizeProductName("UBERX"), NormalizeProductName("uberx"))
	assert.Equal(t, NormalizeProductName("Lyft LUX"), NormalizeProductName("lyft lux"))
}
