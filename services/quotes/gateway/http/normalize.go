package http

import (
	"strings"

	"github.com/davetran/wayfare/internal/utils"
)

// Canonical product keys shared by every provider. Cross-provider price
// comparison only works because both clients normalize into this set.
const (
	ProductStandard = "standard"
	ProductXL       = "xl"
	ProductBike     = "bike"
	ProductScooter  = "scooter"
	ProductShared   = "shared"
	ProductLux      = "lux"
	ProductUnknown  = "unknown"
)

// productMatchers is evaluated top to bottom; the first matching entry
// wins. Specific vehicle classes are listed before the generic car
// classes so a name containing both ("XL Bike") resolves to the
// vehicle. Changing this order changes quote keys across providers.
var productMatchers = []struct {
	key        string
	substrings []string
}{
	{ProductBike, []string{"bike"}},
	{ProductScooter, []string{"scooter"}},
	{ProductShared, []string{"pool", "shared", "line"}},
	{ProductXL, []string{"xl"}},
	{ProductLux, []string{"lux", "black"}},
	{ProductStandard, []string{"uberx", "uber x", "comfort"}},
}

// exactStandardNames are provider names that mean the base product but
// carry no distinguishing substring
var exactStandardNames = map[string]bool{
	"lyft":     true,
	"standard": true,
}

// NormalizeProductName maps a provider's free-text product name to a
// canonical key. The function is total: unmatched names fall back to a
// slug of the original name.
func NormalizeProductName(displayName string) string {
	name := strings.ToLower(strings.TrimSpace(displayName))
	if name == "" {
		return ProductUnknown
	}

	for _, matcher := range productMatchers {
		for _, sub := range matcher.substrings {
			if strings.Contains(name, sub) {
				return matcher.key
			}
		}
	}

	if exactStandardNames[name] {
		return ProductStandard
	}

	if slug := utils.Slugify(displayName); slug != "" {
		return slug
	}
	return ProductUnknown
}
