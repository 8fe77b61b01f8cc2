package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func result(components ...maps.AddressComponent) maps.GeocodingResult {
	return maps.GeocodingResult{AddressComponents: components}
}

func component(name string, types ...string) maps.AddressComponent {
	return maps.AddressComponent{LongName: name, Types: types}
}

func TestExtractCityBarangay(t *testing.T) {
	results := []maps.GeocodingResult{
		result(
			component("Ermita", "sublocality_level_1", "sublocality", "political"),
			component("Manila", "locality", "political"),
			component("Metro Manila", "administrative_area_level_1", "political"),
		),
	}

	city, barangay := ExtractCityBarangay(results)
	assert.Equal(t, "Manila", city)
	assert.Equal(t, "Ermita", barangay)
}

func TestExtractFallsBackAcrossResults(t *testing.T) {
	results := []maps.GeocodingResult{
		result(component("Diliman", "neighborhood", "political")),
		result(component("Quezon City", "administrative_area_level_2", "political")),
	}

	city, barangay := ExtractCityBarangay(results)
	assert.Equal(t, "Quezon City", city)
	assert.Equal(t, "Diliman", barangay)
}

func TestExtractPrefersMostSpecificResult(t *testing.T) {
	results := []maps.GeocodingResult{
		result(
			component("Malate", "sublocality_level_1"),
			component("Manila", "locality"),
		),
		result(
			component("Ermita", "sublocality_level_1"),
			component("Pasay", "locality"),
		),
	}

	city, barangay := ExtractCityBarangay(results)
	assert.Equal(t, "Manila", city)
	assert.Equal(t, "Malate", barangay)
}

func TestExtractEmptyResults(t *testing.T) {
	city, barangay := ExtractCityBarangay(nil)
	assert.Empty(t, city)
	assert.Empty(t, barangay)
}
