// Package geocode resolves incident coordinates to a city and barangay via
// the Google Maps Geocoding API. Geocoding is best effort: callers treat a
// failure as "location unknown", never as a request failure.
package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Geocoder resolves coordinates to (city, barangay). Either value may be
// empty when the provider has no matching component.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (city, barangay string, err error)
}

// GoogleGeocoder implements Geocoder on the official Maps client.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogle builds a geocoder authenticated with apiKey.
func NewGoogle(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, string, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return "", "", fmt.Errorf("reverse geocode: %w", err)
	}
	city, barangay := ExtractCityBarangay(results)
	return city, barangay, nil
}

// ExtractCityBarangay walks geocoding results from most to least specific and
// picks the first city-level and barangay-level components. Philippine
// addressing: "locality" is the city, "sublocality_level_1" the barangay.
func ExtractCityBarangay(results []maps.GeocodingResult) (string, string) {
	var city, barangay string
	for _, result := range results {
		for _, component := range result.AddressComponents {
			for _, t := range component.Types {
				switch t {
				case "locality", "administrative_area_level_2":
					if city == "" {
						city = component.LongName
					}
				case "sublocality_level_1", "neighborhood":
					if barangay == "" {
						barangay = component.LongName
					}
				}
			}
		}
		if city != "" && barangay != "" {
			break
		}
	}
	return city, barangay
}
