package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// City is a simplified geocoding result for the destination autocomplete.
type City struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CityService handles interactions with the Google Geocoding API.
type CityService struct {
	client *maps.Client
}

// NewCityService creates a new CityService with the given API Key.
func NewCityService(apiKey string) (*CityService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &CityService{client: client}, nil
}

// Search geocodes a free-text city query and returns up to limit matches.
// The country is taken from the address components so callers can build the
// "City, Country" strings the generator's international heuristic expects.
func (s *CityService) Search(ctx context.Context, query string, limit int) ([]City, error) {
	if limit <= 0 {
		limit = 5
	}
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}

	var cities []City
	for _, r := range results {
		city := City{
			Name: r.FormattedAddress,
			Lat:  r.Geometry.Location.Lat,
			Lon:  r.Geometry.Location.Lng,
		}
		for _, comp := range r.AddressComponents {
			for _, t := range comp.Types {
				if t == "country" {
					city.Country = comp.LongName
				}
				if t == "locality" {
					city.Name = comp.LongName
				}
			}
		}
		cities = append(cities, city)
		if len(cities) >= limit {
			break
		}
	}
	return cities, nil
}
