// README: Destination lookup via the Google Maps Geocoding API.
package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

var ErrEmptyQuery = errors.New("empty destination query")

// maxDestinations caps how many candidates are returned to the form.
const maxDestinations = 3

// Destination represents a simplified geocoding result.
type Destination struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	PlaceID string  `json:"place_id"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// GeocodeService resolves free-text city names to places.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
// Extra client options (e.g. maps.WithBaseURL) are passed through.
func NewGeocodeService(apiKey string, opts ...maps.ClientOption) (*GeocodeService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Lookup returns up to three candidate destinations for query.
func (s *GeocodeService) Lookup(ctx context.Context, query string) ([]Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}

	out := make([]Destination, 0, maxDestinations)
	for _, r := range results {
		name := r.FormattedAddress
		if len(r.AddressComponents) > 0 {
			name = r.AddressComponents[0].LongName
		}
		out = append(out, Destination{
			Name:    name,
			Address: r.FormattedAddress,
			PlaceID: r.PlaceID,
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
		})
		if len(out) == maxDestinations {
			break
		}
	}
	return out, nil
}
