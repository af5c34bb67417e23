package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"weddinginvite/internal/domain"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type httpGeocoder struct {
	client  *http.Client
	baseURL string
}

// NewHTTPGeocoder returns a Geocoder backed by a Nominatim-compatible search
// endpoint. baseURL may be empty to use the public Nominatim instance.
func NewHTTPGeocoder(client *http.Client, baseURL string) domain.Geocoder {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &httpGeocoder{client: client, baseURL: baseURL}
}

func (g *httpGeocoder) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	if address == "" {
		return nil, nil
	}
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "weddinginvite/1.0")
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coordinates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding api returned status: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude: %w", err)
	}
	return &domain.Coordinates{Lat: lat, Lng: lng}, nil
}
