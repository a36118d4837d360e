package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// NominatimClient implements Geocoder against a Nominatim-compatible HTTP
// endpoint.
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

// NewNominatimClient returns a geocoder bound to the given base URL,
// e.g. "https://nominatim.openstreetmap.org".
func NewNominatimClient(baseURL string, client *http.Client) *NominatimClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &NominatimClient{baseURL: baseURL, client: client}
}

type nominatimSearchItem struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type nominatimReverseResponse struct {
	Address struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
	} `json:"address"`
}

// Search forward-geocodes a free-text address. Candidates come back best
// match first; an empty slice means the service found nothing.
func (c *NominatimClient) Search(ctx context.Context, address string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "jsonv2")
	q.Set("limit", "5")

	body, err := c.get(ctx, "/search", q)
	if err != nil {
		return nil, err
	}

	var items []nominatimSearchItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	result := make([]Candidate, 0, len(items))
	for _, item := range items {
		lat, errLat := strconv.ParseFloat(item.Lat, 64)
		lon, errLon := strconv.ParseFloat(item.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		result = append(result, Candidate{
			DisplayName: item.DisplayName,
			Coordinate:  Coordinate{Lat: lat, Lon: lon},
		})
	}
	return result, nil
}

// Reverse resolves a coordinate into address components. The city slot is
// filled from the first of city/town/village the service returns.
func (c *NominatimClient) Reverse(ctx context.Context, coord Coordinate) (*Address, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	q.Set("format", "jsonv2")

	body, err := c.get(ctx, "/reverse", q)
	if err != nil {
		return nil, err
	}

	var resp nominatimReverseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode reverse response: %w", err)
	}

	city := resp.Address.City
	if city == "" {
		city = resp.Address.Town
	}
	if city == "" {
		city = resp.Address.Village
	}

	return &Address{
		City:        city,
		Street:      resp.Address.Road,
		HouseNumber: resp.Address.HouseNumber,
	}, nil
}

func (c *NominatimClient) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
