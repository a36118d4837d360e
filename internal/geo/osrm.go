package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/placekeeper/internal/common"
)

// OSRMClient implements Router against an OSRM-compatible HTTP endpoint
// using the pedestrian ("foot") profile.
type OSRMClient struct {
	baseURL string
	client  *http.Client
}

// NewOSRMClient returns a router bound to the given base URL,
// e.g. "https://router.project-osrm.org".
func NewOSRMClient(baseURL string, client *http.Client) *OSRMClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &OSRMClient{baseURL: baseURL, client: client}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// WalkingRoute asks OSRM for a pedestrian route and returns the first one.
// An unroutable pair maps to common.ErrorNoRoute.
func (c *OSRMClient) WalkingRoute(ctx context.Context, from, to Coordinate) (*Route, error) {
	// OSRM takes lon,lat pairs.
	url := fmt.Sprintf("%s/route/v1/foot/%f,%f;%f,%f?overview=full",
		c.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, fmt.Errorf("router returned status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, common.ErrorNoRoute
	}

	r := parsed.Routes[0]
	return &Route{Polyline: r.Geometry, Distance: r.Distance, Duration: r.Duration}, nil
}

// IsNoRoute reports whether err means "no route exists" as opposed to a
// transport failure.
func IsNoRoute(err error) bool {
	return errors.Is(err, common.ErrorNoRoute)
}
