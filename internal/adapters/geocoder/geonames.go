package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"timebot/internal/core/domain"

	"github.com/rs/zerolog/log"
)

const (
	DefaultEndpoint = "http://api.geonames.org/timezoneJSON"
	DefaultUsername = "TheTimeBotTelegram"
)

// GeoNames provides a wrapper for the GeoNames timezone API.
type GeoNames struct {
	endpoint string
	username string
	client   *http.Client
}

// NewGeoNames creates a GeoNames client. A zero timeout leaves requests
// unbounded.
func NewGeoNames(endpoint, username string, timeout time.Duration) *GeoNames {
	return &GeoNames{
		endpoint: endpoint,
		username: username,
		client:   &http.Client{Timeout: timeout},
	}
}

type timezoneResponse struct {
	TimezoneID string `json:"timezoneId"`
	Status     *struct {
		Message string `json:"message"`
		Value   int    `json:"value"`
	} `json:"status"`
}

func (g *GeoNames) ResolveTimezone(ctx context.Context, location domain.Location) (string, error) {
	body, err := g.getTimezone(ctx, location)
	if err != nil {
		return "", fmt.Errorf("GeoNames request failed: %w", err)
	}

	log.Debug().Bytes("body", body).Msg("GeoNames timezoneResponse")

	var result timezoneResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error unmarshalling GeoNames timezoneResponse: %w", err)
	}

	if result.Status != nil && result.Status.Message != "" {
		return "", fmt.Errorf("GeoNames returned status %d: %s", result.Status.Value, result.Status.Message)
	}

	if result.TimezoneID == "" {
		return "", errors.New("no timezoneId returned from GeoNames response")
	}

	return result.TimezoneID, nil
}

func (g *GeoNames) getTimezone(ctx context.Context, location domain.Location) ([]byte, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	query.Set("username", g.username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		log.Error().Err(err).Msg("error creating GET request for GeoNames")
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing GeoNames request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code from GeoNames: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GeoNames response: %w", err)
	}

	return body, nil
}
