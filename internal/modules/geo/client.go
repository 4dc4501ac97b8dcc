package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/modules/currency"
)

// nominatimAddress is the subset of the reverse-geocode response we read.
type nominatimAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	Pedestrian  string `json:"pedestrian"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
}

type nominatimResponse struct {
	Address *nominatimAddress `json:"address"`
}

// Prefill is a best-effort address breakdown used to seed the shipping form.
type Prefill struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Client resolves coordinates against a Nominatim-compatible endpoint.
// One attempt per call; any failure is the caller's to degrade from.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// ReverseGeocode returns a form prefill for the coordinates. Missing pieces
// get storefront fallbacks rather than empty required fields; a country
// outside the supported hub list resolves to the default hub.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*Prefill, error) {
	addr, err := c.lookup(ctx, lat, lon, 0)
	if err != nil {
		return nil, err
	}

	street := ""
	if addr.HouseNumber != "" {
		street = addr.HouseNumber + ", "
	}
	road := firstNonEmpty(addr.Road, addr.Pedestrian, addr.Suburb, "Sanctuary Road")
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Suburb)

	country := addr.Country
	if !currency.Supported(country) {
		country = currency.DefaultCountry
	}
	return &Prefill{
		Street:     street + road,
		City:       city,
		State:      addr.State,
		PostalCode: addr.Postcode,
		Country:    country,
	}, nil
}

// DetectCountry reports the supported hub for the coordinates, plus the
// raw detected country so the caller can say which hub got routed around.
func (c *Client) DetectCountry(ctx context.Context, lat, lon float64) (country string, detected string, err error) {
	addr, err := c.lookup(ctx, lat, lon, 10)
	if err != nil {
		return "", "", err
	}
	if currency.Supported(addr.Country) {
		return addr.Country, addr.Country, nil
	}
	return currency.DefaultCountry, addr.Country, nil
}

func (c *Client) lookup(ctx context.Context, lat, lon float64, zoom int) (*nominatimAddress, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%g", lat))
	q.Set("lon", fmt.Sprintf("%g", lon))
	q.Set("addressdetails", "1")
	if zoom > 0 {
		q.Set("zoom", fmt.Sprintf("%d", zoom))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("reverse geocode rejected", zap.String("status", resp.Status))
		return nil, fmt.Errorf("reverse geocode returned %s", resp.Status)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Address == nil {
		return nil, fmt.Errorf("reverse geocode response had no address")
	}
	return body.Address, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
