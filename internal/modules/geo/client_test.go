package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stubNominatim(t *testing.T, address string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":` + address + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestReverseGeocodePrefill(t *testing.T) {
	srv := stubNominatim(t, `{
		"house_number": "14",
		"road": "Rue des Fleurs",
		"city": "Lyon",
		"state": "Auvergne-Rhône-Alpes",
		"postcode": "69001",
		"country": "France"
	}`)
	client := NewClient(srv.URL, zap.NewNop())

	p, err := client.ReverseGeocode(context.Background(), 45.76, 4.83)
	require.NoError(t, err)
	require.Equal(t, "14, Rue des Fleurs", p.Street)
	require.Equal(t, "Lyon", p.City)
	require.Equal(t, "69001", p.PostalCode)
	require.Equal(t, "France", p.Country)
}

func TestReverseGeocodeFallbacks(t *testing.T) {
	srv := stubNominatim(t, `{"village": "Piedmont Hollow", "country": "Narnia"}`)
	client := NewClient(srv.URL, zap.NewNop())

	p, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, "Sanctuary Road", p.Street, "no road data falls back to the sanctuary street")
	require.Equal(t, "Piedmont Hollow", p.City)
	require.Equal(t, "United States", p.Country, "unsupported country routes to the default hub")
}

func TestDetectCountry(t *testing.T) {
	srv := stubNominatim(t, `{"country": "Japan"}`)
	client := NewClient(srv.URL, zap.NewNop())

	country, detected, err := client.DetectCountry(context.Background(), 35.68, 139.69)
	require.NoError(t, err)
	require.Equal(t, "Japan", country)
	require.Equal(t, "Japan", detected)
}

func TestDetectCountryUnsupportedHub(t *testing.T) {
	srv := stubNominatim(t, `{"country": "Iceland"}`)
	client := NewClient(srv.URL, zap.NewNop())

	country, detected, err := client.DetectCountry(context.Background(), 64.14, -21.94)
	require.NoError(t, err)
	require.Equal(t, "United States", country)
	require.Equal(t, "Iceland", detected)
}

func TestLookupFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, zap.NewNop())

	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.Error(t, err)
}
