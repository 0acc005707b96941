package api_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-api/internal/domain/gateway/api"
	"travel-api/pkg/http"
)

func TestGeocodingGateway_Resolve(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"name": "Paris", "latitude": 48.8566, "longitude": 2.3522, "country_code": "FR"},
			},
		})
	}))
	defer srv.Close()

	gateway := api.NewGeocodingGateway(srv.URL, http.ClientOptions{})

	lat, lon, found := gateway.Resolve("Paris")
	assert.True(t, found)
	assert.Equal(t, 48.8566, lat)
	assert.Equal(t, 2.3522, lon)
}

func TestGeocodingGateway_Resolve_NoResults(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"generationtime_ms": 0.5})
	}))
	defer srv.Close()

	gateway := api.NewGeocodingGateway(srv.URL, http.ClientOptions{})

	_, _, found := gateway.Resolve("Nowhereville")
	assert.False(t, found)
}

func TestGeocodingGateway_Resolve_SwallowsServerError(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "boom", nethttp.StatusInternalServerError)
	}))
	defer srv.Close()

	gateway := api.NewGeocodingGateway(srv.URL, http.ClientOptions{})

	_, _, found := gateway.Resolve("Paris")
	assert.False(t, found)
}

func TestGeocodingGateway_Resolve_SwallowsTransportError(t *testing.T) {
	gateway := api.NewGeocodingGateway("http://127.0.0.1:1", http.ClientOptions{})

	_, _, found := gateway.Resolve("Paris")
	assert.False(t, found)
}
