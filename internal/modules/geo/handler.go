package geo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct{ client *Client }

func NewHandler(client *Client) *Handler { return &Handler{client: client} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/geo", func(r chi.Router) {
		r.Get("/reverse", h.reverse)
		r.Get("/country", h.country)
	})
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coords(w, r)
	if !ok {
		return
	}
	prefill, err := h.client.ReverseGeocode(r.Context(), lat, lon)
	if err != nil {
		http.Error(w, "location lookup failed", http.StatusBadGateway)
		return
	}
	respond(w, http.StatusOK, prefill)
}

func (h *Handler) country(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coords(w, r)
	if !ok {
		return
	}
	country, detected, err := h.client.DetectCountry(r.Context(), lat, lon)
	if err != nil {
		http.Error(w, "location lookup failed", http.StatusBadGateway)
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"country":  country,
		"detected": detected,
	})
}

func coords(w http.ResponseWriter, r *http.Request) (lat, lon float64, ok bool) {
	var err error
	lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		http.Error(w, "lat must be a number", http.StatusBadRequest)
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		http.Error(w, "lon must be a number", http.StatusBadRequest)
		return 0, 0, false
	}
	return lat, lon, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
