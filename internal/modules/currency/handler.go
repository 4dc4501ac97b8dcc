package currency

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the supported hubs and display-formatting.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/currency", func(r chi.Router) {
		r.Get("/countries", h.listCountries)
		r.Get("/format", h.format)
	})
}

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Country string `json:"country"`
		Config
	}
	out := make([]entry, 0, len(Countries()))
	for _, c := range Countries() {
		out = append(out, entry{Country: c, Config: Resolve(c)})
	}
	respond(w, http.StatusOK, out)
}

func (h *Handler) format(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		http.Error(w, "amount must be a number", http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"display": Format(country, amount),
		"code":    Resolve(country).Code,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
