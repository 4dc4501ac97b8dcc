package advisor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Handler struct{ client *Client }

func NewHandler(client *Client) *Handler { return &Handler{client: client} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/advisor", h.advise)
}

type adviceRequest struct {
	Concerns string `json:"concerns"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

func (h *Handler) advise(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Concerns) == "" {
		http.Error(w, "tell us about your skin first", http.StatusUnprocessableEntity)
		return
	}
	advice := h.client.SkinAdvice(r.Context(), req.Concerns)
	respond(w, http.StatusOK, adviceResponse{Advice: advice})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
