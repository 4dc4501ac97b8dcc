package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
)

// Handler exposes order tracking, history, and the admin lifecycle.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAuth, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		// tracking is public: the id is the shared secret
		r.Get("/track/{id}", h.track)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", h.listMine)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/all", h.listAll)
			r.Patch("/{id}/status", h.updateStatus)
		})
	})
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Track(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "no ritual found for this id", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	orders, err := h.service.ListByCustomer(r.Context(), sess.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
