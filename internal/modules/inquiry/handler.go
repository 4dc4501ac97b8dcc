package inquiry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAuth, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/v1/inquiries", func(r chi.Router) {
		r.With(requireAuth).Post("/", h.create)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/", h.list)
			r.Patch("/{id}/resolve", h.resolve)
			r.Delete("/{id}", h.delete)
		})
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in, err := h.service.Create(r.Context(), sess, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMessageNeeded) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusCreated, in)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if inquiries == nil {
		inquiries = []Inquiry{}
	}
	respond(w, http.StatusOK, inquiries)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Resolve(r.Context(), chi.URLParam(r, "id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": string(StatusResolved)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
