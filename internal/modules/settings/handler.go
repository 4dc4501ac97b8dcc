package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the brand configuration. Reads of storefront copy and the
// ritual video are public; the admin profile and all writes require the
// console credential.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/v1/settings", func(r chi.Router) {
		r.Get("/brand", h.getBrand)
		r.Get("/ritual-video", h.getRitualVideo)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Put("/brand", h.saveBrand)
			r.Put("/ritual-video", h.saveRitualVideo)
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.saveProfile)
		})
	})
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.BrandSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) saveBrand(w http.ResponseWriter, r *http.Request) {
	var b BrandSettings
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SaveBrandSettings(r.Context(), b); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) getRitualVideo(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.RitualVideo(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, v)
}

func (h *Handler) saveRitualVideo(w http.ResponseWriter, r *http.Request) {
	var v RitualVideo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SaveRitualVideo(r.Context(), v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, v)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.AdminProfile(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var p AdminProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SaveAdminProfile(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
