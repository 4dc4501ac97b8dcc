package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
	"github.com/lumiere-essence/maison-backend/internal/modules/catalog"
)

// Handler exposes the session cart. All routes require authentication.
type Handler struct {
	manager *Manager
	catalog catalog.Service
}

func NewHandler(manager *Manager, catalogSvc catalog.Service) *Handler {
	return &Handler{manager: manager, catalog: catalogSvc}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.getCart)
		r.Post("/items", h.addItem)
		r.Patch("/items/{id}", h.updateQuantity)
		r.Delete("/items/{id}", h.removeItem)
		r.Delete("/", h.clear)
	})
}

type cartView struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

func (h *Handler) view(email string) cartView {
	var v cartView
	h.manager.With(email, func(c *Cart) {
		v = cartView{Items: c.Items(), Total: c.Total(), Count: c.Count()}
	})
	if v.Items == nil {
		v.Items = []Item{}
	}
	return v
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	respond(w, http.StatusOK, h.view(sess.Email))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.manager.With(sess.Email, func(c *Cart) { c.Add(*p) })
	respond(w, http.StatusOK, h.view(sess.Email))
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	h.manager.With(sess.Email, func(c *Cart) { c.SetQuantity(id, req.Delta) })
	respond(w, http.StatusOK, h.view(sess.Email))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	id := chi.URLParam(r, "id")
	h.manager.With(sess.Email, func(c *Cart) { c.Remove(id) })
	respond(w, http.StatusOK, h.view(sess.Email))
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	h.manager.Drop(sess.Email)
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
