package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
)

// Handler exposes the checkout flow. Every route requires an authenticated
// session; unauthenticated callers never reach any step.
type Handler struct{ service *Service }

func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.begin)
		r.Get("/", h.status)
		r.Put("/shipping", h.submitShipping)
		r.Post("/payment", h.submitPayment)
		r.Delete("/", h.abandon)
	})
}

func (h *Handler) begin(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	if err := h.service.Begin(sess); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respond(w, http.StatusCreated, FlowStatus{State: StateShipping})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	st, err := h.service.Status(sess)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, st)
}

func (h *Handler) submitShipping(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	var req ShippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SubmitShipping(sess, req); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ErrNoFlow) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusOK, FlowStatus{State: StatePayment})
}

func (h *Handler) submitPayment(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SubmitPayment(sess, req); err != nil {
		status := http.StatusUnprocessableEntity
		switch {
		case errors.Is(err, ErrNoFlow):
			status = http.StatusNotFound
		case errors.Is(err, ErrWrongState):
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusAccepted, FlowStatus{State: StateProcessing})
}

func (h *Handler) abandon(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	h.service.Abandon(sess)
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
