package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes authentication HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/signup", h.beginSignup)
		r.Get("/signup/notification", h.notification)
		r.Post("/signup/verify", h.verifySignup)
		r.Post("/signup/restart", h.restartSignup)
	})
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Session *Session `json:"session"`
	Token   string   `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, sessionResponse{Session: sess, Token: token})
}

func (h *Handler) beginSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.BeginSignup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	respond(w, http.StatusAccepted, map[string]string{"status": "verification code dispatched"})
}

func (h *Handler) notification(w http.ResponseWriter, r *http.Request) {
	code, err := h.service.Notification(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		if errors.Is(err, ErrCodeNotDelivered) {
			http.Error(w, err.Error(), http.StatusTooEarly)
			return
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, map[string]string{"code": code})
}

func (h *Handler) verifySignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, token, err := h.service.VerifySignup(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocked):
			http.Error(w, err.Error(), http.StatusLocked)
		case errors.Is(err, ErrCodeMismatch):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, ErrNoPendingSignup):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusCreated, sessionResponse{Session: sess, Token: token})
}

func (h *Handler) restartSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.RestartSignup(r.Context(), req.Email); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "verification restarted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
