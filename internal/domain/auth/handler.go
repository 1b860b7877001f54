package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	api "github.com/FACorreiaa/docledger/internal/api/respond"
)

// Handler serves the register and login endpoints.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler creates the auth HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("registration failed", slog.String("email", req.Email), slog.Any("error", err))
		api.WriteError(w, http.StatusBadRequest, "Registration failed")
		return
	}

	api.WriteJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		api.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.logger.Error("login failed", slog.Any("error", err))
		api.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}
