package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/signin", h.handleSignin)
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCredentials(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	token, err := h.service.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if !httpx.IsClientError(err) {
			h.logger.Error("signup failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, token)
}

func (h *Handler) handleSignin(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCredentials(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	token, err := h.service.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		if !httpx.IsClientError(err) {
			h.logger.Error("signin failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, token)
}

func (h *Handler) decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return req, httpx.ErrValidation
	}
	if err := h.validator.Struct(req); err != nil {
		return req, httpx.ErrValidation
	}
	return req, nil
}
