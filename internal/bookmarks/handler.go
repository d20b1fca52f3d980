package bookmarks

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/linkhoard/linkhoard/internal/auth"
	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

// Handler manages bookmark endpoints. All routes sit behind the auth
// guard.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers bookmark routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.edit)
	r.Delete("/{id}", h.remove)
}

type createBookmarkRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Link        string `json:"link" validate:"required"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitempty,min=1"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}

	var req createBookmarkRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	bm, err := h.service.Create(r.Context(), identity.UserID, req.Title, req.Description, req.Link)
	if err != nil {
		h.respondError(w, "create bookmark", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, bm)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}

	items, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		h.respondError(w, "list bookmarks", err)
		return
	}
	if items == nil {
		items = []Bookmark{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}
	id, err := bookmarkID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	bm, err := h.service.Get(r.Context(), identity.UserID, id)
	if err != nil {
		h.respondError(w, "get bookmark", err)
		return
	}
	httpx.JSON(w, http.StatusOK, bm)
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}
	id, err := bookmarkID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var req editBookmarkRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	bm, err := h.service.Edit(r.Context(), identity.UserID, id, BookmarkUpdate{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.respondError(w, "edit bookmark", err)
		return
	}
	httpx.JSON(w, http.StatusOK, bm)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}
	id, err := bookmarkID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, id); err != nil {
		h.respondError(w, "delete bookmark", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if !httpx.IsClientError(err) {
		h.logger.Error(op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}

func bookmarkID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, httpx.ErrValidation
	}
	return id, nil
}
