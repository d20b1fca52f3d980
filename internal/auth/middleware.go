package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

// Guard authenticates bearer tokens on protected routes.
type Guard struct {
	logger *slog.Logger
	tokens *TokenManager
}

// NewGuard constructs a Guard.
func NewGuard(logger *slog.Logger, tokens *TokenManager) *Guard {
	return &Guard{logger: logger, tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token and
// attaches the resolved identity to the request context before the
// next handler runs.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httpx.RespondError(w, httpx.ErrUnauthenticated)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httpx.RespondError(w, httpx.ErrUnauthenticated)
			return
		}

		identity, err := g.tokens.Verify(parts[1])
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("token rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			httpx.RespondError(w, httpx.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}
