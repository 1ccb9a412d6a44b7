package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// viewerFromRequest writes a 401 when the request carries no claims.
func viewerFromRequest(w http.ResponseWriter, r *http.Request) (models.Viewer, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims == nil {
		logger.Warn("Unauthorized access attempt: missing user claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return models.Viewer{}, logger, false
	}

	return claims.Viewer(), logger.With(slog.String("userID", claims.UserID.String())), true
}
