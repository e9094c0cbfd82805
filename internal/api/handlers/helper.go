package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
	"github.com/google/uuid"
)

// sessionFromRequest returns the session id put in the context by the auth
// middleware, writing a 401 when it is missing.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized access attempt: missing session claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return uuid.Nil, logger, false
	}

	return claims.SessionID, logger.With(slog.String("sessionId", claims.SessionID.String())), true
}
