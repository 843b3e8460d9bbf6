package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call. Scoped reads (inbox,
// notifications, "my bookings") always use this identity, never a
// caller-supplied user id.
func ctxClaims(c echo.Context) (userID uuid.UUID, userType domain.UserType, err error) {
	raw, _ := c.Get("user_id").(string)
	if raw == "" {
		return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, parseErr := uuid.Parse(raw)
	if parseErr != nil {
		return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "malformed user identity in token")
	}

	t, _ := c.Get("user_type").(string)
	userType = domain.UserType(t)
	if !userType.Valid() {
		return uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "token missing account kind")
	}

	return userID, userType, nil
}

// pathID parses a :id-style path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
