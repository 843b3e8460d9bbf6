package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/service"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrProfileNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrServiceNotFound, http.StatusNotFound},
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrNotificationNotFound, http.StatusNotFound},
		{domain.ErrDuplicateEmail, http.StatusConflict},
		{domain.ErrInvalidPhoneFormat, http.StatusUnprocessableEntity},
		{domain.ErrInvalidPrice, http.StatusUnprocessableEntity},
		{domain.ErrNegativeExperience, http.StatusUnprocessableEntity},
		{domain.ErrPastBookingDate, http.StatusUnprocessableEntity},
		{domain.ErrInvalidUserType, http.StatusUnprocessableEntity},
		{domain.ErrInvalidStatusTransition, http.StatusUnprocessableEntity},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrInvalidResetToken, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
			t.Errorf("%v: expected JSON envelope", tc.err)
		}
	}
}

func TestHTTPErrorHandler_WrappedErrorStillMaps(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	wrapped := fmt.Errorf("%w (from pending to completed)", domain.ErrInvalidStatusTransition)

	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(wrapped, c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for wrapped transition error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("pq: connection refused to 10.0.0.3"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.3") {
		t.Fatal("internal details must not leak to the client")
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorKeepsCode(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
