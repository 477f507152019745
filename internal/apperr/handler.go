package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps the application error taxonomy to HTTP responses.
// Every failure renders as {"error": "..."} with one status code.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := classify(err)
		if status == http.StatusInternalServerError {
			slog.Error("Request failed with server error", "error", err)
		}

		_ = c.JSON(status, map[string]string{"error": msg})
	}
}

func classify(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		return http.StatusUnauthorized, ue.Message
	}

	var fe *ForbiddenError
	if errors.As(err, &fe) {
		return http.StatusForbidden, fe.Message
	}

	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return http.StatusNotFound, nfe.Message
	}

	var ce *ConflictError
	if errors.As(err, &ce) {
		return http.StatusConflict, ce.Message
	}

	var qe *QuotaError
	if errors.As(err, &qe) {
		return http.StatusPaymentRequired, qe.Message
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.Code == ProviderCodeInvalidAPIKey {
			return http.StatusUnauthorized, pe.Message
		}
		return http.StatusBadRequest, pe.Message
	}

	var ege *EmptyGenerationError
	if errors.As(err, &ege) {
		return http.StatusInternalServerError, ege.Message
	}

	var mre *MalformedResponseError
	if errors.As(err, &mre) {
		return http.StatusInternalServerError, mre.Message
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	return http.StatusInternalServerError, "internal server error"
}
