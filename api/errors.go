package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bundle-inventory.GO/core/logger"
	"bundle-inventory.GO/service"
	"bundle-inventory.GO/service/bundle"
	"bundle-inventory.GO/service/inventory"
)

const internalErrorMessage = "Internal Error. Details are available in the server log."

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	var (
		httpErr        *echo.HTTPError
		rejected       *bundle.RejectedAssignmentError
		notChild       *bundle.NotAChildError
		notFound       *service.NotFoundError
		sourceNotFound *inventory.SourceNotFoundError
		invalid        validator.ValidationErrors
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &rejected),
		errors.As(err, &notChild),
		errors.As(err, &invalid),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, bundle.ErrAlreadyLinked):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &sourceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorHandler renders errors as {"message": "..."}. Server errors are
// logged and their detail is not sent to the client.
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := StatusFor(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}
		if status >= http.StatusInternalServerError {
			logger.FromContext(c.Request().Context(), log).Error("request failed", zap.Error(err))
			message = internalErrorMessage
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, echo.Map{"message": message})
		}
		if writeErr != nil {
			logger.FromContext(c.Request().Context(), log).Warn("write error response", zap.Error(writeErr))
		}
	}
}
