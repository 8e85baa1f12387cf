package http

import (
	"errors"
	"fmt"
	"net/http"

	"biztime/internal/domain/failure"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ErrorBody struct {
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorResponse is the envelope every failed request gets.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid body")

// bindError keeps the decoder error for logs but shows the client a fixed message.
func bindError(err error) error {
	return errInvalidBody.WithInternal(err)
}

func newErrorResponse(status int, msg string, details []FieldError) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: msg, Status: status, Details: details}}
}

// toErrorResponse maps a handler error onto a status and envelope.
func toErrorResponse(err error) ErrorResponse {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return newErrorResponse(http.StatusUnprocessableEntity, "validation failed", ToFieldErrors(ve))
	}
	// unknown method on a known path reads the same as an unknown path
	if errors.Is(err, echo.ErrMethodNotAllowed) {
		return newErrorResponse(http.StatusNotFound, "Not Found", nil)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return newErrorResponse(he.Code, fmt.Sprint(he.Message), nil)
	}

	switch failure.KindOf(err) {
	case failure.NotFound:
		return newErrorResponse(http.StatusNotFound, err.Error(), nil)
	case failure.Conflict:
		return newErrorResponse(http.StatusConflict, err.Error(), nil)
	case failure.Invalid:
		return newErrorResponse(http.StatusUnprocessableEntity, err.Error(), nil)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return newErrorResponse(http.StatusConflict, err.Error(), nil)
	}
	return newErrorResponse(http.StatusInternalServerError, err.Error(), nil)
}

// NewErrorHandler is the echo HTTPErrorHandler. Server errors are logged
// with the request id.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := toErrorResponse(err)
		if resp.Error.Status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(resp.Error.Status)
		} else {
			werr = c.JSON(resp.Error.Status, resp)
		}
		if werr != nil {
			log.Error().Err(werr).Msg("write error response")
		}
	}
}
