package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/consultassist/domain"
)

// respondError renders an operation failure as {"detail": "<Operation> failed: <message>"}
func respondError(c echo.Context, op domain.Operation, err error, logger *zap.Logger) error {
	status := http.StatusInternalServerError
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		status = http.StatusUnprocessableEntity
	}

	fields := []zap.Field{
		zap.String("operation", string(op)),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	}
	if status == http.StatusInternalServerError {
		logger.Error("Operation failed", fields...)
	} else {
		logger.Info("Request rejected", fields...)
	}

	return c.JSON(status, ErrorResponse{
		Detail: fmt.Sprintf("%s failed: %s", op, err.Error()),
	})
}

// httpErrorHandler renders errors raised outside the operation handlers,
// such as unknown routes or oversized bodies, in the same shape
func httpErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := http.StatusText(status)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			detail = fmt.Sprint(he.Message)
		} else {
			logger.Error("Unhandled error", zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ErrorResponse{Detail: detail})
		}
		if err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}
