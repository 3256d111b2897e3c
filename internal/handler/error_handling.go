package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkbound-server/internal/models"
	"inkbound-server/internal/service"
)

// handleServiceError переводит ошибку в HTTP-ответ.
// В режиме softErrors сбои AI и хранилища отдаются строкой со статусом 200.
// Ошибки валидации всегда возвращают 400.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var message string
	var chatErr *service.ChatError

	switch {
	case errors.Is(err, models.ErrBadRequest), errors.Is(err, models.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	case errors.As(err, &chatErr):
		message = chatErr.Error()
		statusCode = http.StatusBadGateway
		if chatErr.Timeout() {
			statusCode = http.StatusGatewayTimeout
		}
		chatFailuresTotal.WithLabelValues(chatErr.Kind.String()).Inc()
	case errors.Is(err, models.ErrStoreCorrupted), errors.Is(err, models.ErrStoreWrite):
		message = "Failed to save character: " + err.Error()
		statusCode = http.StatusInternalServerError
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		message = "An unexpected internal error occurred"
		statusCode = http.StatusInternalServerError
	}

	if h.softErrors {
		c.PureJSON(http.StatusOK, message)
		return
	}
	c.AbortWithStatusJSON(statusCode, models.ErrorResponse{Error: message})
}
