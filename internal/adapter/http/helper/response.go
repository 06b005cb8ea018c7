package helper

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/model/response"
	"taskhub/pkg/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

// Configure wires the normalizer once at router setup.
func Configure(c *config.Config, l *zap.Logger) {
	cfg = c
	logger = l
}

func development() bool {
	return cfg == nil || cfg.IsDevelopment()
}

// Error is the single terminal stage for failures: whatever propagated from
// validation, authentication or the stores is normalized into the one wire
// format here. Unclassified errors become 500 with their detail withheld
// outside development mode.
func Error(c *gin.Context, err error) {
	e := apperr.From(err)
	status := e.Status()
	requestID := c.GetString("request_id")

	if logger != nil && e.Kind == apperr.KindInternal {
		logger.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", requestID),
		)
	}

	message := e.Message

	body := response.ErrorResponse{
		Success:   false,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
		RequestID: requestID,
	}

	for _, f := range e.Fields {
		body.Errors = append(body.Errors, response.ValidationError{
			Field:   f.Field,
			Message: f.Message,
			Value:   f.Value,
		})
	}

	if development() && e.Err != nil {
		body.Detail = e.Err.Error()
	}

	c.AbortWithStatusJSON(status, body)
}
