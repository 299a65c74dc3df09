package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/logging"
	"marketplace-contracts-backend/internal/models"
)

// Recovery turns a handler panic into a logged 500.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.WithContext(c.Request.Context(), logger).Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:   "internal_error",
					Message: "internal server error (request " + c.GetString(RequestIDKey) + ")",
				})
			}
		}()
		c.Next()
	}
}
