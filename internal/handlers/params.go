package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"marketplace-contracts-backend/internal/middleware"
	"marketplace-contracts-backend/internal/models"
)

// currentUser returns the authenticated user id. It writes a 401 and returns
// false when the request carries none.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userIDStr := c.GetString(middleware.UserIDKey)
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized", Message: "user id not found"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized", Message: "invalid user id"})
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a UUID path parameter, writing a 400 on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
