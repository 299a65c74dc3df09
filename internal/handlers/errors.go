package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/logging"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
)

// mapContractError translates workflow errors into an HTTP status and body.
// Unknown errors become a generic 500.
func mapContractError(err error) (int, models.ErrorResponse) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, models.ErrorResponse{Error: "validation_error", Message: verr.Msg}
	case errors.Is(err, services.ErrAlreadySigned):
		return http.StatusBadRequest, models.ErrorResponse{Error: "already_signed", Message: err.Error()}
	case errors.Is(err, services.ErrClientSignatureRequired):
		return http.StatusBadRequest, models.ErrorResponse{Error: "client_signature_required", Message: err.Error()}
	case errors.Is(err, services.ErrStepRejected):
		return http.StatusBadRequest, models.ErrorResponse{Error: "step_rejected", Message: err.Error()}
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusBadRequest, models.ErrorResponse{Error: "invalid_transition", Message: err.Error()}
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, models.ErrorResponse{Error: "forbidden", Message: err.Error()}
	case errors.Is(err, services.ErrContractNotFound):
		return http.StatusNotFound, models.ErrorResponse{Error: "contract_not_found", Message: err.Error()}
	case errors.Is(err, services.ErrStepNotFound):
		return http.StatusNotFound, models.ErrorResponse{Error: "step_not_found", Message: err.Error()}
	case errors.Is(err, services.ErrStepNotPending):
		return http.StatusNotFound, models.ErrorResponse{Error: "step_not_found", Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Error: "internal_error", Message: "something went wrong"}
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status, body := mapContractError(err)
	if status == http.StatusInternalServerError {
		logging.WithContext(c.Request.Context(), logger).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.JSON(status, body)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "validation_error", Message: message})
}
