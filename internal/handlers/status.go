package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/workflow"
)

// GetStatus godoc
// @Summary     Poll a contract's status
// @Description Returns the composed status, both status tracks and the version of a contract. Readable by the client and by any provider on the contract. Clients that missed realtime events poll this.
// @Tags        contracts
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Contract ID (UUID)"
// @Success     200 {object} models.StatusResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /contracts/{id}/status [get]
func (h *ContractsHandler) GetStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.service.ContractStatus(c.Request.Context(), userID, contractID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	contract := view.Contract
	c.JSON(http.StatusOK, models.StatusResponse{
		ContractID:      contract.ID.String(),
		Status:          workflow.ComposeStatus(contract.WorkStatus, contract.SignatureStatus),
		WorkStatus:      contract.WorkStatus,
		SignatureStatus: contract.SignatureStatus,
		NeedsAttention:  view.NeedsAttention,
		Version:         contract.Version,
		UpdatedAt:       contract.UpdatedAt,
	})
}
