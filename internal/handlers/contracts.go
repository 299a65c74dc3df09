package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
)

type ContractsHandler struct {
	service services.IContractService
	logger  *zap.Logger
}

func NewContractsHandler(service services.IContractService, logger *zap.Logger) *ContractsHandler {
	return &ContractsHandler{
		service: service,
		logger:  logger,
	}
}

// CreateContract godoc
// @Summary     Create a contract
// @Description Creates a contract from a service path. Steps built from real offers are assigned to the offer's provider, and every distinct provider is notified on its realtime channel.
// @Tags        contracts
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateContractRequest true "Service path"
// @Success     201 {object} models.ContractResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /contracts [post]
func (h *ContractsHandler) CreateContract(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	view, err := h.service.CreateContract(c.Request.Context(), userID, req.ServicePathData)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, contractResponse(view))
}

// ListContracts godoc
// @Summary     List contracts
// @Description Returns the contracts the caller takes part in. Providers only see their own steps.
// @Tags        contracts
// @Produce     json
// @Security    Bearer
// @Param       role   query string false "client or provider"
// @Param       status query string false "Composed, work or signature status"
// @Success     200 {object} models.ContractListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /contracts [get]
func (h *ContractsHandler) ListContracts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	filter := services.ListFilter{Role: c.Query("role"), Status: c.Query("status")}
	views, err := h.service.ListContracts(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := models.ContractListResponse{Contracts: make([]models.ContractResponse, 0, len(views))}
	for i := range views {
		resp.Contracts = append(resp.Contracts, contractResponse(&views[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetContract godoc
// @Summary     Get a contract
// @Description Returns a contract with its steps. Only the contract's client may read it.
// @Tags        contracts
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Contract ID (UUID)"
// @Success     200 {object} models.ContractResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /contracts/{id} [get]
func (h *ContractsHandler) GetContract(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.service.GetContract(c.Request.Context(), userID, contractID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contractResponse(view))
}

// UpdateStepStatus godoc
// @Summary     Update a step's status
// @Description Moves a step along PENDING -> ACCEPTED|REJECTED and ACCEPTED -> COMPLETED. Writing the current status again is a no-op. The contract status is recomputed in the same transaction.
// @Tags        contracts
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string true "Contract ID (UUID)"
// @Param       stepId  path string true "Step ID (UUID)"
// @Param       request body models.UpdateStepStatusRequest true "New status"
// @Success     200 {object} models.StepResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /contracts/{id}/steps/{stepId} [patch]
func (h *ContractsHandler) UpdateStepStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stepID, ok := pathUUID(c, "stepId")
	if !ok {
		return
	}

	var req models.UpdateStepStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badRequest(c, "status is required")
		return
	}

	view, err := h.service.UpdateStepStatus(c.Request.Context(), userID, contractID, stepID, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stepViewResponse(view))
}

// SignContract godoc
// @Summary     Sign a whole contract
// @Description Client signs every step not yet signed on the client side. Fails if the contract is already client-signed.
// @Tags        contracts
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string true "Contract ID (UUID)"
// @Param       request body models.SignContractRequest false "signAll defaults to true"
// @Success     200 {object} models.ContractResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /contracts/{id}/sign [post]
func (h *ContractsHandler) SignContract(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req models.SignContractRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}
	signAll := req.SignAll == nil || *req.SignAll

	view, err := h.service.SignContract(c.Request.Context(), userID, contractID, signAll)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contractResponse(view))
}

// SignStepAsClient godoc
// @Summary     Client signs one step
// @Tags        contracts
// @Produce     json
// @Security    Bearer
// @Param       id     path string true "Contract ID (UUID)"
// @Param       stepId path string true "Step ID (UUID)"
// @Success     200 {object} models.StepResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /contracts/{id}/steps/{stepId}/sign-client [post]
func (h *ContractsHandler) SignStepAsClient(c *gin.Context) {
	h.signStep(c, h.service.SignStepAsClient)
}

// SignStepAsProvider godoc
// @Summary     Provider signs one step
// @Description Only the step's provider may sign, and only after the client signed the step.
// @Tags        contracts
// @Produce     json
// @Security    Bearer
// @Param       id     path string true "Contract ID (UUID)"
// @Param       stepId path string true "Step ID (UUID)"
// @Success     200 {object} models.StepResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /contracts/{id}/steps/{stepId}/sign [post]
func (h *ContractsHandler) SignStepAsProvider(c *gin.Context) {
	h.signStep(c, h.service.SignStepAsProvider)
}

type signStepFunc func(ctx context.Context, userID, contractID, stepID uuid.UUID) (*services.StepView, error)

func (h *ContractsHandler) signStep(c *gin.Context, sign signStepFunc) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stepID, ok := pathUUID(c, "stepId")
	if !ok {
		return
	}

	view, err := sign(c.Request.Context(), userID, contractID, stepID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stepViewResponse(view))
}

// ClientNotifications godoc
// @Summary     Client activity feed
// @Description Recent provider decisions (accepted, rejected, completed, signed steps) on the caller's contracts, newest first.
// @Tags        notifications
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ClientFeedResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /contracts/notifications [get]
func (h *ContractsHandler) ClientNotifications(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.service.ClientFeed(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ClientFeedResponse{Items: items, Count: len(items)})
}
