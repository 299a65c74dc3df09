package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
)

type ProviderHandler struct {
	service services.IContractService
	logger  *zap.Logger
}

func NewProviderHandler(service services.IContractService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{
		service: service,
		logger:  logger,
	}
}

// AcceptStep godoc
// @Summary     Accept a step
// @Description Accepts a pending step assigned to the caller and sets its deadline. Steps that are not pending or not assigned to the caller are reported as not found.
// @Tags        provider
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       stepId  path string true "Step ID (UUID)"
// @Param       request body models.AcceptStepRequest true "Deadline"
// @Success     200 {object} models.StepResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /provider/contracts/{stepId}/accept [post]
func (h *ProviderHandler) AcceptStep(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	stepID, ok := pathUUID(c, "stepId")
	if !ok {
		return
	}

	var req models.AcceptStepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Deadline == "" {
		badRequest(c, "deadline is required")
		return
	}
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		badRequest(c, "deadline must be an RFC3339 timestamp")
		return
	}

	view, err := h.service.AcceptStep(c.Request.Context(), userID, stepID, deadline)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stepViewResponse(view))
}

// RejectStep godoc
// @Summary     Reject a step
// @Description Rejects a pending step assigned to the caller with an optional reason.
// @Tags        provider
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       stepId  path string true "Step ID (UUID)"
// @Param       request body models.RejectStepRequest false "Reason"
// @Success     200 {object} models.StepResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /provider/contracts/{stepId}/reject [post]
func (h *ProviderHandler) RejectStep(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	stepID, ok := pathUUID(c, "stepId")
	if !ok {
		return
	}

	var req models.RejectStepRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	view, err := h.service.RejectStep(c.Request.Context(), userID, stepID, req.Reason)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stepViewResponse(view))
}

// Notifications godoc
// @Summary     Pending contract notifications
// @Description One entry per contract in which the caller still has pending steps, newest first. Same payload as the new_contract_notification realtime event.
// @Tags        notifications
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.NotificationsResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /provider/notifications [get]
func (h *ProviderHandler) Notifications(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	notifications, err := h.service.ProviderNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.NotificationsResponse{
		Notifications: notifications,
		Count:         len(notifications),
	})
}

// Projects godoc
// @Summary     Provider projects
// @Description Steps assigned to the caller that are accepted or completed, earliest deadline first. status narrows to one step status.
// @Tags        provider
// @Produce     json
// @Security    Bearer
// @Param       status query string false "PENDING, ACCEPTED, REJECTED or COMPLETED"
// @Success     200 {object} models.ProjectsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /provider/projects [get]
func (h *ProviderHandler) Projects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	status := models.StepStatus(c.Query("status"))
	views, err := h.service.ListProviderProjects(c.Request.Context(), userID, status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := models.ProjectsResponse{Projects: make([]models.StepResponse, 0, len(views))}
	for i := range views {
		resp.Projects = append(resp.Projects, stepViewResponse(&views[i]))
	}
	c.JSON(http.StatusOK, resp)
}
