package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the authenticated API on api.
func RegisterRoutes(api gin.IRoutes, contracts *ContractsHandler, provider *ProviderHandler) {
	// Contracts
	api.POST("/contracts", contracts.CreateContract)
	api.GET("/contracts", contracts.ListContracts)
	api.GET("/contracts/notifications", contracts.ClientNotifications)
	api.GET("/contracts/:id", contracts.GetContract)
	api.GET("/contracts/:id/status", contracts.GetStatus)
	api.POST("/contracts/:id/sign", contracts.SignContract)

	// Steps
	api.PATCH("/contracts/:id/steps/:stepId", contracts.UpdateStepStatus)
	api.POST("/contracts/:id/steps/:stepId/sign-client", contracts.SignStepAsClient)
	api.POST("/contracts/:id/steps/:stepId/sign", contracts.SignStepAsProvider)

	// Provider
	api.POST("/provider/contracts/:stepId/accept", provider.AcceptStep)
	api.POST("/provider/contracts/:stepId/reject", provider.RejectStep)
	api.GET("/provider/notifications", provider.Notifications)
	api.GET("/provider/projects", provider.Projects)
}
