package models

import "github.com/google/uuid"

type CreateContractRequest struct {
	ServicePathData ServicePathData `json:"servicePathData"`
}

// ServicePathData is the contract draft produced by the service path builder.
type ServicePathData struct {
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	EstimatedDuration string            `json:"estimatedDuration,omitempty"`
	Steps             []ServicePathStep `json:"steps"`
}

type ServicePathStep struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Duration    string     `json:"duration,omitempty"`
	IsRealOffer bool       `json:"isRealOffer"`
	OfferID     *uuid.UUID `json:"offerId,omitempty"`
}

type UpdateStepStatusRequest struct {
	Status StepStatus `json:"status" example:"COMPLETED"`
}

type SignContractRequest struct {
	// SignAll defaults to true when omitted.
	SignAll *bool `json:"signAll,omitempty"`
}

type AcceptStepRequest struct {
	// Deadline in RFC3339, must be in the future.
	Deadline string `json:"deadline" example:"2026-12-01T00:00:00Z"`
}

type RejectStepRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
