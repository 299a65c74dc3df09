package models

import (
	"time"

	"github.com/google/uuid"
)

type PartyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type OfferResponse struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type ContractSummary struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	WorkStatus      WorkStatus      `json:"workStatus"`
	SignatureStatus SignatureStatus `json:"signatureStatus"`
	ClientID        string          `json:"clientId"`
	TotalPrice      float64         `json:"totalPrice"`
}

type ContractResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	TotalPrice        float64         `json:"totalPrice"`
	EstimatedDuration string          `json:"estimatedDuration,omitempty"`
	Status            string          `json:"status"`
	WorkStatus        WorkStatus      `json:"workStatus"`
	SignatureStatus   SignatureStatus `json:"signatureStatus"`
	NeedsAttention    bool            `json:"needsAttention"`
	ClientID          string          `json:"clientId"`
	Client            *PartyResponse  `json:"client,omitempty"`
	ClientSignedAt    *time.Time      `json:"clientSignedAt"`
	AllStepsSignedAt  *time.Time      `json:"allStepsSignedAt"`
	ArchiveURL        string          `json:"archiveUrl,omitempty"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Steps             []StepResponse  `json:"steps"`
}

type StepResponse struct {
	ID               string           `json:"id"`
	ContractID       string           `json:"contractId"`
	Position         int              `json:"position"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Price            float64          `json:"price"`
	Duration         string           `json:"duration,omitempty"`
	IsRealOffer      bool             `json:"isRealOffer"`
	ProviderID       string           `json:"providerId,omitempty"`
	Provider         *PartyResponse   `json:"provider,omitempty"`
	OfferID          string           `json:"offerId,omitempty"`
	Offer            *OfferResponse   `json:"offer,omitempty"`
	Status           StepStatus       `json:"status"`
	SignatureStatus  StepSignature    `json:"signatureStatus"`
	ClientSignedAt   *time.Time       `json:"clientSignedAt"`
	ProviderSignedAt *time.Time       `json:"providerSignedAt"`
	AcceptedAt       *time.Time       `json:"acceptedAt,omitempty"`
	RejectedAt       *time.Time       `json:"rejectedAt,omitempty"`
	RejectionReason  string           `json:"rejectionReason,omitempty"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
	StartDate        *time.Time       `json:"startDate,omitempty"`
	Deadline         *time.Time       `json:"deadline,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	Contract         *ContractSummary `json:"contract,omitempty"`
}

type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

type ProjectsResponse struct {
	Projects []StepResponse `json:"projects"`
}

// ContractNotification is the payload of new_contract_notification events and
// of the provider polling endpoint.
type ContractNotification struct {
	ContractID        uuid.UUID     `json:"contractId"`
	Title             string        `json:"title"`
	Client            PartyResponse `json:"client"`
	PendingStepsCount int           `json:"pendingStepsCount"`
	TotalValue        float64       `json:"totalValue"`
	CreatedAt         time.Time     `json:"createdAt"`
}

type NotificationsResponse struct {
	Notifications []ContractNotification `json:"notifications"`
	Count         int                    `json:"count"`
}

type ClientFeedItem struct {
	ContractID    string         `json:"contractId"`
	ContractTitle string         `json:"contractTitle"`
	StepID        string         `json:"stepId"`
	StepName      string         `json:"stepName"`
	Provider      *PartyResponse `json:"provider,omitempty"`
	Event         string         `json:"event"`
	Reason        string         `json:"reason,omitempty"`
	OccurredAt    time.Time      `json:"occurredAt"`
}

type ClientFeedResponse struct {
	Items []ClientFeedItem `json:"items"`
	Count int              `json:"count"`
}

type StatusResponse struct {
	ContractID      string          `json:"contractId"`
	Status          string          `json:"status"`
	WorkStatus      WorkStatus      `json:"workStatus"`
	SignatureStatus SignatureStatus `json:"signatureStatus"`
	NeedsAttention  bool            `json:"needsAttention"`
	Version         int64           `json:"version"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
