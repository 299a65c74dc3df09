package handlers

import (
	"github.com/google/uuid"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
	"marketplace-contracts-backend/internal/workflow"
)

func party(id uuid.UUID, profiles map[uuid.UUID]models.Profile) *models.PartyResponse {
	p := profiles[id]
	return &models.PartyResponse{ID: id.String(), Name: p.DisplayName, Email: p.Email}
}

func contractSummary(c models.Contract) *models.ContractSummary {
	return &models.ContractSummary{
		ID:              c.ID.String(),
		Title:           c.Title,
		Status:          workflow.ComposeStatus(c.WorkStatus, c.SignatureStatus),
		WorkStatus:      c.WorkStatus,
		SignatureStatus: c.SignatureStatus,
		ClientID:        c.ClientID.String(),
		TotalPrice:      c.TotalPrice,
	}
}

func stepResponse(s models.ContractStep, profiles map[uuid.UUID]models.Profile, offers map[uuid.UUID]models.Offer) models.StepResponse {
	resp := models.StepResponse{
		ID:               s.ID.String(),
		ContractID:       s.ContractID.String(),
		Position:         s.Position,
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		Duration:         s.Duration,
		IsRealOffer:      s.IsRealOffer,
		Status:           s.Status,
		SignatureStatus:  s.Signature(),
		ClientSignedAt:   s.ClientSignedAt,
		ProviderSignedAt: s.ProviderSignedAt,
		AcceptedAt:       s.AcceptedAt,
		RejectedAt:       s.RejectedAt,
		RejectionReason:  s.RejectionReason,
		CompletedAt:      s.CompletedAt,
		StartDate:        s.StartDate,
		Deadline:         s.Deadline,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.HasProvider() {
		resp.ProviderID = s.ProviderID.String()
		resp.Provider = party(*s.ProviderID, profiles)
	}
	if s.OfferID != nil {
		resp.OfferID = s.OfferID.String()
		if o, ok := offers[*s.OfferID]; ok {
			resp.Offer = &models.OfferResponse{ID: o.ID.String(), Title: o.Title, Price: o.Price}
		}
	}
	return resp
}

func contractResponse(v *services.ContractView) models.ContractResponse {
	c := v.Contract
	resp := models.ContractResponse{
		ID:                c.ID.String(),
		Title:             c.Title,
		Description:       c.Description,
		TotalPrice:        c.TotalPrice,
		EstimatedDuration: c.EstimatedDuration,
		Status:            workflow.ComposeStatus(c.WorkStatus, c.SignatureStatus),
		WorkStatus:        c.WorkStatus,
		SignatureStatus:   c.SignatureStatus,
		NeedsAttention:    v.NeedsAttention,
		ClientID:          c.ClientID.String(),
		Client:            party(c.ClientID, v.Profiles),
		ClientSignedAt:    c.ClientSignedAt,
		AllStepsSignedAt:  c.AllStepsSignedAt,
		ArchiveURL:        v.ArchiveURL,
		Version:           c.Version,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		Steps:             make([]models.StepResponse, 0, len(v.Steps)),
	}
	for _, s := range v.Steps {
		resp.Steps = append(resp.Steps, stepResponse(s, v.Profiles, v.Offers))
	}
	return resp
}

func stepViewResponse(v *services.StepView) models.StepResponse {
	resp := stepResponse(v.Step, v.Profiles, v.Offers)
	resp.Contract = contractSummary(v.Contract)
	return resp
}
