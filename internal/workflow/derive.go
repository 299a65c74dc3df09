// Package workflow holds the contract status rules. It has no I/O: callers
// load a contract aggregate, mutate a step and ask for the derived statuses.
package workflow

import "marketplace-contracts-backend/internal/models"

// Outcome is the result of evaluating a contract's steps.
type Outcome struct {
	WorkStatus      models.WorkStatus
	SignatureStatus models.SignatureStatus
	// NeedsAttention marks a contract where some but not all steps were
	// rejected. The rules give no terminal status for that mix.
	NeedsAttention bool
}

// DeriveWorkStatus applies the precedence rules over all steps, first match
// wins: all completed, any accepted or completed, all rejected. When nothing
// matches the current status is kept.
func DeriveWorkStatus(current models.WorkStatus, steps []models.ContractStep) models.WorkStatus {
	if len(steps) == 0 {
		return current
	}

	completed, active, rejected := 0, 0, 0
	for _, s := range steps {
		switch s.Status {
		case models.StepStatusCompleted:
			completed++
			active++
		case models.StepStatusAccepted:
			active++
		case models.StepStatusRejected:
			rejected++
		}
	}

	switch {
	case completed == len(steps):
		return models.WorkStatusCompleted
	case active > 0:
		return models.WorkStatusInProgress
	case rejected == len(steps):
		return models.WorkStatusRejected
	default:
		return current
	}
}

// DeriveSignatureStatus computes the signature track from step timestamps.
// Placeholder steps without a provider only need the client signature.
func DeriveSignatureStatus(steps []models.ContractStep) models.SignatureStatus {
	if len(steps) == 0 {
		return models.SignatureStatusUnsigned
	}

	clientSigned, fullySigned := 0, 0
	for i := range steps {
		switch steps[i].Signature() {
		case models.StepSignatureClientSigned:
			clientSigned++
		case models.StepSignatureSigned:
			clientSigned++
			fullySigned++
		}
	}

	switch {
	case clientSigned == 0:
		return models.SignatureStatusUnsigned
	case fullySigned == len(steps):
		return models.SignatureStatusFullySigned
	default:
		return models.SignatureStatusClientSigned
	}
}

// AllClientSigned reports whether every step carries the client signature.
func AllClientSigned(steps []models.ContractStep) bool {
	if len(steps) == 0 {
		return false
	}
	for _, s := range steps {
		if s.ClientSignedAt == nil {
			return false
		}
	}
	return true
}

func needsAttention(steps []models.ContractStep) bool {
	rejected := 0
	for _, s := range steps {
		if s.Status == models.StepStatusRejected {
			rejected++
		}
	}
	return rejected > 0 && rejected < len(steps)
}

// Evaluate derives both status tracks for a contract.
func Evaluate(c models.Contract, steps []models.ContractStep) Outcome {
	return Outcome{
		WorkStatus:      DeriveWorkStatus(c.WorkStatus, steps),
		SignatureStatus: DeriveSignatureStatus(steps),
		NeedsAttention:  needsAttention(steps),
	}
}

// Apply evaluates the aggregate and writes the derived statuses back to the
// contract. It reports whether anything changed.
func Apply(agg *models.ContractAggregate) (Outcome, bool) {
	out := Evaluate(agg.Contract, agg.Steps)
	changed := out.WorkStatus != agg.Contract.WorkStatus || out.SignatureStatus != agg.Contract.SignatureStatus
	agg.Contract.WorkStatus = out.WorkStatus
	agg.Contract.SignatureStatus = out.SignatureStatus
	return out, changed
}

// ComposeStatus merges both tracks into the single status shown to users.
// Work progress wins once it has started; before that the signature state is
// shown.
func ComposeStatus(work models.WorkStatus, sig models.SignatureStatus) string {
	if work != models.WorkStatusPending && work != "" {
		return string(work)
	}
	if sig != models.SignatureStatusUnsigned && sig != "" {
		return string(sig)
	}
	return string(models.WorkStatusPending)
}
