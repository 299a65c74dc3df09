package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
)

func TestCreateContract(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)

	assert.Equal(t, 1250.0, view.Contract.TotalPrice)
	assert.Equal(t, models.WorkStatusPending, view.Contract.WorkStatus)
	assert.Equal(t, models.SignatureStatusUnsigned, view.Contract.SignatureStatus)
	assert.Equal(t, int64(1), view.Contract.Version)
	require.Len(t, view.Steps, 3)
	for i, step := range view.Steps {
		assert.Equal(t, i, step.Position)
		assert.Equal(t, models.StepStatusPending, step.Status)
	}
	assert.Equal(t, e.provider1, *view.Steps[0].ProviderID)
	assert.Equal(t, e.provider2, *view.Steps[2].ProviderID)
	assert.Equal(t, "Carla Client", view.Profiles[e.client].DisplayName)
}

func TestCreateContract_NotifiesEachProviderOnce(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	e.dispatcher.Wait()

	require.Equal(t, 2, e.broadcaster.count())
	events := e.broadcaster.byUser()

	p1 := events[e.provider1]
	assert.Equal(t, services.EventNewContract, p1.Event)
	assert.Equal(t, view.Contract.ID, p1.Payload.ContractID)
	assert.Equal(t, "Brand launch", p1.Payload.Title)
	assert.Equal(t, 2, p1.Payload.PendingStepsCount)
	assert.Equal(t, 350.0, p1.Payload.TotalValue)
	assert.Equal(t, e.client.String(), p1.Payload.Client.ID)
	assert.Equal(t, "Carla Client", p1.Payload.Client.Name)
	assert.Equal(t, "carla@example.com", p1.Payload.Client.Email)

	p2 := events[e.provider2]
	assert.Equal(t, 1, p2.Payload.PendingStepsCount)
	assert.Equal(t, 900.0, p2.Payload.TotalValue)
}

func TestCreateContract_PlaceholdersNotifyNobody(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.CreateContract(context.Background(), e.client, models.ServicePathData{
		Title: "DIY",
		Steps: []models.ServicePathStep{{Name: "Sketch", Price: 0}},
	})
	require.NoError(t, err)
	e.dispatcher.Wait()

	assert.Zero(t, e.broadcaster.count())
}

func TestCreateContract_PushFailureIsNotFatal(t *testing.T) {
	e := newEnv(t)
	e.broadcaster.fail = map[uuid.UUID]bool{e.provider1: true}

	e.createThreeStep(t)
	e.dispatcher.Wait()

	events := e.broadcaster.byUser()
	assert.Len(t, events, 1)
	assert.Contains(t, events, e.provider2)
}

func TestCreateContract_Validation(t *testing.T) {
	e := newEnv(t)
	missing := uuid.New()

	tests := []struct {
		name  string
		draft models.ServicePathData
	}{
		{"no title", models.ServicePathData{Steps: []models.ServicePathStep{{Name: "a"}}}},
		{"no steps", models.ServicePathData{Title: "x"}},
		{"unnamed step", models.ServicePathData{Title: "x", Steps: []models.ServicePathStep{{Price: 1}}}},
		{"negative price", models.ServicePathData{Title: "x", Steps: []models.ServicePathStep{{Name: "a", Price: -1}}}},
		{"offer without id", models.ServicePathData{Title: "x", Steps: []models.ServicePathStep{{Name: "a", IsRealOffer: true}}}},
		{"unknown offer", models.ServicePathData{Title: "x", Steps: []models.ServicePathStep{offerStep("a", 1, missing)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.CreateContract(context.Background(), e.client, tt.draft)
			var verr *services.ValidationError
			assert.True(t, errors.As(err, &verr), "got %v", err)
		})
	}
}

func TestCreateContract_RejectsOwnOffer(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.CreateContract(context.Background(), e.provider1, models.ServicePathData{
		Title: "Self deal",
		Steps: []models.ServicePathStep{offerStep("Logo", 100, e.offer1a)},
	})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSignContract(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()

	signed, err := e.svc.SignContract(ctx, e.client, view.Contract.ID, true)
	require.NoError(t, err)

	assert.Equal(t, models.SignatureStatusClientSigned, signed.Contract.SignatureStatus)
	assert.Equal(t, models.WorkStatusPending, signed.Contract.WorkStatus)
	require.NotNil(t, signed.Contract.ClientSignedAt)
	assert.Equal(t, testNow, *signed.Contract.ClientSignedAt)
	assert.Equal(t, int64(2), signed.Contract.Version)
	for _, step := range signed.Steps {
		assert.NotNil(t, step.ClientSignedAt)
		assert.Nil(t, step.ProviderSignedAt)
		assert.Equal(t, models.StepStatusPending, step.Status)
	}

	_, err = e.svc.SignContract(ctx, e.client, view.Contract.ID, true)
	assert.ErrorIs(t, err, services.ErrAlreadySigned)
	assert.Equal(t, int64(2), e.stored(t, view.Contract.ID).Contract.Version)
}

func TestSignContract_Errors(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()

	_, err := e.svc.SignContract(ctx, e.provider1, view.Contract.ID, true)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = e.svc.SignContract(ctx, e.client, uuid.New(), true)
	assert.ErrorIs(t, err, services.ErrContractNotFound)

	_, err = e.svc.SignContract(ctx, e.client, view.Contract.ID, false)
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSignStep_ProviderNeedsClientSignature(t *testing.T) {
	e := newEnv(t)
	view := e.createSingle(t)
	ctx := context.Background()
	stepID := view.Steps[0].ID

	_, err := e.svc.SignStepAsProvider(ctx, e.provider1, view.Contract.ID, stepID)
	assert.ErrorIs(t, err, services.ErrClientSignatureRequired)

	_, err = e.svc.SignStepAsClient(ctx, e.provider1, view.Contract.ID, stepID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	step, err := e.svc.SignStepAsClient(ctx, e.client, view.Contract.ID, stepID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSignatureClientSigned, step.Step.Signature())
	assert.Equal(t, models.SignatureStatusClientSigned, step.Contract.SignatureStatus)
	assert.NotNil(t, step.Contract.ClientSignedAt)

	_, err = e.svc.SignStepAsClient(ctx, e.client, view.Contract.ID, stepID)
	assert.ErrorIs(t, err, services.ErrAlreadySigned)

	_, err = e.svc.SignStepAsProvider(ctx, e.provider2, view.Contract.ID, stepID)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestSignStep_FullySignedArchivesContract(t *testing.T) {
	e := newEnv(t)
	view := e.createSingle(t)
	ctx := context.Background()
	stepID := view.Steps[0].ID

	_, err := e.svc.SignStepAsClient(ctx, e.client, view.Contract.ID, stepID)
	require.NoError(t, err)

	step, err := e.svc.SignStepAsProvider(ctx, e.provider1, view.Contract.ID, stepID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSignatureSigned, step.Step.Signature())
	assert.Equal(t, models.SignatureStatusFullySigned, step.Contract.SignatureStatus)
	require.NotNil(t, step.Contract.AllStepsSignedAt)

	_, err = e.svc.SignStepAsProvider(ctx, e.provider1, view.Contract.ID, stepID)
	assert.ErrorIs(t, err, services.ErrAlreadySigned)

	e.dispatcher.Wait()
	assert.True(t, e.archiver.archived(view.Contract.ID))

	got, err := e.svc.GetContract(ctx, e.client, view.Contract.ID)
	require.NoError(t, err)
	assert.Contains(t, got.ArchiveURL, view.Contract.ID.String())
}

func TestSignStep_PlaceholderNeedsOnlyClient(t *testing.T) {
	e := newEnv(t)
	view, err := e.svc.CreateContract(context.Background(), e.client, models.ServicePathData{
		Title: "Mixed",
		Steps: []models.ServicePathStep{
			{Name: "Brief", Price: 0},
			offerStep("Logo", 100, e.offer1a),
		},
	})
	require.NoError(t, err)

	signed, err := e.svc.SignContract(context.Background(), e.client, view.Contract.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StepSignatureSigned, signed.Steps[0].Signature())
	assert.Equal(t, models.SignatureStatusClientSigned, signed.Contract.SignatureStatus)

	step, err := e.svc.SignStepAsProvider(context.Background(), e.provider1, view.Contract.ID, view.Steps[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.SignatureStatusFullySigned, step.Contract.SignatureStatus)
}

func TestSignStep_RejectedStepsCannotBeSigned(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()
	rejected := view.Steps[2].ID

	_, err := e.svc.RejectStep(ctx, e.provider2, rejected, "no capacity")
	require.NoError(t, err)
	version := e.stored(t, view.Contract.ID).Contract.Version

	_, err = e.svc.SignContract(ctx, e.client, view.Contract.ID, true)
	assert.ErrorIs(t, err, services.ErrStepRejected)

	_, err = e.svc.SignStepAsClient(ctx, e.client, view.Contract.ID, rejected)
	assert.ErrorIs(t, err, services.ErrStepRejected)

	_, err = e.svc.SignStepAsProvider(ctx, e.provider2, view.Contract.ID, rejected)
	assert.ErrorIs(t, err, services.ErrStepRejected)

	assert.Equal(t, version, e.stored(t, view.Contract.ID).Contract.Version)

	for _, s := range view.Steps[:2] {
		_, err := e.svc.SignStepAsClient(ctx, e.client, view.Contract.ID, s.ID)
		require.NoError(t, err)
		_, err = e.svc.SignStepAsProvider(ctx, e.provider1, view.Contract.ID, s.ID)
		require.NoError(t, err)
	}

	e.dispatcher.Wait()
	agg := e.stored(t, view.Contract.ID)
	assert.Equal(t, models.SignatureStatusClientSigned, agg.Contract.SignatureStatus)
	assert.Nil(t, agg.Contract.AllStepsSignedAt)
	assert.False(t, e.archiver.archived(view.Contract.ID))
}

func TestUpdateStepStatus_CompletesContract(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()

	providers := []uuid.UUID{e.provider1, e.provider1, e.provider2}
	for i, step := range view.Steps {
		_, err := e.svc.UpdateStepStatus(ctx, providers[i], view.Contract.ID, step.ID, models.StepStatusAccepted)
		require.NoError(t, err)
	}
	assert.Equal(t, models.WorkStatusInProgress, e.stored(t, view.Contract.ID).Contract.WorkStatus)

	var last *services.StepView
	for i, step := range view.Steps {
		var err error
		last, err = e.svc.UpdateStepStatus(ctx, providers[i], view.Contract.ID, step.ID, models.StepStatusCompleted)
		require.NoError(t, err)
	}
	assert.Equal(t, models.WorkStatusCompleted, last.Contract.WorkStatus)
	assert.Equal(t, int64(7), last.Contract.Version)
}

func TestUpdateStepStatus_ReplayIsNoop(t *testing.T) {
	e := newEnv(t)
	view := e.createSingle(t)
	ctx := context.Background()
	stepID := view.Steps[0].ID

	first, err := e.svc.UpdateStepStatus(ctx, e.provider1, view.Contract.ID, stepID, models.StepStatusAccepted)
	require.NoError(t, err)

	e.svc.SetClock(func() time.Time { return testNow.Add(time.Hour) })
	again, err := e.svc.UpdateStepStatus(ctx, e.provider1, view.Contract.ID, stepID, models.StepStatusAccepted)
	require.NoError(t, err)

	assert.Equal(t, first.Contract.Version, again.Contract.Version)
	assert.Equal(t, *first.Step.AcceptedAt, *again.Step.AcceptedAt)
	assert.Equal(t, first.Step.UpdatedAt, again.Step.UpdatedAt)
}

func TestUpdateStepStatus_Errors(t *testing.T) {
	e := newEnv(t)
	view := e.createSingle(t)
	ctx := context.Background()
	stepID := view.Steps[0].ID

	_, err := e.svc.UpdateStepStatus(ctx, e.provider2, view.Contract.ID, stepID, models.StepStatusAccepted)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = e.svc.UpdateStepStatus(ctx, e.client, view.Contract.ID, stepID, models.StepStatusAccepted)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = e.svc.UpdateStepStatus(ctx, e.provider1, view.Contract.ID, stepID, models.StepStatusCompleted)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = e.svc.UpdateStepStatus(ctx, e.provider1, view.Contract.ID, uuid.New(), models.StepStatusAccepted)
	assert.ErrorIs(t, err, services.ErrStepNotFound)

	_, err = e.svc.UpdateStepStatus(ctx, e.provider1, view.Contract.ID, stepID, "DONE")
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.Equal(t, int64(1), e.stored(t, view.Contract.ID).Contract.Version)
}

func TestAcceptStep(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()
	stepID := view.Steps[2].ID
	deadline := testNow.Add(14 * 24 * time.Hour)

	_, err := e.svc.AcceptStep(ctx, e.provider1, stepID, deadline)
	assert.ErrorIs(t, err, services.ErrStepNotPending)

	_, err = e.svc.AcceptStep(ctx, e.provider2, stepID, testNow.Add(-time.Hour))
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)

	step, err := e.svc.AcceptStep(ctx, e.provider2, stepID, deadline)
	require.NoError(t, err)
	assert.Equal(t, models.StepStatusAccepted, step.Step.Status)
	assert.Equal(t, testNow, *step.Step.AcceptedAt)
	assert.Equal(t, testNow, *step.Step.StartDate)
	assert.Equal(t, deadline, *step.Step.Deadline)
	assert.Equal(t, models.WorkStatusInProgress, step.Contract.WorkStatus)

	_, err = e.svc.AcceptStep(ctx, e.provider2, stepID, deadline)
	assert.ErrorIs(t, err, services.ErrStepNotPending)

	_, err = e.svc.AcceptStep(ctx, e.provider2, uuid.New(), deadline)
	assert.ErrorIs(t, err, services.ErrStepNotPending)
}

func TestAcceptStep_NotFoundBeforeDeadlineCheck(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()
	stepID := view.Steps[2].ID
	past := testNow.Add(-time.Hour)

	_, err := e.svc.AcceptStep(ctx, e.provider1, stepID, past)
	assert.ErrorIs(t, err, services.ErrStepNotPending)

	_, err = e.svc.AcceptStep(ctx, e.provider2, uuid.New(), past)
	assert.ErrorIs(t, err, services.ErrStepNotPending)

	_, err = e.svc.RejectStep(ctx, e.provider2, stepID, "")
	require.NoError(t, err)
	_, err = e.svc.AcceptStep(ctx, e.provider2, stepID, past)
	assert.ErrorIs(t, err, services.ErrStepNotPending)

	_, err = e.svc.AcceptStep(ctx, e.provider1, view.Steps[0].ID, past)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "deadline must be in the future", verr.Msg)
	assert.Equal(t, models.StepStatusPending, e.stored(t, view.Contract.ID).Steps[0].Status)
}

func TestRejectStep(t *testing.T) {
	e := newEnv(t)
	view := e.createThreeStep(t)
	ctx := context.Background()

	step, err := e.svc.RejectStep(ctx, e.provider2, view.Steps[2].ID, "  fully booked  ")
	require.NoError(t, err)
	assert.Equal(t, models.StepStatusRejected, step.Step.Status)
	assert.Equal(t, "fully booked", step.Step.RejectionReason)
	assert.Equal(t, models.WorkStatusPending, step.Contract.WorkStatus)

	got, err := e.svc.GetContract(ctx, e.client, view.Contract.ID)
	require.NoError(t, err)
	assert.True(t, got.NeedsAttention)

	for _, s := range view.Steps[:2] {
		_, err := e.svc.RejectStep(ctx, e.provider1, s.ID, "")
		require.NoError(t, err)
	}

	got, err = e.svc.GetContract(ctx, e.client, view.Contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkStatusRejected, got.Contract.WorkStatus)
	assert.False(t, got.NeedsAttention)
}

func TestRejectStep_ReasonTooLong(t *testing.T) {
	e := newEnv(t)
	view := e.createSingle(t)

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}
	_, err := e.svc.RejectStep(context.Background(), e.provider1, view.Steps[0].ID, string(long))
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRecompute_RepairsDrift(t *testing.T) {
	e := newEnv(t)
	view := e.createSingle(t)
	ctx := context.Background()

	_, err := e.store.UpdateContract(ctx, view.Contract.ID, func(agg *models.ContractAggregate) (bool, error) {
		agg.Steps[0].Status = models.StepStatusAccepted
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, models.WorkStatusPending, e.stored(t, view.Contract.ID).Contract.WorkStatus)

	fixed, err := e.svc.Recompute(ctx, view.Contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkStatusInProgress, fixed.Contract.WorkStatus)

	version := fixed.Contract.Version
	again, err := e.svc.Recompute(ctx, view.Contract.ID)
	require.NoError(t, err)
	assert.Equal(t, version, again.Contract.Version)
}
