package azure

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gruntwork-io/azure-rg-nuke/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classification(name string, resources int) Classification {
	c := Classification{Group: ResourceGroup{Name: name, ProvisioningState: "Succeeded"}}
	for i := 0; i < resources; i++ {
		c.Resources = append(c.Resources, Resource{ID: name + "/r"})
	}
	return c
}

func TestDispatch_EmptyGroupNeverPrompts(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeFull, ModeEmptyOnly} {
		api := newMockAPI()
		prompts := &recordingConfirmer{answer: "n"}
		d := &Dispatcher{API: api, Mode: mode, Confirmer: prompts.confirmer()}

		result, err := d.Dispatch(context.Background(), classification("empty", 0))
		require.NoError(t, err)

		assert.Equal(t, reporting.OutcomeSubmitted, result.Outcome, mode.String())
		require.NotNil(t, result.Job)
		assert.Equal(t, JobSubmitted, result.Job.State)
		assert.Empty(t, prompts.asked)
	}
}

func TestDispatch_EmptyOnlyLeavesNonEmptyWithoutDisplay(t *testing.T) {
	t.Parallel()

	api := newMockAPI()
	displayed := false
	d := &Dispatcher{
		API:       api,
		Mode:      ModeEmptyOnly,
		Confirmer: AlwaysConfirm,
		Display:   func(Classification) { displayed = true },
	}

	result, err := d.Dispatch(context.Background(), classification("busy", 4))
	require.NoError(t, err)

	assert.Equal(t, reporting.OutcomeSkipped, result.Outcome)
	assert.Nil(t, result.Job)
	assert.False(t, displayed)
	assert.Empty(t, api.deleteRequests)
}

func TestDispatch_SkipsGroupAlreadyBeingDeleted(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeFull, ModeEmptyOnly} {
		api := newMockAPI()
		c := classification("going", 0)
		c.Group.ProvisioningState = "Deleting"

		result, err := (&Dispatcher{API: api, Mode: mode}).Dispatch(context.Background(), c)
		require.NoError(t, err)

		assert.Equal(t, reporting.OutcomeSkipped, result.Outcome, mode.String())
		assert.Equal(t, ReasonAlreadyDeleting, result.Reason)
		assert.Nil(t, result.Job)
		assert.Empty(t, api.deleteRequests)
	}
}

func TestDispatch_NilConfirmerDeclines(t *testing.T) {
	t.Parallel()

	api := newMockAPI()
	result, err := (&Dispatcher{API: api, Mode: ModeFull}).Dispatch(context.Background(), classification("busy", 1))
	require.NoError(t, err)

	assert.Equal(t, ReasonDeclined, result.Reason)
	assert.Empty(t, api.deleteRequests)
}

func TestDispatch_ConfirmerErrorFailsGroup(t *testing.T) {
	t.Parallel()

	api := newMockAPI()
	d := &Dispatcher{
		API:  api,
		Mode: ModeFull,
		Confirmer: ConfirmFunc(func(context.Context, Classification) (bool, error) {
			return false, errors.New("stdin closed")
		}),
	}

	result, err := d.Dispatch(context.Background(), classification("busy", 1))
	require.NoError(t, err)
	assert.Equal(t, reporting.OutcomeFailed, result.Outcome)
	assert.Error(t, result.Err)
}

func TestDispatch_UnauthorizedSubmissionIsFatal(t *testing.T) {
	t.Parallel()

	api := newMockAPI()
	api.deleteErrs["empty"] = responseError(http.StatusUnauthorized)

	result, err := (&Dispatcher{API: api}).Dispatch(context.Background(), classification("empty", 0))
	require.Error(t, err)

	var subErr SubmissionError
	assert.ErrorAs(t, err, &subErr)
	assert.Equal(t, reporting.OutcomeFailed, result.Outcome)
}

func TestDispatch_RecordsEvents(t *testing.T) {
	t.Parallel()

	collector := reporting.NewCollector()
	events := &eventRecorder{}
	collector.AddRenderer(events)

	d := &Dispatcher{API: newMockAPI(), Mode: ModeEmptyOnly, Collector: collector}
	_, err := d.Dispatch(context.Background(), classification("empty", 0))
	require.NoError(t, err)
	_, err = d.Dispatch(context.Background(), classification("busy", 1))
	require.NoError(t, err)

	assert.Equal(t, []reporting.Event{
		reporting.JobUpdated{Group: "empty", State: string(JobSubmitted)},
		reporting.GroupOutcome{Group: "empty", Outcome: reporting.OutcomeSubmitted},
		reporting.GroupOutcome{Group: "busy", Outcome: reporting.OutcomeSkipped, Reason: ReasonNotEmpty},
	}, events.events)
}

func TestModeFromFlag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ModeEmptyOnly, ModeFromFlag(true))
	assert.Equal(t, ModeFull, ModeFromFlag(false))
	assert.Equal(t, "empty-only", ModeEmptyOnly.String())
	assert.Equal(t, "full", ModeFull.String())
}
