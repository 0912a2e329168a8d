package azure

import (
	"context"
	"strings"

	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/azure-rg-nuke/reporting"
)

// Mode selects which classified groups are eligible for deletion.
type Mode int

const (
	// ModeFull deletes empty groups and, subject to confirmation, non-empty groups.
	ModeFull Mode = iota
	// ModeEmptyOnly deletes only empty groups.
	ModeEmptyOnly
)

// ModeFromFlag returns the mode chosen by the clean-empty-resource-groups flag.
func ModeFromFlag(cleanEmptyOnly bool) Mode {
	if cleanEmptyOnly {
		return ModeEmptyOnly
	}
	return ModeFull
}

func (m Mode) String() string {
	if m == ModeEmptyOnly {
		return "empty-only"
	}
	return "full"
}

// Skip reasons.
const (
	ReasonDeclined         = "declined"
	ReasonNotEmpty         = "not empty"
	ReasonAlreadyDeleting  = "deletion already in progress"
	ReasonDryRunWouldApply = "would be deleted"
)

// GroupResult is the terminal state of one resource group in a run.
type GroupResult struct {
	Group   string
	Outcome string
	Reason  string
	Err     error
	Job     *DeletionJob
}

// Dispatcher decides, per classified group, whether to submit its deletion.
type Dispatcher struct {
	API       GroupDeleter
	Mode      Mode
	Confirmer Confirmer
	DryRun    bool
	// Display, if set, is shown the contents of a non-empty group before it is confirmed.
	Display   func(Classification)
	Collector *reporting.Collector
}

// Dispatch acts on one classified group. The returned error is non-nil only for faults that end the run; everything
// else is reported through the GroupResult.
func (d *Dispatcher) Dispatch(ctx context.Context, c Classification) (GroupResult, error) {
	name := c.Group.Name

	if strings.EqualFold(c.Group.ProvisioningState, "Deleting") {
		return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeSkipped, Reason: ReasonAlreadyDeleting}), nil
	}

	if !c.Empty() {
		if d.Mode == ModeEmptyOnly {
			logging.Debugf("Leaving non-empty resource group %s in place", name)
			return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeSkipped, Reason: ReasonNotEmpty}), nil
		}

		if d.Display != nil {
			d.Display(c)
		}

		confirmer := d.Confirmer
		if confirmer == nil {
			confirmer = NeverConfirm
		}
		ok, err := confirmer.Confirm(ctx, c)
		if err != nil {
			if IsFatal(err) {
				return GroupResult{Group: name, Outcome: reporting.OutcomeFailed, Err: err}, err
			}
			d.Collector.RecordError(name, "Unable to confirm deletion", err)
			return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeFailed, Reason: err.Error(), Err: err}), nil
		}
		if !ok {
			logging.Infof("Skipping resource group %s", name)
			return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeSkipped, Reason: ReasonDeclined}), nil
		}
	}

	if d.DryRun {
		logging.Infof("[Dry run] Would delete resource group %s", name)
		return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeDryRun, Reason: ReasonDryRunWouldApply}), nil
	}

	return d.submit(ctx, name)
}

func (d *Dispatcher) submit(ctx context.Context, name string) (GroupResult, error) {
	logging.Infof("Deleting resource group %s", name)
	poller, err := d.API.BeginDeleteResourceGroup(ctx, name)
	if err != nil {
		subErr := SubmissionError{Group: name, Underlying: err}
		if IsFatal(err) {
			return GroupResult{Group: name, Outcome: reporting.OutcomeFailed, Err: subErr}, subErr
		}
		logging.Errorf("[Failed] %s", subErr)
		d.Collector.RecordError(name, "Unable to submit deletion", err)
		return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeFailed, Reason: err.Error(), Err: subErr}), nil
	}

	job := NewDeletionJob(name, poller)
	d.Collector.RecordJob(name, string(job.State), nil)
	return d.finish(GroupResult{Group: name, Outcome: reporting.OutcomeSubmitted, Job: job}), nil
}

func (d *Dispatcher) finish(r GroupResult) GroupResult {
	d.Collector.RecordOutcome(r.Group, r.Outcome, r.Reason)
	return r
}
