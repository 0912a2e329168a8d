package azure

import (
	"context"
	"time"

	"github.com/gruntwork-io/azure-rg-nuke/config"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/azure-rg-nuke/reporting"
	"github.com/hashicorp/go-multierror"
)

// Options are the per-run settings of a Cleaner.
type Options struct {
	SubscriptionID string
	Credential     Credential
	Mode           Mode
	// ForceDelete deletes non-empty groups in ModeFull without asking.
	ForceDelete bool
	DryRun      bool
	// Wait awaits the submitted deletions for at most WaitTimeout before returning.
	Wait        bool
	WaitTimeout time.Duration
	Config      config.Config
	// RegistrationWait bounds the wait for newly registered providers.
	RegistrationWait RegistrationWait
}

// Cleaner runs one cleanup of a subscription.
type Cleaner struct {
	Options       Options
	Authenticator *Authenticator
	// NewAPI builds the ARM API for an authenticated session. Defaults to NewClient.
	NewAPI    func(*Session) (API, error)
	Confirmer Confirmer
	Display   func(Classification)
	Collector *reporting.Collector
	// OnGroupStart, if set, is called before each group is classified.
	OnGroupStart func(group string, index, total int)
	// OnAwaitStart, if set, is called before submitted deletions are awaited.
	OnAwaitStart func(jobs int)
	// OnJobDone, if set, is called as each awaited deletion finishes.
	OnJobDone func(*DeletionJob)
}

// RunResult is what a run did to each group it considered.
type RunResult struct {
	Session *Session
	Groups  []GroupResult
	errs    *multierror.Error
}

// Jobs returns the deletion jobs submitted during the run, in submission order.
func (r *RunResult) Jobs() []*DeletionJob {
	var jobs []*DeletionJob
	for _, g := range r.Groups {
		if g.Job != nil {
			jobs = append(jobs, g.Job)
		}
	}
	return jobs
}

// Scheduled is the number of deletions submitted.
func (r *RunResult) Scheduled() int {
	return len(r.Jobs())
}

// Failed returns the results of the groups that failed.
func (r *RunResult) Failed() []GroupResult {
	var failed []GroupResult
	for _, g := range r.Groups {
		if g.Outcome == reporting.OutcomeFailed {
			failed = append(failed, g)
		}
	}
	return failed
}

// Err aggregates every per-group failure, including awaited jobs that did not succeed. Nil if there were none.
func (r *RunResult) Err() error {
	if r == nil {
		return nil
	}
	return r.errs.ErrorOrNil()
}

func (r *RunResult) addError(err error) {
	r.errs = multierror.Append(r.errs, err)
}

// Run authenticates, registers providers, lists and classifies every group, and dispatches deletions. A non-nil error
// means the run was aborted; per-group failures are only reported through RunResult.Err.
func (c *Cleaner) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{}

	authenticator := c.Authenticator
	if authenticator == nil {
		authenticator = NewAuthenticator()
	}
	session, err := authenticator.Authenticate(ctx, c.Options.Credential, c.Options.SubscriptionID)
	if err != nil {
		return result, err
	}
	result.Session = session

	api, err := c.newAPI(session)
	if err != nil {
		return result, err
	}

	if err := RegisterProviders(ctx, api, c.Options.Config.Providers, c.Options.RegistrationWait); err != nil {
		return result, err
	}

	groups, err := ListResourceGroups(ctx, api, c.Options.Config.ResourceGroup)
	if err != nil {
		return result, err
	}
	logging.Infof("Found %d resource group(s) in subscription %s", len(groups), session.SubscriptionID)

	dispatcher := &Dispatcher{
		API:       api,
		Mode:      c.Options.Mode,
		Confirmer: c.confirmer(),
		DryRun:    c.Options.DryRun,
		Display:   c.Display,
		Collector: c.Collector,
	}

	for i, group := range groups {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		c.Collector.UpdateScanProgress(group.Name, i+1, len(groups))
		if c.OnGroupStart != nil {
			c.OnGroupStart(group.Name, i+1, len(groups))
		}

		classification, err := ClassifyGroup(ctx, api, group)
		if err != nil {
			if IsFatal(err) {
				return result, err
			}
			logging.Errorf("[Failed] %s", err)
			c.Collector.RecordError(group.Name, "Unable to list resources", err)
			c.Collector.RecordOutcome(group.Name, reporting.OutcomeFailed, err.Error())
			result.Groups = append(result.Groups, GroupResult{Group: group.Name, Outcome: reporting.OutcomeFailed, Reason: err.Error(), Err: err})
			result.addError(err)
			continue
		}
		c.Collector.RecordFound(group.Name, group.Location, classification.ResourceIDs())

		groupResult, err := dispatcher.Dispatch(ctx, classification)
		if err != nil {
			return result, err
		}
		result.Groups = append(result.Groups, groupResult)
		if groupResult.Err != nil {
			result.addError(groupResult.Err)
		}
	}

	logging.Infof("%d resource group deletion(s) scheduled", result.Scheduled())

	if c.Options.Wait && result.Scheduled() > 0 {
		c.await(ctx, result)
	}

	return result, nil
}

func (c *Cleaner) await(ctx context.Context, result *RunResult) {
	logging.Infof("Waiting up to %s for %d deletion(s) to finish", c.Options.WaitTimeout, result.Scheduled())
	if c.OnAwaitStart != nil {
		c.OnAwaitStart(result.Scheduled())
	}
	AwaitJobs(ctx, result.Jobs(), c.Options.WaitTimeout, func(job *DeletionJob) {
		c.Collector.RecordJob(job.Group, string(job.State), job.Err)
		if job.State != JobSucceeded {
			result.addError(DeletionError{Group: job.Group, State: job.State, Underlying: job.Err})
		}
		if c.OnJobDone != nil {
			c.OnJobDone(job)
		}
	})
}

func (c *Cleaner) newAPI(session *Session) (API, error) {
	if c.NewAPI != nil {
		return c.NewAPI(session)
	}
	client, err := NewClient(session)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Cleaner) confirmer() Confirmer {
	if c.Options.ForceDelete {
		return AlwaysConfirm
	}
	if c.Confirmer == nil {
		return NeverConfirm
	}
	return c.Confirmer
}
