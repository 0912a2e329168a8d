package azure

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"golang.org/x/sync/errgroup"
)

// JobState is the last known state of a deletion job.
type JobState string

const (
	JobSubmitted JobState = "submitted"
	JobSucceeded JobState = "succeeded"
	JobFailed    JobState = "failed"
	JobTimedOut  JobState = "timed_out"
)

// PollFrequency is how often an awaited deletion is polled.
const PollFrequency = 10 * time.Second

// DeletionJob is the handle to one asynchronous resource group deletion.
type DeletionJob struct {
	Group       string
	SubmittedAt time.Time
	State       JobState
	Err         error

	poller Poller
}

// NewDeletionJob wraps a poller returned by BeginDeleteResourceGroup.
func NewDeletionJob(group string, poller Poller) *DeletionJob {
	return &DeletionJob{
		Group:       group,
		SubmittedAt: time.Now(),
		State:       JobSubmitted,
		poller:      poller,
	}
}

// Terminal reports whether the job will not change state again.
func (j *DeletionJob) Terminal() bool {
	return j.State != JobSubmitted
}

// AwaitJobs waits for every job concurrently, bounded by timeout. A zero timeout waits until ctx is done. onDone, if
// set, is called once per job as it finishes, never concurrently.
func AwaitJobs(ctx context.Context, jobs []*DeletionJob, timeout time.Duration, onDone func(*DeletionJob)) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		if job.Terminal() || job.poller == nil {
			continue
		}

		job := job
		g.Go(func() error {
			_, err := job.poller.PollUntilDone(gctx, &runtime.PollUntilDoneOptions{Frequency: PollFrequency})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				job.State = JobSucceeded
				logging.Debugf("Deletion of resource group %s completed", job.Group)
			case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
				job.State = JobTimedOut
				job.Err = err
				logging.Debugf("Gave up waiting for deletion of resource group %s", job.Group)
			default:
				job.State = JobFailed
				job.Err = err
				logging.Debugf("Deletion of resource group %s failed: %s", job.Group, err)
			}

			if onDone != nil {
				onDone(job)
			}
			// Job failures are per job and must not cancel the others.
			return nil
		})
	}
	_ = g.Wait()
}
