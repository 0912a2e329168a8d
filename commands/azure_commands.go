package commands

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/gruntwork-io/azure-rg-nuke/azure"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/azure-rg-nuke/progressbar"
	"github.com/gruntwork-io/azure-rg-nuke/renderers"
	"github.com/gruntwork-io/azure-rg-nuke/spinner"
	"github.com/gruntwork-io/azure-rg-nuke/telemetry"
	"github.com/gruntwork-io/go-commons/errors"
	commonTelemetry "github.com/gruntwork-io/go-commons/telemetry"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

// Overridden in tests.
var (
	newAuthenticator = azure.NewAuthenticator
	newAzureAPI      func(*azure.Session) (azure.API, error)
	askOperator      = azure.AskFunc(promptForAnswer)
	countdownTick    = time.Second
)

// azureNuke is the root action: it cleans up the resource groups of one subscription.
func azureNuke(c *cli.Context) error {
	defer telemetry.TrackCommandLifecycle()()

	// Parse and set log level
	if err := parseLogLevel(c); err != nil {
		return err
	}

	if c.Bool(FlagTranscribe) {
		path := transcriptPath(c.String(FlagTranscriptFile), time.Now())
		if err := logging.StartTranscript(path); err != nil {
			return errors.WithStackTrace(err)
		}
		defer func() {
			if err := logging.StopTranscript(); err != nil {
				logging.Errorf("Failed to close transcript: %v", err)
			}
		}()
		logging.Infof("Transcript started, output file is %s", path)
	}

	opts, err := parseOptions(c)
	if err != nil {
		return err
	}
	telemetry.SetSubscriptionId(opts.SubscriptionID)

	outputFormat, err := parseOutputFormat(c)
	if err != nil {
		return err
	}

	ctx, cancel, err := runContext(c)
	if err != nil {
		return err
	}
	defer cancel()

	collector, cleanup, err := setupReporting(outputFormat, c.String(FlagOutputFile), renderers.JSONRendererConfig{
		Command:        c.App.Name,
		SubscriptionID: opts.SubscriptionID,
		Mode:           opts.Mode.String(),
		DryRun:         opts.DryRun,
	})
	if err != nil {
		return errors.WithStackTrace(err)
	}
	defer cleanup()

	interactive := opts.Mode == azure.ModeFull && !opts.ForceDelete
	switch {
	case opts.DryRun:
		telemetry.Track(telemetry.EventDryRun)
		logging.Info("Dry run: no resource group will be deleted.")
	case opts.Mode == azure.ModeEmptyOnly:
		telemetry.Track(telemetry.EventEmptyOnly)
	case opts.ForceDelete:
		if err := forceDeleteCountdown(ctx, ForceDeleteCountdown, countdownTick); err != nil {
			return errors.WithStackTrace(err)
		}
	default:
		renderDestructiveWarning()
	}

	cleaner := &azure.Cleaner{
		Options:       opts,
		Authenticator: newAuthenticator(),
		NewAPI:        newAzureAPI,
		Confirmer:     azure.PromptConfirmer(askOperator),
		Collector:     collector,
		Display: func(classification azure.Classification) {
			if err := renderers.PrintGroupContents(nil, classification); err != nil {
				logging.Warnf("Unable to list contents of %s: %v", classification.Group.Name, err)
			}
		},
		OnAwaitStart: func(jobs int) {
			spinner.Stop()
			telemetry.Track(telemetry.EventAwaitingJobs)
			progressbar.StartProgressBarWithLength(jobs, "Waiting for resource group deletions")
		},
		OnJobDone: func(job *azure.DeletionJob) {
			progressbar.Increment(fmt.Sprintf("Resource group %s: %s", job.Group, job.State))
		},
	}

	// Prompts and the spinner would fight over the terminal.
	if !interactive {
		if err := spinner.Start("Inspecting resource groups"); err != nil {
			logging.Debugf("Unable to start spinner: %v", err)
		}
		cleaner.OnGroupStart = func(group string, index, total int) {
			spinner.UpdateText(fmt.Sprintf("Inspecting resource group %s (%d/%d)", group, index, total))
		}
	}

	result, err := cleaner.Run(ctx)
	spinner.Stop()
	progressbar.Stop()
	if err != nil {
		var authErr azure.AuthenticationError
		if goerrors.As(err, &authErr) {
			telemetry.Track(telemetry.EventErrorAuthenticating)
		}
		return errors.WithStackTrace(err)
	}
	telemetry.Track(telemetry.EventRunComplete)

	if len(result.Groups) == 0 {
		telemetry.Track(telemetry.EventNoResourceGroups)
		logging.Info("Nothing to clean up, you're all good!")
	}
	if result.Scheduled() > 0 {
		telemetry.TrackEvent(commonTelemetry.EventContext{
			EventName: telemetry.EventDeletionsScheduled,
		}, map[string]interface{}{
			"scheduled": result.Scheduled(),
		})
	}

	if groupErrs := result.Err(); groupErrs != nil {
		telemetry.Track(telemetry.EventGroupFailures)
		count := 1
		if merr, ok := groupErrs.(*multierror.Error); ok {
			count = len(merr.Errors)
		}
		return GroupFailuresError{Count: count, Underlying: groupErrs}
	}

	return nil
}
