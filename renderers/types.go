package renderers

import (
	"io"
	"os"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

// GetOutputWriter returns a writer for the specified output file or stdout if empty.
func GetOutputWriter(outputFile string) (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, errors.WithStackTrace(err)
	}

	return file, file.Close, nil
}

// JSON Output Types

// RunOutput represents the JSON output structure of a cleanup run.
type RunOutput struct {
	RunID          string         `json:"run_id"`
	Timestamp      time.Time      `json:"timestamp"`
	Command        string         `json:"command"`
	SubscriptionID string         `json:"subscription_id"`
	Mode           string         `json:"mode"`
	DryRun         bool           `json:"dry_run"`
	ResourceGroups []GroupInfo    `json:"resource_groups"`
	Errors         []GeneralError `json:"general_errors,omitempty"`
	Summary        RunSummary     `json:"summary"`
}

// GroupInfo represents what the run did to a single resource group.
type GroupInfo struct {
	Name          string   `json:"name"`
	Location      string   `json:"location,omitempty"`
	ResourceCount int      `json:"resource_count"`
	Resources     []string `json:"resources,omitempty"`
	Outcome       string   `json:"outcome"`
	Reason        string   `json:"reason,omitempty"`
	JobState      string   `json:"job_state,omitempty"`
	JobError      string   `json:"job_error,omitempty"`
}

// GeneralError represents a general error in JSON output.
type GeneralError struct {
	ResourceGroup string `json:"resource_group,omitempty"`
	Description   string `json:"description"`
	Error         string `json:"error"`
}

// RunSummary provides summary statistics for a cleanup run. Failed counts groups that could not be handled;
// awaited deletions that ended in error are counted in JobsFailed, and their groups stay in Scheduled.
type RunSummary struct {
	Found         int `json:"found"`
	Empty         int `json:"empty"`
	Scheduled     int `json:"scheduled"`
	Skipped       int `json:"skipped"`
	Failed        int `json:"failed"`
	DryRun        int `json:"dry_run"`
	Succeeded     int `json:"succeeded"`
	TimedOut      int `json:"timed_out"`
	JobsFailed    int `json:"jobs_failed"`
	GeneralErrors int `json:"general_errors"`
}

// JSONRendererConfig holds configuration for the JSON renderer.
type JSONRendererConfig struct {
	Command        string
	SubscriptionID string
	Mode           string
	DryRun         bool
	// RunID identifies the run in the output. A random UUID is used if empty.
	RunID string
}
