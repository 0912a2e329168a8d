// Package reporting provides event-driven reporting for azure-rg-nuke runs.
//
// Key components:
//   - Event: Interface for reportable events (GroupFound, GroupOutcome, JobUpdated, GeneralError)
//   - Collector: Thread-safe event collector that routes events to renderers
//   - Renderer: Interface for output handlers (implemented in renderers package)
//
// The collector is passed explicitly as a function parameter to functions that need it.
package reporting

// Event is the interface for all reportable events.
type Event interface {
	EventType() string
}

// GroupFound is emitted once a resource group has been classified.
type GroupFound struct {
	Group         string   `json:"resource_group"`
	Location      string   `json:"location,omitempty"`
	ResourceCount int      `json:"resource_count"`
	Empty         bool     `json:"empty"`
	Resources     []string `json:"resources,omitempty"`
}

func (e GroupFound) EventType() string { return "group_found" }

// Outcome values carried by GroupOutcome.
const (
	OutcomeSubmitted = "submitted"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
	OutcomeDryRun    = "dry_run"
)

// GroupOutcome is emitted when a resource group reaches a terminal state in this run.
type GroupOutcome struct {
	Group   string `json:"resource_group"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

func (e GroupOutcome) EventType() string { return "group_outcome" }

// JobUpdated is emitted when a deletion job is submitted and again whenever its state is known to change.
type JobUpdated struct {
	Group string `json:"resource_group"`
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

func (e JobUpdated) EventType() string { return "job_updated" }

// GeneralError is emitted for errors not tied to a deletion job.
type GeneralError struct {
	Group       string `json:"resource_group,omitempty"` // optional
	Description string `json:"description"`
	Error       string `json:"error"`
}

func (e GeneralError) EventType() string { return "general_error" }

// Progress events - these are for live UI updates and are not included in final output.
// Renderers that don't support live progress (like JSON) simply ignore these events.

// ScanProgress is emitted before a resource group is classified.
type ScanProgress struct {
	Group string
	Index int
	Total int
}

func (e ScanProgress) EventType() string { return "scan_progress" }

// Complete is emitted by Collector.Complete so renderers can flush their final output.
type Complete struct{}

func (e Complete) EventType() string { return "complete" }
