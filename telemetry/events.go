package telemetry

const (
	EventStart                 = "Start azure-rg-nuke"
	EventEnd                   = "End azure-rg-nuke"
	EventReadingConfig         = "Reading config file"
	EventErrorReadingConfig    = "Error reading config file"
	EventRunComplete           = "Run complete"
	EventErrorAuthenticating   = "Error authenticating"
	EventNoResourceGroups      = "No resource groups found"
	EventDryRun                = "Dry run"
	EventForcingDelete         = "Forcing deletion"
	EventEmptyOnly             = "Cleaning empty resource groups"
	EventDeletionsScheduled    = "Resource group deletions scheduled"
	EventGroupFailures         = "Resource group failures"
	EventAwaitingJobs          = "Awaiting deletion jobs"
	EventErrorRenderingPrompts = "Error confirming deletion"
)
