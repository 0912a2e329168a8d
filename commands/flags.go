package commands

import "github.com/urfave/cli/v2"

// Default values
const (
	DefaultOutputFormat   = "table"
	DefaultLogLevel       = "info"
	DefaultEnvironment    = "public"
	DefaultWaitTimeout    = "30m"
	DefaultDuration       = "0s"
	ForceDeleteCountdown  = 10
	TranscriptFilePrefix  = "azure-rg-nuke-"
	TranscriptTimeFormat  = "20060102-150405"
	OutputFormatJSON      = "json"
	OutputFormatTable     = "table"
	DestructiveWarningMsg = "THE NEXT STEPS ARE DESTRUCTIVE AND COMPLETELY IRREVERSIBLE, PROCEED WITH CAUTION!!!"
)

// OutputFormats are the accepted values of --output-format.
var OutputFormats = []string{OutputFormatTable, OutputFormatJSON}

// Flag Names
// These constants define all CLI flag names to avoid typos and enable refactoring
const (
	FlagSubscriptionID           = "subscription-id"
	FlagTenantID                 = "tenant-id"
	FlagServicePrincipalID       = "service-principal-id"
	FlagServicePrincipalPassword = "service-principal-password"
	FlagEnvironment              = "environment"
	FlagCleanEmptyResourceGroups = "clean-empty-resource-groups"
	FlagForce                    = "force"
	FlagDryRun                   = "dry-run"
	FlagTranscribe               = "transcribe"
	FlagTranscriptFile           = "transcript-file"
	FlagConfig                   = "config"
	FlagWait                     = "wait"
	FlagWaitTimeout              = "wait-timeout"
	FlagTimeout                  = "timeout"
	FlagOutputFormat             = "output-format"
	FlagOutputFile               = "output-file"
	FlagLogLevel                 = "log-level"
)

// CredentialFlags returns the service principal and subscription flags
func CredentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     FlagSubscriptionID,
			Usage:    "ID of the subscription whose resource groups are cleaned up.",
			EnvVars:  []string{"AZURE_SUBSCRIPTION_ID", "ARM_SUBSCRIPTION_ID"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     FlagTenantID,
			Usage:    "Azure AD tenant of the service principal.",
			EnvVars:  []string{"AZURE_TENANT_ID", "ARM_TENANT_ID"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     FlagServicePrincipalID,
			Usage:    "Client ID of the service principal.",
			EnvVars:  []string{"AZURE_CLIENT_ID", "ARM_CLIENT_ID"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     FlagServicePrincipalPassword,
			Usage:    "Client secret of the service principal.",
			EnvVars:  []string{"AZURE_CLIENT_SECRET", "ARM_CLIENT_SECRET"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    FlagEnvironment,
			Usage:   "Azure cloud to use (public, usgovernment, china).",
			EnvVars: []string{"ARM_ENVIRONMENT"},
			Value:   DefaultEnvironment,
		},
	}
}

// ExecutionFlags returns flags for execution control
func ExecutionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  FlagCleanEmptyResourceGroups,
			Usage: "Only delete resource groups that contain no resources. Non-empty resource groups are left untouched.",
		},
		&cli.BoolFlag{
			Name:  FlagForce,
			Usage: "Skip the per-group confirmation prompt. WARNING: this will delete every non-empty resource group without any confirmation.",
		},
		&cli.BoolFlag{
			Name:  FlagDryRun,
			Usage: "Report what would be deleted without submitting any deletion.",
		},
		&cli.BoolFlag{
			Name:  FlagWait,
			Usage: "Wait for the submitted deletions to finish and report their result.",
		},
		&cli.StringFlag{
			Name:  FlagWaitTimeout,
			Usage: "How long to wait for submitted deletions when --wait is set. Can be any valid Go duration, such as 10m or 1h.",
			Value: DefaultWaitTimeout,
		},
		&cli.StringFlag{
			Name:  FlagTimeout,
			Usage: "Bound the whole run. Can be any valid Go duration, such as 10m or 1h.",
		},
		&cli.StringFlag{
			Name:  FlagConfig,
			Usage: "YAML file specifying resource group filter rules and resource providers to register.",
		},
	}
}

// OutputFlags returns flags for output formatting and logging
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagOutputFormat,
			Usage: "Output format (table, json)",
			Value: DefaultOutputFormat,
		},
		&cli.StringFlag{
			Name:  FlagOutputFile,
			Usage: "Write the report to this file instead of stdout",
		},
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Usage:   "Set log level",
			EnvVars: []string{"LOG_LEVEL"},
			Value:   DefaultLogLevel,
		},
		&cli.BoolFlag{
			Name:  FlagTranscribe,
			Usage: "Copy all console output to a transcript file.",
		},
		&cli.StringFlag{
			Name:  FlagTranscriptFile,
			Usage: "Path of the transcript file. Defaults to azure-rg-nuke-<timestamp>.log in the working directory.",
		},
	}
}

// CombineFlags combines multiple flag slices into one
func CombineFlags(flagSets ...[]cli.Flag) []cli.Flag {
	var combined []cli.Flag
	for _, flags := range flagSets {
		combined = append(combined, flags...)
	}
	return combined
}
