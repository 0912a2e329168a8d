package commands

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/gruntwork-io/azure-rg-nuke/azure"
	"github.com/gruntwork-io/azure-rg-nuke/config"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/azure-rg-nuke/telemetry"
	"github.com/gruntwork-io/go-commons/collections"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// loadConfigFile loads and parses a config file from the given path
func loadConfigFile(configFilePath string) (config.Config, error) {
	if configFilePath == "" {
		return config.Config{}, nil
	}

	telemetry.Track(telemetry.EventReadingConfig)

	configObjPtr, err := config.GetConfig(configFilePath)
	if err != nil {
		telemetry.Track(telemetry.EventErrorReadingConfig)
		return config.Config{}, ConfigFileReadError{FilePath: configFilePath, Underlying: err}
	}

	return *configObjPtr, nil
}

// parseLogLevel parses and sets the log level from CLI context
func parseLogLevel(c *cli.Context) error {
	logLevel := c.String(FlagLogLevel)
	parseErr := logging.ParseLogLevel(logLevel)
	if parseErr != nil {
		return errors.WithStackTrace(InvalidLogLevelError{
			Value:      logLevel,
			Underlying: parseErr,
		})
	}
	return nil
}

// parseTimeoutDurationParam parses a timeout duration string (e.g., "30m", "1h").
// Returns nil if the paramValue is empty or the default value.
func parseTimeoutDurationParam(flagName string, paramValue string) (*time.Duration, error) {
	if paramValue == DefaultDuration || paramValue == "" {
		return nil, nil //nolint:nilnil // Returning (nil, nil) is semantically correct here - means "no value provided, not an error"
	}

	// Parse the duration string
	duration, err := time.ParseDuration(paramValue)
	if err != nil {
		return nil, errors.WithStackTrace(InvalidDurationError{
			FlagName:   flagName,
			Value:      paramValue,
			Underlying: err,
		})
	}
	if duration < 0 {
		return nil, errors.WithStackTrace(InvalidDurationError{
			FlagName:   flagName,
			Value:      paramValue,
			Underlying: goerrors.New("duration must not be negative"),
		})
	}
	return &duration, nil
}

// parseOutputFormat validates the --output-format flag
func parseOutputFormat(c *cli.Context) (string, error) {
	format := c.String(FlagOutputFormat)
	if !collections.ListContainsElement(OutputFormats, format) {
		return "", errors.WithStackTrace(InvalidFlagError{Name: FlagOutputFormat, Value: format})
	}
	return format, nil
}

// parseOptions turns the CLI flags into the options of a cleanup run
func parseOptions(c *cli.Context) (azure.Options, error) {
	configObj, err := loadConfigFile(c.String(FlagConfig))
	if err != nil {
		return azure.Options{}, errors.WithStackTrace(err)
	}

	environment := c.String(FlagEnvironment)
	if _, err := azure.CloudConfiguration(environment); err != nil {
		return azure.Options{}, errors.WithStackTrace(InvalidFlagError{Name: FlagEnvironment, Value: environment})
	}

	waitTimeout, err := parseTimeoutDurationParam(FlagWaitTimeout, c.String(FlagWaitTimeout))
	if err != nil {
		return azure.Options{}, err
	}

	opts := azure.Options{
		SubscriptionID: c.String(FlagSubscriptionID),
		Credential: azure.Credential{
			TenantID:     c.String(FlagTenantID),
			ClientID:     c.String(FlagServicePrincipalID),
			ClientSecret: c.String(FlagServicePrincipalPassword),
			Environment:  environment,
		},
		Mode:             azure.ModeFromFlag(c.Bool(FlagCleanEmptyResourceGroups)),
		ForceDelete:      c.Bool(FlagForce),
		DryRun:           c.Bool(FlagDryRun),
		Wait:             c.Bool(FlagWait),
		Config:           configObj,
		RegistrationWait: azure.DefaultRegistrationWait,
	}
	if waitTimeout != nil {
		opts.WaitTimeout = *waitTimeout
	}

	return opts, nil
}

// runContext bounds ctx by the --timeout flag, if set
func runContext(c *cli.Context) (context.Context, context.CancelFunc, error) {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	timeout, err := parseTimeoutDurationParam(FlagTimeout, c.String(FlagTimeout))
	if err != nil {
		return nil, nil, err
	}
	if timeout == nil {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	return ctx, cancel, nil
}

// transcriptPath returns the transcript file to write, defaulting to a timestamped file in the working directory
func transcriptPath(flagValue string, now time.Time) string {
	if flagValue != "" {
		return flagValue
	}
	return TranscriptFilePrefix + now.Format(TranscriptTimeFormat) + ".log"
}

// forceDeleteCountdown gives the operator a chance to abort before non-empty groups are deleted without prompting.
// Returns the context error if ctx is cancelled during the countdown.
func forceDeleteCountdown(ctx context.Context, seconds int, tick time.Duration) error {
	telemetry.Track(telemetry.EventForcingDelete)

	logging.Info(fmt.Sprintf("The --%s flag is set, so waiting for %d seconds before deleting every resource group. If you don't want to proceed, hit CTRL+C now!!",
		FlagForce, seconds))

	for i := seconds; i > 0; i-- {
		pterm.Printf("%d...", i)
		select {
		case <-ctx.Done():
			pterm.Println()
			return ctx.Err()
		case <-time.After(tick):
		}
	}
	pterm.Println()

	return nil
}
