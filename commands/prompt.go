package commands

import (
	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/azure-rg-nuke/telemetry"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/pterm/pterm"
)

// renderDestructiveWarning is shown once before any prompt.
func renderDestructiveWarning() {
	pterm.Println()
	pterm.Warning.Println(DestructiveWarningMsg)
}

// promptForAnswer asks the operator a single question and returns the raw answer.
func promptForAnswer(prompt string) (string, error) {
	confirmPrompt := pterm.DefaultInteractiveTextInput.WithMultiLine(false)
	input, err := confirmPrompt.Show(prompt)
	if err != nil {
		telemetry.Track(telemetry.EventErrorRenderingPrompts)
		logging.Errorf("[Failed to render prompt] %s", err)
		return "", errors.WithStackTrace(err)
	}

	pterm.Println()
	return input, nil
}
