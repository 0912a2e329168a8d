package spinner

import (
	"sync"

	"github.com/pterm/pterm"
)

var s pterm.SpinnerPrinter = pterm.DefaultSpinner

var (
	mu     sync.Mutex
	active *pterm.SpinnerPrinter
)

func init() {
	s.Sequence = []string{"☢️ ", "💥", "🔥", "❌"}
	s.RemoveWhenDone = true
}

func GetSpinner() pterm.SpinnerPrinter {
	return s
}

// Start shows the spinner with text. It does nothing if the spinner is already running.
func Start(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return nil
	}
	started, err := s.Start(text)
	if err != nil {
		return err
	}
	active = started
	return nil
}

// UpdateText changes the text of the running spinner.
func UpdateText(t string) {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		active.UpdateText(t)
	}
}

// Stop removes the spinner. Safe to call when it is not running.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		_ = active.Stop()
		active = nil
	}
}
