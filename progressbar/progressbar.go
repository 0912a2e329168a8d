package progressbar

import (
	"sync"
	"time"

	"github.com/pterm/pterm"
)

var (
	mu sync.Mutex
	p  *pterm.ProgressbarPrinter
)

func init() {
	bar := pterm.DefaultProgressbar
	p = &bar
	p.RemoveWhenDone = true
	p.ElapsedTimeRoundingFactor = time.Second
}

func GetProgressbar() *pterm.ProgressbarPrinter {
	mu.Lock()
	defer mu.Unlock()
	return p
}

// StartProgressBarWithLength - Starts the progress bar with the correct number of items
func StartProgressBarWithLength(length int, title string) {
	mu.Lock()
	defer mu.Unlock()

	started, err := p.WithTotal(length).WithTitle(title).Start()
	if err == nil {
		p = started
	}
}

// Increment advances the bar by one and shows title.
func Increment(title string) {
	mu.Lock()
	defer mu.Unlock()

	p.UpdateTitle(title)
	p.Increment()
}

// Stop removes the bar.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if p.IsActive {
		_, _ = p.Stop()
	}
}
