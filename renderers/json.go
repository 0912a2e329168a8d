package renderers

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gruntwork-io/azure-rg-nuke/reporting"
)

// JSONRenderer outputs the run report as JSON on Complete.
type JSONRenderer struct {
	writer  io.Writer
	config  JSONRendererConfig
	tracker groupTracker
}

// NewJSONRenderer creates a JSON renderer
func NewJSONRenderer(writer io.Writer, cfg JSONRendererConfig) *JSONRenderer {
	if writer == nil {
		writer = os.Stdout
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	return &JSONRenderer{
		writer:  writer,
		config:  cfg,
		tracker: newGroupTracker(),
	}
}

// OnEvent collects events and renders on Complete.
func (r *JSONRenderer) OnEvent(event reporting.Event) {
	if _, ok := event.(reporting.Complete); ok {
		_ = r.Render()
		return
	}
	r.tracker.track(event)
}

// Render outputs JSON
func (r *JSONRenderer) Render() error {
	output := RunOutput{
		RunID:          r.config.RunID,
		Timestamp:      time.Now(),
		Command:        r.config.Command,
		SubscriptionID: r.config.SubscriptionID,
		Mode:           r.config.Mode,
		DryRun:         r.config.DryRun,
		ResourceGroups: r.tracker.list(),
		Errors:         r.tracker.errors,
		Summary:        r.tracker.summary(),
	}
	return r.encode(output)
}

func (r *JSONRenderer) encode(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
