package reporting

import (
	"sync"
)

// Renderer processes events and produces output.
// CLI and JSON renderers both buffer events and write their report on Complete.
type Renderer interface {
	// OnEvent is called for each event as it occurs.
	OnEvent(event Event)
}

// Collector receives events and routes them to renderers.
// Thread-safe for concurrent event emission.
type Collector struct {
	mu        sync.Mutex
	renderers []Renderer
	closed    bool
}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{
		renderers: make([]Renderer, 0),
	}
}

// AddRenderer adds a renderer to receive events.
// Must be called during setup before any concurrent operations.
func (c *Collector) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	c.renderers = append(c.renderers, r)
}

// Emit sends an event to all renderers.
func (c *Collector) Emit(event Event) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	for _, r := range c.renderers {
		r.OnEvent(event)
	}
}

// RecordFound reports a classified resource group.
func (c *Collector) RecordFound(group, location string, resources []string) {
	c.Emit(GroupFound{
		Group:         group,
		Location:      location,
		ResourceCount: len(resources),
		Empty:         len(resources) == 0,
		Resources:     resources,
	})
}

// RecordOutcome reports the terminal state of a resource group.
func (c *Collector) RecordOutcome(group, outcome, reason string) {
	c.Emit(GroupOutcome{Group: group, Outcome: outcome, Reason: reason})
}

// RecordJob reports the state of a deletion job. err may be nil.
func (c *Collector) RecordJob(group, state string, err error) {
	e := JobUpdated{Group: group, State: state}
	if err != nil {
		e.Error = err.Error()
	}
	c.Emit(e)
}

// RecordError reports an error that is not tied to a deletion job.
func (c *Collector) RecordError(group, description string, err error) {
	e := GeneralError{Group: group, Description: description}
	if err != nil {
		e.Error = err.Error()
	}
	c.Emit(e)
}

// UpdateScanProgress reports which resource group is being classified.
func (c *Collector) UpdateScanProgress(group string, index, total int) {
	c.Emit(ScanProgress{Group: group, Index: index, Total: total})
}

// Complete marks collection as finished and signals renderers to flush output.
// Emits Complete event before closing, allowing renderers to output final state.
// Safe to call multiple times - subsequent calls are no-ops.
func (c *Collector) Complete() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	for _, r := range c.renderers {
		r.OnEvent(Complete{})
	}

	c.closed = true
}
