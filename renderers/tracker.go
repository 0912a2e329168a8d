package renderers

import (
	"github.com/gruntwork-io/azure-rg-nuke/azure"
	"github.com/gruntwork-io/azure-rg-nuke/reporting"
)

// groupTracker folds the event stream into one entry per resource group, in the order groups were first seen.
type groupTracker struct {
	order      []string
	groups     map[string]*GroupInfo
	classified map[string]bool
	errors     []GeneralError
}

func newGroupTracker() groupTracker {
	return groupTracker{groups: make(map[string]*GroupInfo), classified: make(map[string]bool)}
}

func (t *groupTracker) group(name string) *GroupInfo {
	g, ok := t.groups[name]
	if !ok {
		g = &GroupInfo{Name: name}
		t.groups[name] = g
		t.order = append(t.order, name)
	}
	return g
}

// track records event. It returns false for events that carry no group state.
func (t *groupTracker) track(event reporting.Event) bool {
	switch e := event.(type) {
	case reporting.GroupFound:
		g := t.group(e.Group)
		g.Location = e.Location
		g.ResourceCount = e.ResourceCount
		g.Resources = e.Resources
		t.classified[e.Group] = true
	case reporting.GroupOutcome:
		g := t.group(e.Group)
		g.Outcome = e.Outcome
		g.Reason = e.Reason
	case reporting.JobUpdated:
		g := t.group(e.Group)
		g.JobState = e.State
		g.JobError = e.Error
	case reporting.GeneralError:
		t.errors = append(t.errors, GeneralError{
			ResourceGroup: e.Group,
			Description:   e.Description,
			Error:         e.Error,
		})
	default:
		return false
	}
	return true
}

func (t *groupTracker) list() []GroupInfo {
	out := make([]GroupInfo, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.groups[name])
	}
	return out
}

func (t *groupTracker) summary() RunSummary {
	s := RunSummary{Found: len(t.order), GeneralErrors: len(t.errors)}
	for name, g := range t.groups {
		if t.classified[name] && g.ResourceCount == 0 {
			s.Empty++
		}
		switch g.Outcome {
		case reporting.OutcomeSubmitted:
			s.Scheduled++
		case reporting.OutcomeSkipped:
			s.Skipped++
		case reporting.OutcomeFailed:
			s.Failed++
		case reporting.OutcomeDryRun:
			s.DryRun++
		}
		switch g.JobState {
		case string(azure.JobSucceeded):
			s.Succeeded++
		case string(azure.JobTimedOut):
			s.TimedOut++
		case string(azure.JobFailed):
			s.JobsFailed++
		}
	}
	return s
}
