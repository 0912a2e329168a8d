package renderers

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gruntwork-io/azure-rg-nuke/azure"
	"github.com/gruntwork-io/azure-rg-nuke/reporting"
	"github.com/pterm/pterm"
)

const (
	SuccessEmoji = "✅"
	FailureEmoji = "❌"
	PendingEmoji = "⏳"
	SkippedEmoji = "⏭️"
)

// CLIRenderer outputs the run report to the terminal as tables.
// Collects group outcomes and job states and renders the summary on Complete.
type CLIRenderer struct {
	writer  io.Writer
	tracker groupTracker
}

// NewCLIRenderer creates a CLI renderer.
// The writer parameter specifies where the final table output will be written.
func NewCLIRenderer(writer io.Writer) *CLIRenderer {
	if writer == nil {
		writer = os.Stdout
	}
	return &CLIRenderer{
		writer:  writer,
		tracker: newGroupTracker(),
	}
}

// OnEvent collects results and renders the report on Complete.
func (r *CLIRenderer) OnEvent(event reporting.Event) {
	if _, ok := event.(reporting.Complete); ok {
		_ = r.Render()
		return
	}
	r.tracker.track(event)
}

// Render outputs the errors table, the resource group table and the scheduled count.
func (r *CLIRenderer) Render() error {
	r.printErrors(r.tracker.errors)
	r.printRunReport(r.tracker.list())
	return nil
}

func (r *CLIRenderer) printErrors(errors []GeneralError) {
	if len(errors) == 0 {
		return
	}

	// Workaround an issue where the pterm progressbar might not be cleaned up correctly
	_, _ = r.writer.Write([]byte("\r"))

	tableData := pterm.TableData{
		{"Resource Group", "Description", "Error"},
	}
	for _, err := range errors {
		tableData = append(tableData, []string{err.ResourceGroup, err.Description, truncate(removeNewlines(err.Error), 80)})
	}

	_ = pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithRowSeparator("-").
		WithLeftAlignment().
		WithData(tableData).
		WithWriter(r.writer).
		Render()

	// Workaround an issue where the pterm progressbar might not be cleaned up correctly
	_, _ = r.writer.Write([]byte("\r"))
}

func (r *CLIRenderer) printRunReport(groups []GroupInfo) {
	// Workaround an issue where the pterm progressbar might not be cleaned up correctly
	_, _ = r.writer.Write([]byte("\r"))

	if len(groups) == 0 {
		pterm.Info.WithWriter(r.writer).Println("No resource groups touched in this run.")
		pterm.Info.WithWriter(r.writer).Println(scheduledMessage(0))
		return
	}

	tableData := pterm.TableData{
		{"Resource Group", "Location", "Resources", "Outcome", "Deletion"},
	}

	scheduled := 0
	for _, g := range groups {
		if g.Outcome == reporting.OutcomeSubmitted {
			scheduled++
		}
		tableData = append(tableData, []string{g.Name, g.Location, strconv.Itoa(g.ResourceCount), outcomeText(g), jobText(g)})
	}

	_ = pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithRowSeparator("-").
		WithLeftAlignment().
		WithData(tableData).
		WithWriter(r.writer).
		Render()

	pterm.Info.WithWriter(r.writer).Println(scheduledMessage(scheduled))

	// Workaround an issue where the pterm progressbar might not be cleaned up correctly
	_, _ = r.writer.Write([]byte("\r"))
}

func scheduledMessage(n int) string {
	return fmt.Sprintf("%d resource group deletion(s) scheduled", n)
}

func outcomeText(g GroupInfo) string {
	switch g.Outcome {
	case reporting.OutcomeSkipped:
		return fmt.Sprintf("%s retained (%s)", SkippedEmoji, g.Reason)
	case reporting.OutcomeFailed:
		return fmt.Sprintf("%s %s", FailureEmoji, truncate(removeNewlines(g.Reason), 40))
	case reporting.OutcomeDryRun:
		return "dry run: " + g.Reason
	default:
		return g.Outcome
	}
}

func jobText(g GroupInfo) string {
	switch g.JobState {
	case "":
		return ""
	case string(azure.JobSucceeded):
		return SuccessEmoji
	case string(azure.JobSubmitted):
		return PendingEmoji + " submitted"
	case string(azure.JobTimedOut):
		return PendingEmoji + " still running"
	default:
		return fmt.Sprintf("%s %s", FailureEmoji, truncate(removeNewlines(g.JobError), 40))
	}
}

// PrintGroupContents lists the resources of a non-empty group before the operator is asked about it. A nil writer
// prints through pterm, so the listing is captured by a running transcript.
func PrintGroupContents(writer io.Writer, c azure.Classification) error {
	header := pterm.DefaultSection.WithTopPadding(1).WithBottomPadding(0).
		Sprintfln("Resource group %s contains %d resource(s)", c.Group.Name, len(c.Resources))

	var items []pterm.BulletListItem
	for _, res := range c.Resources {
		items = append(items, pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("%s (%s)", res.Name, res.Type)})
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}

	if writer == nil {
		pterm.Print(header + list)
		return nil
	}
	_, err = fmt.Fprint(writer, header+list)
	return err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func removeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}
