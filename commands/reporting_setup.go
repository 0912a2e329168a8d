package commands

import (
	"sync"

	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/azure-rg-nuke/renderers"
	"github.com/gruntwork-io/azure-rg-nuke/reporting"
)

// setupReporting creates a collector and appropriate renderer based on output format.
// Returns the collector, cleanup function (which calls Complete() and closes writer), and any error.
// The jsonConfig is used when outputFormat is "json"; ignored otherwise.
func setupReporting(outputFormat string, outputFile string, jsonConfig renderers.JSONRendererConfig) (
	*reporting.Collector, func(), error) {
	writer, writerCleanup, err := renderers.GetOutputWriter(outputFile)
	if err != nil {
		return nil, nil, err
	}

	collector := reporting.NewCollector()

	// Combined cleanup: mark collector closed then close writer. Safe to call more than once.
	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			collector.Complete()
			if err := writerCleanup(); err != nil {
				logging.Errorf("Failed to close output writer: %v", err)
			}
		})
	}

	if outputFormat == OutputFormatJSON {
		collector.AddRenderer(renderers.NewJSONRenderer(writer, jsonConfig))
		return collector, cleanup, nil
	}

	// CLI format
	collector.AddRenderer(renderers.NewCLIRenderer(writer))
	return collector, cleanup, nil
}
