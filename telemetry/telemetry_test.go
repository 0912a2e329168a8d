package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitTelemetryWithoutClientId(t *testing.T) {
	InitTelemetry("azure-rg-nuke", "v0.0.1", "")
	assert.False(t, Enabled())

	// Nothing is sent, so none of these may panic on the nil client.
	SetSubscriptionId("00000000-0000-0000-0000-000000000000")
	Track(EventStart)
	TrackCommandLifecycle()()
}

func TestInitTelemetryDisabledByEnv(t *testing.T) {
	t.Setenv("DISABLE_TELEMETRY", "true")

	InitTelemetry("azure-rg-nuke", "v0.0.1", "client-id")
	assert.False(t, Enabled())
}
