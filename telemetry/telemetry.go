package telemetry

import (
	"os"
	"path/filepath"

	"github.com/gruntwork-io/go-commons/telemetry"
)

var sendTelemetry = false
var telemetryClient telemetry.MixpanelTelemetryTracker
var cmd = ""
var isCircleCi = false
var subscription = ""

func InitTelemetry(name string, version string, clientId string) {
	_, disableTelemetryFlag := os.LookupEnv("DISABLE_TELEMETRY")
	isCircleCi = os.Getenv("CIRCLECI") == "true"
	clientIdExists := clientId != ""
	sendTelemetry = !disableTelemetryFlag && clientIdExists
	if sendTelemetry {
		cmd = filepath.Base(os.Args[0])
		telemetryClient = telemetry.NewMixPanelTelemetryClient(clientId, name, version)
	}
}

// Enabled reports whether events are being sent.
func Enabled() bool {
	return sendTelemetry
}

func SetSubscriptionId(subscriptionId string) {
	subscription = subscriptionId
}

func TrackEvent(ctx telemetry.EventContext, extraProperties map[string]interface{}) {
	if sendTelemetry {
		ctx.Command = cmd
		if extraProperties == nil {
			extraProperties = map[string]interface{}{}
		}
		extraProperties["isCircleCi"] = isCircleCi
		extraProperties["subscriptionId"] = subscription
		telemetryClient.TrackEvent(ctx, extraProperties)
	}
}

// Track sends eventName with no extra properties.
func Track(eventName string) {
	TrackEvent(telemetry.EventContext{EventName: eventName}, map[string]interface{}{})
}

// TrackCommandLifecycle sends the start event and returns a func that sends the matching end event.
func TrackCommandLifecycle() func() {
	Track(EventStart)
	return func() {
		Track(EventEnd)
	}
}
