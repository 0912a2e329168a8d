package main

import (
	"github.com/gruntwork-io/azure-rg-nuke/commands"
	"github.com/gruntwork-io/azure-rg-nuke/telemetry"
	"github.com/gruntwork-io/go-commons/entrypoint"
)

// VERSION - Set at build time
var VERSION string

// TELEMETRY_CLIENT_ID - Set at build time. Telemetry stays off when empty.
var TELEMETRY_CLIENT_ID string

func main() {
	telemetry.InitTelemetry("azure-rg-nuke", VERSION, TELEMETRY_CLIENT_ID)
	app := commands.CreateCli(VERSION)
	entrypoint.RunApp(app)
}
