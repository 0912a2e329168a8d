package commands

import (
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/urfave/cli/v2"
)

// CreateCli - Create the CLI app with all flags and usage text configured.
func CreateCli(version string) *cli.App {
	app := cli.NewApp()

	app.Name = "azure-rg-nuke"
	app.HelpName = app.Name
	app.Authors = []*cli.Author{
		{
			Name:  "Gruntwork",
			Email: "www.gruntwork.io",
		},
	}
	app.Version = version
	app.Usage = "A CLI tool to delete the resource groups of an Azure subscription, either only the empty ones or all of them. " +
		"THIS TOOL WILL COMPLETELY REMOVE THE RESOURCE GROUPS AND EVERYTHING IN THEM AND ITS EFFECTS ARE IRREVERSIBLE!!!"
	app.Flags = CombineFlags(CredentialFlags(), ExecutionFlags(), OutputFlags())
	app.Action = errors.WithPanicHandling(azureNuke)

	return app
}
