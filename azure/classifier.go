package azure

import (
	"context"

	"github.com/gruntwork-io/azure-rg-nuke/logging"
)

// ClassifyGroup queries the live contents of group. Nothing is cached between groups.
func ClassifyGroup(ctx context.Context, api ResourceLister, group ResourceGroup) (Classification, error) {
	resources, err := api.ListResources(ctx, group.Name)
	if err != nil {
		return Classification{Group: group}, QueryError{Operation: "list resources", Group: group.Name, Underlying: err}
	}

	c := Classification{Group: group, Resources: resources}
	if c.Empty() {
		logging.Debugf("Resource group %s is empty", group.Name)
	} else {
		logging.Debugf("Resource group %s contains %d resource(s)", group.Name, len(resources))
	}
	return c, nil
}
