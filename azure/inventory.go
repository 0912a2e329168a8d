package azure

import (
	"context"

	"github.com/gruntwork-io/azure-rg-nuke/config"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
)

// ListResourceGroups returns every resource group in the subscription that passes the config rules.
func ListResourceGroups(ctx context.Context, api GroupLister, rules config.ResourceType) ([]ResourceGroup, error) {
	groups, err := api.ListResourceGroups(ctx)
	if err != nil {
		return nil, QueryError{Operation: "list resource groups", Underlying: err}
	}

	var result []ResourceGroup
	for _, group := range groups {
		name := group.Name
		if !rules.ShouldInclude(config.ResourceValue{Name: &name, Tags: group.Tags}) {
			logging.Debugf("[Excluded] resource group %s by config rules", group.Name)
			continue
		}
		result = append(result, group)
	}

	logging.Debugf("Found %d resource group(s), %d after filtering", len(groups), len(result))
	return result, nil
}
