package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ForceDeletionTypes are the resource types ARM deletes forcefully when a resource group is removed.
const ForceDeletionTypes = "Microsoft.Compute/virtualMachines,Microsoft.Compute/virtualMachineScaleSets"

// Client implements API on top of the armresources clients bound to one Session.
type Client struct {
	groups    *armresources.ResourceGroupsClient
	resources *armresources.Client
	providers *armresources.ProvidersClient
}

// NewClient builds the ARM clients for the session's subscription.
func NewClient(session *Session) (*Client, error) {
	groups, err := armresources.NewResourceGroupsClient(session.SubscriptionID, session.Credential, session.ClientOptions)
	if err != nil {
		return nil, fmt.Errorf("new resource groups client: %w", err)
	}
	resources, err := armresources.NewClient(session.SubscriptionID, session.Credential, session.ClientOptions)
	if err != nil {
		return nil, fmt.Errorf("new resources client: %w", err)
	}
	providers, err := armresources.NewProvidersClient(session.SubscriptionID, session.Credential, session.ClientOptions)
	if err != nil {
		return nil, fmt.Errorf("new providers client: %w", err)
	}

	return &Client{
		groups:    groups,
		resources: resources,
		providers: providers,
	}, nil
}

func (c *Client) ListResourceGroups(ctx context.Context) ([]ResourceGroup, error) {
	return collectResourceGroups(ctx, c.groups.NewListPager(nil))
}

func (c *Client) ListResources(ctx context.Context, group string) ([]Resource, error) {
	return collectResources(ctx, c.resources.NewListByResourceGroupPager(group, nil))
}

func (c *Client) BeginDeleteResourceGroup(ctx context.Context, group string) (Poller, error) {
	poller, err := c.groups.BeginDelete(ctx, group, &armresources.ResourceGroupsClientBeginDeleteOptions{
		ForceDeletionTypes: to.Ptr(ForceDeletionTypes),
	})
	if err != nil {
		return nil, err
	}
	return poller, nil
}

func (c *Client) ProviderRegistrationState(ctx context.Context, namespace string) (string, error) {
	resp, err := c.providers.Get(ctx, namespace, nil)
	if err != nil {
		return "", err
	}
	return stringValue(resp.RegistrationState), nil
}

func (c *Client) RegisterProvider(ctx context.Context, namespace string) error {
	_, err := c.providers.Register(ctx, namespace, nil)
	return err
}

func collectResourceGroups(ctx context.Context, pager *runtime.Pager[armresources.ResourceGroupsClientListResponse]) ([]ResourceGroup, error) {
	var groups []ResourceGroup
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, rg := range page.Value {
			if rg == nil || rg.Name == nil {
				continue
			}
			group := ResourceGroup{
				Name:     *rg.Name,
				ID:       stringValue(rg.ID),
				Location: stringValue(rg.Location),
				Tags:     flattenTags(rg.Tags),
			}
			if rg.Properties != nil {
				group.ProvisioningState = stringValue(rg.Properties.ProvisioningState)
			}
			groups = append(groups, group)
		}
	}
	return groups, nil
}

func collectResources(ctx context.Context, pager *runtime.Pager[armresources.ClientListByResourceGroupResponse]) ([]Resource, error) {
	var resources []Resource
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, res := range page.Value {
			if res == nil {
				continue
			}
			resources = append(resources, Resource{
				ID:       stringValue(res.ID),
				Name:     stringValue(res.Name),
				Type:     stringValue(res.Type),
				Location: stringValue(res.Location),
			})
		}
	}
	return resources, nil
}

func flattenTags(tags map[string]*string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = stringValue(v)
	}
	return out
}

var _ API = (*Client)(nil)

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
