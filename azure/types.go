package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroup is a snapshot of a resource group taken when the subscription was enumerated.
type ResourceGroup struct {
	Name              string
	ID                string
	Location          string
	ProvisioningState string
	Tags              map[string]string
}

// Resource is an item contained in a resource group. Only its identity is used.
type Resource struct {
	ID       string
	Name     string
	Type     string
	Location string
}

// Classification is the result of querying the contents of one resource group.
type Classification struct {
	Group     ResourceGroup
	Resources []Resource
}

// Empty reports whether the group contained no resources when it was queried.
func (c Classification) Empty() bool {
	return len(c.Resources) == 0
}

// ResourceIDs returns the IDs of the contained resources, in query order.
func (c Classification) ResourceIDs() []string {
	ids := make([]string, 0, len(c.Resources))
	for _, r := range c.Resources {
		ids = append(ids, r.ID)
	}
	return ids
}

// Poller tracks a long running deletion. *runtime.Poller[armresources.ResourceGroupsClientDeleteResponse] satisfies it.
type Poller interface {
	PollUntilDone(ctx context.Context, options *runtime.PollUntilDoneOptions) (armresources.ResourceGroupsClientDeleteResponse, error)
}

// GroupLister enumerates the resource groups of the session's subscription.
type GroupLister interface {
	ListResourceGroups(ctx context.Context) ([]ResourceGroup, error)
}

// ResourceLister enumerates the resources contained in one resource group.
type ResourceLister interface {
	ListResources(ctx context.Context, group string) ([]Resource, error)
}

// GroupDeleter starts the asynchronous deletion of a resource group.
type GroupDeleter interface {
	BeginDeleteResourceGroup(ctx context.Context, group string) (Poller, error)
}

// ProviderRegistrar reads and changes resource provider registration on the subscription.
type ProviderRegistrar interface {
	ProviderRegistrationState(ctx context.Context, namespace string) (string, error)
	RegisterProvider(ctx context.Context, namespace string) error
}

// API is everything the cleaner needs from Azure Resource Manager.
type API interface {
	GroupLister
	ResourceLister
	GroupDeleter
	ProviderRegistrar
}
