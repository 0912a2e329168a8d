package azure

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagerOf serves pages in order, failing with err after the last page if err is set.
func pagerOf[T any](pages []T, err error, nextLink func(T) *string) *runtime.Pager[T] {
	i := 0
	return runtime.NewPager(runtime.PagingHandler[T]{
		More: func(page T) bool {
			link := nextLink(page)
			return link != nil && *link != ""
		},
		Fetcher: func(context.Context, *T) (T, error) {
			var zero T
			if i >= len(pages) {
				return zero, err
			}
			page := pages[i]
			i++
			return page, nil
		},
	})
}

func groupPage(next string, groups ...*armresources.ResourceGroup) armresources.ResourceGroupsClientListResponse {
	resp := armresources.ResourceGroupsClientListResponse{}
	resp.Value = groups
	if next != "" {
		resp.NextLink = to.Ptr(next)
	}
	return resp
}

func TestCollectResourceGroups(t *testing.T) {
	t.Parallel()

	pages := []armresources.ResourceGroupsClientListResponse{
		groupPage("page2",
			&armresources.ResourceGroup{
				Name:       to.Ptr("rg-a"),
				ID:         to.Ptr("/subscriptions/sub/resourceGroups/rg-a"),
				Location:   to.Ptr("westeurope"),
				Tags:       map[string]*string{"owner": to.Ptr("platform")},
				Properties: &armresources.ResourceGroupProperties{ProvisioningState: to.Ptr("Succeeded")},
			},
			nil,
			&armresources.ResourceGroup{Location: to.Ptr("nameless")},
		),
		groupPage("", &armresources.ResourceGroup{Name: to.Ptr("rg-b")}),
	}

	groups, err := collectResourceGroups(context.Background(), pagerOf(pages, nil, func(p armresources.ResourceGroupsClientListResponse) *string { return p.NextLink }))
	require.NoError(t, err)

	assert.Equal(t, []ResourceGroup{
		{
			Name:              "rg-a",
			ID:                "/subscriptions/sub/resourceGroups/rg-a",
			Location:          "westeurope",
			ProvisioningState: "Succeeded",
			Tags:              map[string]string{"owner": "platform"},
		},
		{Name: "rg-b"},
	}, groups)
}

func TestCollectResourceGroups_Error(t *testing.T) {
	t.Parallel()

	pages := []armresources.ResourceGroupsClientListResponse{groupPage("page2", &armresources.ResourceGroup{Name: to.Ptr("rg-a")})}

	_, err := collectResourceGroups(context.Background(), pagerOf(pages, errors.New("throttled"), func(p armresources.ResourceGroupsClientListResponse) *string { return p.NextLink }))
	assert.EqualError(t, err, "throttled")
}

func TestCollectResources(t *testing.T) {
	t.Parallel()

	first := armresources.ClientListByResourceGroupResponse{}
	first.Value = []*armresources.GenericResourceExpanded{
		{
			ID:       to.Ptr("/subscriptions/sub/resourceGroups/rg-a/providers/Microsoft.Network/virtualNetworks/vnet"),
			Name:     to.Ptr("vnet"),
			Type:     to.Ptr("Microsoft.Network/virtualNetworks"),
			Location: to.Ptr("westeurope"),
		},
	}
	first.NextLink = to.Ptr("page2")

	second := armresources.ClientListByResourceGroupResponse{}
	second.Value = []*armresources.GenericResourceExpanded{nil, {ID: to.Ptr("/subscriptions/sub/resourceGroups/rg-a/providers/Microsoft.Web/sites/app")}}

	resources, err := collectResources(context.Background(), pagerOf(
		[]armresources.ClientListByResourceGroupResponse{first, second}, nil,
		func(p armresources.ClientListByResourceGroupResponse) *string { return p.NextLink },
	))
	require.NoError(t, err)

	require.Len(t, resources, 2)
	assert.Equal(t, "vnet", resources[0].Name)
	assert.Equal(t, "Microsoft.Network/virtualNetworks", resources[0].Type)
	assert.Equal(t, "/subscriptions/sub/resourceGroups/rg-a/providers/Microsoft.Web/sites/app", resources[1].ID)
}

func TestCollectResources_EmptyGroup(t *testing.T) {
	t.Parallel()

	resources, err := collectResources(context.Background(), pagerOf(
		[]armresources.ClientListByResourceGroupResponse{{}}, nil,
		func(p armresources.ClientListByResourceGroupResponse) *string { return p.NextLink },
	))
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestFlattenTags(t *testing.T) {
	t.Parallel()

	assert.Nil(t, flattenTags(nil))
	assert.Equal(t, map[string]string{"a": "1", "b": ""}, flattenTags(map[string]*string{"a": to.Ptr("1"), "b": nil}))
}
