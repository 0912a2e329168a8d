package azure

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

type mockPoller struct {
	err   error
	block bool
}

func (p *mockPoller) PollUntilDone(ctx context.Context, _ *runtime.PollUntilDoneOptions) (armresources.ResourceGroupsClientDeleteResponse, error) {
	if p.block {
		<-ctx.Done()
		return armresources.ResourceGroupsClientDeleteResponse{}, ctx.Err()
	}
	return armresources.ResourceGroupsClientDeleteResponse{}, p.err
}

// mockAPI is an in-memory subscription. Deleted groups disappear from the next listing.
type mockAPI struct {
	mu sync.Mutex

	groups        []ResourceGroup
	resources     map[string][]Resource
	listGroupsErr error
	listErrs      map[string]error
	deleteErrs    map[string]error
	pollers       map[string]*mockPoller

	providerStates  map[string]string
	stateErr        error
	registerErr     error
	registerIgnored bool // RegisterProvider leaves the state unchanged
	registered      []string

	listedGroups   int
	listedFor      []string
	deleteRequests []string
}

func newMockAPI(groups ...ResourceGroup) *mockAPI {
	return &mockAPI{
		groups:         groups,
		resources:      map[string][]Resource{},
		listErrs:       map[string]error{},
		deleteErrs:     map[string]error{},
		pollers:        map[string]*mockPoller{},
		providerStates: map[string]string{},
	}
}

// withResources adds a group holding count resources.
func (m *mockAPI) withResources(name string, count int) *mockAPI {
	m.groups = append(m.groups, ResourceGroup{Name: name, Location: "westeurope", ProvisioningState: "Succeeded"})
	for i := 0; i < count; i++ {
		id := "/subscriptions/sub/resourceGroups/" + name + "/providers/Microsoft.Storage/storageAccounts/sa" + string(rune('a'+i))
		m.resources[name] = append(m.resources[name], Resource{ID: id, Name: "sa" + string(rune('a'+i)), Type: "Microsoft.Storage/storageAccounts"})
	}
	return m
}

func (m *mockAPI) ListResourceGroups(context.Context) ([]ResourceGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listedGroups++
	if m.listGroupsErr != nil {
		return nil, m.listGroupsErr
	}
	return append([]ResourceGroup(nil), m.groups...), nil
}

func (m *mockAPI) ListResources(_ context.Context, group string) ([]Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listedFor = append(m.listedFor, group)
	if err := m.listErrs[group]; err != nil {
		return nil, err
	}
	return m.resources[group], nil
}

func (m *mockAPI) BeginDeleteResourceGroup(_ context.Context, group string) (Poller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.deleteErrs[group]; err != nil {
		return nil, err
	}
	m.deleteRequests = append(m.deleteRequests, group)

	remaining := m.groups[:0]
	for _, g := range m.groups {
		if g.Name != group {
			remaining = append(remaining, g)
		}
	}
	m.groups = remaining

	if p, ok := m.pollers[group]; ok {
		return p, nil
	}
	return &mockPoller{}, nil
}

func (m *mockAPI) ProviderRegistrationState(_ context.Context, namespace string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stateErr != nil {
		return "", m.stateErr
	}
	state, ok := m.providerStates[namespace]
	if !ok {
		return "NotRegistered", nil
	}
	return state, nil
}

func (m *mockAPI) RegisterProvider(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.registerErr != nil {
		return m.registerErr
	}
	m.registered = append(m.registered, namespace)
	if !m.registerIgnored {
		m.providerStates[namespace] = "Registered"
	}
	return nil
}

type fakeCredential struct {
	err    error
	scopes []string
}

func (c *fakeCredential) GetToken(_ context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	c.scopes = opts.Scopes
	if c.err != nil {
		return azcore.AccessToken{}, c.err
	}
	return azcore.AccessToken{Token: "token"}, nil
}

func fakeAuthenticator(cred *fakeCredential) *Authenticator {
	return &Authenticator{
		NewCredential: func(Credential, azcore.ClientOptions) (azcore.TokenCredential, error) {
			return cred, nil
		},
		VerifyAccess: func(context.Context, *Session) (string, error) {
			return "test subscription", nil
		},
	}
}

// recordingConfirmer answers every prompt with answer and remembers which groups it was asked about.
type recordingConfirmer struct {
	answer string
	asked  []string
}

func (r *recordingConfirmer) confirmer() Confirmer {
	return PromptConfirmer(func(prompt string) (string, error) {
		r.asked = append(r.asked, prompt)
		return r.answer, nil
	})
}

func responseError(status int) error {
	req, _ := http.NewRequest(http.MethodGet, "https://management.azure.com/subscriptions/sub/resourcegroups", nil)
	return &azcore.ResponseError{
		StatusCode: status,
		ErrorCode:  http.StatusText(status),
		RawResponse: &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Request:    req,
			Body:       io.NopCloser(strings.NewReader("")),
		},
	}
}
