package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
)

// ApplicationID is sent in the User-Agent of every ARM request.
const ApplicationID = "azure-rg-nuke"

// Credential holds the service principal secret exchanged for a Session.
type Credential struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// Environment is one of "public", "usgovernment" or "china". Empty means public.
	Environment string
}

// Session is an authenticated context bound to one subscription. It is immutable once returned by Authenticate and
// is passed explicitly to everything that talks to Azure.
type Session struct {
	SubscriptionID   string
	SubscriptionName string
	TenantID         string
	Credential       azcore.TokenCredential
	ClientOptions    *arm.ClientOptions
}

// Authenticator exchanges a Credential for a Session. The function fields exist so tests can stub out Azure AD and
// the subscription lookup.
type Authenticator struct {
	NewCredential func(cred Credential, opts azcore.ClientOptions) (azcore.TokenCredential, error)
	// VerifyAccess returns the subscription display name, or an error if the principal cannot read the subscription.
	VerifyAccess func(ctx context.Context, session *Session) (string, error)
}

// NewAuthenticator returns an Authenticator backed by azidentity and armsubscriptions.
func NewAuthenticator() *Authenticator {
	return &Authenticator{
		NewCredential: newClientSecretCredential,
		VerifyAccess:  getSubscription,
	}
}

// Authenticate builds a fresh credential, proves it by acquiring a token for Resource Manager, and checks that the
// principal can read the subscription. Nothing from a previous session is reused.
func (a *Authenticator) Authenticate(ctx context.Context, cred Credential, subscriptionID string) (*Session, error) {
	fail := func(err error) (*Session, error) {
		return nil, AuthenticationError{SubscriptionID: subscriptionID, Underlying: err}
	}

	cloudCfg, err := CloudConfiguration(cred.Environment)
	if err != nil {
		return fail(err)
	}

	logging.Debugf("Building client secret credential for tenant %s", cred.TenantID)
	tokenCred, err := a.NewCredential(cred, azcore.ClientOptions{Cloud: cloudCfg})
	if err != nil {
		return fail(err)
	}

	if _, err := tokenCred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{resourceManagerScope(cloudCfg)},
	}); err != nil {
		return fail(err)
	}

	session := &Session{
		SubscriptionID: subscriptionID,
		TenantID:       cred.TenantID,
		Credential:     tokenCred,
		ClientOptions: &arm.ClientOptions{
			ClientOptions: policy.ClientOptions{
				Cloud: cloudCfg,
				Telemetry: policy.TelemetryOptions{
					ApplicationID: ApplicationID,
				},
			},
		},
	}

	name, err := a.VerifyAccess(ctx, session)
	if err != nil {
		return fail(err)
	}
	session.SubscriptionName = name

	logging.Debugf("Authenticated against subscription %s (%s)", subscriptionID, name)
	return session, nil
}

// CloudConfiguration maps an environment name to the Azure cloud it designates.
func CloudConfiguration(env string) (cloud.Configuration, error) {
	switch strings.ToLower(env) {
	case "", "public":
		return cloud.AzurePublic, nil
	case "usgovernment":
		return cloud.AzureGovernment, nil
	case "china":
		return cloud.AzureChina, nil
	default:
		return cloud.Configuration{}, fmt.Errorf("unknown environment specified: %q", env)
	}
}

func resourceManagerScope(cfg cloud.Configuration) string {
	audience := cfg.Services[cloud.ResourceManager].Audience
	return strings.TrimSuffix(audience, "/") + "/.default"
}

func newClientSecretCredential(cred Credential, opts azcore.ClientOptions) (azcore.TokenCredential, error) {
	return azidentity.NewClientSecretCredential(cred.TenantID, cred.ClientID, cred.ClientSecret, &azidentity.ClientSecretCredentialOptions{
		ClientOptions: opts,
	})
}

func getSubscription(ctx context.Context, session *Session) (string, error) {
	client, err := armsubscriptions.NewClient(session.Credential, session.ClientOptions)
	if err != nil {
		return "", err
	}
	resp, err := client.Get(ctx, session.SubscriptionID, nil)
	if err != nil {
		return "", err
	}
	return stringValue(resp.DisplayName), nil
}
