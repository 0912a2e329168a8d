package azure

import (
	"context"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/gruntwork-io/azure-rg-nuke/logging"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/gruntwork-io/go-commons/retry"
)

const registeredState = "Registered"

// RegistrationWait controls how long RegisterProviders waits for a newly registered provider to reach the
// Registered state. Zero Retries means it does not wait at all.
type RegistrationWait struct {
	Retries  int
	Interval time.Duration
}

// DefaultRegistrationWait waits up to 5 minutes: 10 seconds in between, up to 30 times.
var DefaultRegistrationWait = RegistrationWait{Retries: 30, Interval: 10 * time.Second}

// RegisterProviders registers every namespace that is not already registered on the subscription. The state is read
// first so a run against a prepared subscription issues no writes.
func RegisterProviders(ctx context.Context, api ProviderRegistrar, namespaces []string, wait RegistrationWait) error {
	for _, namespace := range namespaces {
		state, err := api.ProviderRegistrationState(ctx, namespace)
		if err != nil {
			return QueryError{Operation: "read registration state of provider " + namespace, Underlying: err}
		}

		if strings.EqualFold(state, registeredState) {
			logging.Debugf("Provider %s already registered", namespace)
			continue
		}

		logging.Infof("Registering resource provider %s (current state: %s)", namespace, state)
		if err := api.RegisterProvider(ctx, namespace); err != nil {
			return QueryError{Operation: "register provider " + namespace, Underlying: err}
		}

		if wait.Retries > 0 {
			if err := waitForRegistration(ctx, api, namespace, wait); err != nil {
				return QueryError{Operation: "wait for registration of provider " + namespace, Underlying: err}
			}
		}
	}
	return nil
}

func waitForRegistration(ctx context.Context, api ProviderRegistrar, namespace string, wait RegistrationWait) error {
	return retry.DoWithRetry(
		logging.Logger.WithTime(time.Now()),
		fmt.Sprintf("Waiting for provider %s to be registered", namespace),
		wait.Retries, wait.Interval,
		func() error {
			state, err := api.ProviderRegistrationState(ctx, namespace)
			if err != nil {
				return errors.WithStackTrace(retry.FatalError{Underlying: err})
			}
			if !strings.EqualFold(state, registeredState) {
				return goerrors.Errorf("provider %s is %s", namespace, state)
			}
			return nil
		},
	)
}
