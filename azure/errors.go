package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// AuthenticationError is returned when the service principal cannot obtain a session for the subscription.
type AuthenticationError struct {
	SubscriptionID string
	Underlying     error
}

func (e AuthenticationError) Error() string {
	return fmt.Sprintf("Unable to authenticate against subscription %s: %v", e.SubscriptionID, e.Underlying)
}

func (e AuthenticationError) Unwrap() error { return e.Underlying }

// QueryError is returned when listing resource groups, resources, or provider state fails.
type QueryError struct {
	Operation  string
	Group      string
	Underlying error
}

func (e QueryError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("Unable to %s for resource group %s: %v", e.Operation, e.Group, e.Underlying)
	}
	return fmt.Sprintf("Unable to %s: %v", e.Operation, e.Underlying)
}

func (e QueryError) Unwrap() error { return e.Underlying }

// SubmissionError is returned when a deletion could not be submitted for a resource group.
type SubmissionError struct {
	Group      string
	Underlying error
}

func (e SubmissionError) Error() string {
	return fmt.Sprintf("Unable to submit deletion of resource group %s: %v", e.Group, e.Underlying)
}

func (e SubmissionError) Unwrap() error { return e.Underlying }

// DeletionError is returned for an awaited deletion that did not succeed.
type DeletionError struct {
	Group      string
	State      JobState
	Underlying error
}

func (e DeletionError) Error() string {
	return fmt.Sprintf("Deletion of resource group %s ended %s: %v", e.Group, e.State, e.Underlying)
}

func (e DeletionError) Unwrap() error { return e.Underlying }

// IsFatal reports whether err means the session can no longer be used, so the whole run must stop. Everything else
// is scoped to a single resource group.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var authErr AuthenticationError
	if errors.As(err, &authErr) {
		return true
	}

	var credErr *azidentity.AuthenticationFailedError
	if errors.As(err, &credErr) {
		return true
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden
	}

	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
