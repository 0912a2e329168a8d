package azure

import (
	"context"
	"fmt"
	"strings"
)

// Confirmer decides whether a non-empty resource group may be deleted.
type Confirmer interface {
	Confirm(ctx context.Context, c Classification) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, c Classification) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, c Classification) (bool, error) {
	return f(ctx, c)
}

var (
	// AlwaysConfirm approves every deletion without asking.
	AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, Classification) (bool, error) { return true, nil })
	// NeverConfirm declines every deletion without asking.
	NeverConfirm Confirmer = ConfirmFunc(func(context.Context, Classification) (bool, error) { return false, nil })
)

// AskFunc shows prompt to the operator and returns the raw answer.
type AskFunc func(prompt string) (string, error)

// PromptConfirmer asks the operator through ask and approves only a "y" or "Y" answer.
func PromptConfirmer(ask AskFunc) Confirmer {
	return ConfirmFunc(func(_ context.Context, c Classification) (bool, error) {
		answer, err := ask(ConfirmationPrompt(c))
		if err != nil {
			return false, err
		}
		return IsAffirmative(answer), nil
	})
}

// ConfirmationPrompt is the question asked before deleting a non-empty resource group.
func ConfirmationPrompt(c Classification) string {
	return fmt.Sprintf("Delete resource group %s and its %d resource(s)? [y/N]", c.Group.Name, len(c.Resources))
}

// IsAffirmative reports whether answer is a yes. Only "y", in either case, counts.
func IsAffirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
