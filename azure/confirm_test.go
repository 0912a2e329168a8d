package azure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAffirmative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{" y ", true},
		{"y\n", true},
		{"", false},
		{"n", false},
		{"N", false},
		{"yes", false},
		{"yy", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAffirmative(tt.answer), "answer %q", tt.answer)
	}
}

func TestPromptConfirmer(t *testing.T) {
	t.Parallel()

	var prompt string
	confirmer := PromptConfirmer(func(p string) (string, error) {
		prompt = p
		return "Y", nil
	})

	ok, err := confirmer.Confirm(context.Background(), classification("rg-app", 2))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Delete resource group rg-app and its 2 resource(s)? [y/N]", prompt)
}

func TestPromptConfirmer_PropagatesError(t *testing.T) {
	t.Parallel()

	confirmer := PromptConfirmer(func(string) (string, error) {
		return "", errors.New("interrupted")
	})

	ok, err := confirmer.Confirm(context.Background(), classification("rg-app", 1))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStaticConfirmers(t *testing.T) {
	t.Parallel()

	ok, err := AlwaysConfirm.Confirm(context.Background(), classification("a", 1))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NeverConfirm.Confirm(context.Background(), classification("a", 1))
	require.NoError(t, err)
	assert.False(t, ok)
}
