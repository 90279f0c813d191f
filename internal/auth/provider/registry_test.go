package provider

import (
	"context"
	"testing"

	"github.com/SrotDev/bizpilot/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AuthCodeURL(string) (string, error) {
	return "https://example.com/authorize", nil
}

func (s *stubProvider) ExchangeCode(context.Context, string) (*auth.Identity, error) {
	return &auth.Identity{Provider: s.name}, nil
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry(
		&stubProvider{name: "google"},
		&stubProvider{name: "github"},
	)

	p, err := registry.Get("google")
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())

	p, err = registry.Get("github")
	require.NoError(t, err)
	assert.Equal(t, "github", p.Name())
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry(&stubProvider{name: "google"})

	_, err := registry.Get("linkedin")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
