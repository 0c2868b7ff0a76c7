package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCfg(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".ledgercfg")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeCfg(t, `
[acme]
realm_id = 123456789
token = t-acme
base_url = https://books.example.com

[globex]
realm_id = 987654321
token = t-globex
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "acme", profiles[0].Name)
	assert.Equal(t, "123456789", profiles[0].RealmID)
	assert.Equal(t, "https://books.example.com", profiles[0].BaseURL)
}

func TestRegistry_GetProfile(t *testing.T) {
	path := writeCfg(t, `
[acme]
realm_id = 123456789
token = t-acme
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	t.Run("existing profile", func(t *testing.T) {
		profile, err := registry.GetProfile(context.Background(), "acme")
		require.NoError(t, err)
		assert.Equal(t, "t-acme", profile.Token)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := registry.GetProfile(context.Background(), "initech")
		assert.ErrorContains(t, err, "profile initech not found")
	})
}

func TestRegistry_GetProfile_MissingRealm(t *testing.T) {
	path := writeCfg(t, `
[acme]
token = t-acme
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "acme")
	assert.ErrorContains(t, err, "no realm_id")
}
