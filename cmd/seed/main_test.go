package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedProfiles(t *testing.T) {
	profiles, err := loadSeedProfiles("profiles.json")
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	for _, p := range profiles {
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Age, 18)
		assert.False(t, p.Capital.IsNegative())
	}
}

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	cache, err := loadCache(path)
	require.NoError(t, err)
	assert.Empty(t, cache.Profiles)

	cache.Profiles["demo"] = seededProfile{ProfileID: "id-1", Hash: "abc", SeededAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, saveCache(path, cache))

	loaded, err := loadCache(path)
	require.NoError(t, err)
	assert.Equal(t, "id-1", loaded.Profiles["demo"].ProfileID)
}

func TestLoadCacheEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cache, err := loadCache(path)
	require.NoError(t, err)
	assert.NotNil(t, cache.Profiles)
}

func TestProfileHashTracksEdits(t *testing.T) {
	p := seedProfile{Name: "demo", Gender: "MALE", Age: 30, Capital: decimal.NewFromInt(1000), Mode: "PROVEN"}

	first, err := profileHash(p)
	require.NoError(t, err)
	again, err := profileHash(p)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	p.Age = 31
	edited, err := profileHash(p)
	require.NoError(t, err)
	assert.NotEqual(t, first, edited)
}
