package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("SERVER_MODE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("PAGE_LIMIT", "")

	c := New()
	assert.Equal(t, ModeDev, c.ServerMode)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, StorageMemory, c.StorageDriver)
	assert.Equal(t, "data/crowdfund.db", c.StoragePath)
	assert.Equal(t, 25, c.PageLimit)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_MODE", ModeProduction)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_DRIVER", StorageBolt)
	t.Setenv("STORAGE_PATH", "/tmp/x.db")
	t.Setenv("PAGE_LIMIT", "50")

	c := New()
	assert.Equal(t, ModeProduction, c.ServerMode)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, StorageBolt, c.StorageDriver)
	assert.Equal(t, "/tmp/x.db", c.StoragePath)
	assert.Equal(t, 50, c.PageLimit)
}

func TestNewRejectsBadPageLimit(t *testing.T) {
	t.Setenv("PAGE_LIMIT", "-3")
	assert.Equal(t, 25, New().PageLimit)
	t.Setenv("PAGE_LIMIT", "lots")
	assert.Equal(t, 25, New().PageLimit)
}

func TestNewLogger(t *testing.T) {
	lgr, err := NewLogger(Config{ServerMode: ModeDev, LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, lgr)

	// unknown level falls back instead of failing
	lgr, err = NewLogger(Config{ServerMode: ModeProduction, LogLevel: "noisy"})
	require.NoError(t, err)
	require.NotNil(t, lgr)
}
