package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: missing values get their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "3000", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 168*time.Hour, conf.Game.MatchTTL)
		assert.Equal(t, 64, conf.Game.EventQueueSize)
	})

	t.Run("Values from file and environment", func(t *testing.T) {
		// Given: a config file and an overriding environment variable
		path := writeConfig(t, "socket-port: \"4000\"\nredis:\n  host: cache\n  port: \"6380\"\ngame:\n  match-ttl: 1h\n")
		t.Setenv("SOCKET_PORT", "5000")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: the environment wins over the file
		assert.Equal(t, "5000", conf.SocketPort)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Game.MatchTTL)
	})

	t.Run("Missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})

	t.Run("Negative event queue size", func(t *testing.T) {
		// Given: a negative queue size in the environment
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("EVENT_QUEUE_SIZE", "-1")

		// Then: loading fails
		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
