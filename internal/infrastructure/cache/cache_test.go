package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("set and get round trip", func(t *testing.T) {
		c, err := NewCacheAt(t.TempDir(), time.Hour)
		require.NoError(t, err)

		hash := c.GenerateHash("gemini" + "gemini-2.5-flash" + "some prompt")
		require.NoError(t, c.Set(hash, map[string]string{"answer": "42"}))

		data, hit, err := c.Get(hash)
		assert.NoError(t, err)
		assert.True(t, hit)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "42", decoded["answer"])
	})

	t.Run("miss on unknown hash", func(t *testing.T) {
		c, err := NewCacheAt(t.TempDir(), time.Hour)
		require.NoError(t, err)

		_, hit, err := c.Get("deadbeef")
		assert.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("expired entries are evicted on read", func(t *testing.T) {
		dir := t.TempDir()
		c, err := NewCacheAt(dir, time.Millisecond)
		require.NoError(t, err)

		hash := c.GenerateHash("prompt")
		require.NoError(t, c.Set(hash, "response"))

		time.Sleep(5 * time.Millisecond)

		_, hit, err := c.Get(hash)
		assert.NoError(t, err)
		assert.False(t, hit)

		_, statErr := os.Stat(filepath.Join(dir, hash+".json"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("same content same hash", func(t *testing.T) {
		c, err := NewCacheAt(t.TempDir(), time.Hour)
		require.NoError(t, err)

		assert.Equal(t, c.GenerateHash("a"), c.GenerateHash("a"))
		assert.NotEqual(t, c.GenerateHash("a"), c.GenerateHash("b"))
	})

	t.Run("stats counts entries and bytes", func(t *testing.T) {
		c, err := NewCacheAt(t.TempDir(), time.Hour)
		require.NoError(t, err)

		require.NoError(t, c.Set(c.GenerateHash("a"), "one"))
		require.NoError(t, c.Set(c.GenerateHash("b"), "two"))

		count, size, err := c.Stats()
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Greater(t, size, int64(0))
	})

	t.Run("stats on a missing directory is empty", func(t *testing.T) {
		c := &Cache{cacheDir: filepath.Join(t.TempDir(), "nope"), ttl: time.Hour}

		count, size, err := c.Stats()
		assert.NoError(t, err)
		assert.Zero(t, count)
		assert.Zero(t, size)
	})

	t.Run("clean removes everything", func(t *testing.T) {
		dir := t.TempDir()
		c, err := NewCacheAt(dir, time.Hour)
		require.NoError(t, err)

		hash := c.GenerateHash("prompt")
		require.NoError(t, c.Set(hash, "response"))
		require.NoError(t, c.Clean())

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}
