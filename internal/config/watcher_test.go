package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0644))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, zap.NewNop(), func(cfg *Config) { changes <- cfg })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// A broken edit is skipped, the next good one is delivered.
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0644))
	time.Sleep(2 * DefaultReloadDelay)
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0644))

	select {
	case cfg := <-changes:
		assert.Equal(t, "dark", cfg.Theme)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	changes := make(chan *Config, 1)
	w, err := NewWatcher(path, nil, func(cfg *Config) { changes <- cfg })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("theme: dark\n"), 0644))

	select {
	case <-changes:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(3 * DefaultReloadDelay):
	}
}
