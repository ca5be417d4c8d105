package sourcewatcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startWatch(t *testing.T, path string, onChange func(context.Context) error) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	w := New(Config{DebounceDelay: 50 * time.Millisecond}, nil)
	go func() { done <- w.Watch(ctx, path, onChange) }()
	// Give fsnotify time to register the directory.
	time.Sleep(100 * time.Millisecond)
	return cancel, done
}

func TestWatch_RunsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(src, []byte("v1"), 0o644))

	calls := make(chan struct{}, 8)
	cancel, done := startWatch(t, src, func(context.Context) error {
		calls <- struct{}{}
		return nil
	})

	require.NoError(t, os.WriteFile(src, []byte("v2"), 0o644))

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange not called after write")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_DebouncesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	var calls atomic.Int32
	cancel, done := startWatch(t, src, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(src, []byte{byte(i)}, 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	var calls atomic.Int32
	cancel, done := startWatch(t, src, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.png"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_KeepsGoingAfterCallbackError(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	var calls atomic.Int32
	cancel, done := startWatch(t, src, func(context.Context) error {
		calls.Add(1)
		return errors.New("decode failed")
	})

	require.NoError(t, os.WriteFile(src, []byte("a"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(src, []byte("b"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_MissingDirectory(t *testing.T) {
	w := New(DefaultConfig(), nil)
	err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "in.png"), func(context.Context) error {
		return nil
	})
	assert.Error(t, err)
}
