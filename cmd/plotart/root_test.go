package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotart/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewReader(nil))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestFrame(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "frame", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "frame: 1 paths, 5 points, 0 pauses")
	// 410×287 margin rectangle.
	assert.Contains(t, out, "pen down 1394.0 mm")
}

func TestPaint_Seeded(t *testing.T) {
	t.Parallel()

	a, _, err := run(t, "paint", "--seed", "11", "--log-level", "error")
	require.NoError(t, err)
	b, _, err := run(t, "paint", "--seed", "11", "--log-level", "error")
	require.NoError(t, err)

	// Timing differs; the statistics line does not.
	statsA, _, _ := strings.Cut(a, "\n")
	statsB, _, _ := strings.Cut(b, "\n")
	assert.Equal(t, statsA, statsB)
}

func TestPaint_Config(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plotart.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 5
[ranges]
circles = { min = 1, max = 1 }
spirals = { min = 0, max = 0 }
spreads = { min = 0, max = 0 }
`), 0o600))

	out, logs, err := run(t, "paint", "--config", path, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "1 pauses")
	assert.Contains(t, logs, "seed=5")
}

func TestInteractive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plotart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranges:\n  circles: {min: 1, max: 1}\n  spirals: {min: 0, max: 0}\n  spreads: {min: 0, max: 0}\n"), 0o600))

	_, logs, err := run(t, "paint", "--config", path, "--interactive", "--seed", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, logs, "change pen. Press Enter to continue...")
}

func TestBadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[canvas]\nmargin = 500.0\n"), 0o600))

	_, _, err := run(t, "frame", "--config", path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "frame", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestCancelled(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"frame", "--log-level", "error"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "frame: 0 paths")
}
