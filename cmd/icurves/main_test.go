package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/icurves/description"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestExamplesCmd(t *testing.T) {
	out, err := execute(t, "examples")
	require.NoError(t, err)
	for _, e := range description.Examples() {
		assert.Contains(t, out, e.Name)
	}
}

func TestPlanCmd(t *testing.T) {
	out, err := execute(t, "plan", "a", "b", "ab")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "single-piercing")

	_, err = execute(t, "plan", "--strategy", "outermost", "a")
	require.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "render", "a b ab")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))

	pngPath := filepath.Join(dir, "venn.png")
	_, err = execute(t, "render", "--example", "Venn-3", "--out", pngPath)
	require.NoError(t, err)
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "icurves.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("base_radius = 500\nsmooth = false\n"), 0o600))
	out, err = execute(t, "--config", cfgPath, "render", "--format", "svg", "--med", "a b c ab ac bc")
	require.NoError(t, err)
	assert.Contains(t, out, `id="med"`)
}

func TestRenderCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no description", []string{"render"}, errNoDescription},
		{"unknown example", []string{"render", "--example", "Venn-9"}, description.ErrUnknownExample},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := execute(t, "--log-level", "loud", "examples")
	require.Error(t, err)
	_, err = execute(t, "render", "--format", "gif", "a")
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, zaptest.NewLogger(t), func(data []byte) error {
			seen <- string(data)

			return nil
		})
	}()

	select {
	case got := <-seen:
		assert.Equal(t, "a", got)
	case <-time.After(5 * time.Second):
		t.Fatal("initial render not called")
	}

	require.NoError(t, os.WriteFile(path, []byte("a b ab"), 0o600))
	deadline := time.After(5 * time.Second)
	for got := ""; got != "a b ab"; {
		select {
		case got = <-seen:
		case <-deadline:
			t.Fatal("change not seen")
		}
	}

	cancel()
	require.NoError(t, <-done)
}
