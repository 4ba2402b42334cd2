package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/clockface/pkg/dial"
	"github.com/go-drift/clockface/pkg/rendering"
	"github.com/go-drift/clockface/pkg/timesync"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "clockface.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestResolveDefaultsWhenFileAbsent(t *testing.T) {
	resolved, err := Resolve(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, rendering.Size{Width: DefaultWidth, Height: DefaultHeight}, resolved.Size)
	assert.Equal(t, dial.DefaultLightTheme(), resolved.Theme)
	assert.Equal(t, timesync.DefaultEndpoint, resolved.Endpoint)
	assert.False(t, resolved.LocalOnly)
	assert.Equal(t, time.Second, resolved.TickInterval)
	assert.Equal(t, 200*time.Millisecond, resolved.ResizeDebounce)
	assert.Equal(t, DefaultAddr, resolved.Addr)
	assert.Equal(t, "svg", resolved.SnapshotFormat)
	assert.Equal(t, "clock.svg", resolved.SnapshotOutput)
}

func TestResolveReadsAllSections(t *testing.T) {
	dir := writeConfig(t, `
window:
  width: 640
  height: 360
theme:
  variant: dark
  second_hand: "#00ff00"
time:
  endpoint: http://timeserver.local/now
  local: true
tick:
  interval: 500ms
  debounce: 50ms
preview:
  addr: ":9000"
snapshot:
  format: png
`)

	resolved, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, rendering.Size{Width: 640, Height: 360}, resolved.Size)
	assert.Equal(t, dial.DefaultDarkTheme().Background, resolved.Theme.Background)
	assert.Equal(t, rendering.RGB(0x00, 0xFF, 0x00), resolved.Theme.SecondHand)
	assert.Equal(t, "http://timeserver.local/now", resolved.Endpoint)
	assert.True(t, resolved.LocalOnly)
	assert.Equal(t, 500*time.Millisecond, resolved.TickInterval)
	assert.Equal(t, 50*time.Millisecond, resolved.ResizeDebounce)
	assert.Equal(t, ":9000", resolved.Addr)
	assert.Equal(t, "png", resolved.SnapshotFormat)
	assert.Equal(t, "clock.png", resolved.SnapshotOutput, "output extension follows format")
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "window: [not a map"},
		{"zero height", "window:\n  width: 100\n  height: 0\n"},
		{"negative width", "window:\n  width: -5\n  height: 100\n"},
		{"unknown variant", "theme:\n  variant: sepia\n"},
		{"bad color", "theme:\n  tick: chartreuse\n"},
		{"bad interval", "tick:\n  interval: soon\n"},
		{"negative debounce", "tick:\n  debounce: -10ms\n"},
		{"bad snapshot format", "snapshot:\n  format: bmp\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)
			_, err := Resolve(dir)
			assert.Error(t, err)
		})
	}
}

func TestResolveSnapshotOutputOverride(t *testing.T) {
	dir := writeConfig(t, "snapshot:\n  format: png\n  output: face.png\n")

	resolved, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "face.png", resolved.SnapshotOutput)
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestResolveVariant(t *testing.T) {
	light, err := ResolveVariant("light")
	require.NoError(t, err)
	assert.Equal(t, dial.DefaultLightTheme(), light)

	dark, err := ResolveVariant("dark")
	require.NoError(t, err)
	assert.Equal(t, dial.DefaultDarkTheme(), dark)

	fallback, err := ResolveVariant("")
	require.NoError(t, err)
	assert.Equal(t, dial.DefaultLightTheme(), fallback)

	_, err = ResolveVariant("sepia")
	assert.Error(t, err)
}
