package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seam-carver/internal/config"
	"seam-carver/internal/seam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHalves writes a 2x2 PNG with a black left column and white right column.
func writeHalves(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		img.SetRGBA(0, y, color.RGBA{A: 255})
		img.SetRGBA(1, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}

	path := filepath.Join(t.TempDir(), "halves.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func emptyPrefs(t *testing.T) *config.Prefs {
	t.Helper()
	p, err := config.LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)
	return p
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithPrefs([]string{"-image", writeHalves(t)}, emptyPrefs(t), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Loaded png image: 2x2 pixels")
	assert.Contains(t, out, "Seam cost: 764")
	assert.Contains(t, out, "Seam: 0 0\n")
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithPrefs([]string{"-json", "-workers", "3", "-image", writeHalves(t)}, emptyPrefs(t), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var r report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &r))
	assert.Equal(t, seam.Seam{0, 0}, r.Seam)
	assert.Equal(t, int64(764), r.Cost)
	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 382.0, r.Energy.Mean)
}

func TestRunVerboseLogs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithPrefs([]string{"-v", "-image", writeHalves(t)}, emptyPrefs(t), &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "seam computed")
}

func TestRunErrors(t *testing.T) {
	t.Run("missing image flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, runWithPrefs(nil, emptyPrefs(t), &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Usage")
	})

	t.Run("unknown flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, runWithPrefs([]string{"-bogus"}, emptyPrefs(t), &stdout, &stderr))
	})

	t.Run("missing file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		path := filepath.Join(t.TempDir(), "absent.png")
		assert.Equal(t, 1, runWithPrefs([]string{"-image", path}, emptyPrefs(t), &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Failed to load image")
	})
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, runWithPrefs([]string{"-version"}, emptyPrefs(t), &stdout, &stderr))
	assert.Contains(t, stdout.String(), "seam-carver ")
}

func TestRunUsesPreferredWorkers(t *testing.T) {
	prefs := emptyPrefs(t)
	prefs.SetInt(config.KeyWorkers, 4)
	prefs.SetString(config.KeyLogLevel, "debug")

	var stdout, stderr bytes.Buffer
	code := runWithPrefs([]string{"-image", writeHalves(t)}, prefs, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "workers=4")
}
