package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourset/plane"
)

// writeInstance drops a JSON instance file into a test temp dir.
func writeInstance(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestTownsFromFile(t *testing.T) {
	path := writeInstance(t, `{"towns": [{"x": 0, "y": 0}, {"x": 3, "y": 0}, {"x": 0, "y": 4}]}`)

	towns, err := townsFromFile(path)
	require.NoError(t, err)
	require.Equal(t, []plane.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}}, towns)
}

func TestTownsFromFile_Errors(t *testing.T) {
	_, err := townsFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = townsFromFile(writeInstance(t, `not json`))
	require.Error(t, err)

	_, err = townsFromFile(writeInstance(t, `{"towns": []}`))
	require.Error(t, err)
}
