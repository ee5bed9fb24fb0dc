package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticedraw/latticedraw/drawing"
)

func writeSquareInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "square.agf")
	contents := "4\n4\n" +
		"0.5 0.5 0.5 0.5\n" +
		"1.5 0.5 1.5 0.5\n" +
		"1.5 1.5 1.5 1.5\n" +
		"0.5 1.5 0.5 1.5\n" +
		"0 1\n1 2\n2 3\n3 0\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunProducesIntegerOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeSquareInput(t, dir)
	output := filepath.Join(dir, "out.agf")

	code := run([]string{
		"--feasibility=greedy", "--steps=0", "--nocenter",
		"--output=" + output, input,
	})
	require.Equal(t, 0, code)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	d, err := drawing.LoadLineGraph(f)
	require.NoError(t, err)
	for _, v := range d.Vertices {
		assert.True(t, v.IsRounded)
	}
}

func TestRunFailsOnMissingInput(t *testing.T) {
	code := run([]string{filepath.Join(t.TempDir(), "does-not-exist.agf")})
	assert.Equal(t, -1, code)
}

func TestRunDumpsFeasibleSnapshot(t *testing.T) {
	dir := t.TempDir()
	input := writeSquareInput(t, dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	code := run([]string{"--feasibility=greedy", "--steps=0", "--dump", input})
	require.Equal(t, 0, code)

	contents, err := os.ReadFile("feasible.agf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(contents, []byte("4\n4\n")))
}
