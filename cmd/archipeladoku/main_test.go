package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galdiuz/archipeladoku/generate"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		optionsFile, seed, players, verbose = "", 1, 1, false
		steps, showMap = 8, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte("block_size: 4\nnumber_of_boards: 3\nboards_per_cluster: 1\nprogression: fixed\n"), 0o600))

	out, err := execute(t, "generate", "--options", path, "--seed", "7", "--players", "2")
	require.NoError(t, err)

	var snaps map[string]generate.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snaps))
	require.Len(t, snaps, 2)
	assert.Equal(t, 4, snaps["1"].BlockSize)
	assert.Len(t, snaps["2"].Clusters, 3)

	again, err := execute(t, "generate", "--options", path, "--seed", "7", "--players", "2")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect", "--steps", "2", "--map")
	require.NoError(t, err)
	assert.Contains(t, out, "player 1:")
	assert.Contains(t, out, "Board 1")
	assert.Contains(t, out, "victory:")
	assert.Contains(t, out, "111111111...222222222")
	assert.Contains(t, out, "1  Board 1     1 boards,   72 cells alone")
	assert.Contains(t, out, "+  shared by several clusters")
}

// TestInspectCommand_FlagsReset checks that --map from an earlier run does
// not leak into the next one.
func TestInspectCommand_FlagsReset(t *testing.T) {
	t.Run("map", func(t *testing.T) {
		out, err := execute(t, "inspect", "--map", "--steps", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "cells alone")
	})
	t.Run("plain", func(t *testing.T) {
		out, err := execute(t, "inspect")
		require.NoError(t, err)
		assert.NotContains(t, out, "cells alone")
		assert.Equal(t, 8, steps)
	})
}

func TestCommand_Errors(t *testing.T) {
	_, err := execute(t, "generate", "--options", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "generate", "--players", "0")
	assert.Error(t, err)
}
