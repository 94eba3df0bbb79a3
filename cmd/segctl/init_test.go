package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/segctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit_Project(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	initFlags.project = true
	initFlags.force = false
	t.Cleanup(func() { initFlags.project = false })

	var out bytes.Buffer
	initCmd.SetOut(&out)
	require.NoError(t, runInit(initCmd, nil))
	assert.Contains(t, out.String(), "segctl.yml")

	data, err := os.ReadFile(filepath.Join(dir, "segctl.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Overview")

	// Second run refuses to overwrite without --force
	err = runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	initFlags.force = true
	t.Cleanup(func() { initFlags.force = false })
	assert.NoError(t, runInit(initCmd, nil))
}

func TestRunInit_Global(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	initCmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runInit(initCmd, nil))
	assert.FileExists(t, config.GlobalPath())
	assert.NoFileExists(t, filepath.Join(dir, "segctl.yml"))
}
