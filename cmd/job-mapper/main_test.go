package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"job-mapper/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Job Mapper "))
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = run(t, "--config", path, "config", "init")
	assert.ErrorIs(t, err, config.ErrConfigExists)

	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, "--config", path, "--data", "other.csv", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# loaded from "+path)
	assert.Contains(t, out, `data_file = "other.csv"`)
	assert.Contains(t, out, "[map]")
}

func TestConfigShow_WithoutFile(t *testing.T) {
	out, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "showing defaults")
	assert.Contains(t, out, `map_file = "job_map.html"`)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "jobs.csv")
	mapFile := filepath.Join(dir, "map.html")
	content := "Job Title,Company,Location,Latitude,Longitude\nEngineer,Acme,London,51.5,-0.12\n"
	require.NoError(t, os.WriteFile(data, []byte(content), 0o644))

	out, err := run(t,
		"--config", filepath.Join(dir, "missing.toml"),
		"--data", data,
		"--map", mapFile,
		"export",
	)
	require.NoError(t, err)
	assert.Equal(t, mapFile, strings.TrimSpace(out))

	html, err := os.ReadFile(mapFile)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Engineer at Acme (London)")
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = -1\n"), 0o644))

	_, err := run(t, "--config", path, "config", "show")
	var verrs config.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
