package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalBuildPath(t *testing.T) {
	var out bytes.Buffer

	cfg, shouldExit, err := Parse([]string{"build.hcl"}, &out)
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "build.hcl", cfg.BuildPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_BuildFlagWinsOverPositional(t *testing.T) {
	var out bytes.Buffer

	cfg, _, err := Parse([]string{"-build", "flagged.hcl", "positional.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "flagged.hcl", cfg.BuildPath)
}

func TestParse_AllOptions(t *testing.T) {
	var out bytes.Buffer

	cfg, _, err := Parse([]string{
		"-b", "targets",
		"-out", "plan.json",
		"-scripts-dir", "scripts",
		"-log-format", "json",
		"-log-level", "debug",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "targets", cfg.BuildPath)
	assert.Equal(t, "plan.json", cfg.OutPath)
	assert.Equal(t, "scripts", cfg.ScriptsDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoPathPrintsUsageAndExits(t *testing.T) {
	var out bytes.Buffer

	cfg, shouldExit, err := Parse([]string{}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var out bytes.Buffer

	_, _, err := Parse([]string{"-log-format", "xml", "build.hcl"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer

	_, _, err := Parse([]string{"-log-level", "verbose", "build.hcl"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "log-level")
}
