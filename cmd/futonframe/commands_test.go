package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/FutonFrame/internal/model"
	"github.com/piwi3910/FutonFrame/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsReport(t *testing.T) {
	stdout, stderr, err := run(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "seat angle error = 0.690068", lines[0])
	assert.Equal(t, "back angle delta = 103.690068", lines[1])
	assert.Equal(t, "rear support wedge height = 4.9029, rear support total height = 8.1229", lines[11])
	assert.Empty(t, stderr, "nothing is logged without --verbose")
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := run(t, "extra")
	require.Error(t, err)
}

func TestRootVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "frame calculated")
	assert.NotContains(t, stdout, "frame calculated")
}

func TestRootWithDesignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.yaml")
	require.NoError(t, os.WriteFile(path, []byte("back_leg_length: 30\n"), 0644))

	stdout, _, err := run(t, "--design", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "sin multiplier = 30.8772")
}

func TestRootMissingDesignFile(t *testing.T) {
	_, _, err := run(t, "--design", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading design")
}

func TestRootNonFiniteDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"compression_ratio": 0}`), 0644))

	stdout, _, err := run(t, "--design", path)
	require.ErrorIs(t, err, model.ErrNonFinite)
	assert.Empty(t, stdout, "no partial report is printed")
}

func TestExportFormats(t *testing.T) {
	cases := map[string]string{
		"pdf":    "%PDF-",
		"labels": "%PDF-",
		"xlsx":   "PK",
	}
	for format, prefix := range cases {
		stdout, _, err := run(t, "export", format)
		require.NoError(t, err, format)
		assert.True(t, strings.HasPrefix(stdout, prefix), "%s output should start with %q", format, prefix)
	}

	stdout, _, err := run(t, "export", "dxf")
	require.NoError(t, err)
	assert.Contains(t, stdout, "LINE")
}

func TestSnapshotCommand(t *testing.T) {
	stdout, _, err := run(t, "snapshot")
	require.NoError(t, err)

	snap, err := project.ReadSnapshot(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDesign(), snap.Design)
	assert.InDelta(t, 43.7131, snap.Measurements.MainBeamMinimumLength, 0.0001)
}

func TestDesignCommandRoundTrip(t *testing.T) {
	for _, format := range []string{project.FormatJSON, project.FormatYAML} {
		stdout, _, err := run(t, "design", "--format", format)
		require.NoError(t, err, format)

		d, err := project.DecodeDesign([]byte(stdout), format)
		require.NoError(t, err, format)
		assert.Equal(t, model.DefaultDesign(), d, format)
	}
}
