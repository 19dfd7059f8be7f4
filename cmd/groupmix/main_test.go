package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `algorithm: 2
groups:
  - [[0, 0], [2, 0]]
  - [[0, 2], [2, 2]]
`

func TestRunFromStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-"}, strings.NewReader(doc), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "free_energy:")
	assert.Contains(t, stdout.String(), "K: 1")
}

func TestRunFromFileVerboseLogsSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sparse: false\nverbose: true\n"+doc), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--log-format", "json", path}, nil, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "responsibilities:")
	assert.Contains(t, stderr.String(), `"level":"info"`)
	assert.Contains(t, stderr.String(), "baseline: J=2 N=4 D=2 K=1")
}

func TestRunQuietRequestLogsNoEngineOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-"}, strings.NewReader(doc), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.NotContains(t, stderr.String(), "baseline:")
}

func TestRunOutputArityFromFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--outputs", "3", "-"}, strings.NewReader(doc), &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "invocation failed")
}

func TestRunEnvOutputs(t *testing.T) {
	t.Setenv("GROUPMIX_OUTPUTS", "5")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-"}, strings.NewReader(doc), &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(nil, nil, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"--log-format", "xml", "-"}, nil, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"--log-level", "loud", "-"}, nil, &stdout, &stderr))
	assert.Equal(t, exitOK, run([]string{"--help"}, nil, &stdout, &stderr))
}

func TestRunBadRequest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, nil, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)

	code = run([]string{"-"}, strings.NewReader("algorithm: 9\ngroups: [[[1]]]\n"), &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
}

func TestRunFlagOverridesEnv(t *testing.T) {
	t.Setenv("GROUPMIX_OUTPUTS", "5")
	var stdout, stderr bytes.Buffer
	code := run([]string{"--outputs", "4", "-"}, strings.NewReader(doc), &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
}
