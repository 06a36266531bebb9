//go:build e2e

// cli_harness_test.go builds the guess binary and runs it as a child
// process so exit codes and real stdin handling can be checked.
package integration

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// CLIHarness manages a built guess binary.
type CLIHarness struct {
	// BinaryPath is the path to the built guess binary.
	BinaryPath string

	// EnvVars are added to the filtered parent environment.
	EnvVars map[string]string

	t *testing.T
}

// CLIResult contains the output from one run of the binary.
type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success returns true if the command completed with exit code 0.
func (r *CLIResult) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// NewCLIHarness builds ./cmd/guess into a temp directory.
func NewCLIHarness(t *testing.T) *CLIHarness {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(t.TempDir(), "guess")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/guess")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build guess binary: %s", output)

	return &CLIHarness{
		BinaryPath: binaryPath,
		EnvVars:    make(map[string]string),
		t:          t,
	}
}

// SetEnv sets an environment variable for later runs.
func (h *CLIHarness) SetEnv(key, value string) {
	h.EnvVars[key] = value
}

// Run executes the binary with stdin and a 30 second timeout.
func (h *CLIHarness) Run(stdin string, args ...string) *CLIResult {
	h.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.BinaryPath, args...)
	cmd.Env = h.buildEnv()
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CLIResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		result.Err = err
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}
	return result
}

// buildEnv drops inherited GUESS_* variables so runs only see the
// harness's own settings.
func (h *CLIHarness) buildEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "GUESS_") {
			env = append(env, e)
		}
	}
	for k, v := range h.EnvVars {
		env = append(env, k+"="+v)
	}
	return env
}

// findProjectRoot walks up from the working directory to go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "could not find project root")
		dir = parent
	}
}
