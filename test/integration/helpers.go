//go:build integration
// +build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	ServerURL string
	APIKey    string
	Project   string
	SlatePath string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ServerURL: os.Getenv("SLATE_TEST_SERVER_URL"),
		APIKey:    os.Getenv("SLATE_TEST_API_KEY"),
		Project:   os.Getenv("SLATE_TEST_PROJECT"),
		SlatePath: getSlatePath(),
		Verbose:   os.Getenv("SLATE_TEST_VERBOSE") == "true",
	}
}

// getSlatePath determines the path to the slate binary
func getSlatePath() string {
	if path := os.Getenv("SLATE_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../slate",
		"./slate",
		"../slate",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "slate" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.ServerURL == "" {
		t.Skip("SLATE_TEST_SERVER_URL not set, skipping integration test")
	}

	if config.APIKey == "" {
		t.Skip("SLATE_TEST_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the slate binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	if _, err := os.Stat(config.SlatePath); os.IsNotExist(err) {
		t.Skipf("slate binary not found at %s, skipping integration test", config.SlatePath)
	}
}

// CommandRunner provides utilities for running slate commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a slate command and returns output. Server and credentials
// are passed through the environment so no config file is touched.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.SlatePath, args...)
	cmd.Env = append(os.Environ(),
		"SLATE_SERVER_URL="+runner.config.ServerURL,
		"SLATE_API_KEY="+runner.config.APIKey,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.SlatePath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunWithInput executes a slate command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.SlatePath, args...)
	cmd.Env = append(os.Environ(),
		"SLATE_SERVER_URL="+runner.config.ServerURL,
		"SLATE_API_KEY="+runner.config.APIKey,
	)
	cmd.Stdin = strings.NewReader(input)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running with input: %s %s", runner.config.SlatePath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
