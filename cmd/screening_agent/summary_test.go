package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	// Seed a session with the chat command
	chat := exec.Command(binaryPath, "chat",
		"--session", "cli-sum-1",
		"--data-dir", tmpDir)
	chat.Env = offlineEnv()
	chat.Stdin = strings.NewReader("hello\nMy name is Jane Smith.\n")
	chatOut, err := chat.CombinedOutput()
	require.NoError(t, err, "chat should succeed: %s", string(chatOut))

	cmd := exec.Command(binaryPath, "summary", "cli-sum-1", "--data-dir", tmpDir)
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "CANDIDATE SUMMARY")
	assert.Contains(t, string(output), "Name: Jane Smith")
	assert.Contains(t, string(output), "INTERVIEW PROGRESS")
}

func TestSummaryCommand_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "summary", "ghost", "--data-dir", t.TempDir())
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "session not found: ghost")
}

func TestSummaryCommand_InvalidSessionID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "summary", ".hidden", "--data-dir", t.TempDir())
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid session ID")
}
