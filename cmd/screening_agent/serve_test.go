package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCommand_RequiresProviderKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "serve", "--port", "0")
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "LLM provider key is required")
}
