// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "4.0", formatFloat(4))
	assert.Equal(t, "0.0", formatFloat(0))
	assert.Equal(t, "-1.5", formatFloat(-1.5))
	assert.Equal(t, "3.25", formatFloat(3.25))
	assert.Equal(t, "1e+21", formatFloat(1e21))
}

func TestRun_SmallFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	yaml := "qubits: 2\nshots: 50\nangle_seed: 1\nsimulator_seed: 2\nmax_evaluations: 30\nlog_level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &out))

	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "The optimal cost value is 1.0", lines[0])
	assert.Equal(t, "", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "The optimal expectation value found by VQE is "))
	assert.Equal(t, "", lines[3])
}

func TestRun_BadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-log-level", "loud"}, &out))
	assert.Error(t, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &out))
	assert.Error(t, run(context.Background(), []string{"-nope"}, &out))
	assert.Empty(t, out.String())
}
