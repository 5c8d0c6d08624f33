// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/domdist/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Lines splits the result output into one entry per printed line.
func (r *HarnessResult) Lines() []string {
	trimmed := strings.TrimSuffix(r.Output, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a temporary case directory,
// points the app at it and runs it to completion. An empty cfg.CasesPath
// selects the whole directory; a relative one is resolved inside it.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	// 1. Write all case files to a temporary directory. Relative paths such as
	//    "nested/x.hcl" create the subdirectory structure.
	casesDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(casesDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Fill in the defaults the CLI would provide.
	switch {
	case cfg.CasesPath == "":
		cfg.CasesPath = casesDir
	case cfg.CasesPath != app.StdinPath && !filepath.IsAbs(cfg.CasesPath):
		cfg.CasesPath = filepath.Join(casesDir, cfg.CasesPath)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err, "harness config must be valid")

	// 3. Run the app with captured output.
	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(validated, strings.NewReader(""), out, logBuffer)
	runErr := testApp.Run(ctx)

	if os.Getenv("DOMDIST_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
