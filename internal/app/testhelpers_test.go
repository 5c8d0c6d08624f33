package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest creates an app whose results and logs are captured in buffers.
func setupAppTest(t *testing.T, cfg Config, stdin string) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	if cfg.Workers == 0 {
		cfg.Workers = 2
	}
	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(validated, strings.NewReader(stdin), out, logBuffer)

	t.Cleanup(func() {
		if os.Getenv("DOMDIST_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
