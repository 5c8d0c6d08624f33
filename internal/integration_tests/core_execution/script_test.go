package integration_tests

import (
	"testing"

	"github.com/specialistvlad/domdist/internal/app"
	"github.com/specialistvlad/domdist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: the edit script is printed under its distance
func TestCoreExecution_Script(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"script.txt": "div.a p\ndiv.a.b span#x\n3\n",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{Script: true, Check: true})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "3\n  alter div.a -> div.a.b (1)\n  alter p -> span#x (2)\n", result.Output)
}
