package integration_tests

import (
	"testing"

	"github.com/specialistvlad/domdist/internal/app"
	"github.com/specialistvlad/domdist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: operation weights change which edits are cheapest
func TestCoreExecution_Weights(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// div#x -> div#y is an alter of cost 2 by default. With substitutions ten
	// times as expensive, inserting and deleting (2 + 3) wins.
	files := map[string]string{
		"cases.txt": "div#x\ndiv#y\n\na b c\na c\n\n",
	}

	// --- Act ---
	unweighted := testutil.RunIntegrationTest(t, files, app.Config{})
	weighted := testutil.RunIntegrationTest(t, files, app.Config{
		DeleteWeight:     3,
		InsertWeight:     1,
		SubstituteWeight: 10,
		Script:           true,
	})

	// --- Assert ---
	require.NoError(t, unweighted.Err)
	assert.Equal(t, []string{"2", "1"}, unweighted.Lines())

	require.NoError(t, weighted.Err)
	assert.Equal(t, "5\n  insert div#y (2)\n  delete div#x (3)\n3\n  keep a\n  delete b (3)\n  keep c\n", weighted.Output)
}
