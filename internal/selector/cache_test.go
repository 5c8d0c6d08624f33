package selector

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitsAndMisses(t *testing.T) {
	c, err := NewCache(16)
	require.NoError(t, err)

	dom, err := c.ParseDOM("div div.a div")
	require.NoError(t, err)
	require.Len(t, dom, 3)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 2, stats.Size)
}

func TestCache_FailuresAreNotCached(t *testing.T) {
	c, err := NewCache(0)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := c.Parse("#bad")
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
	}
	assert.Equal(t, 0, c.Stats().Size)
	assert.Equal(t, int64(2), c.Stats().Misses)
}

func TestCache_MatchesUncachedParser(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	line := "a#x.b c.d e f#g h.i.j a#x.b"
	want, err := ParseDOM(line)
	require.NoError(t, err)

	got, err := c.ParseDOM(line)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dom, err := c.ParseDOM("div#a.b span p.c div#a.b")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if len(dom) != 4 {
				t.Errorf("expected 4 elements, got %d", len(dom))
			}
		}()
	}
	wg.Wait()

	stats := c.Stats()
	assert.Equal(t, int64(200), stats.Hits+stats.Misses)
	assert.Equal(t, 3, stats.Size)
}

func TestTracker_CountsOnlyItsOwnLookups(t *testing.T) {
	c, err := NewCache(16)
	require.NoError(t, err)
	_, err = c.ParseDOM("div span")
	require.NoError(t, err)

	first, second := c.Track(), c.Track()
	_, err = first.ParseDOM("div p")
	require.NoError(t, err)
	_, err = second.ParseDOM("#bad")
	require.Error(t, err)

	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Size: 3}, first.Stats())
	assert.Equal(t, CacheStats{Hits: 0, Misses: 1, Size: 3}, second.Stats())
	assert.Equal(t, CacheStats{Hits: 1, Misses: 4, Size: 3}, c.Stats(), "trackers feed the shared counters too")
}
