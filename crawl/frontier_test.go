package crawl_test

import (
	"testing"

	"github.com/fwojciec/docscrape/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops in insertion order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("https://example.com/c")
		f.Push("https://example.com/a")
		f.Push("https://example.com/b")

		var got []string
		for {
			u, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, u)
		}

		assert.Equal(t, []string{
			"https://example.com/c",
			"https://example.com/a",
			"https://example.com/b",
		}, got)
	})

	t.Run("rejects addresses already queued", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()

		assert.True(t, f.Push("https://example.com/a"))
		assert.False(t, f.Push("https://example.com/a"))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("accepts an address again after it was popped", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("https://example.com/a")
		_, ok := f.Pop()
		require.True(t, ok)

		assert.False(t, f.Contains("https://example.com/a"))
		assert.True(t, f.Push("https://example.com/a"))
	})

	t.Run("pop on empty frontier returns false", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		u, ok := f.Pop()

		assert.False(t, ok)
		assert.Empty(t, u)
		assert.Zero(t, f.Len())
	})
}

func TestNewState(t *testing.T) {
	t.Parallel()

	s := crawl.NewState("https://example.com/")

	assert.True(t, s.Frontier.Contains("https://example.com/"))
	assert.Empty(t, s.Visited)
	assert.Empty(t, s.Discovered)
	assert.False(t, s.Done())
	assert.Equal(t, []string{}, s.Result())
}
