package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and hyphenates", func(t *testing.T) {
		require.Equal(t, "finding-calm-a-weekend-retreat", Slugify("Finding Calm: A Weekend Retreat"))
	})

	t.Run("collapses punctuation runs", func(t *testing.T) {
		require.Equal(t, "yoga-meditation", Slugify("Yoga  &  Meditation!!"))
	})

	t.Run("keeps digits", func(t *testing.T) {
		require.Equal(t, "7-day-detox-2026", Slugify("7-Day Detox 2026"))
	})

	t.Run("trims leading and trailing separators", func(t *testing.T) {
		require.Equal(t, "hello-world", Slugify("  ...Hello, World...  "))
	})

	t.Run("empty when nothing usable remains", func(t *testing.T) {
		require.Equal(t, "", Slugify("   "))
		require.Equal(t, "", Slugify("!!!"))
	})

	t.Run("strips zero-width characters without separating", func(t *testing.T) {
		require.Equal(t, "retreat", Slugify("re\u200Btre\u200Bat"))
	})

	t.Run("truncates long titles", func(t *testing.T) {
		long := strings.Repeat("word ", 50)
		slug := Slugify(long)
		require.LessOrEqual(t, len([]rune(slug)), 80)
		require.False(t, strings.HasSuffix(slug, "-"))
	})
}
