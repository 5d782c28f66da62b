package giftlist_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/giftlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueries(t *testing.T) {
	t.Parallel()

	t.Run("trims lines and skips blanks", func(t *testing.T) {
		t.Parallel()

		input := "  Тетрис \n\n\tКружка\n   \n"

		queries, err := giftlist.ParseQueries(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{"Тетрис", "Кружка"}, queries)
	})

	t.Run("drops exact duplicates keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		input := "lego\nmug\nlego\nLego\n"

		queries, err := giftlist.ParseQueries(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{"lego", "mug", "Lego"}, queries)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		queries, err := giftlist.ParseQueries(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, queries)
	})
}
