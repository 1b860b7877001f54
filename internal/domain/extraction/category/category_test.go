package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizerCanonical(t *testing.T) {
	n := NewNormalizer()

	t.Run("exact match passes through", func(t *testing.T) {
		assert.Equal(t, "Food", n.Canonical("Food"))
	})

	t.Run("case and padding are ignored", func(t *testing.T) {
		assert.Equal(t, "Food", n.Canonical(" food "))
		assert.Equal(t, "Transport", n.Canonical("TRANSPORT"))
	})

	t.Run("unknown text is kept verbatim", func(t *testing.T) {
		assert.Equal(t, "Crypto Winnings", n.Canonical("Crypto Winnings"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", n.Canonical("   "))
	})

	t.Run("custom category set", func(t *testing.T) {
		custom := NewNormalizer("Groceries", "Rent")
		assert.Equal(t, "Groceries", custom.Canonical("groceries"))
	})
}
