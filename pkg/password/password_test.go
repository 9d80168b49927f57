package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		for _, n := range []int{1, 8, 32} {
			p, err := Generate(n)
			require.NoError(t, err)
			assert.Len(t, p, n)
		}
	})

	t.Run("alphanumeric only", func(t *testing.T) {
		p, err := Generate(64)
		require.NoError(t, err)
		for _, r := range p {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.Truef(t, ok, "unexpected rune %q", r)
		}
	})

	t.Run("two calls differ", func(t *testing.T) {
		a, err := Generate(16)
		require.NoError(t, err)
		b, err := Generate(16)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}
