package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodec_HashAndVerify(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	digest, err := c.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.NotContains(t, digest, "secret1")

	require.True(t, c.Verify("secret1", digest))
	require.False(t, c.Verify("secret2", digest))
	require.False(t, c.Verify("", digest))
}

func TestCodec_HashIsSalted(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	first, err := c.Hash("secret1")
	require.NoError(t, err)
	second, err := c.Hash("secret1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, strings.HasPrefix(first, "$2"))
}

func TestCodec_Verify_MalformedDigest(t *testing.T) {
	t.Parallel()

	c := NewCodec()
	require.False(t, c.Verify("secret1", "not-a-bcrypt-digest"))
}
