package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, Verify(hash, "correct horse battery staple"))
	require.False(t, Verify(hash, "wrong password"))
	require.False(t, Verify("not a bcrypt hash", "anything"))
}
