package testutil

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadAll reads everything from the provided reader fatally terminating the current test in the event of a failure.
func ReadAll(t *testing.T, reader io.Reader) []byte {
	data, err := io.ReadAll(reader)
	require.NoError(t, err)

	return data
}
