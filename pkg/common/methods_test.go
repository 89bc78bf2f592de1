package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPMethods(t *testing.T) {
	require.True(t, HTTPMethods.Contains("GET"))
	require.True(t, HTTPMethods.Contains("PATCH"))
	require.False(t, HTTPMethods.Contains("get"))
	require.False(t, HTTPMethods.Contains("FETCH"))
}
