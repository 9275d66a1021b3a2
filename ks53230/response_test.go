package ks53230

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labkit/go-counter/counter"
)

func TestParseFloatList(t *testing.T) {
	require := require.New(t)

	values, err := parseFloatList("+1.00000000000E+06,+9.99999999999E+05")
	require.NoError(err)
	require.Equal([]float64{1.00000000000e+06, 9.99999999999e+05}, values)

	values, err = parseFloatList("+1.5,\n")
	require.NoError(err)
	require.Equal([]float64{1.5}, values)

	_, err = parseFloatList("+1.5,abc")
	require.ErrorIs(err, counter.ErrMalformedValue)
}

func TestParseChunk(t *testing.T) {
	require := require.New(t)

	t.Run("Header Skip", func(t *testing.T) {
		// Arbitrary non-numeric prefix followed by the first '+' marker.
		values, err := parseChunk("#247xyzQQ+1.5,+2.3,+1.1\n")
		require.NoError(err)
		require.Equal([]float64{1.5, 2.3, 1.1}, values)
	})

	t.Run("Empty Block", func(t *testing.T) {
		for _, text := range []string{"#10", "#10\n", "", "  \n"} {
			values, err := parseChunk(text)
			require.NoError(err)
			require.Empty(values)
		}
	})

	t.Run("No Marker", func(t *testing.T) {
		_, err := parseChunk("ERROR -113")
		require.ErrorIs(err, counter.ErrMalformedValue)
	})
}
