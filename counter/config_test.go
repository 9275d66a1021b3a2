package counter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	t.Run("Well-Formed Tokens", func(t *testing.T) {
		cfg := ParseConfig("ch:1 cou:ac exp:125E6 res:12 sampl:100")
		require.Equal(ConfigMap{
			"ch":    "1",
			"cou":   "ac",
			"exp":   "125E6",
			"res":   "12",
			"sampl": "100",
		}, cfg)
	})

	t.Run("Malformed Tokens Dropped", func(t *testing.T) {
		cfg := ParseConfig("ch:1 novalue a:b:c :orphan cou:dc")
		require.Equal(ConfigMap{
			"ch":  "1",
			"cou": "dc",
		}, cfg)
	})

	t.Run("Duplicate Keys Last Wins", func(t *testing.T) {
		cfg := ParseConfig("ch:1 ch:2")
		require.Equal(ConfigMap{"ch": "2"}, cfg)
	})

	t.Run("Order Irrelevant", func(t *testing.T) {
		require.Equal(
			ParseConfig("sou:ext cnt:10 slo:pos"),
			ParseConfig("slo:pos sou:ext cnt:10"),
		)
	})

	t.Run("Empty Input", func(t *testing.T) {
		require.Empty(ParseConfig(""))
		require.Empty(ParseConfig("   \t\n"))
	})

	t.Run("Empty Value Kept", func(t *testing.T) {
		cfg := ParseConfig("exp:")
		require.Equal(ConfigMap{"exp": ""}, cfg)
	})
}

func TestChannelKeys(t *testing.T) {
	require := require.New(t)

	require.Equal("ch1", ChannelKey(1))
	require.Equal("ch2", ChannelKey(2))
	require.Equal("trig1", TrigLevelKey(1))
	require.Equal("trig2", TrigLevelKey(2))
}
