package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordchain/core"
)

func TestChain(t *testing.T) {
	words := []string{"cat", "cot", "cog", "dog"}
	c := core.NewChain(words...)
	words[0] = "bat" // NewChain must copy

	require.Equal(t, 4, c.Len())
	require.Equal(t, "cat", c.Begin())
	require.Equal(t, "dog", c.End())
	require.Equal(t, "cat,cot,cog,dog", c.String())
	require.True(t, c.Connected())

	require.True(t, c.Equal(core.Chain{"cat", "cot", "cog", "dog"}))
	require.False(t, c.Equal(core.Chain{"cat", "cot", "dot", "dog"}))
	require.False(t, c.Equal(core.Chain{"cat", "cot", "cog"}))

	out := c.Words()
	out[0] = "zzz"
	require.Equal(t, "cat", c.Begin())
}

func TestChain_Empty(t *testing.T) {
	var c core.Chain
	require.Zero(t, c.Len())
	require.Empty(t, c.Begin())
	require.Empty(t, c.End())
	require.Empty(t, c.String())
	require.True(t, c.Connected())
	require.True(t, c.Equal(core.NewChain()))
}

func TestChain_Connected(t *testing.T) {
	require.True(t, core.NewChain("cat").Connected())
	require.False(t, core.NewChain("cat", "dog").Connected())
	require.False(t, core.NewChain("cat", "cats").Connected())
}
