package wordchain_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordchain"
	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/core"
	"github.com/katalvlaran/wordchain/dfs"
)

// ResolveSuite exercises the resolution entry point end to end.
type ResolveSuite struct {
	suite.Suite
}

func (s *ResolveSuite) TestEmptyDictionary() {
	chains, err := wordchain.Resolve("cat", "dog", core.NewDictionary())
	require.NoError(s.T(), err)
	require.NotNil(s.T(), chains)
	require.Empty(s.T(), chains)
}

func (s *ResolveSuite) TestSameWordsNotInDictionary() {
	chains, err := wordchain.Resolve("cat", "cat", core.NewDictionary())
	require.NoError(s.T(), err)
	require.Empty(s.T(), chains)
}

func (s *ResolveSuite) TestSameWordsInDictionary() {
	chains, err := wordchain.Resolve("cat", "cat", core.NewDictionary("cat", "cot"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Chain{{"cat"}}, chains)
}

func (s *ResolveSuite) TestAbsentArguments() {
	d := core.NewDictionary("cat", "dog")

	_, err := wordchain.Resolve("", "dog", d)
	require.ErrorIs(s.T(), err, wordchain.ErrInvalidArgument)

	_, err = wordchain.Resolve("cat", "", d)
	require.ErrorIs(s.T(), err, wordchain.ErrInvalidArgument)

	_, err = wordchain.Resolve("cat", "dog", nil)
	require.ErrorIs(s.T(), err, wordchain.ErrInvalidArgument)
}

func (s *ResolveSuite) TestBeginNotInDictionary() {
	chains, err := wordchain.Resolve("bat", "dog", core.NewDictionary("cat", "cot", "cog", "dog"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), chains)
}

func (s *ResolveSuite) TestEndNotInDictionary() {
	chains, err := wordchain.Resolve("cat", "bat", core.NewDictionary("cat", "cot", "cog", "dog"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), chains)
}

func (s *ResolveSuite) TestDifferentLengths() {
	d := core.NewDictionary("veryShortBeginName", "longName")
	chains, err := wordchain.Resolve("veryShortBeginName", "longName", d)
	require.NoError(s.T(), err)
	require.Empty(s.T(), chains)
}

func (s *ResolveSuite) TestOneChain() {
	chains, err := wordchain.Resolve("cat", "dog", core.NewDictionary("cat", "cot", "cog", "dog"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Chain{{"cat", "cot", "cog", "dog"}}, chains)
}

func (s *ResolveSuite) TestShortAndLongChain() {
	d := core.NewDictionary("cat", "cot", "cog", "dog", "caf", "cof", "dof")
	chains, err := wordchain.Resolve("cat", "dog", d)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Chain{{"cat", "cot", "cog", "dog"}}, chains)
}

func (s *ResolveSuite) TestFourChainsWithCommonSubset() {
	d := core.NewDictionary("cat", "cay", "coy", "cot", "cog", "dog", "dat", "dag", "dot")
	chains, err := wordchain.Resolve("cat", "dog", d)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []core.Chain{
		{"cat", "cot", "cog", "dog"},
		{"cat", "cot", "dot", "dog"},
		{"cat", "dat", "dot", "dog"},
		{"cat", "dat", "dag", "dog"},
	}, chains)
}

func (s *ResolveSuite) TestNoConnectingWords() {
	chains, err := wordchain.Resolve("cat", "dog", core.NewDictionary("cat", "dog", "cats", "bird"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), chains)
}

func (s *ResolveSuite) TestBounds() {
	d := core.NewDictionary("cat", "cay", "coy", "cot", "cog", "dog", "dat", "dag", "dot")

	chains, err := wordchain.Resolve("cat", "dog", d, wordchain.WithMaxChains(1))
	require.NoError(s.T(), err)
	require.Len(s.T(), chains, 1)

	chains, err = wordchain.Resolve("cat", "dog", d, wordchain.WithMaxDepth(2))
	require.NoError(s.T(), err)
	require.Empty(s.T(), chains)

	_, err = wordchain.Resolve("cat", "dog", d, wordchain.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)

	_, err = wordchain.Resolve("cat", "dog", d, wordchain.WithMaxChains(-1))
	require.ErrorIs(s.T(), err, dfs.ErrOptionViolation)
}

func (s *ResolveSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := wordchain.Resolve("cat", "dog", core.NewDictionary("cat", "cot", "cog", "dog"), wordchain.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestResolveSuite(t *testing.T) {
	suite.Run(t, new(ResolveSuite))
}

// TestResolve_ChainProperties checks every returned chain on a larger dictionary.
func TestResolve_ChainProperties(t *testing.T) {
	d := core.NewDictionary(
		"cold", "cord", "card", "ward", "warm", "word", "worm", "wore", "core", "corm",
		"wold", "bold", "bord", "bard", "warp", "worp", "cart", "wart",
	)
	chains, err := wordchain.Resolve("cold", "warm", d)
	require.NoError(t, err)
	require.NotEmpty(t, chains)

	length := chains[0].Len()
	seen := make(map[string]bool)
	for _, c := range chains {
		require.Equal(t, "cold", c.Begin())
		require.Equal(t, "warm", c.End())
		require.Equal(t, length, c.Len(), "all chains must be equally short")
		require.True(t, c.Connected(), "chain %s", c)
		for _, w := range c {
			require.True(t, d.Contains(w))
		}
		require.False(t, seen[c.String()], "duplicate %s", c)
		seen[c.String()] = true
	}
	require.Equal(t, 5, length)
}

// TestResolve_SharedDictionary resolves concurrently against one dictionary.
func TestResolve_SharedDictionary(t *testing.T) {
	d := core.NewDictionary("cat", "cay", "coy", "cot", "cog", "dog", "dat", "dag", "dot")

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			chains, err := wordchain.Resolve("cat", "dog", d)
			if err == nil {
				results[i] = len(chains)
			}
		}(i)
	}
	wg.Wait()
	for i, n := range results {
		require.Equal(t, 4, n, "run %d", i)
	}
}
