package dfs_test

import (
	"testing"

	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/core"
	"github.com/katalvlaran/wordchain/dfs"
)

// hamming builds every word over the first k letters with length n.
func hamming(k, n int) *core.Dictionary {
	d := core.NewDictionary()
	buf := make([]byte, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			d.Add(string(buf))
			return
		}
		for c := 0; c < k; c++ {
			buf[pos] = byte('a' + c)
			rec(pos + 1)
		}
	}
	rec(0)

	return d
}

// BenchmarkEnumerate_Factorial measures enumeration of n! chains (n = 6 → 720).
func BenchmarkEnumerate_Factorial(b *testing.B) {
	const n = 6
	d := hamming(2, n)
	g, err := bfs.Build("aaaaaa", "bbbbbb", d)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Enumerate(g, "aaaaaa", "bbbbbb")
	}
}

// BenchmarkEnumerate_FirstChain measures the cost of stopping at the first chain.
func BenchmarkEnumerate_FirstChain(b *testing.B) {
	d := hamming(2, 6)
	g, _ := bfs.Build("aaaaaa", "bbbbbb", d)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Enumerate(g, "aaaaaa", "bbbbbb", dfs.WithMaxChains(1))
	}
}
