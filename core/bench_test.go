// Package core_test provides benchmarks for core primitives.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wordchain/core"
)

// fourLetterDictionary builds every word over {a..j}^4 (10 000 words).
func fourLetterDictionary() *core.Dictionary {
	d := core.NewDictionary()
	buf := make([]byte, 4)
	for a := byte('a'); a <= 'j'; a++ {
		for b := byte('a'); b <= 'j'; b++ {
			for c := byte('a'); c <= 'j'; c++ {
				for e := byte('a'); e <= 'j'; e++ {
					buf[0], buf[1], buf[2], buf[3] = a, b, c, e
					d.Add(string(buf))
				}
			}
		}
	}

	return d
}

// BenchmarkNeighborsOf measures neighbor discovery in a dense dictionary.
func BenchmarkNeighborsOf(b *testing.B) {
	d := fourLetterDictionary()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.NeighborsOf("eeee")
	}
}

// BenchmarkNewGraph measures vertex selection and sorting.
func BenchmarkNewGraph(b *testing.B) {
	d := fourLetterDictionary()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.NewGraph(d, 4)
	}
}
