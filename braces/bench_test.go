package braces_test

import (
	"testing"

	"github.com/katalvlaran/rosetta/braces"
)

// BenchmarkExpand_Nested measures the canonical nested pattern.
func BenchmarkExpand_Nested(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = braces.Expand(nestedPattern)
	}
}

// BenchmarkExpand_Wide measures a flat four-group pattern producing
// 256 candidates.
func BenchmarkExpand_Wide(b *testing.B) {
	const pattern = "{a,b,c,d}{e,f,g,h}{i,j,k,l}{m,n,o,p}"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = braces.Expand(pattern)
	}
}

// BenchmarkExpand_HookOverhead compares expansion with and without an
// OnExpand observer.
func BenchmarkExpand_HookOverhead(b *testing.B) {
	const pattern = "{a,b,c,d}{e,f,g,h}{i,j,k,l}"

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = braces.Expand(pattern)
		}
	})

	b.Run("CountingHook", func(b *testing.B) {
		count := 0
		hook := braces.WithOnExpand(func(string) { count++ })

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = braces.Expand(pattern, hook)
		}
	})
}
