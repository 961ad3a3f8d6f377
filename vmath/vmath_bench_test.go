package vmath

import (
	"math"
	"testing"
)

func benchInput(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = -3 + 6*float64(i)/float64(n)
	}
	return x
}

func BenchmarkSinBlock(b *testing.B) {
	x := benchInput(1024)
	dst := make([]float64, len(x))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SinBlock(dst, x)
	}
}

func BenchmarkSinCosBlock(b *testing.B) {
	x := benchInput(1024)
	sins := make([]float64, len(x))
	coss := make([]float64, len(x))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SinCosBlock(sins, coss, x)
	}
}

func BenchmarkSinBlockStdlib(b *testing.B) {
	x := benchInput(1024)
	dst := make([]float64, len(x))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range x {
			dst[j] = math.Sin(x[j])
		}
	}
}

func BenchmarkExpBlock(b *testing.B) {
	x := benchInput(1024)
	dst := make([]float64, len(x))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExpBlock(dst, x)
	}
}

func BenchmarkAddBlock(b *testing.B) {
	x := benchInput(1024)
	y := benchInput(1024)
	dst := make([]float64, len(x))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AddBlock(dst, x, y)
	}
}
