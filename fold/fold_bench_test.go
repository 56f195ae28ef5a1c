package fold

import (
	"testing"

	"github.com/arloliu/nfold/ndarray"
)

var benchmarkSizes = []struct {
	name string
	n    int
}{
	{"100_elements", 100},
	{"10000_elements", 10000},
	{"1000000_elements", 1000000},
}

func BenchmarkFold(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			a := ndarray.Arange[float64](size.n)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				folded, err := Fold(a, 64, WithOverlap(16))
				if err != nil {
					b.Fatal(err)
				}
				_ = folded
			}
		})
	}
}

func BenchmarkSegments(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			a := ndarray.Arange[float64](size.n)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				seq, _, err := Segments(a, 64, WithOverlap(16))
				if err != nil {
					b.Fatal(err)
				}
				for seg := range seq {
					_ = seg
				}
			}
		})
	}
}

func BenchmarkRebin(b *testing.B) {
	values := make([]float64, 10000)
	for i := range values {
		values[i] = 20.5 + float64(i)*0.1
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := Rebin(values, 16); err != nil {
			b.Fatal(err)
		}
	}
}
