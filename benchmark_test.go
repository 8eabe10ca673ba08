package shtools

import (
	"fmt"
	"runtime"
	"testing"
)

// Benchmark synthesis throughput across degrees
func BenchmarkMakeGridDHC(b *testing.B) {
	for _, lmax := range []int{31, 63, 127, 255} {
		b.Run(fmt.Sprintf("lmax_%d", lmax), func(b *testing.B) {
			cilm := randomCoeffs(lmax, 1)
			s := NewSynthesizer()
			grid, err := s.MakeGridDHC(cilm, lmax, nil)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(grid.NLat() * grid.NLon() * 16))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := s.MakeGridDHC(cilm, lmax, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark the parallel ring loop against the sequential one
func BenchmarkMakeGridDHCParallel(b *testing.B) {
	const lmax = 255
	cilm := randomCoeffs(lmax, 1)

	for _, workers := range []int{1, 2, 4, runtime.NumCPU()} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			opts := DefaultGridOptions()
			opts.Workers = workers
			s := NewSynthesizer()
			if _, err := s.MakeGridDHC(cilm, lmax, &opts); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := s.MakeGridDHC(cilm, lmax, &opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark the real-field variant
func BenchmarkMakeGridDH(b *testing.B) {
	for _, lmax := range []int{63, 255} {
		b.Run(fmt.Sprintf("lmax_%d", lmax), func(b *testing.B) {
			cilm := randomRealCoeffs(lmax, 1)
			s := NewSynthesizer()
			if _, err := s.MakeGridDH(cilm, lmax, nil); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := s.MakeGridDH(cilm, lmax, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark the recursion cache rebuild in isolation
func BenchmarkCacheRebuild(b *testing.B) {
	for _, lmax := range []int{255, 1023, 2700} {
		b.Run(fmt.Sprintf("lmax_%d", lmax), func(b *testing.B) {
			var c legendreCache
			for i := 0; i < b.N; i++ {
				// Alternate keys so every call rebuilds.
				if i%2 == 0 {
					c.rebuildIfStale(lmax, FourPi)
				} else {
					c.rebuildIfStale(lmax, Schmidt)
				}
			}
		})
	}
}
