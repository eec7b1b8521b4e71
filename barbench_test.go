package clikit

import (
	"sync"
	"testing"
)

const total = 1000

func BenchmarkIncrementOneBar(b *testing.B) {
	benchBody(1, b)
}

func BenchmarkIncrementTwoBars(b *testing.B) {
	benchBody(2, b)
}

func BenchmarkIncrementThreeBars(b *testing.B) {
	benchBody(3, b)
}

func BenchmarkIncrementFourBars(b *testing.B) {
	benchBody(4, b)
}

func benchBody(n int, b *testing.B) {
	r := NewRegistry(WithOutput(nil), WithWidth(80))
	wg := new(sync.WaitGroup)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < n; j++ {
			h, err := r.Create(total)
			if err != nil {
				b.Fatal(err)
			}
			switch j {
			case n - 1:
				complete(b, r, h)
			default:
				wg.Add(1)
				go func() {
					complete(b, r, h)
					wg.Done()
				}()
			}
		}
		wg.Wait()
	}
}

func complete(b *testing.B, r *Registry, h Handle) {
	for i := 0; i < total; i++ {
		r.Increment(h, 1)
	}
	bar, err := r.Resolve(h)
	if err != nil {
		b.Error(err)
		return
	}
	if st, _ := bar.Stats(); st.Current != total {
		b.Fail()
	}
}
