package clikit_test

import (
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vbauerster/clikit"
)

func Example() {
	// Create a registry once and pass it around.
	r := clikit.NewRegistry(
		clikit.WithWidth(40),
		clikit.WithStyle("╢▌▌░╟"),
	)

	h, err := r.Create(100)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 100; i++ {
		r.Increment(h, 1)
		time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
	}
	r.Finish(h)
}

func ExampleRegistry_Update() {
	r := clikit.NewRegistry()
	h, _ := r.Create(3)

	for i, step := range []string{"fetch", "build", "install"} {
		r.Update(h, uint64(i), step)
		time.Sleep(100 * time.Millisecond)
	}
	r.Finish(h, "installed")
}

func ExampleRegistry_Create_concurrent() {
	r := clikit.NewRegistry(clikit.WithEwmaSpeed(30))

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		h, _ := r.Create(50)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Increment(h, 1)
				time.Sleep(time.Duration(rand.Intn(50)) * time.Millisecond)
			}
			r.Finish(h)
		}()
	}
	wg.Wait()
}

func ExampleBar_ProxyReader() {
	r := clikit.NewRegistry(clikit.WithBytesUnit())
	src := strings.NewReader(strings.Repeat("x", 1<<20))
	h, _ := r.Create(uint64(src.Len()))

	bar, _ := r.Resolve(h)
	pr := bar.ProxyReader(src)
	defer pr.Close()

	_, _ = io.Copy(io.Discard, pr)
	r.Finish(h)
}
