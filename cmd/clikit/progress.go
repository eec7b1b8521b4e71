package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/clikit"
	"github.com/vbauerster/clikit/decor"
	"golang.org/x/sync/errgroup"
)

func (a *app) progressCmd() *cobra.Command {
	var (
		bars  int
		total uint64
		delay time.Duration
		ewma  float64
		bytes bool
	)
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Drive demo progress bars concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := clikit.NewRegistry(append(a.conf.RegistryOptions(), clikit.WithOutput(cmd.OutOrStdout()))...)

			g, ctx := errgroup.WithContext(cmd.Context())
			for i := 0; i < bars; i++ {
				h, err := r.Create(total,
					clikit.BarMessage(fmt.Sprintf("task#%02d", i)),
					clikit.BarOptOnCond(clikit.BarBytesUnit(), func() bool { return bytes }),
					clikit.BarOptOnCond(clikit.BarMovingAverage(decor.NewMedianEwma(ewma)), func() bool { return ewma > 0 }),
				)
				if err != nil {
					return err
				}
				step := max(total/50, 1)
				g.Go(func() error {
					for cur := uint64(0); cur < total; cur += step {
						select {
						case <-ctx.Done():
							return ctx.Err()
						case <-time.After(jitter(delay)):
						}
						if !r.Increment(h, step) {
							return fmt.Errorf("bar %d rejected increment", h)
						}
					}
					if !r.Finish(h) {
						return fmt.Errorf("bar %d rejected finish", h)
					}
					return nil
				})
			}
			return g.Wait()
		},
	}
	f := cmd.Flags()
	f.IntVar(&bars, "bars", 3, "number of bars")
	f.Uint64Var(&total, "total", 100, "total of every bar")
	f.DurationVar(&delay, "delay", 20*time.Millisecond, "mean delay between increments")
	f.Float64Var(&ewma, "ewma", 0, "median smoothed ewma age for speed, 0 means plain average")
	f.BoolVar(&bytes, "bytes", false, "print counters in bytes")
	return cmd
}

func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d/2 + rand.N(d)
}
