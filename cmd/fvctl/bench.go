package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem-zyktin/fixed-vector/cmd/fvctl/logger"
)

var (
	benchCapacity    int
	benchRounds      int
	benchAllocator   string
	benchSizeClasses string
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchCapacity, "capacity", 1024, "Vector capacity")
	cmd.Flags().IntVar(&benchRounds, "rounds", 1000, "Rounds per workload")
	cmd.Flags().StringVar(&benchAllocator, "allocator", "heap", "Block allocator (heap, pool, offheap)")
	cmd.Flags().StringVar(&benchSizeClasses, "size-classes", "balanced", "Pool size classes (fine, balanced, coarse)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time vector workloads",
		Long: `The bench command times four workloads on one allocator:

  fill     push until full, then clear
  churn    remove a random index and push a replacement
  assign   copy a full vector into one of equal capacity (block reuse)
  clone    clone a full vector and close the copy (allocate + release)

Example:
  fvctl bench
  fvctl bench --allocator pool --capacity 4096 --rounds 200
  fvctl bench --allocator offheap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runBench(benchConfig{
				Capacity:    benchCapacity,
				Rounds:      benchRounds,
				Allocator:   benchAllocator,
				SizeClasses: benchSizeClasses,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return printJSON(out, result)
			}
			printInfo(out, "capacity %d, %d rounds, allocator %s\n",
				result.Capacity, result.Rounds, result.Alloc.Kind)
			for _, w := range result.Workloads {
				printInfo(out, "  %-7s %12d ops %10.1f ns/op\n", w.Name, w.Ops, w.NsPerOp)
			}
			printVerbose(out, "allocations %d, releases %d, peak slots %d\n",
				result.Alloc.Stats.Allocations, result.Alloc.Stats.Deallocations,
				result.Alloc.Stats.PeakSlots)
			return nil
		},
	}
	return cmd
}

type benchConfig struct {
	Capacity    int
	Rounds      int
	Allocator   string
	SizeClasses string
}

type workloadResult struct {
	Name    string        `json:"name"`
	Ops     int           `json:"ops"`
	Elapsed time.Duration `json:"elapsed_ns"`
	NsPerOp float64       `json:"ns_per_op"`
}

type benchResult struct {
	Capacity  int              `json:"capacity"`
	Rounds    int              `json:"rounds"`
	Workloads []workloadResult `json:"workloads"`
	Alloc     allocReport      `json:"allocator"`
}

// workload runs rounds of one operation mix on its own vectors and returns
// the number of vector operations performed.
type workload struct {
	name string
	run  func(s *allocSetup, capacity, rounds int) (int, error)
}

var workloads = []workload{
	{"fill", benchFill},
	{"churn", benchChurn},
	{"assign", benchAssign},
	{"clone", benchClone},
}

func runBench(cfg benchConfig) (*benchResult, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("--capacity must be positive, got %d", cfg.Capacity)
	}
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("--rounds must be positive, got %d", cfg.Rounds)
	}
	setup, err := newAllocSetup(cfg.Allocator, cfg.SizeClasses)
	if err != nil {
		return nil, err
	}

	result := &benchResult{Capacity: cfg.Capacity, Rounds: cfg.Rounds}
	for _, w := range workloads {
		start := time.Now()
		ops, err := w.run(setup, cfg.Capacity, cfg.Rounds)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", w.name, err)
		}
		elapsed := time.Since(start)

		wr := workloadResult{Name: w.name, Ops: ops, Elapsed: elapsed}
		if ops > 0 {
			wr.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
		}
		result.Workloads = append(result.Workloads, wr)
		logger.Info("workload done", "name", w.name, "ops", ops, "elapsed", elapsed)
	}

	if live := setup.tracked.Stats().LiveBlocks; live != 0 {
		return nil, fmt.Errorf("%d blocks not released", live)
	}
	result.Alloc = setup.report()
	return result, nil
}

// closeVector releases v and records a release failure in *err unless an
// earlier error is already there.
func closeVector(v *vector, err *error) {
	cerr := v.Close()
	if cerr == nil {
		return
	}
	if *err != nil {
		logger.Warn("release after failed workload", "err", cerr)
		return
	}
	*err = cerr
}

func benchFill(s *allocSetup, capacity, rounds int) (ops int, err error) {
	v, err := s.newVector(capacity)
	if err != nil {
		return 0, err
	}
	defer closeVector(v, &err)

	for r := range rounds {
		for !v.Full() {
			v.PushBack(elem(r))
			ops++
		}
		v.Clear()
		ops++
	}
	return ops, nil
}

func benchChurn(s *allocSetup, capacity, rounds int) (ops int, err error) {
	v, err := s.newVector(capacity)
	if err != nil {
		return 0, err
	}
	defer closeVector(v, &err)

	for i := range capacity {
		v.PushBack(elem(i))
	}
	rng := rand.New(rand.NewSource(1))
	for range rounds {
		for range capacity {
			v.Remove(rng.Intn(v.Len()))
			v.PushBack(rng.Int63())
			ops += 2
		}
	}
	return ops, nil
}

func benchAssign(s *allocSetup, capacity, rounds int) (ops int, err error) {
	src, err := s.newVector(capacity)
	if err != nil {
		return 0, err
	}
	defer closeVector(src, &err)
	for i := range capacity {
		src.PushBack(elem(i))
	}

	dst, err := s.newVector(capacity)
	if err != nil {
		return 0, err
	}
	defer closeVector(dst, &err)

	for range rounds {
		if err := dst.CopyFrom(src); err != nil {
			return ops, err
		}
		ops++
	}
	return ops, nil
}

func benchClone(s *allocSetup, capacity, rounds int) (ops int, err error) {
	src, err := s.newVector(capacity)
	if err != nil {
		return 0, err
	}
	defer closeVector(src, &err)
	for i := range capacity {
		src.PushBack(elem(i))
	}

	for range rounds {
		c, err := src.Clone()
		if err != nil {
			return ops, err
		}
		if err := c.Close(); err != nil {
			return ops, err
		}
		ops++
	}
	return ops, nil
}
