package main

import (
	"errors"
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem-zyktin/fixed-vector/cmd/fvctl/logger"
)

// errDivergence reports a vector state that differs from the slice model.
var errDivergence = errors.New("vector diverged from model")

var (
	checkCapacity    int
	checkOps         int
	checkSeed        int64
	checkAllocator   string
	checkSizeClasses string
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().IntVar(&checkCapacity, "capacity", 64, "Vector capacity")
	cmd.Flags().IntVar(&checkOps, "ops", 10000, "Number of random operations")
	cmd.Flags().Int64Var(&checkSeed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&checkAllocator, "allocator", "heap", "Block allocator (heap, pool, offheap)")
	cmd.Flags().StringVar(&checkSizeClasses, "size-classes", "balanced", "Pool size classes (fine, balanced, coarse)")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run random operations against a slice model",
		Long: `The check command applies a seeded random sequence of push, emplace,
remove, pop, set, clear, clone, move and assignment operations to a vector
and to a plain slice with the same swap-and-pop semantics, and fails on the
first difference.

Example:
  fvctl check
  fvctl check --capacity 8 --ops 100000 --seed 7
  fvctl check --allocator pool --size-classes coarse --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runCheck(checkConfig{
				Capacity:    checkCapacity,
				Ops:         checkOps,
				Seed:        checkSeed,
				Allocator:   checkAllocator,
				SizeClasses: checkSizeClasses,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return printJSON(out, result)
			}
			printInfo(out, "check passed: %d operations on capacity %d (seed %d)\n",
				result.Ops, result.Capacity, result.Seed)
			for _, op := range slices.Sorted(maps.Keys(result.Counts)) {
				printVerbose(out, "  %-10s %d\n", op, result.Counts[op])
			}
			printInfo(out, "allocator %s: %d allocations, %d releases, %d live blocks\n",
				result.Alloc.Kind, result.Alloc.Stats.Allocations,
				result.Alloc.Stats.Deallocations, result.Alloc.Stats.LiveBlocks)
			if p := result.Alloc.Pool; p != nil {
				printInfo(out, "pool: %d hits, %d misses\n", p.Hits, p.Misses)
			}
			return nil
		},
	}
	return cmd
}

type checkConfig struct {
	Capacity    int
	Ops         int
	Seed        int64
	Allocator   string
	SizeClasses string
}

type checkResult struct {
	Capacity int            `json:"capacity"`
	Ops      int            `json:"ops"`
	Seed     int64          `json:"seed"`
	Counts   map[string]int `json:"counts"`
	Alloc    allocReport    `json:"allocator"`
	Elapsed  time.Duration  `json:"elapsed_ns"`
}

// checker holds the vector under test and its model.
type checker struct {
	setup    *allocSetup
	capacity int
	rng      *rand.Rand
	v        *vector
	model    []elem
	counts   map[string]int
}

func runCheck(cfg checkConfig) (*checkResult, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("--capacity must be positive, got %d", cfg.Capacity)
	}
	setup, err := newAllocSetup(cfg.Allocator, cfg.SizeClasses)
	if err != nil {
		return nil, err
	}
	v, err := setup.newVector(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	c := &checker{
		setup:    setup,
		capacity: cfg.Capacity,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		v:        v,
		counts:   make(map[string]int),
	}
	logger.Info("check started", "capacity", cfg.Capacity, "ops", cfg.Ops, "seed", cfg.Seed, "allocator", setup.kind)

	start := time.Now()
	for step := range cfg.Ops {
		op, err := c.step()
		if err == nil {
			err = c.verify()
		}
		if err != nil {
			logger.Error("check failed", "step", step, "op", op, "err", err)
			return nil, fmt.Errorf("step %d (%s): %w", step, op, err)
		}
		logger.Debug("step", "n", step, "op", op, "len", c.v.Len(), "cap", c.v.Cap())
	}
	elapsed := time.Since(start)

	if err := c.v.Close(); err != nil {
		return nil, err
	}
	if live := setup.tracked.Stats().LiveBlocks; live != 0 {
		return nil, fmt.Errorf("%w: %d blocks not released", errDivergence, live)
	}
	logger.Info("check passed", "elapsed", elapsed)

	return &checkResult{
		Capacity: cfg.Capacity,
		Ops:      cfg.Ops,
		Seed:     cfg.Seed,
		Counts:   c.counts,
		Alloc:    setup.report(),
		Elapsed:  elapsed,
	}, nil
}

// step applies one random operation whose preconditions hold.
// Contract panics are turned into errors.
func (c *checker) step() (op string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	v := c.v
	switch n := c.rng.Intn(100); {
	case n < 30 && !v.Full():
		op = "push"
		x := c.rng.Int63()
		v.PushBack(x)
		c.model = append(c.model, x)
	case n < 40 && !v.Full():
		op = "emplace"
		x := c.rng.Int63()
		v.EmplaceBack(func(p *elem) { *p = x })
		c.model = append(c.model, x)
	case n < 65 && !v.Empty():
		op = "remove"
		i := c.rng.Intn(v.Len())
		v.Remove(i)
		last := len(c.model) - 1
		c.model[i] = c.model[last]
		c.model = c.model[:last]
	case n < 72 && !v.Empty():
		op = "pop"
		x, ok := v.PopBack()
		want := c.model[len(c.model)-1]
		c.model = c.model[:len(c.model)-1]
		if !ok || x != want {
			return op, fmt.Errorf("%w: pop returned %d,%v want %d", errDivergence, x, ok, want)
		}
	case n < 80 && !v.Empty():
		op = "set"
		i, x := c.rng.Intn(v.Len()), c.rng.Int63()
		v.Set(i, x)
		c.model[i] = x
	case n < 82:
		op = "clear"
		v.Clear()
		c.model = c.model[:0]
	case n < 88:
		op = "clone"
		clone, err := v.Clone()
		if err != nil {
			return op, err
		}
		if err := v.Close(); err != nil {
			return op, err
		}
		c.v = clone.Move()
	case n < 94:
		op = "copy-from"
		other, err := c.setup.newVector(1 + c.rng.Intn(2*c.capacity))
		if err != nil {
			return op, err
		}
		if err := other.CopyFrom(v); err != nil {
			return op, err
		}
		if err := v.Close(); err != nil {
			return op, err
		}
		c.v = other
	default:
		op = "move-from"
		other, err := c.setup.newVector(1 + c.rng.Intn(2*c.capacity))
		if err != nil {
			return op, err
		}
		if err := other.MoveFrom(v); err != nil {
			return op, err
		}
		if v.Cap() != 0 {
			return op, fmt.Errorf("%w: source kept capacity %d after move", errDivergence, v.Cap())
		}
		c.v = other
	}
	c.counts[op]++
	return op, nil
}

// verify compares the vector with the model through every access path.
func (c *checker) verify() error {
	v := c.v
	if v.Len() != len(c.model) {
		return fmt.Errorf("%w: len %d, model %d", errDivergence, v.Len(), len(c.model))
	}
	if v.Len() > v.Cap() {
		return fmt.Errorf("%w: len %d exceeds cap %d", errDivergence, v.Len(), v.Cap())
	}
	for i, x := range v.All() {
		if x != c.model[i] {
			return fmt.Errorf("%w: index %d holds %d, model %d", errDivergence, i, x, c.model[i])
		}
	}
	if !slices.Equal(v.Slice(), c.model) {
		return fmt.Errorf("%w: slice view differs", errDivergence)
	}
	return nil
}
