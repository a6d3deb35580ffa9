package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem-zyktin/fixed-vector/alloc"
)

// runCommand executes fvctl with args and returns what it wrote to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		verbose, quiet, jsonOut = false, false, false
		logDir, logLevel = "", "info"
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCheck_AllAllocators(t *testing.T) {
	for _, kind := range allocKinds {
		t.Run(kind, func(t *testing.T) {
			result, err := runCheck(checkConfig{
				Capacity:    16,
				Ops:         3000,
				Seed:        7,
				Allocator:   kind,
				SizeClasses: "coarse",
			})
			require.NoError(t, err)
			assert.Equal(t, 3000, result.Ops)
			assert.Equal(t, kind, result.Alloc.Kind)
			assert.Equal(t, 0, result.Alloc.Stats.LiveBlocks)

			total := 0
			for _, n := range result.Counts {
				total += n
			}
			assert.Equal(t, 3000, total, "every step counts one operation")
			assert.Positive(t, result.Counts["remove"])
			assert.Positive(t, result.Counts["move-from"])

			if kind == "pool" {
				require.NotNil(t, result.Alloc.Pool)
				assert.Positive(t, result.Alloc.Pool.Hits)
			} else {
				assert.Nil(t, result.Alloc.Pool)
			}
		})
	}
}

func TestRunCheck_CapacityOne(t *testing.T) {
	result, err := runCheck(checkConfig{Capacity: 1, Ops: 500, Seed: 3, Allocator: "heap"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Capacity)
}

func TestRunCheck_InvalidConfig(t *testing.T) {
	_, err := runCheck(checkConfig{Capacity: 0, Ops: 1, Allocator: "heap"})
	require.Error(t, err)

	_, err = runCheck(checkConfig{Capacity: 4, Ops: 1, Allocator: "arena"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown allocator")

	_, err = runCheck(checkConfig{Capacity: 4, Ops: 1, Allocator: "pool", SizeClasses: "huge"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown size classes")
}

func TestRunBench(t *testing.T) {
	result, err := runBench(benchConfig{Capacity: 32, Rounds: 5, Allocator: "pool", SizeClasses: "fine"})
	require.NoError(t, err)
	require.Len(t, result.Workloads, len(workloads))

	names := make([]string, 0, len(result.Workloads))
	for _, w := range result.Workloads {
		names = append(names, w.Name)
		assert.Positive(t, w.Ops, w.Name)
	}
	assert.Equal(t, []string{"fill", "churn", "assign", "clone"}, names)
	assert.Equal(t, 0, result.Alloc.Stats.LiveBlocks)
	assert.Positive(t, result.Alloc.Pool.Hits, "clone rounds recycle blocks")

	_, err = runBench(benchConfig{Capacity: 32, Rounds: 0, Allocator: "heap"})
	require.Error(t, err)
}

func TestCheckCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "check", "--capacity", "8", "--ops", "200", "--seed", "11", "--allocator", "heap", "--json")
	require.NoError(t, err)

	var result checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 8, result.Capacity)
	assert.Equal(t, 200, result.Ops)
	assert.Equal(t, int64(11), result.Seed)
	assert.Equal(t, "heap", result.Alloc.Kind)
}

func TestCheckCommand_Text(t *testing.T) {
	out, err := runCommand(t, "check", "--capacity", "4", "--ops", "1500", "--allocator", "pool", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "check passed: 1,500 operations on capacity 4")
	assert.Contains(t, out, "allocator pool:")
	assert.Contains(t, out, "pool:")
	assert.Contains(t, out, "remove")
}

func TestBenchCommand_Quiet(t *testing.T) {
	out, err := runCommand(t, "bench", "--capacity", "8", "--rounds", "2", "--allocator", "offheap", "-q")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fvctl dev")
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	_, err := runCommand(t, "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

// failAfter serves n blocks from the heap, then fails.
type failAfter struct {
	n int
}

func (f *failAfter) Allocate(count int) ([]elem, error) {
	if f.n == 0 {
		return nil, alloc.ErrOutOfMemory
	}
	f.n--
	return make([]elem, count), nil
}

func (f *failAfter) Deallocate([]elem) error { return nil }

func TestWorkloads_ReleaseOnFailure(t *testing.T) {
	for _, w := range workloads {
		t.Run(w.name, func(t *testing.T) {
			s := &allocSetup{kind: "heap", tracked: alloc.NewTracked[elem](&failAfter{n: 1})}

			_, err := w.run(s, 8, 3)
			if err != nil {
				require.ErrorIs(t, err, alloc.ErrOutOfMemory)
			}
			assert.Zero(t, s.tracked.Stats().LiveBlocks, "vectors built before the failure are released")
		})
	}
}

func TestCloseVector_KeepsFirstError(t *testing.T) {
	s, err := newAllocSetup("heap", "")
	require.NoError(t, err)

	stale := func() *vector {
		v, err := s.newVector(4)
		require.NoError(t, err)
		v.PushBack(1)
		// Release the block behind the vector's back so Close fails.
		require.NoError(t, s.tracked.Deallocate(v.Slice()))
		return v
	}

	first := errors.New("workload failed")
	err = first
	closeVector(stale(), &err)
	assert.Same(t, first, err)

	err = nil
	closeVector(stale(), &err)
	require.ErrorIs(t, err, alloc.ErrUnknownBlock)
}
