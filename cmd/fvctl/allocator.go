package main

import (
	"fmt"
	"strings"

	"github.com/artem-zyktin/fixed-vector/alloc"
	"github.com/artem-zyktin/fixed-vector/fixedvec"
)

// elem is the element type of every workload; it has no pointers so the
// offheap allocator accepts it.
type elem = int64

// vector is the vector type the workloads drive.
type vector = fixedvec.Vector[elem, *alloc.Tracked[elem]]

// allocKinds lists the accepted --allocator values.
var allocKinds = []string{"heap", "pool", "offheap"}

// sizeClassConfigs maps --size-classes values to pool configurations.
var sizeClassConfigs = map[string]alloc.SizeClassConfig{
	"fine":     alloc.ConfigFine,
	"balanced": alloc.ConfigBalanced,
	"coarse":   alloc.ConfigCoarse,
}

// allocSetup is the allocator stack of a run: a Tracked wrapper around the
// chosen allocator, and the pool when one was chosen.
type allocSetup struct {
	kind    string
	tracked *alloc.Tracked[elem]
	pool    *alloc.Pool[elem]
}

func newAllocSetup(kind, sizeClasses string) (*allocSetup, error) {
	s := &allocSetup{kind: strings.ToLower(kind)}

	var inner alloc.Allocator[elem]
	switch s.kind {
	case "heap":
		inner = alloc.Heap[elem]{}
	case "pool":
		cfg, ok := sizeClassConfigs[strings.ToLower(sizeClasses)]
		if !ok {
			return nil, fmt.Errorf("unknown size classes %q (want fine, balanced or coarse)", sizeClasses)
		}
		s.pool = alloc.NewPool[elem](cfg)
		inner = s.pool
	case "offheap":
		inner = alloc.OffHeap[elem]{}
	default:
		return nil, fmt.Errorf("unknown allocator %q (want %s)", kind, strings.Join(allocKinds, ", "))
	}

	s.tracked = alloc.NewTracked(inner)
	return s, nil
}

func (s *allocSetup) newVector(capacity int) (*vector, error) {
	return fixedvec.NewWith[elem](capacity, s.tracked)
}

// allocReport is the allocator section of a report.
type allocReport struct {
	Kind  string           `json:"kind"`
	Stats alloc.Stats      `json:"stats"`
	Pool  *alloc.PoolStats `json:"pool,omitempty"`
}

func (s *allocSetup) report() allocReport {
	r := allocReport{Kind: s.kind, Stats: s.tracked.Stats()}
	if s.pool != nil {
		ps := s.pool.Stats()
		r.Pool = &ps
	}
	return r
}
