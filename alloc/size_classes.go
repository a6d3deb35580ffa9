package alloc

import "math"

// SizeClassConfig defines how Pool buckets block capacities.
// Counts are in slots, not bytes.
type SizeClassConfig struct {
	// Name for this configuration (for benchmarking)
	Name string

	// Small blocks (linear increments)
	SmallMin       int // Smallest class upper bound starts here
	SmallMax       int // Max for linear increments
	SmallIncrement int // Increment between small classes

	// Medium blocks (geometric growth). Counts above MediumMax are not pooled.
	MediumMax    int
	GrowthFactor float64

	// MaxFreePerClass bounds how many released blocks each class retains.
	// Zero means 16.
	MaxFreePerClass int
}

// Predefined configurations.
var (
	// ConfigFine: many small buckets, little slack per block.
	// 8-256 step 8 (31 classes) + 256-64K geometric 1.5 (~14 classes).
	ConfigFine = SizeClassConfig{
		Name:           "Fine",
		SmallMin:       8,
		SmallMax:       256,
		SmallIncrement: 8,
		MediumMax:      1 << 16,
		GrowthFactor:   1.5,
	}

	// ConfigBalanced: good balance between bucket count and slack.
	// 16-512 step 16 (31 classes) + 512-64K geometric 1.5 (~12 classes).
	ConfigBalanced = SizeClassConfig{
		Name:           "Balanced",
		SmallMin:       16,
		SmallMax:       512,
		SmallIncrement: 16,
		MediumMax:      1 << 16,
		GrowthFactor:   1.5,
	}

	// ConfigCoarse: few buckets, more slack, faster reuse across sizes.
	// 32-512 step 32 (15 classes) + 512-64K doubling (7 classes).
	ConfigCoarse = SizeClassConfig{
		Name:           "Coarse",
		SmallMin:       32,
		SmallMax:       512,
		SmallIncrement: 32,
		MediumMax:      1 << 16,
		GrowthFactor:   2.0,
	}

	// DefaultConfig is used by NewPool callers that have no workload data.
	DefaultConfig = ConfigBalanced
)

// sizeClassTable holds the computed size class boundaries.
type sizeClassTable struct {
	config     SizeClassConfig
	boundaries []int // Inclusive upper bound (block capacity) of each class
}

// newSizeClassTable computes size class boundaries from config.
func newSizeClassTable(config SizeClassConfig) *sizeClassTable {
	table := &sizeClassTable{
		config:     config,
		boundaries: make([]int, 0, 64),
	}

	if config.SmallIncrement <= 0 {
		config.SmallIncrement = 1
	}
	if config.SmallMin <= 0 {
		config.SmallMin = config.SmallIncrement
	}

	// Phase 1: linear increments
	for size := config.SmallMin; size < config.SmallMax; size += config.SmallIncrement {
		table.boundaries = append(table.boundaries, size+config.SmallIncrement-1)
	}

	// Phase 2: geometric growth
	if config.SmallMax < config.MediumMax {
		size := config.SmallMax
		for size < config.MediumMax {
			next := int(math.Ceil(float64(size) * config.GrowthFactor))
			if next <= size {
				next = size + 1
			}
			table.boundaries = append(table.boundaries, next-1)
			size = next
		}
	}

	return table
}

// classOf returns the class index whose boundary is the smallest one holding
// count slots, or -1 when count is above every class.
func (t *sizeClassTable) classOf(count int) int {
	lo, hi := 0, len(t.boundaries)-1
	found := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if count <= t.boundaries[mid] {
			found = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return found
}

// capacityOf is the block capacity handed out for class c.
func (t *sizeClassTable) capacityOf(c int) int {
	return t.boundaries[c]
}

// NumClasses returns the number of pooled size classes.
func (t *sizeClassTable) NumClasses() int {
	return len(t.boundaries)
}

// String returns the configuration name.
func (t *sizeClassTable) String() string {
	return t.config.Name
}
