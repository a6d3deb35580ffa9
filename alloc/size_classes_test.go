package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeClassTable_Boundaries(t *testing.T) {
	table := newSizeClassTable(ConfigCoarse)

	// 32..480 step 32 gives 15 linear classes, then doubling up to 64K.
	require.Equal(t, 15+7, table.NumClasses())
	assert.Equal(t, 63, table.capacityOf(0))
	assert.Equal(t, 511, table.capacityOf(14))
	assert.Equal(t, 1023, table.capacityOf(15))
	assert.Equal(t, "Coarse", table.String())

	for i := 1; i < table.NumClasses(); i++ {
		assert.Greater(t, table.boundaries[i], table.boundaries[i-1], "boundaries must increase")
	}
}

func TestSizeClassTable_ClassOf(t *testing.T) {
	table := newSizeClassTable(ConfigCoarse)

	tests := []struct {
		count int
		class int
	}{
		{1, 0},
		{63, 0},
		{64, 1},
		{95, 1},
		{511, 14},
		{512, 15},
		{1023, 15},
		{1024, 16},
		{1 << 16, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, table.classOf(tt.count), "classOf(%d)", tt.count)
	}
}

func TestSizeClassTable_AllConfigsCoverSmallCounts(t *testing.T) {
	for _, cfg := range []SizeClassConfig{ConfigFine, ConfigBalanced, ConfigCoarse} {
		table := newSizeClassTable(cfg)
		for count := 1; count <= 4096; count++ {
			c := table.classOf(count)
			require.GreaterOrEqual(t, c, 0, "%s: count %d unpooled", cfg.Name, count)
			require.GreaterOrEqual(t, table.capacityOf(c), count, "%s: class too small", cfg.Name)
			if c > 0 {
				require.Less(t, table.capacityOf(c-1), count, "%s: not the smallest class", cfg.Name)
			}
		}
	}
}
