package fixedvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artem-zyktin/fixed-vector/alloc"
)

// model applies the same swap-and-pop semantics to a plain slice.
type model []int

func (m *model) remove(i int) {
	last := len(*m) - 1
	(*m)[i] = (*m)[last]
	*m = (*m)[:last]
}

func TestProperty_RandomOperationsMatchModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	for _, capacity := range []int{1, 2, 7, 64} {
		tr := alloc.NewTracked[int](alloc.NewPool[int](alloc.ConfigFine))
		v, err := NewWith[int](capacity, tr)
		require.NoError(t, err)
		var m model

		for step := range 2000 {
			switch op := rng.Intn(6); {
			case op <= 1 && !v.Full():
				x := rng.Int()
				v.PushBack(x)
				m = append(m, x)
			case op == 2 && !v.Empty():
				i := rng.Intn(v.Len())
				v.Remove(i)
				m.remove(i)
			case op == 3 && rng.Intn(20) == 0:
				v.Clear()
				m = m[:0]
			case op == 4:
				c, err := v.Clone()
				require.NoError(t, err)
				require.NoError(t, v.Close())
				v = c.Move()
			case op == 5:
				other, err := NewWith[int](1+rng.Intn(2*capacity), tr)
				require.NoError(t, err)
				require.NoError(t, other.CopyFrom(v))
				require.NoError(t, v.MoveFrom(other))
				require.NoError(t, other.Close())
			}

			require.Equal(t, len(m), v.Len(), "step %d", step)
			require.LessOrEqual(t, v.Len(), v.Cap(), "step %d", step)
			for i, x := range m {
				require.Equal(t, x, v.At(i), "step %d index %d", step, i)
			}
		}

		require.NoError(t, v.Close())
		require.Equal(t, 0, tr.Stats().LiveBlocks, "capacity %d leaked blocks", capacity)
	}
}
