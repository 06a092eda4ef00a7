package vector

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rawvec/alloc"
)

// TestProperty_MatchesSliceModel drives random operation sequences against a
// vector and a plain slice and checks they agree after every step.
func TestProperty_MatchesSliceModel(t *testing.T) {
	policies := map[string]GrowthFunc{
		"double":  Double,
		"chunk":   AddChunk(2),
		"hybrid":  Hybrid(8),
		"plusOne": func(c int) int { return c + 1 },
	}

	for name, grow := range policies {
		t.Run(name, func(t *testing.T) {
			for seed := range uint64(20) {
				runModel(t, rand.New(rand.NewPCG(seed, 0x5eed)), grow)
			}
		})
	}
}

func runModel(t *testing.T, rng *rand.Rand, grow GrowthFunc) {
	t.Helper()

	live := map[int]int{} // element -> destructions still owed
	v, err := New[int](1+rng.IntN(4), false, grow, &Options[int]{
		Allocator:  alloc.NewTracking[int](nil),
		Destructor: func(p *int) { live[*p]-- },
	})
	require.NoError(t, err)

	var model []int
	next := 0
	fresh := func() int {
		next++
		live[next]++
		return next
	}

	for step := range 300 {
		switch op := rng.IntN(10); {
		case op < 5:
			x := fresh()
			require.NoError(t, v.Append(x))
			model = append(model, x)
		case op < 7:
			if len(model) == 0 {
				require.ErrorIs(t, v.Set(0, 0), ErrIndexOutOfBounds)
				continue
			}
			i := rng.IntN(len(model))
			x := fresh()
			require.NoError(t, v.Set(i, x))
			model[i] = x
		case op < 8:
			v.RemoveLast()
			if len(model) > 0 {
				model = model[:len(model)-1]
			}
		case op < 9:
			require.NoError(t, v.ShrinkToFit())
			if len(model) > 0 {
				require.Equal(t, len(model), v.Capacity(), "step %d", step)
			}
		default:
			target := len(model) + rng.IntN(5) - 2
			err := v.Resize(target)
			switch {
			case target <= 0:
				require.ErrorIs(t, err, ErrInvalidArgument)
			case target < len(model):
				require.ErrorIs(t, err, ErrShrinkBelowSize)
			default:
				require.NoError(t, err)
				require.Equal(t, target, v.Capacity())
			}
		}

		require.Equal(t, len(model), v.Size(), "step %d", step)
		require.GreaterOrEqual(t, v.Capacity(), v.Size(), "step %d", step)
		require.GreaterOrEqual(t, v.Capacity(), 1, "step %d", step)
		for i, want := range model {
			got, ok := v.Get(i)
			require.True(t, ok)
			require.Equal(t, want, got, "step %d index %d", step, i)
		}
		_, ok := v.Get(len(model))
		require.False(t, ok)
	}

	require.NoError(t, v.Close())
	for x, owed := range live {
		require.Zero(t, owed, "element %d destructed %d times too few", x, owed)
	}
}
