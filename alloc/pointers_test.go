package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type flatRecord struct {
	ID    uint64
	Score float64
	Tags  [4]int16
}

type nestedRecord struct {
	ID   int
	Name string
}

func TestCheckPointerFree(t *testing.T) {
	require.NoError(t, CheckPointerFree[int]())
	require.NoError(t, CheckPointerFree[complex128]())
	require.NoError(t, CheckPointerFree[[16]byte]())
	require.NoError(t, CheckPointerFree[flatRecord]())
	require.NoError(t, CheckPointerFree[struct{}]())
	require.NoError(t, CheckPointerFree[[0]*int]())

	require.ErrorIs(t, CheckPointerFree[string](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[*int](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[[]int](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[map[int]int](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[any](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[func()](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[nestedRecord](), ErrPointerElements)
	require.ErrorIs(t, CheckPointerFree[[2]nestedRecord](), ErrPointerElements)
}
