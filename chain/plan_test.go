package chain_test

import (
	"testing"

	"github.com/katalvlaran/chainfix/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlan_Parenthesize checks rendered orders for known chains.
func TestPlan_Parenthesize(t *testing.T) {
	for _, tc := range []struct {
		dims []int
		want string
	}{
		{[]int{5, 6}, "A1"},
		{[]int{1, 2, 3}, "(A1A2)"},
		{[]int{1, 2, 3, 4}, "((A1A2)A3)"},
		{[]int{40, 20, 30, 10, 30}, "((A1(A2A3))A4)"},
		{[]int{30, 35, 15, 5, 10, 20, 25}, "((A1(A2A3))((A4A5)A6))"},
	} {
		plan, err := chain.Solve(tc.dims, &chain.Options{ReturnPlan: true})
		require.NoError(t, err)

		got, err := plan.Parenthesize()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "dims %v", tc.dims)
		assert.Equal(t, len(tc.dims)-1, plan.Len())
	}
}

// TestPlan_Order checks post-order split indices.
func TestPlan_Order(t *testing.T) {
	plan, err := chain.Solve([]int{40, 20, 30, 10, 30}, &chain.Options{ReturnPlan: true})
	require.NoError(t, err)

	order, err := plan.Order()
	require.NoError(t, err)
	// A2·A3 (k=1), then A1·(A2A3) (k=0), then ·A4 (k=2).
	assert.Equal(t, []int{1, 0, 2}, order)

	k, err := plan.Split(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	_, err = plan.Split(2, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidInput)
	_, err = plan.Split(0, 4)
	assert.ErrorIs(t, err, chain.ErrInvalidInput)

	single, err := chain.Solve([]int{3, 3}, &chain.Options{ReturnPlan: true})
	require.NoError(t, err)
	order, err = single.Order()
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestPlan_NoSplitTable: without ReturnPlan only the cost is available.
func TestPlan_NoSplitTable(t *testing.T) {
	plan, err := chain.Solve([]int{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(18), plan.Cost)
	assert.Equal(t, []int{1, 2, 3, 4}, plan.Dims)

	_, err = plan.Order()
	assert.ErrorIs(t, err, chain.ErrNoSplitTable)
	_, err = plan.Parenthesize()
	assert.ErrorIs(t, err, chain.ErrNoSplitTable)
	_, err = plan.Split(0, 1)
	assert.ErrorIs(t, err, chain.ErrNoSplitTable)
}
