package scoring

import (
	"testing"

	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/stretchr/testify/assert"
)

func TestACValue(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		want int
	}{
		// arithmetic progression: differences 1..5 only
		{"consecutive six", []int{1, 2, 3, 4, 5, 6}, 0},
		{"all differences distinct", []int{1, 2, 5, 11, 19, 30}, 10},
		{"five balls maximal", []int{1, 2, 4, 8, 13}, 6},
		{"five balls repeated difference", []int{3, 8, 15, 27, 38}, 5},
		{"two balls", []int{4, 9}, 0},
		{"single", []int{7}, 0},
		{"order independent", []int{30, 1, 19, 2, 11, 5}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ACValue(tt.nums))
		})
	}
}

func TestModBalanced(t *testing.T) {
	// residues mod 3: 0,0,0,0,0,1
	assert.False(t, ModBalanced([]int{3, 6, 9, 12, 15, 16}, 3, 4))
	// residues: 0,0,0,0,1,2
	assert.True(t, ModBalanced([]int{3, 6, 9, 12, 16, 17}, 3, 4))
	assert.True(t, ModBalanced([]int{3, 6, 9, 12, 15, 18}, 0, 4), "mod 0 disables the check")
}

func TestOddCount(t *testing.T) {
	assert.Equal(t, 3, OddCount([]int{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, 0, OddCount([]int{2, 4, 6}))
}

func TestLongestRun(t *testing.T) {
	assert.Equal(t, 0, LongestRun(nil))
	assert.Equal(t, 1, LongestRun([]int{1, 3, 5, 7}))
	assert.Equal(t, 3, LongestRun([]int{1, 2, 3, 10, 11, 20}))
	assert.Equal(t, 4, LongestRun([]int{33, 7, 34, 35, 36, 1}))
}

func TestCompare(t *testing.T) {
	combo := types.Combination{1, 2, 3, 4, 5, 6}
	draws := []types.Combination{
		{1, 2, 3, 10, 11, 12},
		{1, 20, 21, 22, 23, 24},
		{30, 31, 32, 33, 34, 35},
		{1, 2, 3, 4, 40, 41},
	}
	hist, maxHit := Compare(combo, draws)
	assert.Equal(t, []int{1, 1, 0, 1, 1, 0, 0}, hist)
	assert.Equal(t, 4, maxHit)

	hist, maxHit = Compare(combo, nil)
	assert.Len(t, hist, 7)
	assert.Equal(t, 0, maxHit)
}
