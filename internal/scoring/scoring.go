// Package scoring holds the scalar heuristics applied to a single
// combination: arithmetic complexity, residue balance, parity, runs and
// collisions with past draws.
package scoring

import (
	"slices"

	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/samber/lo"
)

// ACValue returns the arithmetic complexity of nums: the number of distinct
// pairwise differences minus (len(nums) - 1).
func ACValue(nums []int) int {
	if len(nums) < 2 {
		return 0
	}
	diffs := make(map[int]struct{}, len(nums)*(len(nums)-1)/2)
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			d := nums[i] - nums[j]
			if d < 0 {
				d = -d
			}
			diffs[d] = struct{}{}
		}
	}
	return len(diffs) - (len(nums) - 1)
}

// ModBalanced reports whether no residue class n % mod holds more than
// maxPerResidue numbers.
func ModBalanced(nums []int, mod, maxPerResidue int) bool {
	if mod <= 0 {
		return true
	}
	counts := lo.CountValuesBy(nums, func(n int) int { return n % mod })
	for _, c := range counts {
		if c > maxPerResidue {
			return false
		}
	}
	return true
}

func OddCount(nums []int) int {
	return lo.CountBy(nums, func(n int) bool { return n%2 != 0 })
}

// LongestRun returns the length of the longest run of consecutive integers.
func LongestRun(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	sorted := lo.Uniq(nums)
	slices.Sort(sorted)

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}

// Compare counts, for every past draw, how many balls it shares with combo.
// histogram[h] is the number of draws with exactly h hits; maxHit is the
// largest h seen.
func Compare(combo types.Combination, draws []types.Combination) (histogram []int, maxHit int) {
	histogram = make([]int, len(combo)+1)
	for _, d := range draws {
		hit := combo.Overlap(d)
		histogram[hit]++
		maxHit = max(maxHit, hit)
	}
	return histogram, maxHit
}
