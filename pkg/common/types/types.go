package types

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrWrongSize   = errors.New("wrong number of balls")
	ErrOutOfRange  = errors.New("ball out of range")
	ErrDuplicate   = errors.New("duplicate ball")
	ErrEmptyString = errors.New("empty combination")
)

// Combination is a sorted set of distinct ball numbers.
type Combination []int

// NewCombination copies nums and sorts the copy.
func NewCombination(nums []int) Combination {
	c := make(Combination, len(nums))
	copy(c, nums)
	slices.Sort(c)
	return c
}

func (c Combination) Sum() int {
	return lo.Sum(c)
}

func (c Combination) Contains(n int) bool {
	_, found := slices.BinarySearch(c, n)
	return found
}

// Overlap returns how many balls c shares with other.
func (c Combination) Overlap(other Combination) int {
	return len(lo.Intersect(c, other))
}

// Key is a stable identifier such as "01-05-12-23-34-45".
func (c Combination) Key() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, "-")
}

func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks size, range 1..maxNumber and distinctness.
func (c Combination) Validate(maxNumber, pickCount int) error {
	if len(c) != pickCount {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongSize, len(c), pickCount)
	}
	for _, n := range c {
		if n < 1 || n > maxNumber {
			return fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, n, maxNumber)
		}
	}
	if len(lo.Uniq(c)) != len(c) {
		return fmt.Errorf("%w in %s", ErrDuplicate, c)
	}
	return nil
}
