package history

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

func isSeparator(r rune) bool {
	switch r {
	case ' ', ',', '，', '、', '､', ';', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseRow extracts the ball numbers from one draw cell such as
// "03 12，25、31,40 41". Tokens that are not plain digits are dropped.
// The result is sorted ascending.
func ParseRow(cell string) []int {
	// full-width digits, spaces and commas become ASCII; width narrows the
	// ideographic comma to its half-width form
	cell = width.Narrow.String(cell)

	var nums []int
	for _, tok := range strings.FieldsFunc(cell, isSeparator) {
		tok = strings.TrimSpace(tok)
		if !isDigits(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	slices.Sort(nums)
	return nums
}
