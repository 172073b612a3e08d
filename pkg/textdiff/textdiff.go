// Package textdiff aligns two line sequences for display. It is a
// plain longest-common-subsequence differ; configuration files are
// small enough that the quadratic table is never a problem.
package textdiff

import (
	"strings"
)

type OpType string

const (
	Unchanged OpType = "unchanged"
	Removed   OpType = "removed"
	Added     OpType = "added"
)

// Op is one step of an alignment. LeftIndex/RightIndex are 0-based
// indexes into the input slices; -1 marks the absent side.
type Op struct {
	Type       OpType
	LeftIndex  int
	RightIndex int
}

// SplitLines splits text on line breaks for diffing. A trailing
// newline does not produce a trailing empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Operations computes the edit sequence aligning left with right.
// The result is deterministic: at every point where the LCS table
// allows either, an added line is emitted before a removed one, which
// reproduces conventional diff output.
func Operations(left, right []string) []Op {
	// One side empty needs no table.
	if len(left) == 0 && len(right) == 0 {
		return []Op{}
	}
	if len(left) == 0 {
		ops := make([]Op, len(right))
		for j := range right {
			ops[j] = Op{Added, -1, j}
		}
		return ops
	}
	if len(right) == 0 {
		ops := make([]Op, len(left))
		for i := range left {
			ops[i] = Op{Removed, i, -1}
		}
		return ops
	}

	m, n := len(left), len(right)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if left[i-1] == right[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var ops []Op
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && left[i-1] == right[j-1]:
			ops = append(ops, Op{Unchanged, i - 1, j - 1})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			ops = append(ops, Op{Added, -1, j - 1})
			j--
		default:
			ops = append(ops, Op{Removed, i - 1, -1})
			i--
		}
	}
	// Backtrace runs end to start; reverse in place.
	for a, b := 0, len(ops)-1; a < b; a, b = a+1, b-1 {
		ops[a], ops[b] = ops[b], ops[a]
	}
	return ops
}
