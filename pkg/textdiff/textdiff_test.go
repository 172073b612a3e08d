package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationsBasic(t *testing.T) {
	ops := Operations([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	assert.Equal(t, []Op{
		{Unchanged, 0, 0},
		{Removed, 1, -1},
		{Added, -1, 1},
		{Unchanged, 2, 2},
	}, ops)
}

func TestOperationsEmpty(t *testing.T) {
	assert.Equal(t, []Op{}, Operations(nil, nil))
	assert.Equal(t, []Op{{Added, -1, 0}}, Operations(nil, []string{"x"}))
	assert.Equal(t, []Op{{Removed, 0, -1}}, Operations([]string{"x"}, nil))
}

func TestOperationsAllChanged(t *testing.T) {
	ops := Operations([]string{"a", "b"}, []string{"c", "d"})
	var removed, added int
	for _, op := range ops {
		switch op.Type {
		case Removed:
			removed++
		case Added:
			added++
		case Unchanged:
			t.Fatalf("no line is shared, got unchanged op %+v", op)
		}
	}
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, added)
}

func TestOperationsIdentical(t *testing.T) {
	lines := []string{"one", "two", "three"}
	ops := Operations(lines, lines)
	assert.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, Unchanged, op.Type)
		assert.Equal(t, i, op.LeftIndex)
		assert.Equal(t, i, op.RightIndex)
	}
}

func TestOperationsDeterministic(t *testing.T) {
	left := []string{"a", "b", "c", "d"}
	right := []string{"a", "c", "b", "d"}
	first := Operations(left, right)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Operations(left, right))
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\r\n"))
}

func TestSideBySide(t *testing.T) {
	left := []string{"a", "b", "c"}
	right := []string{"a", "x", "c"}
	rows := SideBySide(Operations(left, right), left, right)
	assert.Equal(t, []Row{
		{Unchanged, 1, "a", 1, "a"},
		{Removed, 2, "b", 0, ""},
		{Added, 0, "", 2, "x"},
		{Unchanged, 3, "c", 3, "c"},
	}, rows)
}

func TestUnified(t *testing.T) {
	left := []string{"a", "b", "c"}
	right := []string{"a", "x", "c"}
	rows := Unified(Operations(left, right), left, right)
	assert.Equal(t, []Row{
		{Unchanged, 1, "a", 1, "a"},
		{Removed, 2, "b", 0, ""},
		{Added, 0, "", 2, "x"},
		{Unchanged, 3, "c", 3, "c"},
	}, rows)
}
