package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareIdenticalGraphs(t *testing.T) {
	left := testParser().Parse(bpelXML)
	right := testParser().Parse(bpelXML)
	require.NotEmpty(t, left.Nodes)

	leftChanges, rightChanges := Compare(left, right)
	for _, n := range left.Nodes {
		assert.Equal(t, StatusUnchanged, leftChanges[n.ID], "left node %s", n.Name)
	}
	for _, n := range right.Nodes {
		assert.Equal(t, StatusUnchanged, rightChanges[n.ID], "right node %s", n.Name)
	}
}

func TestCompareAddedAndRemoved(t *testing.T) {
	left := testParser().Parse(`<process name="P"><sequence>` +
		`<receive name="Start"/><invoke name="OldStep"/>` +
		`</sequence></process>`)
	right := testParser().Parse(`<process name="P"><sequence>` +
		`<receive name="Start"/><invoke name="NewStep"/>` +
		`</sequence></process>`)

	leftChanges, rightChanges := Compare(left, right)
	assert.Equal(t, StatusUnchanged, leftChanges[nodeByName(t, left, "Start").ID])
	assert.Equal(t, StatusRemoved, leftChanges[nodeByName(t, left, "OldStep").ID])
	assert.Equal(t, StatusAdded, rightChanges[nodeByName(t, right, "NewStep").ID])
	assert.Equal(t, StatusUnchanged, rightChanges[nodeByName(t, right, "Start").ID])
}

func TestCompareModifiedData(t *testing.T) {
	left := testParser().Parse(`<process name="P"><sequence>` +
		`<invoke name="Submit" partnerLink="erp" operation="create"/>` +
		`</sequence></process>`)
	right := testParser().Parse(`<process name="P"><sequence>` +
		`<invoke name="Submit" partnerLink="erp" operation="update"/>` +
		`</sequence></process>`)

	leftChanges, rightChanges := Compare(left, right)
	assert.Equal(t, StatusModified, leftChanges[nodeByName(t, left, "Submit").ID])
	assert.Equal(t, StatusModified, rightChanges[nodeByName(t, right, "Submit").ID])
}

func TestCompareMatchesNamesCaseInsensitively(t *testing.T) {
	left := testParser().Parse(`<process name="P"><sequence>` +
		`<invoke name="submit" partnerLink="erp"/>` +
		`</sequence></process>`)
	right := testParser().Parse(`<process name="P"><sequence>` +
		`<invoke name="SUBMIT" partnerLink="erp"/>` +
		`</sequence></process>`)

	leftChanges, rightChanges := Compare(left, right)
	assert.Equal(t, StatusUnchanged, leftChanges[nodeByName(t, left, "submit").ID])
	assert.Equal(t, StatusUnchanged, rightChanges[nodeByName(t, right, "SUBMIT").ID])
}

func TestCompareTypeChangeIsModified(t *testing.T) {
	// Same name, different activity: still compared as a pair, and
	// the difference surfaces as modified (name is the only key).
	left := testParser().Parse(`<process name="P"><sequence>` +
		`<invoke name="Step"/>` +
		`</sequence></process>`)
	right := testParser().Parse(`<process name="P"><sequence>` +
		`<assign name="Step"/>` +
		`</sequence></process>`)

	leftChanges, _ := Compare(left, right)
	assert.Equal(t, StatusModified, leftChanges[nodeByName(t, left, "Step").ID])
}
