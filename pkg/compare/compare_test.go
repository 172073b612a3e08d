package compare

import (
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"

	"github.com/oic-tools/archdiff/pkg/archive"
	"github.com/oic-tools/archdiff/pkg/normalize"
)

func testEngine() *Engine {
	return NewEngine(log.NewNopLogger(), normalize.New(), nil)
}

func rec(path, content string) archive.FileRecord {
	return archive.MakeRecord(path, content)
}

// A record whose content has been withheld by the storage tier.
func recNoContent(path, hash string) archive.FileRecord {
	return archive.FileRecord{Path: path, Hash: hash, Size: 1}
}

func TestDiffModifiedOrchestration(t *testing.T) {
	left := []archive.FileRecord{rec("a/orchestration/flow.xml", "<flow><invoke/></flow>")}
	right := []archive.FileRecord{rec("a/orchestration/flow.xml", "<flow><invoke/><assign/></flow>")}

	res := testEngine().Diff(left, right)
	if assert.Len(t, res.Items, 1) {
		it := res.Items[0]
		assert.Equal(t, Modified, it.Change)
		assert.Equal(t, High, it.Severity)
		assert.Equal(t, CategoryFlowLogic, it.Metadata.Category)
		assert.NotNil(t, it.LeftRef)
		assert.NotNil(t, it.RightRef)
		assert.NotEmpty(t, it.RiskReason)
	}
	assert.Equal(t, 1, res.Summary.High)
	assert.Equal(t, 1, res.Summary.TotalMeaningful)
}

func TestDiffAddedConnection(t *testing.T) {
	right := []archive.FileRecord{rec("x/connection1.jca", `adapter="rest"`)}

	res := testEngine().Diff(nil, right)
	if assert.Len(t, res.Items, 1) {
		it := res.Items[0]
		assert.Equal(t, Added, it.Change)
		assert.Equal(t, Medium, it.Severity)
		assert.Equal(t, CategoryConnections, it.Metadata.Category)
		assert.Nil(t, it.LeftRef)
		assert.NotNil(t, it.RightRef)
		assert.Equal(t, "rest", it.Metadata.ActionType)
		assert.Contains(t, it.Patch, "+++ added: x/connection1.jca")
	}
}

func TestDiffSuppressesExportNoise(t *testing.T) {
	left := []archive.FileRecord{rec("a/flow.xml", `<flow timestamp="2024-01-01"><invoke/></flow>`)}
	right := []archive.FileRecord{rec("a/flow.xml", `<flow timestamp="2025-02-02"><invoke/></flow>`)}

	res := testEngine().Diff(left, right)
	assert.Empty(t, res.Items, "a timestamp-only change is export noise, not a diff")
	assert.Equal(t, 0, res.Summary.TotalMeaningful)
}

func TestDiffUnchangedHashProducesNothing(t *testing.T) {
	f := rec("a/b.xml", "<a/>")
	res := testEngine().Diff([]archive.FileRecord{f}, []archive.FileRecord{f})
	assert.Empty(t, res.Items)
}

func TestDiffMissingContentIsConservative(t *testing.T) {
	// Hashes differ but one side's content is withheld: we cannot
	// prove the change is noise, so it must be reported.
	left := []archive.FileRecord{recNoContent("a/big.xml", "h1")}
	right := []archive.FileRecord{rec("a/big.xml", "<x/>")}

	res := testEngine().Diff(left, right)
	if assert.Len(t, res.Items, 1) {
		it := res.Items[0]
		assert.Equal(t, Modified, it.Change)
		assert.Contains(t, it.Metadata.ChangeDescription, "content not available")
		assert.Empty(t, it.Patch)
	}
}

func TestSeverityDeterminism(t *testing.T) {
	files := func(content string) []archive.FileRecord {
		return []archive.FileRecord{
			rec("z/last.properties", "a=1"),
			rec("a/orchestration/flow.xml", content),
			rec("m/map.xsl", "<xsl/>"),
		}
	}
	left := files("<flow><invoke/></flow>")
	right := files("<flow><assign/></flow>")

	// Shuffling input order must not affect the orchestration verdict.
	for i := 0; i < 5; i++ {
		res := testEngine().Diff(left, right)
		if assert.Len(t, res.Items, 1) {
			assert.Equal(t, High, res.Items[0].Severity)
		}
		left = append(left[1:], left[0])
		right = append(right[1:], right[0])
	}
}

func TestSummaryConsistency(t *testing.T) {
	left := []archive.FileRecord{
		rec("a/orchestration/flow.xml", "<flow><invoke/></flow>"),
		rec("b/mapping/map.xsl", "<xsl><a/></xsl>"),
		rec("c/lookup/values.dvm", "k=v"),
		rec("d/readme.txt", "hello"),
	}
	right := []archive.FileRecord{
		rec("a/orchestration/flow.xml", "<flow><assign/></flow>"),
		rec("c/lookup/values.dvm", "k=w"),
		rec("d/readme.txt", "goodbye"),
		rec("e/conn.jca", `connectionName="DB1"`),
	}

	res := testEngine().Diff(left, right)
	s := res.Summary
	assert.Equal(t, len(res.Items), s.High+s.Medium+s.Low+s.Info)
	assert.Equal(t, s.High+s.Medium, s.TotalMeaningful)
}

func TestItemsOrderedMeaningfulFirst(t *testing.T) {
	left := []archive.FileRecord{
		rec("d/readme.txt", "hello"),
		rec("c/lookup/values.dvm", "k=v"),
		rec("a/orchestration/flow.xml", "<flow><invoke/></flow>"),
	}
	right := []archive.FileRecord{
		rec("d/readme.txt", "goodbye"),
		rec("c/lookup/values.dvm", "k=w"),
		rec("a/orchestration/flow.xml", "<flow><assign/></flow>"),
	}

	res := testEngine().Diff(left, right)
	if assert.Len(t, res.Items, 3) {
		assert.Equal(t, High, res.Items[0].Severity)
		last := res.Items[len(res.Items)-1]
		assert.False(t, last.Severity.Meaningful())
	}
	// Severity rank never increases backwards within a band.
	var sawMinor bool
	for _, it := range res.Items {
		if !it.Severity.Meaningful() {
			sawMinor = true
		} else {
			assert.False(t, sawMinor, "meaningful item after a minor one")
		}
	}
}

func TestCollisionsCountedButLastWriteWins(t *testing.T) {
	left := []archive.FileRecord{
		rec("a/processor_1/x.xml", "<a/>"),
		rec("a/processor_2/x.xml", "<b/>"),
	}
	res := testEngine().Diff(left, nil)
	assert.Equal(t, 1, res.Collisions)
	// Only the surviving record produces an item.
	assert.Len(t, res.Items, 1)
	assert.Equal(t, Removed, res.Items[0].Change)
}

func TestObjectNameExtraction(t *testing.T) {
	for _, c := range []struct {
		content, kind, name string
	}{
		{`<adapter type="db" name="MyAdapter"/>`, "adapter configuration", "MyAdapter"},
		{`<spec procedureName="GET_ORDERS"/>`, "stored procedure", "GET_ORDERS"},
		{`<q tableName="ORDERS"/>`, "database table", "ORDERS"},
		{`<connection kind="db" name="OrdersDB"/>`, "connection", "OrdersDB"},
		{`<wsdl:operation name="submitOrder">`, "WSDL operation", "submitOrder"},
		{`<xsd:element minOccurs="0" name="orderId"/>`, "schema element", "orderId"},
		{`no names here`, "", ""},
	} {
		kind, name := extractObjectName(c.content)
		assert.Equal(t, c.kind, kind, c.content)
		assert.Equal(t, c.name, name, c.content)
	}
}

func TestModifiedPatchIsLineSetDifference(t *testing.T) {
	left := rec("a/x.txt", "one\ntwo\nthree")
	right := rec("a/x.txt", "one\nTWO\nthree")
	res := testEngine().Diff([]archive.FileRecord{left}, []archive.FileRecord{right})
	if assert.Len(t, res.Items, 1) {
		patch := res.Items[0].Patch
		assert.Contains(t, patch, "- two")
		assert.Contains(t, patch, "+ TWO")
		assert.NotContains(t, patch, "one")
	}
}

func TestModifiedPatchOverflow(t *testing.T) {
	var lb, rb strings.Builder
	for i := 0; i < 60; i++ {
		lb.WriteString("left-" + string(rune('a'+i%26)) + "-" + strings.Repeat("l", i+1) + "\n")
		rb.WriteString("right-" + string(rune('a'+i%26)) + "-" + strings.Repeat("r", i+1) + "\n")
	}
	patch := lineSetPatch(lb.String(), rb.String())
	assert.Contains(t, patch, "- ... (10 more lines)")
	assert.Contains(t, patch, "+ ... (10 more lines)")
}

func TestCategoryKeywordsExtendable(t *testing.T) {
	cfg := &normalize.Config{
		Version:    1,
		Categories: map[string][]string{"lookups": {"translation"}},
	}
	e := NewEngine(log.NewNopLogger(), normalize.New(), cfg)
	assert.Equal(t, CategoryLookups, e.categoryFor("x/translation-table.csv"))
}
