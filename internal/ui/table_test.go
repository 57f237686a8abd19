package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
	assert.Equal(t, "abc", pad("abc", 3))
	assert.Equal(t, "abcdef", pad("abcdef", 3))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "long…", truncateText("long-value", 5))
	assert.Equal(t, "", truncateText("anything", 0))
}

func TestLabelTable(t *testing.T) {
	table := LabelTable(map[string]string{
		"helm.sh/chart":          "mychart-1.2.3",
		"app.kubernetes.io/name": "mychart",
	})

	out := table.Render()

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "mychart-1.2.3")

	// Keys render in sorted order for stable output.
	assert.Less(t,
		strings.Index(out, "app.kubernetes.io/name"),
		strings.Index(out, "helm.sh/chart"),
	)
}

func TestTableRender_MissingCell(t *testing.T) {
	table := NewTable(
		Column{Title: "A", Key: "a"},
		Column{Title: "B", Key: "b"},
	)
	table.AddRow(Row{"a": "value"})

	out := table.Render()
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "-")
}
