package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRulesCmd(t *testing.T, format string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRulesCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestRulesText(t *testing.T) {
	out := runRulesCmd(t, "text")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "normal"))
	assert.Contains(t, lines[0], "(any other name)")
	assert.Contains(t, out, "Sulfuras, Hand of Ragnaros")
	assert.Contains(t, out, "never changes")
}

func TestRulesForName(t *testing.T) {
	out := runRulesCmd(t, "text", "Aged Brie")
	assert.True(t, strings.HasPrefix(out, "aged_brie"))

	out = runRulesCmd(t, "text", "aged brie")
	assert.True(t, strings.HasPrefix(out, "normal"), "matching is exact")
}

func TestRulesJSON(t *testing.T) {
	out := runRulesCmd(t, "json")

	var resp struct {
		Status string     `json:"status"`
		Data   []RuleInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 5)

	byFamily := map[string]RuleInfo{}
	for _, r := range resp.Data {
		byFamily[r.Family] = r
	}
	assert.True(t, byFamily["legendary"].Frozen)
	assert.False(t, byFamily["legendary"].Ages)
	assert.True(t, byFamily["conjured"].Ages)
	assert.Equal(t, "Conjured", byFamily["conjured"].Name)
}
