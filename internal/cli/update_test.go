package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `
items:
  - name: "+5 Dexterity Vest"
    sell_in: 10
    quality: 20
  - name: "Aged Brie"
    sell_in: 0
    quality: 49
  - name: "Conjured"
    sell_in: 0
    quality: 3
`

func TestUpdateText(t *testing.T) {
	path := writeFile(t, "inv.yaml", sampleInventory)

	buf := &bytes.Buffer{}
	cmd := NewUpdateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "name, sellIn, quality\n"+
		"+5 Dexterity Vest, 9, 19\n"+
		"Aged Brie, -1, 50\n"+
		"Conjured, -1, 0\n", buf.String())
}

func TestUpdateJSON(t *testing.T) {
	path := writeFile(t, "inv.yaml", sampleInventory)

	buf := &bytes.Buffer{}
	cmd := NewUpdateCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Name    string `json:"name"`
			SellIn  int    `json:"sell_in"`
			Quality int    `json:"quality"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, 9, resp.Data[0].SellIn)
	assert.Equal(t, 19, resp.Data[0].Quality)
}

func TestUpdateMissingFile(t *testing.T) {
	cmd := NewUpdateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"/nonexistent/inv.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load inventory")
}

func TestUpdateRequiresArgument(t *testing.T) {
	cmd := NewUpdateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}
