package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ModeJSON, Resolve(ModeAuto, &buf), "non-terminal auto is json")
	assert.Equal(t, ModeJSON, Resolve("", &buf))
	assert.Equal(t, ModeText, Resolve(ModeText, &buf))
	assert.Equal(t, ModeYAML, Resolve(ModeYAML, &buf))
	assert.False(t, IsTerminal(&buf))
}

func TestRenderer_DataJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &out, ModeJSON)
	assert.True(t, r.Structured())

	require.NoError(t, r.Data(map[string]int{"anchors": 3}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 3, got["anchors"])
}

func TestRenderer_DataYAML(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &out, ModeYAML)

	type item struct {
		Href  string `yaml:"href"`
		Found bool   `yaml:"found"`
	}
	require.NoError(t, r.Data([]item{{Href: "#about", Found: true}}))

	var got []item
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "#about", got[0].Href)
	assert.True(t, got[0].Found)
}

func TestRenderer_TextHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)
	assert.False(t, r.Structured())
	assert.Same(t, &out, r.Out())

	r.Heading("Anchors")
	r.Table("links", table.Row{"href", "found"}, []table.Row{{"#about", r.Mark(true)}})
	r.Success("%d ok", 2)
	r.Muted("note")
	r.Failure("%d dangling", 1)

	text := out.String()
	assert.Contains(t, text, "Anchors")
	assert.Contains(t, text, "#about")
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "2 ok")
	assert.Contains(t, text, "note")
	assert.Contains(t, errOut.String(), "1 dangling")
}
