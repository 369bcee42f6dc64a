package ui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOnlySeesAttachedNodes(t *testing.T) {
	d := NewDocument()
	out := d.Create("div").SetID("scores-output")

	assert.Nil(t, d.Lookup("scores-output"))

	d.Body().Append(out)
	assert.Same(t, out, d.Lookup("scores-output"))

	out.Remove()
	assert.Nil(t, d.Lookup("scores-output"))
}

func TestAppendMovesNode(t *testing.T) {
	d := NewDocument()
	a := d.Create("div")
	b := d.Create("div")
	child := d.Create("span")
	d.Body().Append(a, b)

	a.Append(child)
	b.Append(child)

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{child}, b.Children())
	assert.Same(t, b, child.Parent())
}

func TestClearDetachesChildren(t *testing.T) {
	d := NewDocument()
	list := d.Create("div")
	item := d.Create("div")
	d.Body().Append(list.Append(item))

	list.Clear()

	assert.Empty(t, list.Children())
	assert.False(t, item.Attached())
	assert.True(t, list.Attached())
}

func TestActivate(t *testing.T) {
	t.Run("runs handlers in order", func(t *testing.T) {
		d := NewDocument()
		var calls []string
		btn := d.Create("button").
			OnActivate(func() { calls = append(calls, "first") }).
			OnActivate(func() { calls = append(calls, "second") })
		d.Body().Append(btn)

		require.NoError(t, d.Activate(btn.Key()))
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("detached nodes are unknown", func(t *testing.T) {
		d := NewDocument()
		fired := false
		btn := d.Create("button").OnActivate(func() { fired = true })

		err := d.Activate(btn.Key())

		assert.ErrorIs(t, err, ErrUnknownNode)
		assert.False(t, fired)
	})
}

func TestSetValues(t *testing.T) {
	d := NewDocument()
	in := d.Create("input")
	gone := d.Create("input")
	d.Body().Append(in)

	d.SetValues(map[string]string{in.Key(): "12", gone.Key(): "x", "n999": "y"})

	assert.Equal(t, "12", in.Value())
	assert.Equal(t, "", gone.Value())
}

func TestClasses(t *testing.T) {
	d := NewDocument()
	n := d.Create("div").AddClass("a", "b", "a")

	assert.Equal(t, []string{"a", "b"}, n.Classes())

	n.ToggleClass("a", false).ToggleClass("c", true)
	assert.Equal(t, []string{"b", "c"}, n.Classes())
	assert.True(t, n.HasClass("c"))
}

func TestMarshalJSON(t *testing.T) {
	d := NewDocument()
	in := d.Create("input").SetAttr("name", "add-score").SetValue("4")
	btn := d.Create("button").SetText("Confirm").OnActivate(func() {})
	d.Body().Append(d.Create("div").SetID("wrap").AddClass("row").SetHidden(true).Append(in, btn))
	in.Focus()

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got struct {
		Focus string `json:"focus"`
		Body  struct {
			Tag      string `json:"tag"`
			Children []struct {
				ID       string   `json:"id"`
				Class    []string `json:"class"`
				Hidden   bool     `json:"hidden"`
				Children []struct {
					Tag    string            `json:"tag"`
					Text   string            `json:"text"`
					Value  *string           `json:"value"`
					Attrs  map[string]string `json:"attrs"`
					Active bool              `json:"active"`
				} `json:"children"`
			} `json:"children"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, in.Key(), got.Focus)
	assert.Equal(t, "body", got.Body.Tag)
	require.Len(t, got.Body.Children, 1)

	wrap := got.Body.Children[0]
	assert.Equal(t, "wrap", wrap.ID)
	assert.Equal(t, []string{"row"}, wrap.Class)
	assert.True(t, wrap.Hidden)
	require.Len(t, wrap.Children, 2)

	require.NotNil(t, wrap.Children[0].Value)
	assert.Equal(t, "4", *wrap.Children[0].Value)
	assert.Equal(t, "add-score", wrap.Children[0].Attrs["name"])
	assert.Nil(t, wrap.Children[1].Value)
	assert.Equal(t, "Confirm", wrap.Children[1].Text)
	assert.True(t, wrap.Children[1].Active)
}
