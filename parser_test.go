// FILE: tomlmap/parser_test.go
package tomlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTOML(t *testing.T) {
	doc := `
zeta = "last letter"
alpha = 1

[Section]
count = 3
ratio = 0.25
names = ["x", "y"]
flag = true
when = 1979-05-27T07:32:00Z
`
	root, err := parseDocument([]byte(doc), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "Section"}, root.Keys())

	section, ok := root.Get("Section")
	require.True(t, ok)
	require.Equal(t, TableNode, section.Type)
	assert.Equal(t, []string{"count", "ratio", "names", "flag", "when"}, section.Table.Keys())

	count, _ := section.Table.Get("count")
	assert.Equal(t, IntegerNode, count.Type)
	assert.Equal(t, int64(3), count.Int)

	ratio, _ := section.Table.Get("ratio")
	assert.Equal(t, FloatNode, ratio.Type)

	names, _ := section.Table.Get("names")
	assert.Equal(t, []any{"x", "y"}, names.Value())

	when, _ := section.Table.Get("when")
	assert.Equal(t, StringNode, when.Type)
	assert.Equal(t, "1979-05-27T07:32:00Z", when.String)
}

func TestParseJSON(t *testing.T) {
	doc := `{"Section": {"big": 9007199254740993, "half": 0.5, "list": [1, 2], "none": null}, "name": "j"}`

	root, err := parseDocument([]byte(doc), FormatJSON)
	require.NoError(t, err)

	section, ok := root.Get("Section")
	require.True(t, ok)

	big, _ := section.Table.Get("big")
	assert.Equal(t, IntegerNode, big.Type)
	assert.Equal(t, int64(9007199254740993), big.Int)

	half, _ := section.Table.Get("half")
	assert.Equal(t, FloatNode, half.Type)

	list, _ := section.Table.Get("list")
	assert.Equal(t, []any{int64(1), int64(2)}, list.Value())

	assert.False(t, section.Table.Has("none"))

	name, _ := root.Get("name")
	assert.Equal(t, "j", name.String)
}

func TestParseYAML(t *testing.T) {
	doc := `
Section:
  count: 3
  ratio: 1.5
  names:
    - a
    - b
enabled: true
`
	root, err := parseDocument([]byte(doc), FormatYAML)
	require.NoError(t, err)

	enabled, _ := root.Get("enabled")
	assert.Equal(t, BoolNode, enabled.Type)

	section, ok := root.Get("Section")
	require.True(t, ok)
	count, _ := section.Table.Get("count")
	assert.Equal(t, int64(3), count.Value())
	names, _ := section.Table.Get("names")
	assert.Equal(t, []any{"a", "b"}, names.Value())
}

func TestParseErrors(t *testing.T) {
	t.Run("TOMLPosition", func(t *testing.T) {
		_, err := parseDocument([]byte("a = 1\nb = = 2\n"), FormatTOML)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, FormatTOML, perr.Format)
		assert.Equal(t, 2, perr.Line)
		assert.Positive(t, perr.Column)
	})

	t.Run("JSONPosition", func(t *testing.T) {
		_, err := parseDocument([]byte("{\n  \"a\": 1,\n  oops\n}"), FormatJSON)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, FormatJSON, perr.Format)
		assert.Equal(t, 3, perr.Line)
	})

	t.Run("YAMLLine", func(t *testing.T) {
		_, err := parseDocument([]byte("a: 1\nb: [1, 2\n"), FormatYAML)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, FormatYAML, perr.Format)
		assert.Positive(t, perr.Line)
	})

	t.Run("NullInArray", func(t *testing.T) {
		_, err := parseDocument([]byte(`{"list": [1, null]}`), FormatJSON)
		assert.ErrorIs(t, err, ErrNilElement)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := parseDocument([]byte(""), Format("ini"))
		assert.Error(t, err)
	})
}

func TestLineColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")
	line, col := lineColumn(data, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = lineColumn(data, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
