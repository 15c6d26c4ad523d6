// FILE: tomlmap/writer_test.go
package tomlmap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	t.Run("RootBeforeTables", func(t *testing.T) {
		section := NewTable()
		section.Set("Port", FromInt(8080))
		section.Set("Hosts", FromArray(FromString("a"), FromString("b")))

		root := NewTable()
		root.Set("Server", FromTable(section).WithComment("Server settings"))
		root.Set("Title", FromString("demo"))
		root.Set("Debug", FromBool(false).WithComment("line one\nline two"))

		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, root, "  "))

		want := `Title = "demo"
# line one
# line two
Debug = false

# Server settings
[Server]
  Port = 8080
  Hosts = ["a", "b"]
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("TablesOnly", func(t *testing.T) {
		first := NewTable()
		first.Set("A", FromFloat(1.5))
		second := NewTable()

		root := NewTable()
		root.Set("First", FromTable(first))
		root.Set("Second", FromTable(second))

		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, root, ""))
		assert.Equal(t, "[First]\nA = 1.5\n\n[Second]\n", buf.String())
	})

	t.Run("QuotedKeys", func(t *testing.T) {
		root := NewTable()
		root.Set("with space", FromString(`say "hi"`))

		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, root, ""))
		assert.Equal(t, `"with space" = "say \"hi\""`+"\n", buf.String())
	})

	t.Run("NestedTableRejected", func(t *testing.T) {
		inner := NewTable()
		inner.Set("X", FromInt(1))
		outer := NewTable()
		outer.Set("Inner", FromTable(inner))

		root := NewTable()
		root.Set("Outer", FromTable(outer))

		var buf bytes.Buffer
		err := writeDocument(&buf, root, "")
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, NewTable(), ""))
		assert.Empty(t, buf.String())
	})
}

func TestTable(t *testing.T) {
	table := NewTable()
	table.Set("b", FromInt(1))
	table.Set("a", FromInt(2))
	table.Set("b", FromInt(3))

	assert.Equal(t, []string{"b", "a"}, table.Keys())
	assert.Equal(t, 2, table.Len())

	n, ok := table.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(3), n.Int)
	assert.False(t, table.Has("c"))

	keys := table.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"b", "a"}, table.Keys())
}
