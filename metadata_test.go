// FILE: tomlmap/metadata_test.go
package tomlmap

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedByMethod struct {
	Value int
}

func (namedByMethod) TableName() string { return "Method" }

type namedByPointerMethod struct {
	Value int
}

func (*namedByPointerMethod) TableName() string { return "PointerMethod" }

type namedByTag struct {
	_     struct{} `table:"Tagged"`
	Value int
}

func TestResolveType(t *testing.T) {
	t.Run("FieldTags", func(t *testing.T) {
		type sample struct {
			Name    string   `toml:"name,omitempty" comment:"Display name" order:"3"`
			Count   *int     `order:" 1 "`
			Skip    string   `toml:"-"`
			Tags    []string `order:"-5"`
			private int
			Channel chan int
		}

		meta, err := resolveType(reflect.TypeOf(sample{}))
		require.NoError(t, err)
		assert.Empty(t, meta.Table)
		require.Len(t, meta.Fields, 4)

		name := meta.Fields[0]
		assert.Equal(t, "Name", name.Name)
		assert.Equal(t, "name", name.Key)
		assert.Equal(t, "Display name", name.Comment)
		assert.Equal(t, 3, name.Order)
		assert.Equal(t, KindString, name.Kind)

		count := meta.Fields[1]
		assert.Equal(t, "Count", count.Key)
		assert.Equal(t, 1, count.Order)
		assert.True(t, count.Pointer)
		assert.Equal(t, KindInt, count.Kind)

		tags := meta.Fields[2]
		assert.Equal(t, unsortedOrder, tags.Order)
		assert.Equal(t, KindCollection, tags.Kind)
		assert.Equal(t, 3, tags.Index)

		channel := meta.Fields[3]
		assert.Equal(t, KindUnsupported, channel.Kind)
		assert.Equal(t, unsortedOrder, channel.Order)
		assert.Equal(t, "sample.Channel", meta.fieldPath(&channel))
	})

	t.Run("TableNames", func(t *testing.T) {
		tests := []struct {
			name string
			typ  reflect.Type
			want string
		}{
			{"ValueMethod", reflect.TypeOf(namedByMethod{}), "Method"},
			{"PointerMethod", reflect.TypeOf(namedByPointerMethod{}), "PointerMethod"},
			{"BlankFieldTag", reflect.TypeOf(namedByTag{}), "Tagged"},
			{"PointerType", reflect.TypeOf(&namedByTag{}), "Tagged"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				meta, err := resolveType(tt.typ)
				require.NoError(t, err)
				assert.Equal(t, tt.want, meta.Table)
				require.Len(t, meta.Fields, 1)
				assert.Equal(t, "Value", meta.Fields[0].Key)
			})
		}
	})

	t.Run("NotStruct", func(t *testing.T) {
		_, err := resolveType(reflect.TypeOf(42))
		assert.ErrorIs(t, err, ErrNotStruct)

		_, err = resolveType(nil)
		assert.ErrorIs(t, err, ErrNilObject)
	})

	t.Run("InvalidOrder", func(t *testing.T) {
		type bad struct {
			Name string `order:"first"`
		}
		_, err := resolveType(reflect.TypeOf(bad{}))
		assert.ErrorIs(t, err, ErrInvalidTag)
		assert.Contains(t, err.Error(), "bad.Name")
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		type dup struct {
			Name  string
			Other string `toml:"Name"`
		}
		_, err := resolveType(reflect.TypeOf(dup{}))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}
