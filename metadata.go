// FILE: tomlmap/metadata.go
package tomlmap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Struct tags read by the resolver.
const (
	keyTag     = "toml"
	commentTag = "comment"
	orderTag   = "order"
	tableTag   = "table"
)

// unsortedOrder marks a field without an explicit sort order.
const unsortedOrder = -1

// TableNamer is implemented by types whose fields belong in a named table
// rather than the document root. It is called on the zero value, so the
// name must not depend on field contents.
type TableNamer interface {
	TableName() string
}

// fieldDescriptor is the resolved metadata of one struct field.
type fieldDescriptor struct {
	Name    string // Go field name
	Key     string // document key
	Index   int
	Type    reflect.Type
	Kind    Kind
	Pointer bool
	Comment string
	Order   int
}

// typeMetadata holds the descriptors of every non-ignored exported field
// of a struct type, in declaration order.
type typeMetadata struct {
	Type   reflect.Type
	Table  string
	Fields []fieldDescriptor
}

// resolveType reads the table name and field tags of a struct type.
// A pointer to a struct is dereferenced once.
func resolveType(t reflect.Type) (*typeMetadata, error) {
	if t == nil {
		return nil, ErrNilObject
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %v", ErrNotStruct, t)
	}

	meta := &typeMetadata{
		Type:   t,
		Fields: make([]fieldDescriptor, 0, t.NumField()),
	}

	if namer, ok := reflect.New(t).Interface().(TableNamer); ok {
		meta.Table = namer.TableName()
	}

	seen := make(map[string]string)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Blank marker field carrying the table name
		if field.Name == "_" {
			if name, ok := field.Tag.Lookup(tableTag); ok && meta.Table == "" {
				meta.Table = name
			}
			continue
		}

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(keyTag)
		if tag == "-" {
			continue // Ignored on both paths
		}

		key := field.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
		}

		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q used by %s.%s and %s.%s", ErrDuplicateKey, key, t.Name(), prev, t.Name(), field.Name)
		}
		seen[key] = field.Name

		order, err := parseOrder(field)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), field.Name, err)
		}

		kind, isPtr := classifyField(field.Type)
		meta.Fields = append(meta.Fields, fieldDescriptor{
			Name:    field.Name,
			Key:     key,
			Index:   i,
			Type:    field.Type,
			Kind:    kind,
			Pointer: isPtr,
			Comment: field.Tag.Get(commentTag),
			Order:   order,
		})
	}

	return meta, nil
}

// parseOrder reads the order tag. Negative values mean unspecified.
func parseOrder(field reflect.StructField) (int, error) {
	raw, ok := field.Tag.Lookup(orderTag)
	if !ok {
		return unsortedOrder, nil
	}

	order, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: order %q is not an integer", ErrInvalidTag, raw)
	}
	if order < 0 {
		return unsortedOrder, nil
	}
	return order, nil
}

func (m *typeMetadata) fieldPath(fd *fieldDescriptor) string {
	return m.Type.Name() + "." + fd.Name
}
