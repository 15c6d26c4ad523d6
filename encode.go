// FILE: tomlmap/encode.go
package tomlmap

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
)

// Marshal returns the TOML document for data. See Encode.
func (c *Codec) Marshal(data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the TOML document for data to w.
//
// data is a struct, a pointer to a struct, or a slice or array of them
// (elements may be interfaces). Each object contributes its own table if its
// type declares a table name, and merges its fields into the root otherwise.
// Any conversion error aborts before anything is written; a write error may
// leave w holding a partial document.
func (c *Codec) Encode(w io.Writer, data any) error {
	root, err := c.buildDocument(data)
	if err != nil {
		return err
	}
	return writeDocument(w, root, c.opts.Indent)
}

// ToFile writes the TOML document for data to path, replacing any existing
// file atomically.
func (c *Codec) ToFile(path string, data any) error {
	doc, err := c.Marshal(data)
	if err != nil {
		return err
	}
	if err := atomicWriteFile(path, doc); err != nil {
		return err
	}
	c.logger.Info("wrote document", "path", path, "bytes", len(doc))
	return nil
}

// buildDocument assembles the full document in memory.
func (c *Codec) buildDocument(data any) (*Table, error) {
	objs, err := expandObjects(data)
	if err != nil {
		return nil, err
	}

	root := NewTable()
	for _, obj := range objs {
		meta, err := resolveType(obj.Type())
		if err != nil {
			return nil, err
		}

		table, err := c.encodeObject(obj, meta)
		if err != nil {
			return nil, err
		}

		if meta.Table != "" {
			if root.Has(meta.Table) {
				return nil, fmt.Errorf("%w: table %q of %s already present in document", ErrDuplicateKey, meta.Table, meta.Type.Name())
			}
			root.Set(meta.Table, FromTable(table))
			continue
		}

		for _, key := range table.keys {
			if root.Has(key) {
				return nil, fmt.Errorf("%w: key %q of %s already present in document root", ErrDuplicateKey, key, meta.Type.Name())
			}
			root.Set(key, table.nodes[key])
		}
	}

	return root, nil
}

// encodeObject converts and orders the fields of one struct value.
func (c *Codec) encodeObject(obj reflect.Value, meta *typeMetadata) (*Table, error) {
	nodes := make([]sortNode, 0, len(meta.Fields))

	for i := range meta.Fields {
		fd := &meta.Fields[i]
		if fd.Kind == KindUnsupported {
			if c.opts.Strict {
				return nil, &UnsupportedFieldError{Field: meta.fieldPath(fd), Type: fd.Type}
			}
			c.logger.Debug("skipping unsupported field", "field", meta.fieldPath(fd), "type", fd.Type.String())
			continue
		}

		fv := obj.Field(fd.Index)
		if c.debugEnabled() {
			c.logger.Debug("encode field", "field", meta.fieldPath(fd), "kind", fd.Kind, "value", fv.Interface())
		}

		n, err := valueToNode(fv, fd.Kind)
		if err != nil {
			return nil, &ConversionError{Op: "encode", Field: meta.fieldPath(fd), Type: fd.Type, Err: err}
		}
		n.Comment = fd.Comment

		nodes = append(nodes, sortNode{name: fd.Key, value: n, order: fd.Order})
	}

	table := NewTable()
	for _, sn := range orderNodes(nodes) {
		table.Set(sn.name, sn.value)
	}
	return table, nil
}

// expandObjects returns the struct values held by data, which is either a
// single object or a sequence of objects.
func expandObjects(data any) ([]reflect.Value, error) {
	v := reflect.ValueOf(data)
	if !v.IsValid() {
		return nil, ErrNilObject
	}

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		obj, err := structValue(v)
		if err != nil {
			return nil, err
		}
		return []reflect.Value{obj}, nil
	}

	objs := make([]reflect.Value, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		obj, err := structValue(v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

func structValue(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, ErrNilObject
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return v, fmt.Errorf("%w: got %v", ErrNotStruct, v.Type())
	}
	return v, nil
}
