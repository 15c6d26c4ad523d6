// FILE: tomlmap/decode.go
package tomlmap

import (
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshal parses data and populates target, which must be a non-nil
// pointer to a struct. See Decode.
func (c *Codec) Unmarshal(data []byte, target any) error {
	root, err := parseDocument(data, c.readFormat())
	if err != nil {
		return err
	}
	return c.decodeDocument(root, target)
}

// Decode reads a whole document from r and populates target.
//
// Fields are looked up in the root table, or in the table named by the
// target type's table name. Fields whose key is absent are left untouched,
// as are ignored fields even when the document holds their key.
func (c *Codec) Decode(r io.Reader, target any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return c.Unmarshal(data, target)
}

// LoadFile reads the document at path into target. With FormatAuto the
// format is taken from the file extension, or from the content when the
// extension is not recognized.
func (c *Codec) LoadFile(path string, target any) error {
	data, err := readFile(path, c.opts.MaxFileSize)
	if err != nil {
		return err
	}

	format := c.opts.Format
	if format == FormatAuto {
		if format = detectFileFormat(path); format == "" {
			format = detectFormatFromContent(data)
		}
	}

	root, err := parseDocument(data, format)
	if err != nil {
		return fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	if err := c.decodeDocument(root, target); err != nil {
		return err
	}

	c.logger.Info("loaded document", "path", path, "format", string(format))
	return nil
}

// Load reads the document at path into a new T. T may be a struct type or
// a pointer to one.
func Load[T any](c *Codec, path string) (T, error) {
	var target T

	rt := reflect.TypeOf(&target).Elem()
	if rt.Kind() == reflect.Pointer {
		target = reflect.New(rt.Elem()).Interface().(T)
		err := c.LoadFile(path, target)
		return target, err
	}

	err := c.LoadFile(path, &target)
	return target, err
}

// decodeDocument converts every present field to its exact type, then hands
// the values to mapstructure to populate the target.
func (c *Codec) decodeDocument(root *Table, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w, got %T", ErrNilTarget, target)
	}

	meta, err := resolveType(rv.Type().Elem())
	if err != nil {
		return err
	}

	section, err := findSection(root, meta)
	if err != nil {
		return err
	}

	values := make(map[string]any, len(meta.Fields))
	for i := range meta.Fields {
		fd := &meta.Fields[i]
		if fd.Kind == KindUnsupported {
			if c.opts.Strict {
				return &UnsupportedFieldError{Field: meta.fieldPath(fd), Type: fd.Type}
			}
			c.logger.Debug("skipping unsupported field", "field", meta.fieldPath(fd), "type", fd.Type.String())
			continue
		}

		n, ok := section.Get(fd.Key)
		if !ok {
			continue // Missing keys keep their default
		}

		elemType := fd.Type
		if fd.Pointer {
			elemType = elemType.Elem()
		}

		v, err := nodeToValue(n, elemType)
		if err != nil {
			return &ConversionError{Op: "decode", Field: meta.fieldPath(fd), Type: fd.Type, Err: err}
		}
		if c.debugEnabled() {
			c.logger.Debug("decode field", "field", meta.fieldPath(fd), "kind", fd.Kind, "value", v.Interface())
		}

		values[fd.Key] = v.Interface()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    keyTag,
		ZeroFields: true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode failed for %s: %w", meta.Type.Name(), err)
	}

	return nil
}

// findSection returns the table holding the fields of meta's type. A
// missing named table yields an empty section.
func findSection(root *Table, meta *typeMetadata) (*Table, error) {
	if meta.Table == "" {
		return root, nil
	}

	n, ok := root.Get(meta.Table)
	if !ok {
		return NewTable(), nil
	}
	if n.Type != TableNode {
		return nil, &ConversionError{
			Op:    "decode",
			Field: meta.Type.Name(),
			Type:  meta.Type,
			Err:   fmt.Errorf("%w: key %q holds %s, not a table", ErrTypeMismatch, meta.Table, n.Type),
		}
	}
	return n.Table, nil
}
