// File: tomlmap/convenience.go
package tomlmap

import (
	"bufio"
	"fmt"
	"io"
)

// defaultCodec backs the package-level functions.
var defaultCodec = New()

// ToFile writes data to path as TOML using the default codec.
func ToFile(path string, data any) error {
	return defaultCodec.ToFile(path, data)
}

// FromFile reads the document at path into a new T using the default codec.
// The format follows the file extension.
func FromFile[T any](path string) (T, error) {
	return Load[T](defaultCodec, path)
}

// Marshal returns the TOML document for data using the default codec.
func Marshal(data any) ([]byte, error) {
	return defaultCodec.Marshal(data)
}

// MustMarshal is like Marshal but panics on error
func MustMarshal(data any) []byte {
	doc, err := Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("marshal failed: %v", err))
	}
	return doc
}

// Unmarshal parses TOML data into target using the default codec.
func Unmarshal(data []byte, target any) error {
	return defaultCodec.Unmarshal(data, target)
}

// Dump writes a debug view of data to w using the default codec.
func Dump(w io.Writer, data any) error {
	return defaultCodec.Dump(w, data)
}

// Dump writes a debug view of data to w: one line per field with its Go
// type and value, followed by the document as this codec renders it.
func (c *Codec) Dump(w io.Writer, data any) error {
	objs, err := expandObjects(data)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, obj := range objs {
		meta, err := resolveType(obj.Type())
		if err != nil {
			return err
		}

		table := meta.Table
		if table == "" {
			table = "(root)"
		}
		fmt.Fprintf(bw, "Object: %s Table: %s\n", meta.Type.Name(), table)

		for i := range meta.Fields {
			fd := &meta.Fields[i]
			fmt.Fprintf(bw, "  Field: %s Type: %v Kind: %s Value: %v\n",
				fd.Name, fd.Type, fd.Kind, obj.Field(fd.Index).Interface())
		}
	}
	bw.WriteString("\n")

	if err := c.Encode(bw, data); err != nil {
		return err
	}
	return bw.Flush()
}
