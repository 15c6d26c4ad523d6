// FILE: tomlmap/writer.go
package tomlmap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// docWriter lays out a document: root values first, then one [header]
// section per nested table. Key/value lines and headers themselves are
// rendered by the toml encoder so quoting and escaping follow the library.
type docWriter struct {
	w       *bufio.Writer
	indent  string
	written bool
}

// writeDocument renders root to w and flushes. The caller owns w.
func writeDocument(w io.Writer, root *Table, indent string) error {
	dw := &docWriter{
		w:      bufio.NewWriter(w),
		indent: indent,
	}

	for _, key := range root.keys {
		n := root.nodes[key]
		if n.Type == TableNode {
			continue
		}
		if err := dw.writeEntry(key, n, ""); err != nil {
			return err
		}
	}

	for _, key := range root.keys {
		n := root.nodes[key]
		if n.Type != TableNode {
			continue
		}
		if err := dw.writeTable(key, n); err != nil {
			return err
		}
	}

	if err := dw.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush document: %w", err)
	}
	return nil
}

func (dw *docWriter) writeTable(key string, n *Node) error {
	if dw.written {
		dw.w.WriteString("\n")
	}
	dw.writeComment(n.Comment, "")

	header, err := renderHeader(key)
	if err != nil {
		return err
	}
	dw.w.WriteString(header + "\n")
	dw.written = true

	for _, k := range n.Table.keys {
		child := n.Table.nodes[k]
		if child.Type == TableNode {
			return fmt.Errorf("%w: table %q nested below %q", ErrTypeMismatch, k, key)
		}
		if err := dw.writeEntry(k, child, dw.indent); err != nil {
			return err
		}
	}
	return nil
}

func (dw *docWriter) writeEntry(key string, n *Node, prefix string) error {
	dw.writeComment(n.Comment, prefix)

	line, err := renderLine(key, n.Value())
	if err != nil {
		return err
	}
	dw.w.WriteString(prefix + line + "\n")
	dw.written = true
	return nil
}

func (dw *docWriter) writeComment(comment, prefix string) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(comment, "\n") {
		dw.w.WriteString(prefix + "# " + strings.TrimRight(line, "\r") + "\n")
	}
	dw.written = true
}

// renderLine returns `key = value` as the toml encoder writes it.
func renderLine(key string, value any) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any{key: value}); err != nil {
		return "", fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// renderHeader returns `[key]` as the toml encoder writes it.
func renderHeader(key string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any{key: map[string]any{}}); err != nil {
		return "", fmt.Errorf("failed to encode table header %q: %w", key, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
