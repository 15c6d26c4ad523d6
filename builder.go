// File: tomlmap/builder.go
package tomlmap

import (
	"fmt"
	"log/slog"
	"strings"
)

// Builder provides a fluent interface for building a Codec
type Builder struct {
	opts Options
	err  error
}

// NewBuilder creates a new codec builder starting from DefaultOptions
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// WithLogger sets the logger for field-level debug output
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithStrict makes unsupported field types an error instead of skipping them
func (b *Builder) WithStrict(strict bool) *Builder {
	b.opts.Strict = strict
	return b
}

// WithIndent sets the indentation used for keys inside named tables
func (b *Builder) WithIndent(indent string) *Builder {
	if strings.Trim(indent, " \t") != "" {
		b.err = fmt.Errorf("indent must contain only spaces and tabs, got %q", indent)
		return b
	}
	b.opts.Indent = indent
	return b
}

// WithFormat sets the format used when reading documents
func (b *Builder) WithFormat(format Format) *Builder {
	switch format {
	case FormatAuto, FormatTOML, FormatJSON, FormatYAML:
		b.opts.Format = format
	default:
		b.err = fmt.Errorf("unknown document format %q", format)
	}
	return b
}

// WithMaxFileSize limits the size of files read by LoadFile
func (b *Builder) WithMaxFileSize(size int64) *Builder {
	if size < 0 {
		b.err = fmt.Errorf("maximum file size cannot be negative: %d", size)
		return b
	}
	b.opts.MaxFileSize = size
	return b
}

// Build creates the Codec with all specified options
func (b *Builder) Build() (*Codec, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewWithOptions(b.opts), nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Codec {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("codec build failed: %v", err))
	}
	return c
}
