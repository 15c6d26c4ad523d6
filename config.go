// Package tomlmap maps Go structs to and from TOML documents using struct
// tags for naming, grouping, ordering, comments and exclusion.
package tomlmap

import (
	"context"
	"log/slog"
)

// Format identifies a document syntax accepted on the read path.
type Format string

const (
	// FormatAuto picks the format from the file extension, falling back to TOML
	FormatAuto Format = "auto"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Options configures a Codec.
type Options struct {
	// Logger receives debug output for each converted field and info
	// output for completed file operations. Nil discards everything.
	Logger *slog.Logger

	// Strict turns silently skipped fields of unsupported types into
	// UnsupportedFieldError on both paths.
	Strict bool

	// Indent is prepended to keys inside a named table.
	Indent string

	// Format of documents read by Decode, Unmarshal and LoadFile.
	// Output is always TOML.
	Format Format

	// MaxFileSize limits the size of files read by LoadFile (0 = no limit).
	MaxFileSize int64
}

// DefaultOptions returns the standard codec options
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// Codec serializes structs to TOML and back. A Codec is immutable once
// created and may be shared between goroutines.
type Codec struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Codec with default options.
func New() *Codec {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Codec with the given options.
func NewWithOptions(opts Options) *Codec {
	if opts.Format == "" {
		opts.Format = FormatAuto
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Codec{
		opts:   opts,
		logger: logger,
	}
}

// Options returns a copy of the codec's options.
func (c *Codec) Options() Options {
	return c.opts
}

// readFormat resolves the format for data that has no file name.
func (c *Codec) readFormat() Format {
	if c.opts.Format == FormatAuto {
		return FormatTOML
	}
	return c.opts.Format
}

// debugEnabled reports whether per-field debug records would be kept.
func (c *Codec) debugEnabled() bool {
	return c.logger.Enabled(context.Background(), slog.LevelDebug)
}
