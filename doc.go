// File: tomlmap/doc.go

// Package tomlmap maps tagged Go structs to TOML documents and back.
//
// Features:
//   - Field renaming, exclusion and comments through struct tags
//   - Explicit field ordering with a stable fallback to declaration order
//   - Named tables per type, several objects per document
//   - Pointer fields with nil written as the zero value
//   - float32 values written without binary widening noise
//   - Decimal fields via github.com/shopspring/decimal
//   - TOML output; TOML, JSON or YAML input
//   - Atomic file writes and bounded file reads
//   - Builder pattern for codec configuration
//
// Quick Start:
//
//	type Server struct {
//	    _    struct{} `table:"Server"`
//	    Host string   `toml:"host" comment:"Listen address" order:"0"`
//	    Port int      `toml:"port" order:"1"`
//	    Tags []string `toml:"tags"`
//	    Temp string   `toml:"-"`
//	}
//
//	err := tomlmap.ToFile("server.toml", Server{Host: "localhost", Port: 8080})
//
//	srv, err := tomlmap.FromFile[Server]("server.toml")
//
// produces
//
//	[Server]
//	# Listen address
//	host = "localhost"
//	port = 8080
//	tags = []
//
// Tags:
//   - toml:"name" sets the document key, toml:"-" excludes the field
//   - comment:"text" writes "# text" above the key
//   - order:"N" places the field; fields without it follow all ordered ones
//   - table:"Name" on a blank field, or a TableName method, nests the type
//
// Supported field types are bool, string, all integer and float kinds,
// decimal.Decimal, slices of those, and single pointers to any of them.
// Slice elements are written one by one: numbers become integers, strings
// stay strings and other values are omitted. Fields of any other type are
// skipped, or rejected when the codec is strict.
//
// Custom Codec:
//
//	codec, err := tomlmap.NewBuilder().
//	    WithLogger(slog.Default()).
//	    WithStrict(true).
//	    WithIndent("  ").
//	    WithMaxFileSize(1 << 20).
//	    Build()
//
// Thread Safety:
// A Codec holds no mutable state after construction and may be shared.
package tomlmap
