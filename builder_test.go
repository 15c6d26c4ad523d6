// FILE: tomlmap/builder_test.go
package tomlmap

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := NewBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, DefaultOptions(), c.Options())
	})

	t.Run("AllOptions", func(t *testing.T) {
		logger := slog.New(slog.DiscardHandler)

		c, err := NewBuilder().
			WithLogger(logger).
			WithStrict(true).
			WithIndent("  ").
			WithFormat(FormatYAML).
			WithMaxFileSize(4096).
			Build()
		require.NoError(t, err)

		opts := c.Options()
		assert.Same(t, logger, opts.Logger)
		assert.True(t, opts.Strict)
		assert.Equal(t, "  ", opts.Indent)
		assert.Equal(t, FormatYAML, opts.Format)
		assert.Equal(t, int64(4096), opts.MaxFileSize)
	})

	t.Run("InvalidOptions", func(t *testing.T) {
		tests := []struct {
			name    string
			builder *Builder
			errMsg  string
		}{
			{"Indent", NewBuilder().WithIndent("--"), "indent"},
			{"Format", NewBuilder().WithFormat("ini"), "unknown document format"},
			{"MaxFileSize", NewBuilder().WithMaxFileSize(-1), "cannot be negative"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.builder.Build()
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithIndent("x").MustBuild()
		})
	})
}
