// FILE: tomlmap/config_test.go
package tomlmap

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCodecCreation tests codec construction and option normalization
func TestCodecCreation(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		c := New()
		assert.NotNil(t, c.logger)
		assert.Equal(t, FormatAuto, c.Options().Format)
		assert.Nil(t, c.Options().Logger)
		assert.Equal(t, FormatTOML, c.readFormat())
	})

	t.Run("EmptyFormatIsAuto", func(t *testing.T) {
		c := NewWithOptions(Options{})
		assert.Equal(t, FormatAuto, c.Options().Format)
	})

	t.Run("ExplicitReadFormat", func(t *testing.T) {
		c := NewWithOptions(Options{Format: FormatJSON})
		assert.Equal(t, FormatJSON, c.readFormat())

		var target struct{ Name string }
		assert.NoError(t, c.Unmarshal([]byte(`{"Name": "json"}`), &target))
		assert.Equal(t, "json", target.Name)
	})
}

func TestErrorMessages(t *testing.T) {
	perr := &ParseError{Format: FormatTOML, Line: 3, Column: 7, Err: assert.AnError}
	assert.Contains(t, perr.Error(), "toml parse error at line 3, column 7")
	assert.ErrorIs(t, perr, assert.AnError)

	perr = &ParseError{Format: FormatYAML, Err: assert.AnError}
	assert.Equal(t, "yaml parse error: "+assert.AnError.Error(), perr.Error())

	convErr := &ConversionError{Op: "encode", Field: "T.F", Err: ErrOverflow}
	assert.Contains(t, convErr.Error(), "encode error at T.F")
	assert.ErrorIs(t, convErr, ErrOverflow)
}

func TestDebugEnabled(t *testing.T) {
	assert.False(t, New().debugEnabled())

	var logs bytes.Buffer
	info := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	assert.False(t, NewWithOptions(Options{Logger: info}).debugEnabled())

	debug := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	assert.True(t, NewWithOptions(Options{Logger: debug}).debugEnabled())

	_, err := NewWithOptions(Options{Logger: info}).Marshal(alpha{Value: 1})
	assert.NoError(t, err)
	assert.NotContains(t, logs.String(), "encode field")
}
