// FILE: tomlmap/parser.go
package tomlmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// parseDocument parses data in the given format into a document table.
func parseDocument(data []byte, format Format) (*Table, error) {
	switch format {
	case FormatTOML, FormatAuto, "":
		return parseTOML(data)
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		return parseYAML(data)
	}
	return nil, fmt.Errorf("unknown document format %q", format)
}

func parseTOML(data []byte) (*Table, error) {
	raw := make(map[string]any)
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw)
	if err != nil {
		perr := &ParseError{Format: FormatTOML, Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
			perr.Column = columnAt(data, tomlErr.Position.Start)
		}
		return nil, perr
	}

	// Keys() lists every key in document order
	order := make(map[string]int)
	for i, key := range md.Keys() {
		order[strings.Join(key, "\x00")] = i
	}

	return tableFromMap(raw, "", order)
}

func parseJSON(data []byte) (*Table, error) {
	raw := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve integer precision
	if err := decoder.Decode(&raw); err != nil {
		perr := &ParseError{Format: FormatJSON, Err: err}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			perr.Line, perr.Column = lineColumn(data, int(syntaxErr.Offset))
		}
		return nil, perr
	}
	return tableFromMap(raw, "", nil)
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func parseYAML(data []byte) (*Table, error) {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		perr := &ParseError{Format: FormatYAML, Err: err}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			perr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, perr
	}
	return tableFromMap(raw, "", nil)
}

// tableFromMap builds an ordered table. With an order index, keys follow
// document order; otherwise they are sorted for deterministic iteration.
func tableFromMap(m map[string]any, prefix string, order map[string]int) (*Table, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	position := func(k string) int {
		if p, ok := order[joinPath(prefix, k)]; ok {
			return p
		}
		return math.MaxInt
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := position(keys[i]), position(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})

	table := NewTable()
	for _, k := range keys {
		if m[k] == nil {
			continue // null has no document representation
		}
		n, err := nodeFromAny(m[k], joinPath(prefix, k), order)
		if err != nil {
			return nil, err
		}
		table.Set(k, n)
	}
	return table, nil
}

// nodeFromAny normalizes a decoded value from any supported parser.
func nodeFromAny(v any, path string, order map[string]int) (*Node, error) {
	switch val := v.(type) {
	case bool:
		return FromBool(val), nil
	case string:
		return FromString(val), nil
	case int:
		return FromInt(int64(val)), nil
	case int64:
		return FromInt(val), nil
	case uint64:
		i, err := widenUint(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return FromInt(i), nil
	case float64:
		return FromFloat(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q: %w", path, val, err)
		}
		return FromFloat(f), nil
	case time.Time:
		return FromString(val.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		// toml local date/time types
		return FromString(val.String()), nil
	case []any:
		arr := FromArray()
		for i, e := range val {
			if e == nil {
				return nil, fmt.Errorf("%s[%d]: %w", path, i, ErrNilElement)
			}
			n, err := nodeFromAny(e, path, order)
			if err != nil {
				return nil, err
			}
			arr.Array = append(arr.Array, n)
		}
		return arr, nil
	case []map[string]any:
		arr := FromArray()
		for _, e := range val {
			t, err := tableFromMap(e, path, nil)
			if err != nil {
				return nil, err
			}
			arr.Array = append(arr.Array, FromTable(t))
		}
		return arr, nil
	case map[string]any:
		t, err := tableFromMap(val, path, order)
		if err != nil {
			return nil, err
		}
		return FromTable(t), nil
	}

	return nil, fmt.Errorf("%w: %s has unsupported document value %T", ErrTypeMismatch, path, v)
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "\x00" + key
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int) (int, int) {
	offset = min(max(offset, 0), len(data))
	line := bytes.Count(data[:offset], []byte("\n")) + 1
	return line, columnAt(data, offset)
}

func columnAt(data []byte, offset int) int {
	offset = min(max(offset, 0), len(data))
	return offset - bytes.LastIndexByte(data[:offset], '\n')
}
