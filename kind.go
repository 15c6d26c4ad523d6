// FILE: tomlmap/kind.go
package tomlmap

import (
	"reflect"

	"github.com/shopspring/decimal"
)

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind is the semantic category a field type falls into.
type Kind int

const (
	KindUnsupported Kind = iota
	KindBool
	KindString
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindDecimal
	KindCollection
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// classify maps a Go type to its Kind. Named types classify by their
// underlying kind. Only slices count as collections: arrays are values,
// maps and channels have no indexed access.
func classify(t reflect.Type) Kind {
	if t == decimalType {
		return KindDecimal
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Slice:
		return KindCollection
	}

	return KindUnsupported
}

// classifyField is classify for struct fields, which may also be a single
// pointer to a classifiable type. The bool result reports that indirection.
func classifyField(t reflect.Type) (Kind, bool) {
	if t.Kind() != reflect.Pointer {
		return classify(t), false
	}

	elem := t.Elem()
	if elem.Kind() == reflect.Pointer {
		return KindUnsupported, true
	}
	return classify(elem), true
}

func (k Kind) numeric() bool {
	switch k {
	case KindInt, KindUint, KindFloat32, KindFloat64, KindDecimal:
		return true
	}
	return false
}
