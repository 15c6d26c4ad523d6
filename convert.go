// FILE: tomlmap/convert.go
package tomlmap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

// floatPrecision is the number of fractional digits float32 values are
// rendered with before being widened to float64.
const floatPrecision = 60

// valueToNode converts a field value of the given kind into a document node.
// A nil pointer converts as the zero value of its element type, so a nil
// *string becomes "".
func valueToNode(v reflect.Value, kind Kind) (*Node, error) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v = reflect.Zero(v.Type().Elem())
		} else {
			v = v.Elem()
		}
	}

	switch kind {
	case KindBool:
		return FromBool(v.Bool()), nil
	case KindString:
		return FromString(v.String()), nil
	case KindInt:
		return FromInt(v.Int()), nil
	case KindUint:
		i, err := widenUint(v.Uint())
		if err != nil {
			return nil, err
		}
		return FromInt(i), nil
	case KindFloat32:
		return FromFloat(widenFloat32(float32(v.Float()))), nil
	case KindFloat64:
		return FromFloat(v.Float()), nil
	case KindDecimal:
		f, _ := v.Interface().(decimal.Decimal).Float64()
		return FromFloat(f), nil
	case KindCollection:
		return collectionToNode(v)
	case KindUnsupported:
	}

	return nil, fmt.Errorf("%w: %v has no document representation", ErrTypeMismatch, v.Type())
}

// collectionToNode inspects each element on its own rather than trusting
// the slice's element type. Numbers become integers, strings stay strings,
// anything else is left out. A nil element fails the conversion.
func collectionToNode(v reflect.Value) (*Node, error) {
	arr := FromArray()
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		for elem.Kind() == reflect.Interface || elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				return nil, fmt.Errorf("index %d: %w", i, ErrNilElement)
			}
			elem = elem.Elem()
		}

		kind := classify(elem.Type())
		switch {
		case kind == KindString:
			arr.Array = append(arr.Array, FromString(elem.String()))
		case kind.numeric():
			n, err := integerElement(elem, kind)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Array = append(arr.Array, FromInt(n))
		}
	}
	return arr, nil
}

func integerElement(v reflect.Value, kind Kind) (int64, error) {
	switch kind {
	case KindInt:
		return v.Int(), nil
	case KindUint:
		return widenUint(v.Uint())
	case KindDecimal:
		d := v.Interface().(decimal.Decimal)
		if !d.IsInteger() {
			return 0, fmt.Errorf("%w: %s", ErrNotIntegral, d)
		}
		if !d.BigInt().IsInt64() {
			return 0, fmt.Errorf("%w: %s", ErrOverflow, d)
		}
		return d.IntPart(), nil
	}

	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrNotIntegral, f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, f)
	}
	return int64(f), nil
}

func widenUint(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d exceeds int64", ErrOverflow, u)
	}
	return int64(u), nil
}

// widenFloat32 goes through a fixed decimal rendering so that float32(0.1)
// becomes 0.1 rather than 0.10000000149011612.
func widenFloat32(f float32) float64 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return float64(f)
	}
	w, _ := decimal.NewFromFloat32(f).Round(floatPrecision).Float64()
	return w
}

// nodeToValue converts a node into a value of exactly type t, narrowing
// integers and floats with range checks.
func nodeToValue(n *Node, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	switch classify(t) {
	case KindBool:
		if n.Type != BoolNode {
			return out, mismatch(n, t)
		}
		out.SetBool(n.Bool)

	case KindString:
		if n.Type != StringNode {
			return out, mismatch(n, t)
		}
		out.SetString(n.String)

	case KindInt:
		if n.Type != IntegerNode {
			return out, mismatch(n, t)
		}
		if out.OverflowInt(n.Int) {
			return out, fmt.Errorf("%w: %d does not fit %v", ErrOverflow, n.Int, t)
		}
		out.SetInt(n.Int)

	case KindUint:
		if n.Type != IntegerNode {
			return out, mismatch(n, t)
		}
		if n.Int < 0 || out.OverflowUint(uint64(n.Int)) {
			return out, fmt.Errorf("%w: %d does not fit %v", ErrOverflow, n.Int, t)
		}
		out.SetUint(uint64(n.Int))

	case KindFloat32, KindFloat64:
		f, err := nodeFloat(n, t)
		if err != nil {
			return out, err
		}
		if !math.IsInf(f, 0) && out.OverflowFloat(f) {
			return out, fmt.Errorf("%w: %v does not fit %v", ErrOverflow, f, t)
		}
		out.SetFloat(f)

	case KindDecimal:
		var d decimal.Decimal
		switch n.Type {
		case IntegerNode:
			d = decimal.NewFromInt(n.Int)
		case FloatNode:
			if math.IsNaN(n.Float) || math.IsInf(n.Float, 0) {
				return out, fmt.Errorf("%w: %v cannot be a decimal", ErrOverflow, n.Float)
			}
			d = decimal.NewFromFloat(n.Float)
		default:
			return out, mismatch(n, t)
		}
		out.Set(reflect.ValueOf(d))

	case KindCollection:
		if n.Type != ArrayNode {
			return out, mismatch(n, t)
		}
		slice := reflect.MakeSlice(t, 0, len(n.Array))
		for i, elem := range n.Array {
			ev, err := elementToValue(elem, t.Elem())
			if err != nil {
				return out, fmt.Errorf("index %d: %w", i, err)
			}
			slice = reflect.Append(slice, ev)
		}
		out.Set(slice)

	default:
		return out, mismatch(n, t)
	}

	return out, nil
}

// elementToValue converts a collection element. Interface elements take
// the node's plain value; pointer elements point at a converted value.
func elementToValue(n *Node, t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Interface:
		v := reflect.ValueOf(n.Value())
		if !v.Type().AssignableTo(t) {
			return reflect.Value{}, mismatch(n, t)
		}
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, nil

	case reflect.Pointer:
		ev, err := nodeToValue(n, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(ev)
		return ptr, nil
	}

	return nodeToValue(n, t)
}

// nodeFloat accepts integer nodes too, since a hand-edited "3.0" is
// often written as "3".
func nodeFloat(n *Node, t reflect.Type) (float64, error) {
	switch n.Type {
	case FloatNode:
		return n.Float, nil
	case IntegerNode:
		return float64(n.Int), nil
	}
	return 0, mismatch(n, t)
}

func mismatch(n *Node, t reflect.Type) error {
	return fmt.Errorf("%w: cannot assign %s to %v", ErrTypeMismatch, n.Type, t)
}
