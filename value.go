// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/json"
	"fmt"
	"math"
)

// Value holds any field value in an efficient way that avoids allocations
// for the common scalar types.
type Value struct {
	packed  uint64
	untyped interface{}
}

// int64Kind is used in untyped when the Value is a signed integer
type int64Kind struct{}

// uint64Kind is used in untyped when the Value is an unsigned integer
type uint64Kind struct{}

// float64Kind is used in untyped when the Value is a floating point number
type float64Kind struct{}

// boolKind is used in untyped when the Value is a boolean
type boolKind struct{}

// HasValue returns true if the value is set to any type.
func (v Value) HasValue() bool { return v.untyped != nil }

// ValueOf returns a Value for the supplied value.
// Use it for values that are not scalars, such as slices and maps; the value
// must be representable by encoding/json for the owning record to serialize.
func ValueOf(value interface{}) Value {
	return Value{untyped: value}
}

// Interface returns the value.
// This never panics; values of the scalar kinds are unpacked and returned as
// their natural type.
func (v Value) Interface() interface{} {
	switch {
	case v.IsString():
		return v.String()
	case v.IsInt64():
		return v.Int64()
	case v.IsUint64():
		return v.Uint64()
	case v.IsFloat64():
		return v.Float64()
	case v.IsBool():
		return v.Bool()
	default:
		return v.untyped
	}
}

// StringOf returns a new Value for a string.
func StringOf(s string) Value {
	return Value{untyped: stringVal(s)}
}

// stringVal is the kind tag for string values.
type stringVal string

// String returns the value as a string.
// This does not panic if v's kind is not string; it returns a string
// representation of the value in all cases.
func (v Value) String() string {
	if s, ok := v.untyped.(stringVal); ok {
		return string(s)
	}
	return fmt.Sprint(v.Interface())
}

// IsString returns true if the value was built with StringOf.
func (v Value) IsString() bool {
	_, ok := v.untyped.(stringVal)
	return ok
}

// Int64Of returns a new Value for a signed integer.
func Int64Of(u int64) Value {
	return Value{packed: uint64(u), untyped: int64Kind{}}
}

// Int64 returns the int64 from a value constructed with Int64Of.
// It will panic for any value for which IsInt64 is not true.
func (v Value) Int64() int64 {
	if !v.IsInt64() {
		panic("Int64 called on non int64 value")
	}
	return int64(v.packed)
}

// IsInt64 returns true if the value was built with Int64Of.
func (v Value) IsInt64() bool {
	_, ok := v.untyped.(int64Kind)
	return ok
}

// Uint64Of returns a new Value for an unsigned integer.
func Uint64Of(u uint64) Value {
	return Value{packed: u, untyped: uint64Kind{}}
}

// Uint64 returns the uint64 from a value constructed with Uint64Of.
// It will panic for any value for which IsUint64 is not true.
func (v Value) Uint64() uint64 {
	if !v.IsUint64() {
		panic("Uint64 called on non uint64 value")
	}
	return v.packed
}

// IsUint64 returns true if the value was built with Uint64Of.
func (v Value) IsUint64() bool {
	_, ok := v.untyped.(uint64Kind)
	return ok
}

// Float64Of returns a new Value for a floating point number.
func Float64Of(f float64) Value {
	return Value{packed: math.Float64bits(f), untyped: float64Kind{}}
}

// Float64 returns the float64 from a value constructed with Float64Of.
// It will panic for any value for which IsFloat64 is not true.
func (v Value) Float64() float64 {
	if !v.IsFloat64() {
		panic("Float64 called on non float64 value")
	}
	return math.Float64frombits(v.packed)
}

// IsFloat64 returns true if the value was built with Float64Of.
func (v Value) IsFloat64() bool {
	_, ok := v.untyped.(float64Kind)
	return ok
}

// BoolOf returns a new Value for a bool.
func BoolOf(b bool) Value {
	if b {
		return Value{packed: 1, untyped: boolKind{}}
	}
	return Value{packed: 0, untyped: boolKind{}}
}

// Bool returns the bool from a value constructed with BoolOf.
// It will panic for any value for which IsBool is not true.
func (v Value) Bool() bool {
	if !v.IsBool() {
		panic("Bool called on non bool value")
	}
	return v.packed != 0
}

// IsBool returns true if the value was built with BoolOf.
func (v Value) IsBool() bool {
	_, ok := v.untyped.(boolKind)
	return ok
}

// MarshalJSON implements json.Marshaler.
// Values of any kind serialize as the underlying value; an unset Value
// serializes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
