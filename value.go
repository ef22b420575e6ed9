package lisp

import (
	"fmt"
	"math/big"

	"github.com/nukata/goarith"
)

// ValueType identifies the kind of a Value.
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
)

var valueTypes = map[ValueType]string{
	ValueTypeNil: "nil",
	ValueTypeInt: "int",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression: an integer of arbitrary
// precision or nil.
type Value struct {
	n goarith.Number

	Type ValueType
}

// Nil is the value of expressions that don't produce a number, like defun.
var Nil = &Value{Type: ValueTypeNil}

// NewIntValue creates an integer value.
func NewIntValue(i *big.Int) *Value {
	return NewNumberValue(goarith.AsNumber(new(big.Int).Set(i)))
}

// NewInt64Value creates an integer value out of an int64.
func NewInt64Value(i int64) *Value {
	return NewIntValue(big.NewInt(i))
}

// NewNumberValue wraps the result of an arithmetic operation.
func NewNumberValue(n goarith.Number) *Value {
	return &Value{n: n, Type: ValueTypeInt}
}

// Number returns the numeric value, or nil if the value is not an integer.
func (v Value) Number() goarith.Number {
	return v.n
}

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool {
	return v.Type == ValueTypeNil
}

// Equal reports whether two values are the same nil or the same integer.
func (v Value) Equal(w *Value) bool {
	if w == nil || v.Type != w.Type {
		return false
	}
	if v.Type == ValueTypeNil {
		return true
	}
	return v.n.Cmp(w.n) == 0
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeInt:
		return fmt.Sprint(v.n)
	}
	return "nil"
}
