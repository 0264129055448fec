// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package modint

import (
	"math/big"

	"github.com/pkg/errors"
)

// Operand is the right-hand side of a ModInt operation. It is implemented only by Int and *ModInt.
type Operand interface {
	operand()
}

// Int is a plain integer operand.
type Int struct {
	v *big.Int
}

func BigInt(x *big.Int) Int {
	if x == nil {
		return Int{}
	}
	return Int{v: new(big.Int).Set(x)}
}

func Int64(x int64) Int {
	return Int{v: big.NewInt(x)}
}

func (i Int) Big() *big.Int {
	if i.v == nil {
		return nil
	}
	return new(big.Int).Set(i.v)
}

func (i Int) String() string {
	if i.v == nil {
		return "<nil>"
	}
	return i.v.String()
}

func (Int) operand() {}
func (*ModInt) operand() {}

// OperandOf adapts a Go value to an Operand. Fractional values fail with ErrInvalidValueType,
// anything else that is not an integer or an Operand fails with ErrUnsupportedOperand.
func OperandOf(v interface{}) (Operand, error) {
	if o, ok := v.(Operand); ok {
		return o, nil
	}
	if x, ok := integerOf(v); ok {
		return Int{v: x}, nil
	}
	if isFractional(v) {
		return nil, errors.Wrapf(ErrInvalidValueType, "OperandOf: got %T", v)
	}
	return nil, errors.Wrapf(ErrUnsupportedOperand, "OperandOf: got %T", v)
}

func integerOf(v interface{}) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return new(big.Int).Set(x), true
	case big.Int:
		return new(big.Int).Set(&x), true
	case int:
		return big.NewInt(int64(x)), true
	case int8:
		return big.NewInt(int64(x)), true
	case int16:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	}
	return nil, false
}

func isFractional(v interface{}) bool {
	switch v.(type) {
	case float32, float64, *big.Float, *big.Rat, complex64, complex128:
		return true
	}
	return false
}
