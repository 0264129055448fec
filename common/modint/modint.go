// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package modint

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/iofinnet/modarith/common"
	"github.com/iofinnet/modarith/common/hash"
)

// ModInt is an integer reduced modulo a fixed positive modulus. The zero value is not usable.
type ModInt struct {
	residue *big.Int
	// never mutated after construction, so it may be shared between instances
	modulus *big.Int
}

type binaryOp func(z, x, y, m *big.Int) *big.Int

// New reduces value into [0, modulus). The modulus must be positive.
func New(value, modulus *big.Int) (*ModInt, error) {
	if value == nil {
		return nil, errors.Wrap(ErrInvalidValueType, "New: nil value")
	}
	if err := validateModulus(modulus); err != nil {
		return nil, errors.Wrap(err, "New")
	}
	m := new(big.Int).Set(modulus)
	return &ModInt{residue: reduce(new(big.Int), value, m), modulus: m}, nil
}

func NewInt64(value, modulus int64) (*ModInt, error) {
	return New(big.NewInt(value), big.NewInt(modulus))
}

// MustNew is like New but panics on error. Intended for constants and tests.
func MustNew(value, modulus *big.Int) *ModInt {
	mi, err := New(value, modulus)
	if err != nil {
		panic(err)
	}
	return mi
}

// NewFrom constructs a ModInt from Go values of any integer kind. Every violation is reported.
func NewFrom(value, modulus interface{}) (*ModInt, error) {
	var result *multierror.Error
	v, ok := integerOf(value)
	if !ok {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidValueType, "value: got %T", value))
	}
	m, ok := integerOf(modulus)
	if !ok {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidValueType, "modulus: got %T", modulus))
	} else if err := validateModulus(m); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return New(v, m)
}

func validateModulus(m *big.Int) error {
	if m == nil {
		return errors.Wrap(ErrInvalidValueType, "nil modulus")
	}
	if m.Sign() <= 0 {
		return errors.Wrapf(ErrInvalidModulus, "got %s", m)
	}
	return nil
}

// reduce sets z to the Euclidean remainder x mod m, which is in [0, m) for m > 0.
func reduce(z, x, m *big.Int) *big.Int {
	return z.Mod(x, m)
}

// ----- //

func (mi *ModInt) Residue() *big.Int {
	return new(big.Int).Set(mi.residue)
}

func (mi *ModInt) Modulus() *big.Int {
	return new(big.Int).Set(mi.modulus)
}

// Big returns the residue. The modulus is not carried across.
func (mi *ModInt) Big() *big.Int {
	return mi.Residue()
}

// Int64 returns the residue as an int64; the result is undefined if it does not fit.
func (mi *ModInt) Int64() int64 {
	return mi.residue.Int64()
}

func (mi *ModInt) Clone() *ModInt {
	return &ModInt{residue: new(big.Int).Set(mi.residue), modulus: mi.modulus}
}

// SetInt overwrites the residue with v mod modulus and returns mi.
func (mi *ModInt) SetInt(v *big.Int) (*ModInt, error) {
	if v == nil {
		return nil, errors.Wrap(ErrInvalidValueType, "SetInt: nil value")
	}
	mi.residue = reduce(new(big.Int), v, mi.modulus)
	return mi, nil
}

// normalize turns other into an integer that can be combined with mi's residue.
func (mi *ModInt) normalize(other Operand) (*big.Int, error) {
	switch o := other.(type) {
	case Int:
		if o.v == nil {
			return nil, errors.Wrap(ErrUnsupportedOperand, "uninitialized Int")
		}
		return reduce(new(big.Int), o.v, mi.modulus), nil
	case *ModInt:
		if o == nil {
			return nil, errors.Wrap(ErrUnsupportedOperand, "nil ModInt")
		}
		if o.modulus.Cmp(mi.modulus) != 0 {
			return nil, errors.Wrapf(ErrIncompatibleModulus, "%s != %s", mi.modulus, o.modulus)
		}
		return o.residue, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedOperand, "got %T", other)
}

func (mi *ModInt) apply(other Operand, op binaryOp) (*big.Int, error) {
	y, err := mi.normalize(other)
	if err != nil {
		return nil, err
	}
	z := op(new(big.Int), mi.residue, y, mi.modulus)
	return reduce(z, z, mi.modulus), nil
}

func (mi *ModInt) binary(name string, other Operand, op binaryOp) (*ModInt, error) {
	r, err := mi.apply(other, op)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &ModInt{residue: r, modulus: mi.modulus}, nil
}

func (mi *ModInt) assign(name string, other Operand, op binaryOp) (*ModInt, error) {
	r, err := mi.apply(other, op)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	mi.residue = r
	return mi, nil
}

func add(z, x, y, _ *big.Int) *big.Int { return z.Add(x, y) }
func sub(z, x, y, _ *big.Int) *big.Int { return z.Sub(x, y) }
func mul(z, x, y, _ *big.Int) *big.Int { return z.Mul(x, y) }

func (mi *ModInt) Add(other Operand) (*ModInt, error) {
	return mi.binary("Add", other, add)
}

func (mi *ModInt) Sub(other Operand) (*ModInt, error) {
	return mi.binary("Sub", other, sub)
}

func (mi *ModInt) Mul(other Operand) (*ModInt, error) {
	return mi.binary("Mul", other, mul)
}

// Exp raises mi to other. The exponent is normalized first, so it is always in [0, modulus).
func (mi *ModInt) Exp(other Operand) (*ModInt, error) {
	return mi.binary("Exp", other, exp)
}

// AddAssign sets mi = mi + other and returns mi. On error mi is unchanged.
func (mi *ModInt) AddAssign(other Operand) (*ModInt, error) {
	return mi.assign("AddAssign", other, add)
}

func (mi *ModInt) SubAssign(other Operand) (*ModInt, error) {
	return mi.assign("SubAssign", other, sub)
}

func (mi *ModInt) MulAssign(other Operand) (*ModInt, error) {
	return mi.assign("MulAssign", other, mul)
}

func (mi *ModInt) ExpAssign(other Operand) (*ModInt, error) {
	return mi.assign("ExpAssign", other, exp)
}

// Neg negates mi in place and returns mi.
func (mi *ModInt) Neg() *ModInt {
	mi.residue = reduce(new(big.Int), new(big.Int).Neg(mi.residue), mi.modulus)
	return mi
}

// ----- //

// Equal reports whether other normalizes to mi's residue. It never fails: an operand that
// cannot be normalized is simply not equal.
func (mi *ModInt) Equal(other Operand) bool {
	y, err := mi.normalize(other)
	if err != nil {
		common.Logger.Debugf("ModInt.Equal(%s): %v", common.FormatBigInt(mi.residue), err)
		return false
	}
	return mi.residue.Cmp(y) == 0
}

// EqualAny is Equal for a value of any Go type.
func (mi *ModInt) EqualAny(v interface{}) bool {
	other, err := OperandOf(v)
	if err != nil {
		common.Logger.Debugf("ModInt.EqualAny(%s): %v", common.FormatBigInt(mi.residue), err)
		return false
	}
	return mi.Equal(other)
}

func (mi *ModInt) Less(other Operand) (bool, error) {
	y, err := mi.normalize(other)
	if err != nil {
		return false, errors.Wrap(err, "Less")
	}
	return mi.residue.Cmp(y) < 0, nil
}

func (mi *ModInt) LessOrEqual(other Operand) (bool, error) {
	lt, err := mi.Less(other)
	if err != nil {
		return false, err
	}
	return lt || mi.Equal(other), nil
}

func (mi *ModInt) Greater(other Operand) (bool, error) {
	le, err := mi.LessOrEqual(other)
	if err != nil {
		return false, err
	}
	return !le, nil
}

func (mi *ModInt) GreaterOrEqual(other Operand) (bool, error) {
	lt, err := mi.Less(other)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// Cmp returns -1, 0 or +1 as mi is less than, equal to or greater than other.
func (mi *ModInt) Cmp(other Operand) (int, error) {
	lt, err := mi.Less(other)
	if err != nil {
		return 0, err
	}
	switch {
	case lt:
		return -1, nil
	case mi.Equal(other):
		return 0, nil
	}
	return 1, nil
}

// Hash is a SHA-512/256 digest of (residue, modulus).
func (mi *ModInt) Hash() []byte {
	return hash.SHA512_256i(mi.residue, mi.modulus)
}

func (mi *ModInt) String() string {
	if mi == nil {
		return "<nil>"
	}
	return fmt.Sprintf("ModInt(value=%s, modulus=%s)", mi.residue, mi.modulus)
}
