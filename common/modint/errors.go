// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package modint

import (
	"github.com/pkg/errors"
)

// Errors returned by this package are wrapped with context; match them with errors.Is.
var (
	ErrInvalidValueType    = errors.New("value must be an integer")
	ErrInvalidModulus      = errors.New("modulus must be a positive integer")
	ErrIncompatibleModulus = errors.New("operands have different moduli")
	ErrUnsupportedOperand  = errors.New("operand must be an integer or a ModInt")
)
