// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package modint

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

var (
	constantTimeExpEnabled = false

	one = big.NewInt(1)
)

// EnableConstantTimeArithmetic routes exponentiation through saferith (experimental, slower).
// Must be called before any ModInt is used, or behaviour may be unpredictable.
func EnableConstantTimeArithmetic() (enabled bool) {
	constantTimeExpEnabled = true
	return constantTimeExpEnabled
}

func DisableConstantTimeArithmetic() (enabled bool) {
	constantTimeExpEnabled = false
	return constantTimeExpEnabled
}

// exp sets z = x**y mod m. x is a residue and y is non-negative.
func exp(z, x, y, m *big.Int) *big.Int {
	// the constant-time path is only taken for odd moduli above 1
	if constantTimeExpEnabled && m.Bit(0) == 1 && m.Cmp(one) > 0 {
		return expConstantTime(z, x, y, m)
	}
	return z.Exp(x, y, m)
}

func expConstantTime(z, x, y, m *big.Int) *big.Int {
	mod := saferith.ModulusFromBytes(m.Bytes())
	base := new(saferith.Nat).SetBytes(x.Bytes())
	e := new(saferith.Nat).SetBytes(y.Bytes())
	return z.Set(new(saferith.Nat).Exp(base, e, mod).Big())
}
