// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 5000
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// MustGetRandomInt panics if it is unable to gather entropy from `rand.Reader` or when `bits` is <= 0
func MustGetRandomInt(bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	// Max random value e.g. 2^256 - 1
	max := new(big.Int).Lsh(one, uint(bits))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt!"))
	}
	return n
}

// GetRandomPositiveInt returns a value in (0, upper), or nil if upper < 2.
func GetRandomPositiveInt(upper *big.Int) *big.Int {
	if upper == nil || upper.Cmp(one) <= 0 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(upper.BitLen())
		if try.Cmp(upper) < 0 && try.Cmp(zero) > 0 {
			break
		}
	}
	return try
}

// GetRandomSignedInt returns a value in (-2^bits, 2^bits).
func GetRandomSignedInt(bits int) *big.Int {
	n := MustGetRandomInt(bits)
	if MustGetRandomInt(1).Sign() == 0 {
		n.Neg(n)
	}
	return n
}
