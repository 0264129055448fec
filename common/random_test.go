// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/iofinnet/modarith/common"
)

func TestMustGetRandomInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := MustGetRandomInt(64)
		assert.True(t, n.Sign() >= 0)
		assert.LessOrEqual(t, n.BitLen(), 64)
	}
	assert.Panics(t, func() { MustGetRandomInt(0) })
	assert.Panics(t, func() { MustGetRandomInt(5001) })
}

func TestGetRandomPositiveInt(t *testing.T) {
	upper := big.NewInt(5)
	for i := 0; i < 100; i++ {
		n := GetRandomPositiveInt(upper)
		assert.True(t, n.Sign() > 0 && n.Cmp(upper) < 0, "got %s", n)
	}
	assert.Nil(t, GetRandomPositiveInt(nil))
	assert.Nil(t, GetRandomPositiveInt(big.NewInt(1)))
	assert.Nil(t, GetRandomPositiveInt(big.NewInt(-3)))
}

func TestGetRandomSignedInt(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 32)
	for i := 0; i < 100; i++ {
		n := GetRandomSignedInt(32)
		assert.True(t, new(big.Int).Abs(n).Cmp(bound) < 0, "got %s", n)
	}
}

func TestFormatBigInt(t *testing.T) {
	assert.Equal(t, "<nil>", FormatBigInt(nil))
	assert.Equal(t, "ff", FormatBigInt(big.NewInt(255)))
	assert.Equal(t, "1", FormatBigInt(new(big.Int).Lsh(big.NewInt(1), 64).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))))
}
