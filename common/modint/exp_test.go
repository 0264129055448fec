// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package modint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/iofinnet/modarith/common/modint"
)

func TestConstantTimeExp(t *testing.T) {
	p, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2^127 - 1
	moduli := []*big.Int{big.NewInt(1), big.NewInt(3), big.NewInt(8), big.NewInt(15), big.NewInt(101), p}
	bases := []int64{0, 1, 2, 5, 97, -3}
	exps := []int64{0, 1, 2, 7, 65537, -1}

	want := make(map[string]string)
	key := func(m *big.Int, b, e int64) string { return m.String() + "/" + Int64(b).String() + "/" + Int64(e).String() }
	for _, m := range moduli {
		for _, b := range bases {
			for _, e := range exps {
				got, err := MustNew(big.NewInt(b), m).Exp(Int64(e))
				require.NoError(t, err)
				want[key(m, b, e)] = got.String()
			}
		}
	}

	require.True(t, EnableConstantTimeArithmetic())
	defer DisableConstantTimeArithmetic()
	for _, m := range moduli {
		for _, b := range bases {
			for _, e := range exps {
				x := MustNew(big.NewInt(b), m)
				got, err := x.Exp(Int64(e))
				require.NoError(t, err)
				assert.Equal(t, want[key(m, b, e)], got.String(), "Exp %s", key(m, b, e))

				_, err = x.ExpAssign(Int64(e))
				require.NoError(t, err)
				assert.Equal(t, want[key(m, b, e)], x.String(), "ExpAssign %s", key(m, b, e))
			}
		}
	}
}
