// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash

import (
	"crypto"
	_ "crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/iofinnet/modarith/common"
)

const (
	hashInputDelimiter = byte('$')
)

// SHA512_256i digests a sequence of integers. Each input is written with its sign so that
// Hash(-a) != Hash(a), and is followed by a delimiter and its length.
func SHA512_256i(in ...*big.Int) []byte {
	var data []byte
	state := crypto.SHA512_256.New()
	inLen := len(in)
	if inLen == 0 {
		return nil
	}
	bzSize := 0
	// prevent hash collisions with this prefix containing the block count
	inLenBz := make([]byte, 8) // 64-bits
	binary.LittleEndian.PutUint64(inLenBz, uint64(inLen))
	ptrs := make([][]byte, inLen)
	for i, n := range in {
		if n == nil {
			return nil
		}
		ptrs[i] = append(n.Bytes(), byte(n.Sign()))
		bzSize += len(ptrs[i])
	}
	dataCap := len(inLenBz) + bzSize + inLen + (inLen * 8)
	data = make([]byte, 0, dataCap)
	data = append(data, inLenBz...)
	for i := range in {
		data = append(data, ptrs[i]...)
		data = append(data, hashInputDelimiter)
		dataLen := make([]byte, 8) // 64-bits
		binary.LittleEndian.PutUint64(dataLen, uint64(len(ptrs[i])))
		data = append(data, dataLen...)
	}
	// see: https://golang.org/pkg/hash/#Hash
	if _, err := state.Write(data); err != nil {
		common.Logger.Errorf("SHA512_256i Write() failed: %v", err)
		return nil
	}
	return state.Sum(nil)
}
