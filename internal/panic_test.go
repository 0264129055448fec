// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/iofinnet/modarith/internal"
)

var errBoom = errors.New("boom")

func TestExpectPanic(t *testing.T) {
	ok, err := internal.ExpectPanic(nil, func() {})
	assert.False(t, ok, "no panic must not be accepted")
	assert.EqualError(t, err, "no panic")

	ok, err = internal.ExpectPanic(errBoom, func() { panic(errors.Wrap(errBoom, "wrapped")) })
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = internal.ExpectPanic(errBoom, func() { panic("other") })
	assert.False(t, ok)
	assert.Error(t, err)

	ok, err = internal.ExpectPanic(nil, func() { panic("anything") })
	assert.True(t, ok)
	assert.NoError(t, err)
}
