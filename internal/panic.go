// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	errNoPanic = errors.New("no panic")
)

// recovered runs f and returns whatever it panicked with as an error, or nil.
func recovered(f func()) (err error) {
	defer func() {
		if report := recover(); report != nil {
			if e, ok := report.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", report)
			}
		}
	}()
	f()
	return nil
}

// ExpectPanic runs f and expects it to panic with an error matching target (errors.Is).
// A nil target accepts any panic. When the expectation is not met, the returned error says why.
func ExpectPanic(target error, f func()) (bool, error) {
	err := recovered(f)
	if err == nil {
		return false, errNoPanic
	}
	if target != nil && !errors.Is(err, target) {
		return false, errors.Wrapf(err, "expected panic matching %q, got", target)
	}
	return true, nil
}
