// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package vose

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput marks construction failures: an empty weight vector, a
	// negative, NaN or infinite weight, or weights whose sum is zero or
	// overflows.
	ErrInvalidInput = errors.New("vose: invalid input")
	// ErrOutOfRange marks a caller-supplied draw that lies outside its
	// documented range.
	ErrOutOfRange = errors.New("vose: draw out of range")
)

func invalidInputf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidInput)
}

func outOfRangef(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrOutOfRange)
}
