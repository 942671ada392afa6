// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the helper types and functions which are
// shared by the configuration settings structs. Optional settings are
// declared as pointers, so an absent item can be distinguished from
// an explicitly configured zero value and replaced by its default.
package settings

// Nil2Zero overwrites the (*t) pointer, which should be nil,
// in order to point to a newly allocated T instance and initializes it
// with the zero value of T type.
// If the (*t) pointer was not nil, Nil2Zero will perform no action.
func Nil2Zero[T any](t **T) {
	if (*t) != nil {
		return
	}
	var zero T
	(*t) = &zero
}

// OverwriteNil overwrites the (*dst) pointer, which should be nil,
// in order to point to a newly allocated T instance and initializes it
// with the (*src) value.
// If the (*dst) pointer was not nil or if the src was nil, this
// function will perform no action.
func OverwriteNil[T any](dst **T, src *T) {
	if (*dst) != nil || src == nil {
		return
	}
	t := *src
	(*dst) = &t
}

// Nil2Default overwrites the (*t) pointer, which should be nil,
// in order to point to a newly allocated T instance and initializes it
// with the given default value.
// If the (*t) pointer was not nil, Nil2Default will perform no action.
func Nil2Default[T any](t **T, value T) {
	OverwriteNil(t, &value)
}
