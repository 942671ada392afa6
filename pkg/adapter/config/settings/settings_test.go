// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"

	"github.com/mova-mz/mova-core/pkg/adapter/config/settings"
	"github.com/stretchr/testify/require"
)

func TestNil2Zero(t *testing.T) {
	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	require.False(t, *b)

	v := true
	b = &v
	settings.Nil2Zero(&b)
	require.Same(t, &v, b, "non-nil pointers are left intact")
	require.True(t, *b)
}

func TestOverwriteNil(t *testing.T) {
	src := 42
	var dst *int
	settings.OverwriteNil(&dst, &src)
	require.NotNil(t, dst)
	require.Equal(t, 42, *dst)
	require.NotSame(t, &src, dst, "the source value must be copied")

	old := 7
	dst = &old
	settings.OverwriteNil(&dst, &src)
	require.Same(t, &old, dst, "non-nil destinations are left intact")

	dst = nil
	settings.OverwriteNil(&dst, nil)
	require.Nil(t, dst, "a nil source is a no-op")
}

func TestNil2Default(t *testing.T) {
	var b *bool
	settings.Nil2Default(&b, true)
	require.NotNil(t, b)
	require.True(t, *b)

	v := false
	b = &v
	settings.Nil2Default(&b, true)
	require.Same(t, &v, b, "non-nil pointers are left intact")
	require.False(t, *b)
}
