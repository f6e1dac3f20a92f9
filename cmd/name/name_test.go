/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package name

import (
	"slices"
	"testing"

	"bennypowers.dev/tokensync/naming"
)

func TestConvertNames(t *testing.T) {
	conv := naming.Default()

	t.Run("forward", func(t *testing.T) {
		got := convertNames(conv, []string{"text/fg_muted", "bg/default", "gray/500"}, false)
		want := []string{"fg.muted", "bg", "gray.500"}
		if !slices.Equal(got, want) {
			t.Errorf("convertNames() = %v, want %v", got, want)
		}
	})

	t.Run("reverse", func(t *testing.T) {
		got := convertNames(conv, []string{"fg", "bg", "gray.500"}, true)
		want := []string{"text/default", "bg/default", "gray/500"}
		if !slices.Equal(got, want) {
			t.Errorf("convertNames() = %v, want %v", got, want)
		}
	})

	t.Run("custom aliases", func(t *testing.T) {
		custom := naming.MustNew([]naming.Alias{{External: "surface", Internal: "bg"}}, []string{"bg"})
		got := convertNames(custom, []string{"surface/raised", "text/fg"}, false)
		want := []string{"bg.raised", "text.fg"}
		if !slices.Equal(got, want) {
			t.Errorf("convertNames() = %v, want %v", got, want)
		}
	})
}
