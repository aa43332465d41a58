// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates expensive structural assertions behind the
// "invariants" build tag (also enabled under "race"). Without the tag the
// checks compile to no-ops and are eliminated statically.
package invariants

import "fmt"

// CheckBounds panics if the index is not in the range [0, n). No-op in
// non-invariant builds.
func CheckBounds[T Integer](i T, n T) {
	if Enabled && (i < 0 || i >= n) {
		panic(fmt.Sprintf("index %d out of bounds [0, %d)", i, n))
	}
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
