// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build race

package testutil

// Race is true when the race detector is enabled.
const Race = true
