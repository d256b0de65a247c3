// SPDX-License-Identifier: MIT

// Package diagnostic evaluates a report of equal-width binary codes.
//
// What:
//
//   - Columns counts zeros and ones per bit position; gamma takes the most
//     common bit of every column (ties → 1) and epsilon the least common.
//   - The codes are also stored in a binary trie whose nodes count the codes
//     below them. Filter walks the trie choosing one branch per level, which
//     is the "keep only codes matching the criterion bit" elimination without
//     rescanning the list.
//
// Complexity:
//
//   - New:     O(n·w) for n codes of width w.
//   - Columns: O(w) from counts gathered by New.
//   - Filter:  O(w).
package diagnostic
