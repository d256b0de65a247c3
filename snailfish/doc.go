// SPDX-License-Identifier: MIT

// Package snailfish implements snailfish arithmetic: numbers are binary
// trees of pairs whose leaves hold non-negative integers.
//
// What:
//
//   - Parse reads the bracket notation ("[[1,2],3]") without reducing it.
//   - Add joins two numbers under a new root pair and reduces the result.
//   - Reduce applies explode and split actions until neither applies.
//   - Magnitude is 3·mag(left) + 2·mag(right), or the leaf value.
//
// Reduction:
//
//  1. Explode the leftmost pair nested inside four pairs whose children are
//     both leaves. Its left value is added to the nearest leaf on its left,
//     its right value to the nearest leaf on its right, and the pair becomes
//     the leaf 0.
//  2. Otherwise split the leftmost leaf ≥ 10 into [⌊v/2⌋, ⌈v/2⌉].
//  3. Stop when neither applies.
//
// Representation:
//
// Nodes live in an arena slice addressed by int32 indices, with parent
// links. Exploded children stay in the arena as garbage until Clone compacts
// it.
//
// Complexity:
//
//   - Parse, Magnitude, String, Clone: O(n) in the number of nodes.
//   - Reduce: O(n) per action.
//
// Errors:
//
//   - ErrSyntax: malformed bracket notation.
//   - ErrEmpty:  Sum of no numbers.
package snailfish
