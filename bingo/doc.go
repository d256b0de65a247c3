// SPDX-License-Identifier: MIT

// Package bingo tracks W×H bingo cards against a stream of drawn numbers.
//
// What:
//
// Every card contributes W+H lines (its rows and columns), each holding a
// count of undrawn numbers. A flat index maps every number to the
// (card, line) slots containing it, so a draw touches only the lines it
// affects. A card wins the first time one of its lines reaches zero; later
// draws leave a winning card untouched.
//
// Complexity:
//
//   - AddCard: O(W·H).
//   - Draw:    O(k) for k slots holding the number (2 per card containing it).
//
// Errors:
//
//   - ErrShape:        a grid of the wrong size, or non-positive dimensions.
//   - ErrDuplicate:    a number repeated within one card.
//   - ErrNoCards:      Draw before any card was added.
//   - ErrStarted:      AddCard after the first Draw.
//   - ErrUnknownCard:  a card id that was never returned by AddCard.
package bingo
