// SPDX-License-Identifier: MIT

package bingo

import (
	"errors"
	"fmt"
)

// Sentinel errors for bingo games.
var (
	ErrShape       = errors.New("bingo: card shape mismatch")
	ErrDuplicate   = errors.New("bingo: duplicate number on card")
	ErrNoCards     = errors.New("bingo: no cards")
	ErrStarted     = errors.New("bingo: game already started")
	ErrUnknownCard = errors.New("bingo: unknown card")
)

// slot locates one line of one card.
type slot struct {
	card int32
	line int32
}

type card struct {
	undrawn []int // per line: rows first, then columns
	total   int
	drawn   int
	won     bool
}

// Game holds the cards and the draw history.
type Game struct {
	w, h    int
	cards   []card
	index   map[int][]slot
	seen    map[int]bool
	winners []int
}

// New returns an empty game for cards of w columns and h rows.
func New(w, h int) (*Game, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%d×%d: %w", w, h, ErrShape)
	}

	return &Game{
		w:     w,
		h:     h,
		index: make(map[int][]slot),
		seen:  make(map[int]bool),
	}, nil
}

// Len returns the number of cards.
func (g *Game) Len() int { return len(g.cards) }

// AddCard registers a card given as h rows of w numbers and returns its id.
// Ids are assigned consecutively from 0.
func (g *Game) AddCard(grid [][]int) (int, error) {
	if len(g.seen) > 0 {
		return -1, ErrStarted
	}
	if len(grid) != g.h {
		return -1, fmt.Errorf("%d rows, want %d: %w", len(grid), g.h, ErrShape)
	}
	onCard := make(map[int]bool, g.w*g.h)
	c := card{undrawn: make([]int, g.h+g.w)}
	for r, row := range grid {
		if len(row) != g.w {
			return -1, fmt.Errorf("row %d has %d numbers, want %d: %w", r, len(row), g.w, ErrShape)
		}
		for _, n := range row {
			if onCard[n] {
				return -1, fmt.Errorf("number %d: %w", n, ErrDuplicate)
			}
			onCard[n] = true
			c.total += n
		}
	}
	for k := range c.undrawn[:g.h] {
		c.undrawn[k] = g.w
	}
	for k := range c.undrawn[g.h:] {
		c.undrawn[g.h+k] = g.h
	}

	id := int32(len(g.cards))
	g.cards = append(g.cards, c)
	for r, row := range grid {
		for col, n := range row {
			g.index[n] = append(g.index[n],
				slot{card: id, line: int32(r)},
				slot{card: id, line: int32(g.h + col)})
		}
	}

	return int(id), nil
}

// Draw marks n on every card holding it and returns the ids of cards that
// won with this draw, in card order. Numbers that are on no card, or that
// were drawn before, change nothing.
func (g *Game) Draw(n int) ([]int, error) {
	if len(g.cards) == 0 {
		return nil, ErrNoCards
	}
	if g.seen[n] {
		return nil, nil
	}
	g.seen[n] = true

	var won []int
	last := int32(-1)
	for _, s := range g.index[n] {
		c := &g.cards[s.card]
		if c.won {
			continue
		}
		if s.card != last {
			// each card holds n once, in one row and one column
			c.drawn += n
			last = s.card
		}
		c.undrawn[s.line]--
		if c.undrawn[s.line] == 0 {
			c.won = true
			won = append(won, int(s.card))
		}
	}
	g.winners = append(g.winners, won...)

	return won, nil
}

func (g *Game) card(id int) (*card, error) {
	if id < 0 || id >= len(g.cards) {
		return nil, fmt.Errorf("card %d: %w", id, ErrUnknownCard)
	}

	return &g.cards[id], nil
}

// RemainingSum returns the sum of the card's numbers not drawn before it
// won (or so far, if it has not won).
func (g *Game) RemainingSum(id int) (int, error) {
	c, err := g.card(id)
	if err != nil {
		return 0, err
	}

	return c.total - c.drawn, nil
}

// DrawnSum returns the sum of the card's numbers marked before it won.
func (g *Game) DrawnSum(id int) (int, error) {
	c, err := g.card(id)
	if err != nil {
		return 0, err
	}

	return c.drawn, nil
}

// Won reports whether card id has won. Unknown ids report false.
func (g *Game) Won(id int) bool {
	c, err := g.card(id)

	return err == nil && c.won
}

// Winners returns the ids of winning cards in the order they won.
func (g *Game) Winners() []int {
	return append([]int(nil), g.winners...)
}

// Result describes one card's win.
type Result struct {
	Card      int
	Draw      int
	Remaining int
}

// Score is the remaining sum times the winning draw.
func (r Result) Score() int { return r.Remaining * r.Draw }

// Play draws numbers in order until every card has won or draws run out,
// and reports the first and the last card to win. ok is false when no card
// won.
func (g *Game) Play(draws []int) (first, last Result, ok bool, err error) {
	for _, n := range draws {
		won, err := g.Draw(n)
		if err != nil {
			return Result{}, Result{}, false, err
		}
		for _, id := range won {
			c := &g.cards[id]
			r := Result{Card: id, Draw: n, Remaining: c.total - c.drawn}
			if !ok {
				first, ok = r, true
			}
			last = r
		}
		if len(g.winners) == len(g.cards) {
			break
		}
	}

	return first, last, ok, nil
}
