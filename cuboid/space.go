// SPDX-License-Identifier: MIT

package cuboid

import (
	"fmt"
)

// Space is a set of pairwise disjoint cuboids of a fixed dimensionality.
// The zero value is not usable; create one with NewSpace.
type Space struct {
	dims    int
	cuboids []Cuboid
}

// NewSpace returns an empty space of the given dimensionality (> 0).
func NewSpace(dims int) (*Space, error) {
	if dims <= 0 {
		return nil, ErrEmptyCuboid
	}

	return &Space{dims: dims}, nil
}

// Dims returns the dimensionality of the space.
func (s *Space) Dims() int { return s.dims }

// Len returns the number of stored (disjoint) cuboids.
func (s *Space) Len() int { return len(s.cuboids) }

// Cuboids returns a copy of the stored cuboids.
func (s *Space) Cuboids() []Cuboid {
	out := make([]Cuboid, len(s.cuboids))
	for i, c := range s.cuboids {
		out[i] = c.Clone()
	}

	return out
}

// validate checks dimensionality and axis ordering of an operand.
func (s *Space) validate(c Cuboid) error {
	if len(c.Min) != s.dims || len(c.Max) != s.dims {
		return fmt.Errorf("%w: space has %d axes, cuboid %d", ErrDimensionMismatch, s.dims, len(c.Min))
	}
	for k := range c.Min {
		if c.Min[k] > c.Max[k] {
			return fmt.Errorf("%w: axis %d [%d, %d]", ErrInverted, k, c.Min[k], c.Max[k])
		}
	}

	return nil
}

// Add subtracts c from every stored cuboid, then stores c whole.
// Complexity: O(|S| · N).
func (s *Space) Add(c Cuboid) error {
	if err := s.Subtract(c); err != nil {
		return err
	}
	s.cuboids = append(s.cuboids, c.Clone())

	return nil
}

// Subtract removes the volume of c from the space, replacing every stored
// cuboid that intersects c with the fragments covering its remainder.
// Complexity: O(|S| · N).
func (s *Space) Subtract(c Cuboid) error {
	if err := s.validate(c); err != nil {
		return err
	}
	updated := make([]Cuboid, 0, len(s.cuboids))
	for _, existing := range s.cuboids {
		inter, ok := existing.Intersect(c)
		if !ok {
			updated = append(updated, existing)
			continue
		}
		updated = fragment(updated, existing, inter)
	}
	s.cuboids = updated

	return nil
}

// fragment appends to dst the 0..2N slabs covering e \ inter, where inter ⊆ e.
func fragment(dst []Cuboid, e, inter Cuboid) []Cuboid {
	rest := e.Clone()
	for k := range rest.Min {
		// slab below the intersection
		if inter.Min[k] > rest.Min[k] {
			slab := rest.Clone()
			slab.Max[k] = inter.Min[k] - 1
			dst = append(dst, slab)
			rest.Min[k] = inter.Min[k]
		}
		// slab above the intersection
		if inter.Max[k] < rest.Max[k] {
			slab := rest.Clone()
			slab.Min[k] = inter.Max[k] + 1
			dst = append(dst, slab)
			rest.Max[k] = inter.Max[k]
		}
	}

	return dst
}

// Volume returns the number of lattice points covered by the space.
func (s *Space) Volume() uint64 {
	var v uint64
	for _, c := range s.cuboids {
		v += c.Volume()
	}

	return v
}

// Apply runs steps in order: On steps Add, off steps Subtract.
// It stops at the first invalid step and reports its position.
func (s *Space) Apply(steps ...Step) error {
	for i, st := range steps {
		var err error
		if st.On {
			err = s.Add(st.Cuboid)
		} else {
			err = s.Subtract(st.Cuboid)
		}
		if err != nil {
			return fmt.Errorf("cuboid: step %d: %w", i, err)
		}
	}

	return nil
}

// Clip returns a new space holding only the parts of s inside region.
// s is left untouched.
func (s *Space) Clip(region Cuboid) (*Space, error) {
	if err := s.validate(region); err != nil {
		return nil, err
	}
	out := &Space{dims: s.dims}
	for _, c := range s.cuboids {
		if inter, ok := c.Intersect(region); ok {
			out.cuboids = append(out.cuboids, inter)
		}
	}

	return out, nil
}
