// SPDX-License-Identifier: MIT
// Package dim1 implements a minimal 1-dimensional complex: edges with two
// endpoint slots, glued pairwise.
//
// Edges live in an arena and refer to each other by index, so cycles
// (including an edge glued to itself) need no ownership bookkeeping. The
// complex models level sets inside vertex links of 3-manifolds and the
// fibres of maps from surfaces to the circle.
package dim1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/s1fibre/dsu"
)

var (
	// ErrOutOfRange is returned for an edge index or slot outside the complex.
	ErrOutOfRange = errors.New("dim1: edge or slot out of range")

	// ErrSlotOccupied is returned when a slot is already glued elsewhere.
	ErrSlotOccupied = errors.New("dim1: slot already glued")
)

// End names slot Slot (0 or 1) of edge Edge. Edge < 0 means a free end.
type End struct {
	Edge int
	Slot int
}

// Free is the End of an unglued slot.
var Free = End{Edge: -1}

// IsFree reports whether e refers to no edge.
func (e End) IsFree() bool { return e.Edge < 0 }

// Complex is an arena of edges. The zero value is an empty complex.
type Complex struct {
	ends [][2]End
}

// New returns an empty complex with room for n edges.
func New(n int) *Complex {
	return &Complex{ends: make([][2]End, 0, n)}
}

// Len returns the number of edges.
func (c *Complex) Len() int { return len(c.ends) }

// Ends returns what the two slots of edge e are glued to.
func (c *Complex) Ends(e int) ([2]End, error) {
	if e < 0 || e >= len(c.ends) {
		return [2]End{}, fmt.Errorf("%w: edge %d", ErrOutOfRange, e)
	}

	return c.ends[e], nil
}

func (c *Complex) check(at End) error {
	if at.Edge >= len(c.ends) || at.Slot < 0 || at.Slot > 1 {
		return fmt.Errorf("%w: edge %d slot %d", ErrOutOfRange, at.Edge, at.Slot)
	}

	return nil
}

// NewEdge appends an edge whose slot 0 is glued to at0 and slot 1 to at1;
// pass Free to leave a slot open. Nothing is allocated if either target is
// out of range or already glued.
func (c *Complex) NewEdge(at0, at1 End) (int, error) {
	for _, at := range []End{at0, at1} {
		if at.IsFree() {
			continue
		}
		if err := c.check(at); err != nil {
			return -1, err
		}
		if !c.ends[at.Edge][at.Slot].IsFree() {
			return -1, fmt.Errorf("%w: edge %d slot %d", ErrSlotOccupied, at.Edge, at.Slot)
		}
	}
	if !at0.IsFree() && at0 == at1 {
		return -1, fmt.Errorf("%w: edge %d slot %d", ErrSlotOccupied, at0.Edge, at0.Slot)
	}

	e := len(c.ends)
	c.ends = append(c.ends, [2]End{Free, Free})
	for slot, at := range []End{at0, at1} {
		if !at.IsFree() {
			c.ends[e][slot] = at
			c.ends[at.Edge][at.Slot] = End{Edge: e, Slot: slot}
		}
	}

	return e, nil
}

// JoinEdges glues slot s0 of e0 to slot s1 of e1. Joining two slots that
// already refer to each other succeeds without change; any other occupied
// slot fails and leaves the complex untouched.
func (c *Complex) JoinEdges(e0, s0, e1, s1 int) error {
	a, b := End{Edge: e0, Slot: s0}, End{Edge: e1, Slot: s1}
	if a.IsFree() || b.IsFree() {
		return fmt.Errorf("%w: edges %d, %d", ErrOutOfRange, e0, e1)
	}
	if err := c.check(a); err != nil {
		return err
	}
	if err := c.check(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: edge %d slot %d joined to itself", ErrSlotOccupied, e0, s0)
	}
	cur0, cur1 := c.ends[e0][s0], c.ends[e1][s1]
	if cur0 == b && cur1 == a {
		return nil
	}
	if !cur0.IsFree() || !cur1.IsFree() {
		return fmt.Errorf("%w: edge %d slot %d or edge %d slot %d", ErrSlotOccupied, e0, s0, e1, s1)
	}
	c.ends[e0][s0] = b
	c.ends[e1][s1] = a

	return nil
}

// ComponentTypes counts connected components: a circle has every slot
// glued, an interval has at least one free end.
// Complexity: O(#edges).
func (c *Complex) ComponentTypes() (circles, intervals int) {
	n := len(c.ends)
	sets := dsu.New(n)
	open := make([]bool, n)
	for e, ends := range c.ends {
		for _, at := range ends {
			if at.IsFree() {
				open[e] = true
				continue
			}
			sets.Union(e, at.Edge)
		}
	}
	hasFree := make(map[int]bool, sets.Sets())
	for e := 0; e < n; e++ {
		r := sets.Find(e)
		hasFree[r] = hasFree[r] || open[e]
	}
	for _, free := range hasFree {
		if free {
			intervals++
		} else {
			circles++
		}
	}

	return circles, intervals
}

// FreeEnds returns the number of unglued slots.
func (c *Complex) FreeEnds() int {
	n := 0
	for _, ends := range c.ends {
		for _, at := range ends {
			if at.IsFree() {
				n++
			}
		}
	}

	return n
}

// String lists each edge with its two gluings, "-" for a free end.
func (c *Complex) String() string {
	var sb strings.Builder
	for e, ends := range c.ends {
		fmt.Fprintf(&sb, "%d:", e)
		for _, at := range ends {
			if at.IsFree() {
				sb.WriteString(" -")
			} else {
				fmt.Fprintf(&sb, " %d.%d", at.Edge, at.Slot)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
