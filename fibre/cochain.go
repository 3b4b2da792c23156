// SPDX-License-Identifier: MIT

package fibre

import (
	"math/big"
	"strings"
)

// Cochain assigns an exact rational to every edge of a triangulation,
// indexed by edge number.
type Cochain []*big.Rat

// NewCochain returns the zero cochain on n edges.
func NewCochain(n int) Cochain {
	c := make(Cochain, n)
	for i := range c {
		c[i] = new(big.Rat)
	}

	return c
}

// FromInts converts integer edge values.
func FromInts(vals []int64) Cochain {
	c := make(Cochain, len(vals))
	for i, v := range vals {
		c[i] = new(big.Rat).SetInt64(v)
	}

	return c
}

// FromBig converts big integer edge values, as returned by
// homology.MarkedGroup.FreeRep.
func FromBig(vals []*big.Int) Cochain {
	c := make(Cochain, len(vals))
	for i, v := range vals {
		c[i] = new(big.Rat).SetInt(v)
	}

	return c
}

// Clone returns a deep copy.
func (c Cochain) Clone() Cochain {
	out := make(Cochain, len(c))
	for i, v := range c {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// HasZero reports whether some entry is zero.
func (c Cochain) HasZero() bool {
	for _, v := range c {
		if v.Sign() == 0 {
			return true
		}
	}

	return false
}

// AddCoboundary adds r times the coboundary column col to c in place.
//
// Complexity: O(len(c)) big-rational additions.
func (c Cochain) AddCoboundary(r *big.Rat, col []*big.Int) {
	term := new(big.Rat)
	for e := range c {
		if e >= len(col) || col[e].Sign() == 0 {
			continue
		}
		term.SetInt(col[e])
		term.Mul(term, r)
		c[e].Add(c[e], term)
	}
}

// String renders the entries separated by spaces, e.g. "1 -1/2 3".
func (c Cochain) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = v.RatString()
	}

	return strings.Join(parts, " ")
}
