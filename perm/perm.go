// SPDX-License-Identifier: MIT
// Package: s1fibre/perm
//
// perm.go — permutations of the vertex set {0,...,4} of a simplex.
//
// Contract:
//   • A Perm stores the images of 0..4; points beyond the working size n are
//     fixed, so a Perm of S_3 is also a Perm of S_5.
//   • Perm is a value type; every method returns a new value.
//   • Compose follows function composition: p.Compose(q)[i] == p[q[i]].

package perm

import (
	"fmt"
	"strings"
)

// MaxSize is the largest number of points a Perm acts on (pentachoron vertices).
const MaxSize = 5

// Perm is a permutation of {0,...,MaxSize-1}.
type Perm [MaxSize]uint8

// Identity returns the identity permutation.
func Identity() Perm {
	return Perm{0, 1, 2, 3, 4}
}

// New returns the permutation sending i to images[i]; unspecified points are
// fixed. Panics when the images do not describe a permutation, as this is
// always a programming error in a hard-coded gluing.
func New(images ...int) Perm {
	p, err := FromSlice(images)
	if err != nil {
		panic(fmt.Sprintf("perm: %v is not a permutation", images))
	}

	return p
}

// FromSlice is the non-panicking variant of New used on parsed input.
func FromSlice(images []int) (Perm, error) {
	if len(images) > MaxSize {
		return Identity(), fmt.Errorf("%w: %d images", ErrInvalid, len(images))
	}
	p := Identity()
	for i, v := range images {
		if v < 0 || v >= MaxSize {
			return Identity(), fmt.Errorf("%w: image %d out of range", ErrInvalid, v)
		}
		p[i] = uint8(v)
	}
	if !p.IsValid() {
		return Identity(), fmt.Errorf("%w: %v", ErrInvalid, images)
	}

	return p, nil
}

// Transposition swaps a and b.
func Transposition(a, b int) Perm {
	p := Identity()
	p[a], p[b] = uint8(b), uint8(a)

	return p
}

// At returns the image of i.
func (p Perm) At(i int) int {
	return int(p[i])
}

// IsValid reports whether every point appears exactly once.
func (p Perm) IsValid() bool {
	var seen [MaxSize]bool
	for _, v := range p {
		if int(v) >= MaxSize || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	var q Perm
	for i, v := range p {
		q[v] = uint8(i)
	}

	return q
}

// Compose returns p∘q, i.e. first q then p.
func (p Perm) Compose(q Perm) Perm {
	var r Perm
	for i := range r {
		r[i] = p[q[i]]
	}

	return r
}

// PreImageOf returns the point that p sends to i.
func (p Perm) PreImageOf(i int) int {
	for j, v := range p {
		if int(v) == i {
			return j
		}
	}

	return -1
}

// Sign returns +1 for even and -1 for odd permutations.
// Complexity: O(MaxSize) via cycle decomposition.
func (p Perm) Sign() int {
	var visited [MaxSize]bool
	sign := 1
	for i := 0; i < MaxSize; i++ {
		if visited[i] {
			continue
		}
		// walk the cycle through i; a cycle of length L contributes (-1)^(L-1)
		length := 0
		for j := i; !visited[j]; j = int(p[j]) {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// String renders the first n images, e.g. "0231".
func (p Perm) String(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte('0' + p[i])
	}

	return sb.String()
}

// Restrict reports whether p fixes every point ≥ n, i.e. lies in S_n.
func (p Perm) Restrict(n int) bool {
	for i := n; i < MaxSize; i++ {
		if int(p[i]) != i {
			return false
		}
	}

	return true
}

// allCache[n] holds S_n in lexicographic order of images.
var allCache [MaxSize + 1][]Perm

func init() {
	for n := 0; n <= MaxSize; n++ {
		allCache[n] = enumerate(n)
	}
}

// enumerate lists S_n lexicographically by recursive placement.
func enumerate(n int) []Perm {
	var out []Perm
	var used [MaxSize]bool
	cur := Identity()
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			out = append(out, cur)
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur[pos] = uint8(v)
			rec(pos + 1)
			used[v] = false
		}
	}
	rec(0)

	return out
}

// All returns S_n in lexicographic order. The slice must not be modified.
func All(n int) []Perm {
	return allCache[n]
}

// Index returns the position of p inside All(n), or -1 if p is not in S_n.
func (p Perm) Index(n int) int {
	if !p.Restrict(n) {
		return -1
	}
	// Lehmer code: count smaller unused images at each position.
	idx := 0
	var used [MaxSize]bool
	for i := 0; i < n; i++ {
		smaller := 0
		for v := 0; v < int(p[i]); v++ {
			if !used[v] {
				smaller++
			}
		}
		used[p[i]] = true
		idx = idx*(n-i) + smaller
	}

	return idx
}
