// SPDX-License-Identifier: MIT
// Package dsu provides an integer-indexed disjoint-set union (union-find).
//
// It uses path compression and union by rank, the same scheme the Kruskal
// spanning-tree builder relied on, lifted into a reusable type. The edge
// collapse checks use Insert to detect cycles in graphs of bigons and pillows.
package dsu

// DSU is a forest over the elements 0..n-1.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New creates n singleton sets.
// Complexity: O(n).
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of u's set.
// Iterative with path halving to avoid deep recursion.
func (d *DSU) Find(u int) int {
	for d.parent[u] != u {
		// make u point to its grandparent
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// Union merges the sets of u and v and reports whether they were disjoint.
func (d *DSU) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	// attach the smaller-rank tree under the larger-rank root
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
	d.sets--

	return true
}

// Insert adds the graph edge {u, v}. It returns false when the edge closes a
// cycle, including the loop u == v.
func (d *DSU) Insert(u, v int) bool {
	return d.Union(u, v)
}

// Same reports whether u and v share a set.
func (d *DSU) Same(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int {
	return d.sets
}

// Len returns the number of elements.
func (d *DSU) Len() int {
	return len(d.parent)
}
