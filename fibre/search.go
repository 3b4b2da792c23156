// SPDX-License-Identifier: MIT
// Package: s1fibre/fibre
//
// search.go — looking for a bundle projection.
//
// Steps:
//  1. Take the generator of H¹ (rank one is required) as an integer
//     cocycle, or the cocycle supplied with WithCocycle.
//  2. Fast path: if no loop edge carries 0, test that cocycle as is. With
//     WithPrePerturbation also test random perturbations of it by
//     coboundaries of vertex weights.
//  3. Condition the triangulation: subdivide the loop edges carrying 0,
//     then collapse edges that have no parallel partner. A second phase
//     allows parallel partners whose values differ.
//  4. Test the generator of the conditioned triangulation, then its
//     perturbations.
//
// Every collapse and every attempt is reported at Debug level; the outcome
// at Info level.

package fibre

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/s1fibre/homology"
)

// FindBundle searches for a cochain that is a bundle projection to the
// circle. On Success the returned cochain passes both verifiers and refers
// to the edges of the (possibly conditioned) working triangulation.
//
// InvalidInput is returned for surfaces and for a WithCocycle cochain that
// does not represent a primitive class of this triangulation. Errors are
// reserved for homology failures and for conditioning that breaks the
// first cohomology; Other without an error means every attempt failed.
//
// Complexity: dominated by the Smith normal forms of H¹ (one per
// conditioning collapse in the relaxed phase) and by attempts × V link
// tests.
func (m *MapToS1) FindBundle() (Status, Cochain, error) {
	log := m.cfg.log.With(zap.Int("dim", m.t.Dim()))
	if m.t.Dim() == 2 {
		log.Info("bundle search", zap.Stringer("status", InvalidInput))
		return InvalidInput, nil, nil
	}
	log.Debug("bundle search started",
		zap.Int("simplices", m.t.Size()),
		zap.Int("vertices", m.t.CountVertices()),
		zap.Int("edges", m.t.CountEdges()))

	gen, rank, err := m.generator()
	if err != nil {
		return Other, nil, err
	}
	if rank != 1 {
		log.Info("bundle search", zap.Stringer("status", H1RankUnsupported), zap.Int("rank", rank))
		return H1RankUnsupported, nil, nil
	}
	if m.cfg.cocycle != nil {
		if !m.primitiveClass(m.cfg.cocycle) {
			log.Info("bundle search", zap.Stringer("status", InvalidInput), zap.String("reason", "cocycle"))
			return InvalidInput, nil, nil
		}
		gen = m.cfg.cocycle.Clone()
	}

	bad := m.nullLoops(gen)
	if len(bad) == 0 {
		if m.accepts(gen) {
			return m.done(log, "generator", gen)
		}
		if m.cfg.prePerturb && m.t.CountVertices() > 1 {
			if c, ok, err := m.perturb(gen, log); err != nil {
				return Other, nil, err
			} else if ok {
				return m.done(log, "perturbation", c)
			}
		}
	}

	gen, err = m.condition(bad, log)
	if err != nil {
		log.Info("bundle search", zap.Stringer("status", Other), zap.Error(err))
		return Other, nil, err
	}

	return m.afterConditioning(gen, log)
}

// afterConditioning tests the generator of the conditioned triangulation
// and then its perturbations. A one-vertex triangulation has nothing to
// perturb and ends the search with SingleVertex.
func (m *MapToS1) afterConditioning(gen Cochain, log *zap.Logger) (Status, Cochain, error) {
	if !gen.HasZero() && m.accepts(gen) {
		return m.done(log, "conditioned generator", gen)
	}
	if m.t.CountVertices() == 1 {
		log.Info("bundle search", zap.Stringer("status", SingleVertex))
		return SingleVertex, nil, nil
	}
	c, ok, err := m.perturb(gen, log)
	if err != nil {
		return Other, nil, err
	}
	if ok {
		return m.done(log, "conditioned perturbation", c)
	}
	log.Info("bundle search", zap.Stringer("status", Other), zap.Int("attempts", m.cfg.attempts))

	return Other, nil, nil
}

func (m *MapToS1) done(log *zap.Logger, via string, c Cochain) (Status, Cochain, error) {
	log.Info("bundle search",
		zap.Stringer("status", Success),
		zap.String("via", via),
		zap.Int("simplices", m.t.Size()))

	return Success, c, nil
}

// accepts runs both verifiers.
func (m *MapToS1) accepts(c Cochain) bool {
	return m.VerifyPrimitive(c) && m.VerifySimpleBundle(c)
}

// generator returns the first free generator of H¹ as a cochain together
// with the rank of H¹.
//
// Complexity: one Smith normal form of ∂₂ (cached until the next move).
func (m *MapToS1) generator() (Cochain, int, error) {
	g, err := homology.H1Cohomology(m.t)
	if err != nil {
		return nil, 0, err
	}
	if g.Rank() != 1 {
		return nil, g.Rank(), nil
	}
	rep, err := g.FreeRep(0)
	if err != nil {
		return nil, 0, err
	}

	return FromBig(rep), 1, nil
}

// nullLoops lists the edges whose two ends are the same vertex and whose
// value under c is 0. Such an edge is a loop that c cannot see, so no
// perturbation by vertex weights can make it nonzero.
func (m *MapToS1) nullLoops(c Cochain) []int {
	var out []int
	for i, e := range m.t.Faces(1) {
		if e.Vertex(0) == e.Vertex(1) && c[i].Sign() == 0 {
			out = append(out, i)
		}
	}

	return out
}

// condition subdivides the null loops and collapses edges until no
// unparalleled edge can be collapsed, then returns the H¹ generator of the
// result. A strict scan continues after each collapse from the edge that
// took the collapsed one's index, and scans repeat until one collapses
// nothing. The relaxed phase restarts after each collapse because it reads
// the generator.
//
// Complexity: O(E²) parallel tests per scan, and one Smith normal form per
// relaxed collapse.
func (m *MapToS1) condition(bad []int, log *zap.Logger) (Cochain, error) {
	if len(bad) > 0 {
		if err := m.t.DivideEdges(bad); err != nil {
			return nil, err
		}
		m.changed()
		log.Debug("divided null loops",
			zap.Ints("edges", bad),
			zap.Int("simplices", m.t.Size()))
	}

	var gen Cochain
	strict := true
	for {
		if !strict {
			var rank int
			var err error
			gen, rank, err = m.generator()
			if err != nil {
				return nil, err
			}
			if rank != 1 {
				return nil, fmt.Errorf("%w: rank %d", ErrConditioning, rank)
			}
			if loops := m.nullLoops(gen); len(loops) > 0 {
				return nil, fmt.Errorf("%w: edges %v", ErrNullLoop, loops)
			}
		}

		collapsed := 0
		for i := 0; i < m.t.CountEdges(); {
			if m.hasParallel(i, gen, strict) || !m.t.CollapseEdge(i, true, true) {
				i++
				continue
			}
			m.changed()
			collapsed++
			log.Debug("collapsed edge",
				zap.Int("edge", i),
				zap.Bool("strict", strict),
				zap.Int("simplices", m.t.Size()),
				zap.Int("vertices", m.t.CountVertices()))
			if !strict {
				// the generator must be recomputed on the new edges
				break
			}
		}
		if collapsed > 0 {
			continue
		}
		if !strict {
			return gen, nil
		}
		strict = false
		log.Debug("relaxing parallel edge rule")
	}
}

// hasParallel reports whether another edge joins the same two vertices as
// edge i. Unless strict, parallel edges only count when following them
// around the bigon they form gives 0.
//
// Complexity: O(E).
func (m *MapToS1) hasParallel(i int, gen Cochain, strict bool) bool {
	e := m.t.Edge(i)
	a, b := e.Vertex(0), e.Vertex(1)
	diff := new(big.Rat)
	for j, f := range m.t.Faces(1) {
		if j == i {
			continue
		}
		fa, fb := f.Vertex(0), f.Vertex(1)
		switch {
		case fa == a && fb == b:
			if strict || diff.Sub(gen[i], gen[j]).Sign() == 0 {
				return true
			}
		case fa == b && fb == a:
			if strict || diff.Add(gen[i], gen[j]).Sign() == 0 {
				return true
			}
		}
	}

	return false
}

// perturb adds r·δ(vertex i) to gen for random rationals r in [0, 1) and
// tests each candidate.
//
// Complexity: attempts × (V·E to build the candidate plus one accepts).
func (m *MapToS1) perturb(gen Cochain, log *zap.Logger) (Cochain, bool, error) {
	cob, err := homology.H1Cohomology(m.t)
	if err != nil {
		return nil, false, err
	}
	delta := cob.N()
	cols := make([][]*big.Int, delta.Cols())
	for i := range cols {
		if cols[i], err = delta.Column(i); err != nil {
			return nil, false, err
		}
	}

	rng := m.cfg.rng
	span := m.cfg.denHi - m.cfg.denLo + 1
	for attempt := 0; attempt < m.cfg.attempts; attempt++ {
		c := gen.Clone()
		for _, col := range cols {
			den := m.cfg.denLo + rng.Int63n(span)
			c.AddCoboundary(big.NewRat(rng.Int63n(den), den), col)
		}
		ok := m.accepts(c)
		if ce := log.Check(zap.DebugLevel, "perturbation attempt"); ce != nil {
			diag, _ := m.Diagnose(c)
			ce.Write(
				zap.Int("attempt", attempt),
				zap.Bool("accepted", ok),
				zap.Stringer("cochain", c),
				zap.Stringer("links", diag))
		}
		if ok {
			return c, true, nil
		}
	}

	return nil, false, nil
}
