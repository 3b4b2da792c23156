// SPDX-License-Identifier: MIT
// Package tri — plain-text gluing format.
//
//	# optional comments
//	dim 3 size 2
//	glue 0 0 1 (1 2 3 0)
//
// "glue s f u (g0 .. gd)" joins facet f of simplex s to simplex u with
// vertex i of s going to vertex gi of u. Each gluing may be listed from
// either side or from both, provided the two listings agree.

package tri

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/s1fibre/perm"
)

// MaxParsedSimplices bounds the size header accepted by Parse. Larger
// inputs are rejected before anything is allocated.
const MaxParsedSimplices = 1 << 16

type fileExpr struct {
	Dim   int         `parser:"\"dim\" @Int"`
	Size  int         `parser:"\"size\" @Int"`
	Glues []*glueExpr `parser:"@@*"`
}

type glueExpr struct {
	Simplex int   `parser:"\"glue\" @Int"`
	Facet   int   `parser:"@Int"`
	Target  int   `parser:"@Int"`
	Images  []int `parser:"\"(\" @Int+ \")\""`
}

var gluingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "Keyword", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseGluings = participle.MustBuild[fileExpr](
	participle.Lexer(gluingLexer),
	participle.Elide("comment", "whitespace"),
)

// Parse reads a triangulation in the gluing format written by String.
// The size header may not exceed MaxParsedSimplices.
//
// Complexity: O(len(src) + size).
func Parse(src string) (*Triangulation, error) {
	expr, err := parseGluings.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	t, err := New(expr.Dim)
	if err != nil {
		return nil, err
	}
	if expr.Size > MaxParsedSimplices {
		return nil, fmt.Errorf("%w: size %d exceeds %d", ErrTooLarge, expr.Size, MaxParsedSimplices)
	}
	t.NewSimplices(expr.Size)
	for i, gl := range expr.Glues {
		if len(gl.Images) != t.dim+1 {
			return nil, fmt.Errorf("%w: gluing %d has %d images, want %d", ErrSyntax, i, len(gl.Images), t.dim+1)
		}
		g, err := perm.FromSlice(gl.Images)
		if err != nil {
			return nil, fmt.Errorf("%w: gluing %d: %v", ErrSyntax, i, err)
		}
		if err := t.checkFacet(gl.Simplex, gl.Facet); err != nil {
			return nil, fmt.Errorf("gluing %d: %w", i, err)
		}
		if t.Adjacent(gl.Simplex, gl.Facet) == gl.Target && t.Gluing(gl.Simplex, gl.Facet) == g {
			continue
		}
		if err := t.Join(gl.Simplex, gl.Facet, gl.Target, g); err != nil {
			return nil, fmt.Errorf("gluing %d: %w", i, err)
		}
	}

	return t, nil
}

// String writes the triangulation in the gluing format, listing each
// gluing once from the side with the smaller (simplex, facet) pair.
func (t *Triangulation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "dim %d size %d\n", t.dim, len(t.simplices))
	for s, sim := range t.simplices {
		for f := 0; f <= t.dim; f++ {
			u := sim.adj[f]
			if u < 0 {
				continue
			}
			g := sim.gluing[f]
			if u < s || (u == s && g.At(f) < f) {
				continue
			}
			images := make([]string, t.dim+1)
			for i := range images {
				images[i] = fmt.Sprint(g.At(i))
			}
			fmt.Fprintf(&sb, "glue %d %d %d (%s)\n", s, f, u, strings.Join(images, " "))
		}
	}

	return sb.String()
}
