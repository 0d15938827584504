// seehuhn.de/go/fontmerge - compose monospace fonts from Latin and CJK sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package engine

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	polyclip "github.com/ctessum/polyclip-go"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontmerge/shape"
)

// minArea is the area below which a clipped contour is treated as a
// zero-width sliver and dropped.
const minArea = 1e-6

// region returns a polygon covering the area which o fills under the
// nonzero winding rule.
//
// Contours are merged largest first.  Contours oriented like the largest
// one are added to the region, contours of the opposite orientation are
// cut out of it.  This agrees with the winding rule for the usual glyph
// structure, where holes are nested inside the contour they belong to.
func (e *Engine) region(o shape.Outline) (polyclip.Polygon, error) {
	type piece struct {
		c    polyclip.Contour
		area float64
	}
	var pieces []piece
	for _, p := range o.Flatten(e.flatness()) {
		c := toContour(p)
		if len(c) < 3 {
			continue
		}
		a := contourArea(c)
		if math.Abs(a) < minArea {
			continue
		}
		pieces = append(pieces, piece{c: c, area: a})
	}
	if len(pieces) == 0 {
		return nil, nil
	}
	slices.SortStableFunc(pieces, func(x, y piece) int {
		return cmp.Compare(math.Abs(y.area), math.Abs(x.area))
	})

	fill := pieces[0].area > 0
	res := polyclip.Polygon{pieces[0].c}
	for _, pc := range pieces[1:] {
		op := polyclip.UNION
		if (pc.area > 0) != fill {
			op = polyclip.DIFFERENCE
		}
		var err error
		res, err = construct(res, op, polyclip.Polygon{pc.c})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// construct applies a boolean operation to two polygons.
func construct(a polyclip.Polygon, op polyclip.Op, b polyclip.Polygon) (res polyclip.Polygon, err error) {
	switch {
	case len(a) == 0 && (op == polyclip.UNION || op == polyclip.XOR):
		return b, nil
	case len(a) == 0:
		return nil, nil
	case len(b) == 0 && op == polyclip.INTERSECTION:
		return nil, nil
	case len(b) == 0:
		return a, nil
	}

	// polyclip panics on some degenerate inputs
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("polygon clipping failed: %v", r)
		}
	}()
	return a.Construct(op, b), nil
}

// unionAll returns the union of all polygons in ps.  Polygons are merged
// pairwise, so that intermediate results stay small.
func unionAll(ps []polyclip.Polygon) (polyclip.Polygon, error) {
	for len(ps) > 1 {
		next := make([]polyclip.Polygon, 0, (len(ps)+1)/2)
		for i := 0; i < len(ps); i += 2 {
			if i+1 == len(ps) {
				next = append(next, ps[i])
				break
			}
			u, err := construct(ps[i], polyclip.UNION, ps[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, u)
		}
		ps = next
	}
	if len(ps) == 0 {
		return nil, nil
	}
	return ps[0], nil
}

// toContour converts a closed polygon into a polyclip contour, removing
// repeated points.
func toContour(p []vec.Vec2) polyclip.Contour {
	c := make(polyclip.Contour, 0, len(p))
	for _, q := range p {
		pt := polyclip.Point{X: q.X, Y: q.Y}
		if len(c) > 0 && c[len(c)-1] == pt {
			continue
		}
		c = append(c, pt)
	}
	for len(c) > 1 && c[len(c)-1] == c[0] {
		c = c[:len(c)-1]
	}
	return c
}

// toOutline converts a clipping result back into an outline.  Outer
// contours are counter-clockwise, holes are clockwise.
func toOutline(p polyclip.Polygon) shape.Outline {
	var kept []polyclip.Contour
	for _, c := range p {
		if len(c) >= 3 && math.Abs(contourArea(c)) >= minArea {
			kept = append(kept, c)
		}
	}

	var res shape.Outline
	for i, c := range kept {
		probe := midpoint(c[0], c[1])
		depth := 0
		for j, d := range kept {
			if i != j && insideContour(probe, d) {
				depth++
			}
		}
		pts := make([]vec.Vec2, len(c))
		for k, q := range c {
			pts[k] = vec.Vec2{X: q.X, Y: q.Y}
		}
		if (contourArea(c) > 0) != (depth%2 == 0) {
			slices.Reverse(pts)
		}
		res = append(res, shape.Polygon(pts...))
	}
	return res
}

func contourArea(c polyclip.Contour) float64 {
	var a float64
	n := len(c)
	for i, q := range c {
		r := c[(i+1)%n]
		a += q.X*r.Y - r.X*q.Y
	}
	return a / 2
}

func midpoint(a, b polyclip.Point) polyclip.Point {
	return polyclip.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// insideContour reports whether p lies inside c, using the even-odd rule.
func insideContour(p polyclip.Point, c polyclip.Contour) bool {
	in := false
	n := len(c)
	for i, a := range c {
		b := c[(i+1)%n]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if p.X < x {
			in = !in
		}
	}
	return in
}
