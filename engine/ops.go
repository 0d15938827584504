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
	polyclip "github.com/ctessum/polyclip-go"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontmerge/shape"
)

// Intersect returns the region covered by both a and b.
func (e *Engine) Intersect(a, b shape.Outline) (shape.Outline, error) {
	return e.combine(a, polyclip.INTERSECTION, b)
}

// Union returns the region covered by a or b.
func (e *Engine) Union(a, b shape.Outline) (shape.Outline, error) {
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	return e.combine(a, polyclip.UNION, b)
}

func (e *Engine) combine(a shape.Outline, op polyclip.Op, b shape.Outline) (shape.Outline, error) {
	pa, err := e.region(a)
	if err != nil {
		return nil, err
	}
	pb, err := e.region(b)
	if err != nil {
		return nil, err
	}
	res, err := construct(pa, op, pb)
	if err != nil {
		return nil, err
	}
	return toOutline(res), nil
}

// RemoveOverlap returns an outline covering the same region as o, where
// contours neither cross nor overlap.  Outlines which already have this
// property are returned unchanged.
func (e *Engine) RemoveOverlap(o shape.Outline) (shape.Outline, error) {
	if o.IsEmpty() || !hasOverlap(o) {
		return o.Clone(), nil
	}
	reg, err := e.region(o)
	if err != nil {
		return nil, err
	}
	return toOutline(reg), nil
}

// OutlineStroke expands (s.Overlap == shape.RemoveInternal) or contracts
// (s.Overlap == shape.RemoveExternal) the region covered by o by half the
// pen width.
//
// The region swept by the pen along the boundary of o is added to, or
// removed from, the glyph.
func (e *Engine) OutlineStroke(o shape.Outline, s shape.Stroke) (shape.Outline, error) {
	if o.IsEmpty() || s.IsZero() {
		return o.Clone(), nil
	}
	reg, err := e.region(o)
	if err != nil || len(reg) == 0 {
		return nil, err
	}

	pen := penPolygon(s)
	var sweeps []polyclip.Polygon
	for _, c := range reg {
		for i, a := range c {
			b := c[(i+1)%len(c)]
			sweeps = append(sweeps, polyclip.Polygon{sweep(pen, a, b)})
		}
	}
	band, err := unionAll(sweeps)
	if err != nil {
		return nil, err
	}

	op := polyclip.UNION
	if s.Overlap == shape.RemoveExternal {
		op = polyclip.DIFFERENCE
	}
	res, err := construct(reg, op, band)
	if err != nil {
		return nil, err
	}
	return toOutline(res), nil
}

// hasOverlap reports whether two contours of o cross, or whether one
// contour is nested inside another contour of the same orientation.
func hasOverlap(o shape.Outline) bool {
	polys := o.Flatten(8)
	boxes := make([]rect.Rect, len(polys))
	areas := make([]float64, len(polys))
	for i, p := range polys {
		boxes[i] = polyBBox(p)
		areas[i] = signedArea(p)
	}

	for i := range polys {
		for j := i + 1; j < len(polys); j++ {
			if !boxesOverlap(boxes[i], boxes[j]) {
				continue
			}
			if polylinesCross(polys[i], polys[j]) {
				return true
			}
			nested := containsBox(boxes[i], boxes[j]) || containsBox(boxes[j], boxes[i])
			if nested && (areas[i] > 0) == (areas[j] > 0) {
				return true
			}
		}
	}
	return false
}

func polyBBox(p []vec.Vec2) rect.Rect {
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, q := range p[1:] {
		b.LLx = min(b.LLx, q.X)
		b.LLy = min(b.LLy, q.Y)
		b.URx = max(b.URx, q.X)
		b.URy = max(b.URy, q.Y)
	}
	return b
}

func boxesOverlap(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}

// containsBox reports whether b lies inside a.
func containsBox(a, b rect.Rect) bool {
	return a.LLx <= b.LLx && b.URx <= a.URx && a.LLy <= b.LLy && b.URy <= a.URy
}

func signedArea(p []vec.Vec2) float64 {
	var a float64
	n := len(p)
	for i, q := range p {
		r := p[(i+1)%n]
		a += q.X*r.Y - r.X*q.Y
	}
	return a / 2
}

// polylinesCross reports whether an edge of the closed polygon p properly
// crosses an edge of the closed polygon q.
func polylinesCross(p, q []vec.Vec2) bool {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		if a == b {
			continue
		}
		for j := range q {
			c, d := q[j], q[(j+1)%len(q)]
			if c == d {
				continue
			}
			if segmentsCross(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d vec.Vec2) bool {
	o1 := orient(a, b, c)
	o2 := orient(a, b, d)
	o3 := orient(c, d, a)
	o4 := orient(c, d, b)
	return o1*o2 < 0 && o3*o4 < 0
}

func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
