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

// Package shape implements value-typed glyph outlines.
//
// Outlines consist of closed contours made of straight line segments and
// cubic Bézier segments.  All operations return new values; an Outline is
// never modified in place once it has been handed to another component.
package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is one piece of a contour, starting at the end point of the
// previous segment.
type Segment struct {
	Cubic  bool
	C1, C2 vec.Vec2 // control points, only used if Cubic is set
	P      vec.Vec2 // end point
}

// Contour is a closed curve.  The contour implicitly returns from the end
// point of the last segment to Start.
type Contour struct {
	Start vec.Vec2
	Segs  []Segment
}

// End returns the end point of the last segment.
func (c Contour) End() vec.Vec2 {
	if len(c.Segs) == 0 {
		return c.Start
	}
	return c.Segs[len(c.Segs)-1].P
}

// Outline is the geometry of a glyph.  Contours are filled using the
// nonzero winding rule.
type Outline []Contour

// Clone returns a deep copy of the outline.
func (o Outline) Clone() Outline {
	if o == nil {
		return nil
	}
	res := make(Outline, len(o))
	for i, c := range o {
		res[i] = Contour{
			Start: c.Start,
			Segs:  append([]Segment(nil), c.Segs...),
		}
	}
	return res
}

// IsEmpty reports whether the outline contains no drawable segments.
func (o Outline) IsEmpty() bool {
	for _, c := range o {
		if len(c.Segs) > 0 {
			return false
		}
	}
	return true
}

// Transform returns a copy of the outline with m applied to every point.
func (o Outline) Transform(m matrix.Matrix) Outline {
	res := o.Clone()
	for i := range res {
		c := &res[i]
		c.Start = Apply(m, c.Start)
		for j := range c.Segs {
			s := &c.Segs[j]
			if s.Cubic {
				s.C1 = Apply(m, s.C1)
				s.C2 = Apply(m, s.C2)
			}
			s.P = Apply(m, s.P)
		}
	}
	return res
}

// Translate returns a copy of the outline, shifted by (dx, dy).
func (o Outline) Translate(dx, dy float64) Outline {
	return o.Transform(matrix.Translate(dx, dy))
}

// Round returns a copy of the outline with all coordinates rounded to
// integers.  Segments which collapse to a single point are removed.
func (o Outline) Round() Outline {
	var res Outline
	for _, c := range o {
		rc := Contour{Start: roundVec(c.Start)}
		cur := rc.Start
		for _, s := range c.Segs {
			rs := Segment{Cubic: s.Cubic, P: roundVec(s.P)}
			if s.Cubic {
				rs.C1 = roundVec(s.C1)
				rs.C2 = roundVec(s.C2)
				if rs.C1 == cur && rs.C2 == rs.P {
					rs.Cubic = false
					rs.C1, rs.C2 = vec.Vec2{}, vec.Vec2{}
				}
			}
			if !rs.Cubic && rs.P == cur {
				continue
			}
			rc.Segs = append(rc.Segs, rs)
			cur = rs.P
		}
		if len(rc.Segs) > 0 {
			res = append(res, rc)
		}
	}
	return res
}

// BBox returns the exact bounding box of the outline.
// The result is the zero rectangle if the outline is empty.
func (o Outline) BBox() rect.Rect {
	first := true
	var bbox rect.Rect
	extend := func(p vec.Vec2) {
		if first {
			bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			return
		}
		bbox.LLx = math.Min(bbox.LLx, p.X)
		bbox.LLy = math.Min(bbox.LLy, p.Y)
		bbox.URx = math.Max(bbox.URx, p.X)
		bbox.URy = math.Max(bbox.URy, p.Y)
	}
	for _, c := range o {
		if len(c.Segs) == 0 {
			continue
		}
		cur := c.Start
		extend(cur)
		for _, s := range c.Segs {
			if s.Cubic {
				for _, t := range cubicExtrema(cur.X, s.C1.X, s.C2.X, s.P.X) {
					extend(cubicAt(cur, s.C1, s.C2, s.P, t))
				}
				for _, t := range cubicExtrema(cur.Y, s.C1.Y, s.C2.Y, s.P.Y) {
					extend(cubicAt(cur, s.C1, s.C2, s.P, t))
				}
			}
			extend(s.P)
			cur = s.P
		}
	}
	return bbox
}

// Flatten returns the contours of o as closed polygons.  Cubic segments
// are replaced by n straight line segments each.
func (o Outline) Flatten(n int) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for _, c := range o {
		if len(c.Segs) == 0 {
			continue
		}
		poly := []vec.Vec2{c.Start}
		cur := c.Start
		for _, s := range c.Segs {
			if s.Cubic {
				for i := 1; i <= n; i++ {
					poly = append(poly, cubicAt(cur, s.C1, s.C2, s.P, float64(i)/float64(n)))
				}
			} else {
				poly = append(poly, s.P)
			}
			cur = s.P
		}
		res = append(res, poly)
	}
	return res
}

// Rect returns an outline consisting of a single counter-clockwise
// rectangle.
func Rect(llx, lly, urx, ury float64) Outline {
	return Outline{Polygon(
		vec.Vec2{X: llx, Y: lly},
		vec.Vec2{X: urx, Y: lly},
		vec.Vec2{X: urx, Y: ury},
		vec.Vec2{X: llx, Y: ury},
	)}
}

// Polygon returns a closed contour through the given points.
func Polygon(pts ...vec.Vec2) Contour {
	if len(pts) == 0 {
		return Contour{}
	}
	c := Contour{Start: pts[0]}
	for _, p := range pts[1:] {
		c.Segs = append(c.Segs, Segment{P: p})
	}
	c.Segs = append(c.Segs, Segment{P: pts[0]})
	return c
}

// Apply maps the point p through the affine transformation m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// QuadToCubic converts a quadratic Bézier segment from p0 via control
// point q to p1 into the equivalent cubic segment.
func QuadToCubic(p0, q, p1 vec.Vec2) Segment {
	return Segment{
		Cubic: true,
		C1:    vec.Vec2{X: p0.X + 2.0/3.0*(q.X-p0.X), Y: p0.Y + 2.0/3.0*(q.Y-p0.Y)},
		C2:    vec.Vec2{X: p1.X + 2.0/3.0*(q.X-p1.X), Y: p1.Y + 2.0/3.0*(q.Y-p1.Y)},
		P:     p1,
	}
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := s * s * s
	b := 3 * s * s * t
	c := 3 * s * t * t
	d := t * t * t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// cubicExtrema returns the parameter values in (0, 1) where the
// one-dimensional cubic Bézier curve with control values x0, ..., x3 has
// a vanishing derivative.
func cubicExtrema(x0, x1, x2, x3 float64) []float64 {
	a := x1 - x0
	b := x2 - x1
	c := x3 - x2
	qa := a - 2*b + c
	qb := 2 * (b - a)
	qc := a

	var ts []float64
	add := func(t float64) {
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	const eps = 1e-12
	if math.Abs(qa) < eps {
		if math.Abs(qb) > eps {
			add(-qc / qb)
		}
		return ts
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	add((-qb + sq) / (2 * qa))
	add((-qb - sq) / (2 * qa))
	return ts
}

func roundVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}
