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
	"math"
	"slices"

	polyclip "github.com/ctessum/polyclip-go"

	"seehuhn.de/go/fontmerge/shape"
)

// circleVertices is the number of vertices used to approximate a circular
// pen.  The count is a multiple of four, so that the pen reaches exactly
// half the stroke width in the horizontal and vertical directions.
const circleVertices = 32

// penPolygon returns the vertices of the convex nib used for s, centred at
// the origin and in counter-clockwise order.
func penPolygon(s shape.Stroke) []polyclip.Point {
	r := s.Width / 2

	var start float64
	n := circleVertices
	switch {
	case s.Pen == shape.Calligraphic:
		start = s.Angle + 45
		n = 4
	case s.Join == shape.JoinMiter:
		start = 45
		r *= math.Sqrt2
		n = 4
	}

	pen := make([]polyclip.Point, n)
	for k := range pen {
		phi := (start + float64(k)*360/float64(n)) * math.Pi / 180
		pen[k] = polyclip.Point{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}
	return pen
}

// sweep returns the region covered by the pen while it moves from a to b.
func sweep(pen []polyclip.Point, a, b polyclip.Point) polyclip.Contour {
	pts := make([]polyclip.Point, 0, 2*len(pen))
	for _, p := range pen {
		pts = append(pts,
			polyclip.Point{X: a.X + p.X, Y: a.Y + p.Y},
			polyclip.Point{X: b.X + p.X, Y: b.Y + p.Y})
	}
	return convexHull(pts)
}

// convexHull returns the convex hull of pts in counter-clockwise order,
// using Andrew's monotone chain algorithm.
func convexHull(pts []polyclip.Point) polyclip.Contour {
	slices.SortFunc(pts, func(p, q polyclip.Point) int {
		if c := cmp.Compare(p.X, q.X); c != 0 {
			return c
		}
		return cmp.Compare(p.Y, q.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return pts
	}

	cross := func(o, a, b polyclip.Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}
	hull := make(polyclip.Contour, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
