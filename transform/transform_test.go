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

package transform

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
)

var target = &metric.Space{Em: 1000, Ascent: 800, Descent: 200, Width: 1000}

func TestResolveCJK(t *testing.T) {
	cjk := source.Metrics{Em: 1000, Ascent: 880, Descent: 120, Width: 1000, Monospace: true}
	m := Resolve(cjk, target, Profile{})

	k := 800.0 / 880.0
	if math.Abs(ScaleFactor(cjk, target)-k) > 1e-12 {
		t.Fatalf("wrong scale factor %g", ScaleFactor(cjk, target))
	}
	want := matrix.Matrix{k, 0, 0, k, 1000 * (1 - k) / 2, 0}
	if d := cmp.Diff(want, m, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// A full-width ideograph becomes about 909 units wide.
	g := shape.Glyph{Outline: shape.Rect(0, -120, 1000, 880), Advance: 1000}
	h := g.Transform(m)
	if math.Abs(h.Advance-909.0909) > 1e-3 {
		t.Errorf("advance %g", h.Advance)
	}
	// The baseline stays in place.
	if bbox := h.Outline.BBox(); math.Abs(bbox.URy-800) > 1e-9 {
		t.Errorf("top %g != 800", bbox.URy)
	}
}

func TestResolveItalicLast(t *testing.T) {
	src := source.Metrics{Em: 2000, Ascent: 1600, Descent: 400, Width: 1000}
	m := Resolve(src, target, Profile{Italic: true})

	// the point at the ascender moves right by ItalicSkew*ascent,
	// independent of the source scale
	p := shape.Apply(m, vec.Vec2{X: 0, Y: 1600})
	q := shape.Apply(m, vec.Vec2{X: 0, Y: 0})
	if math.Abs(p.X-q.X-ItalicSkew*800) > 1e-9 {
		t.Errorf("slant offset %g", p.X-q.X)
	}
}

func TestComposeNotCommutative(t *testing.T) {
	skew := Skew(0.25)
	scale := Scale(0.9, 0.5)
	o := shape.Rect(0, 0, 500, 700)

	a := o.Transform(Compose(skew, scale)).BBox()
	b := o.Transform(Compose(scale, skew)).BBox()
	if a == b {
		t.Errorf("skew and scale commute: %v", a)
	}

	// composition is associative
	tr := Translate(10, 20)
	x := Compose(Compose(skew, scale), tr)
	y := Compose(skew, Compose(scale, tr))
	if d := cmp.Diff(x, y, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestComposeOrder(t *testing.T) {
	// translate first, then scale: the offset is scaled as well
	m := Compose(Translate(10, 0), Uniform(2))
	p := shape.Apply(m, vec.Vec2{})
	if p.X != 20 {
		t.Errorf("got %g, want 20", p.X)
	}
}

func TestRoundTripUnitScale(t *testing.T) {
	src := source.Metrics{Em: 1000, Ascent: 800, Descent: 200, Width: 600, Monospace: true}
	m := Resolve(src, target, Profile{})
	if d := cmp.Diff(matrix.Identity, m); d != "" {
		t.Fatal(d)
	}
	o := shape.Rect(50, -10, 550, 700)
	want := rect.Rect{LLx: 50, LLy: -10, URx: 550, URy: 700}
	if d := cmp.Diff(want, o.Transform(m).BBox()); d != "" {
		t.Error(d)
	}
}

func TestRotate(t *testing.T) {
	cases := []struct {
		deg  float64
		in   vec.Vec2
		want vec.Vec2
	}{
		{90, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{-90, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: -1}},
		{180, vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: -3, Y: -4}},
		{360, vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}},
	}
	for _, c := range cases {
		got := shape.Apply(Rotate(c.deg), c.in)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("rotate %g: %s", c.deg, d)
		}
	}
}

func TestSkewAngle(t *testing.T) {
	m := SkewAngle(45)
	p := shape.Apply(m, vec.Vec2{X: 0, Y: 100})
	if math.Abs(p.X-100) > 1e-9 {
		t.Errorf("got %g", p.X)
	}
}
