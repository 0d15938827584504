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

// Package transform computes the affine maps which bring glyphs from a
// source font into the target metric space.
//
// All functions return [matrix.Matrix] values.  Points are mapped as
//
//	x' = m[0]*x + m[2]*y + m[4]
//	y' = m[1]*x + m[3]*y + m[5]
//
// and A.Mul(B) is the map which applies A first and B second.
package transform

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/source"
)

// ItalicSkew is the horizontal shear used for italic styles.  It slants
// vertical stems by about 14 degrees.
const ItalicSkew = 0.25

// Uniform scales by k in both directions.
func Uniform(k float64) matrix.Matrix {
	return matrix.Matrix{k, 0, 0, k, 0, 0}
}

// Scale scales by sx horizontally and sy vertically.
func Scale(sx, sy float64) matrix.Matrix {
	return matrix.Matrix{sx, 0, 0, sy, 0, 0}
}

// Translate shifts by (dx, dy).
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Translate(dx, dy)
}

// Skew shears horizontally, mapping (x, y) to (x + t*y, y).
func Skew(t float64) matrix.Matrix {
	return matrix.Matrix{1, 0, t, 1, 0, 0}
}

// SkewAngle shears horizontally so that vertical lines are slanted
// clockwise by the given angle in degrees.
func SkewAngle(deg float64) matrix.Matrix {
	return Skew(math.Tan(deg * math.Pi / 180))
}

// Rotate rotates counter-clockwise about the origin by the given angle in
// degrees.  Multiples of 90 degrees are exact.
func Rotate(deg float64) matrix.Matrix {
	var sin, cos float64
	switch math.Mod(math.Mod(deg, 360)+360, 360) {
	case 0:
		sin, cos = 0, 1
	case 90:
		sin, cos = 1, 0
	case 180:
		sin, cos = 0, -1
	case 270:
		sin, cos = -1, 0
	default:
		sin, cos = math.Sincos(deg * math.Pi / 180)
	}
	return matrix.Matrix{cos, sin, -sin, cos, 0, 0}
}

// Compose returns the map which applies the given operations in order:
// ops[0] first, ops[len(ops)-1] last.
func Compose(ops ...matrix.Matrix) matrix.Matrix {
	res := matrix.Identity
	for _, m := range ops {
		res = res.Mul(m)
	}
	return res
}

// Profile is the part of a style description which affects the geometric
// transformation.
type Profile struct {
	Italic bool

	// Skew overrides [ItalicSkew] if non-zero.
	Skew float64
}

// Shear returns the horizontal shear applied to glyphs of the style, or 0
// for upright styles.
func (p Profile) Shear() float64 {
	switch {
	case !p.Italic:
		return 0
	case p.Skew != 0:
		return p.Skew
	default:
		return ItalicSkew
	}
}

// Resolve computes the map from the coordinate system of a source font
// into the target metric space.
//
// Glyphs are scaled uniformly by space.Ascent / src.Ascent, so that the
// baselines and ascender lines of all sources coincide.  The scaled glyph
// is then shifted right by space.Width*(1-k)/2; the vertical position stays
// anchored to the baseline.  For italic styles a shear is appended as the
// last operation, so that the slant does not depend on the source scale.
//
// Weight changes are not part of the returned map.
func Resolve(src source.Metrics, space *metric.Space, p Profile) matrix.Matrix {
	k := space.Ascent / src.Ascent
	ops := []matrix.Matrix{
		Uniform(k),
		Translate(space.Width*(1-k)/2, 0),
	}
	if p.Italic {
		ops = append(ops, Skew(p.Shear()))
	}
	return Compose(ops...)
}

// ScaleFactor returns the uniform scale factor used by [Resolve].
func ScaleFactor(src source.Metrics, space *metric.Space) float64 {
	return space.Ascent / src.Ascent
}
