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

package align

import (
	"maps"
	"slices"

	"golang.org/x/text/width"

	"seehuhn.de/go/fontmerge/metric"
)

// Range assigns a rule to an inclusive codepoint range.
type Range struct {
	First, Last rune
	Rule        Rule
}

// Policy maps codepoints to alignment rules.
//
// Lookup order: explicit per-codepoint rules, then ranges in declaration
// order, then East Asian half-width forms (if HalfWidthForms is set), and
// finally the default rule.
type Policy struct {
	Default        Rule
	Rules          map[rune]Rule
	Ranges         []Range
	HalfWidthForms bool
}

// Classify returns the alignment rule for codepoint r.
func (p *Policy) Classify(r rune) Rule {
	if rule, ok := p.Rules[r]; ok {
		return rule
	}
	for _, rg := range p.Ranges {
		if r >= rg.First && r <= rg.Last {
			return rg.Rule
		}
	}
	if p.HalfWidthForms && width.LookupRune(r).Kind() == width.EastAsianHalfwidth {
		return Rule{Kind: Center, Width: metric.Half}
	}
	return p.Default
}

// Clone returns a deep copy of the policy.
func (p *Policy) Clone() *Policy {
	res := &Policy{
		Default:        p.Default,
		Ranges:         slices.Clone(p.Ranges),
		Rules:          maps.Clone(p.Rules),
		HalfWidthForms: p.HalfWidthForms,
	}
	return res
}

// cjkPunctuation lists brackets and marks which are designed with
// asymmetric side bearings and must not be centered.
var cjkPunctuation = []rune{
	0x3001, 0x3002, // 、。
	0x3008, 0x3009, 0x300A, 0x300B, 0x300C, 0x300D, // 〈〉《》「」
	0x300E, 0x300F, 0x3010, 0x3011, // 『』【】
	0x3014, 0x3015, 0x3016, 0x3017, 0x3018, 0x3019, 0x301A, 0x301B, // 〔〕〖〗〘〙〚〛
	0x301D, 0x301E, // 〝〞
	0x3099, 0x309A, 0x309B, 0x309C, // voiced sound marks
}

// CJK returns the default policy for the glyphs of a CJK source.
// Glyphs are centered in a cell chosen by their natural width, with the
// exception of CJK punctuation, which keeps its side bearings, and of
// the half-width forms, which are forced to half width.
func CJK() *Policy {
	p := &Policy{
		Default:        Rule{Kind: Center, Width: metric.Auto},
		Rules:          make(map[rune]Rule, len(cjkPunctuation)),
		HalfWidthForms: true,
	}
	for _, r := range cjkPunctuation {
		p.Rules[r] = Rule{Kind: Unmodified, Width: metric.Auto}
	}
	return p
}

// Latin returns the default policy for the glyphs of a Latin source.
// Combining diacritical marks keep their position relative to the
// preceding base letter.
func Latin() *Policy {
	return &Policy{
		Default: Rule{Kind: Center, Width: metric.Auto},
		Ranges: []Range{
			{First: 0x0300, Last: 0x036F, Rule: Rule{Kind: Unmodified, Width: metric.Half}},
		},
	}
}
