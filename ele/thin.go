// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/multifil/mdl/tropo"
)

// ThinFace is a non-owning projection of a ThinFilament's binding sites,
// one of the 3 faces a thin filament presents to its 3 neighboring thick
// filaments in the hexagonal lattice (§3 Ownership: "faces are non-owning
// projections into their parent filament").
type ThinFace struct {
	Filament *ThinFilament
	Index    int
	Opposing *ThickFace // set during half-sarcomere topology wiring
}

// Nearest returns the closest unbound, non-hidden binding site to axial
// position x, or nil if every site is either bound or hidden.
func (f *ThinFace) Nearest(x, hidingLine float64) *BindingSite {
	var best *BindingSite
	bestDist := math.Inf(1)
	for _, s := range f.Filament.Sites {
		if s.Bound() || s.Axial < hidingLine {
			continue
		}
		d := math.Abs(s.Axial - x)
		if d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best
}

// ThinFilament is an ordered, periodically-spaced chain of binding sites,
// anchored at the Z-line and extending toward the M-line.
type ThinFilament struct {
	Index    int
	Spacing  float64
	Sites    []*BindingSite
	Faces    [3]*ThinFace
}

// NewThinFilament builds a thin filament of nSites binding sites spaced by
// spacing (nm), anchored at zLine and offset by startOffset (nm) — the
// deterministic per-filament phase seeded by the configuration's
// thin_starts index array (§6).
func NewThinFilament(index, nSites int, spacing, zLine, startOffset float64, rates tropo.Rates) (*ThinFilament, error) {
	if nSites <= 0 {
		return nil, chk.Err("ele: thin filament %d: nSites=%d must be > 0", index, nSites)
	}
	tf := &ThinFilament{Index: index, Spacing: spacing, Sites: make([]*BindingSite, nSites)}
	for i := 0; i < nSites; i++ {
		site, err := tropo.New(rates)
		if err != nil {
			return nil, err
		}
		axial := zLine - startOffset - float64(i)*spacing
		tf.Sites[i] = NewBindingSite(axial, site)
	}
	for i := range tf.Faces {
		tf.Faces[i] = &ThinFace{Filament: tf, Index: i}
	}
	return tf, nil
}

// MinAxial returns the smallest axial position among this filament's
// sites, used by the half-sarcomere to compute the hiding line.
func (t *ThinFilament) MinAxial() float64 {
	m := math.Inf(1)
	for _, s := range t.Sites {
		if s.Axial < m {
			m = s.Axial
		}
	}
	return m
}

// ApplyCooperativity marks, for each Open site, the neighbors within span
// sites on either side as Cooperate = true, and clears the flag on every
// other site, per §4.4's cooperative-activation rule.
func (t *ThinFilament) ApplyCooperativity(span int) {
	open := make([]bool, len(t.Sites))
	for i, s := range t.Sites {
		open[i] = s.Tropo.State == tropo.Open
	}
	for i, s := range t.Sites {
		coop := false
		for d := 1; d <= span && !coop; d++ {
			if i-d >= 0 && open[i-d] {
				coop = true
			}
			if i+d < len(open) && open[i+d] {
				coop = true
			}
		}
		s.Tropo.Cooperate = coop
	}
}
