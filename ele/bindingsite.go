// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the structural elements of the half-sarcomere
// lattice: binding sites, crossbridges, and the thick/thin filament axial
// chains they sit on, scaled up from the teacher's two-node rod element
// (ele/solid/elastrod.go) to a 60/N-node per-filament chain.
package ele

import "github.com/cpmech/multifil/mdl/tropo"

// BindingSite is one actin monomer's regulatory unit plus its axial
// position, owned by exactly one ThinFilament. At most one Crossbridge may
// be bound to it at a time (§3 invariant).
type BindingSite struct {
	Axial float64
	Tropo *tropo.Site
	bound *Crossbridge // back-reference only; BindingSite does not own the crossbridge
}

// NewBindingSite builds a binding site at the given axial position.
func NewBindingSite(axial float64, t *tropo.Site) *BindingSite {
	return &BindingSite{Axial: axial, Tropo: t}
}

// Permissive reports whether this site's regulatory unit is Open.
func (b *BindingSite) Permissive() bool {
	return b.Tropo.Permissive()
}

// Bound reports whether a crossbridge currently occupies this site.
func (b *BindingSite) Bound() bool {
	return b.bound != nil
}

// BoundCrossbridge returns the occupying crossbridge, or nil.
func (b *BindingSite) BoundCrossbridge() *Crossbridge {
	return b.bound
}

// BindTo attempts to bind x to this site, failing (returning false) if the
// site is already occupied. On failure the caller must revert its own head
// state without rewinding the random stream (§9: a refused bind is not
// re-rolled).
func (b *BindingSite) BindTo(x *Crossbridge) bool {
	if b.bound != nil {
		return false
	}
	b.bound = x
	return true
}

// Unbind releases the site.
func (b *BindingSite) Unbind() {
	b.bound = nil
}
