// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/multifil/mdl/head"
	"github.com/cpmech/multifil/rng"
)

// Crossbridge is a myosin head instance plus its position along a thick
// face and its (possibly nil) bound binding site.
type Crossbridge struct {
	Head       *head.Head
	CrownIndex int
	Face       *ThickFace // owning face
	site       *BindingSite
}

// crownAxial returns this crossbridge's axial position on its backbone.
func (x *Crossbridge) crownAxial() float64 {
	return x.Face.Filament.Crowns[x.CrownIndex]
}

// BoundSite returns the occupied binding site, or nil if free.
func (x *Crossbridge) BoundSite() *BindingSite {
	return x.site
}

// SetBoundSite forcibly sets the crossbridge's bound-site back-reference,
// without touching the site's own back-reference or the head's kinetic
// state. Used only by snapshot restoration, which restores both halves of
// the link explicitly.
func (x *Crossbridge) SetBoundSite(s *BindingSite) {
	x.site = s
}

// ap returns a site's actin-permissiveness factor as 0 or 1.
func ap(s *BindingSite) float64 {
	if s != nil && s.Permissive() {
		return 1
	}
	return 0
}

// Transition attempts a single kinetic transition for this crossbridge. If
// free, it looks up the nearest eligible site on the opposing thin face; a
// refused bind (site taken between lookup and commit) reverts the head to
// Free without re-drawing the random stream, per §9.
func (x *Crossbridge) Transition(rs *rng.Stream, latticeSpacing, hidingLine, dtMs float64, timestep int) string {
	if x.Head.State == head.Free {
		if x.Face.Opposing == nil {
			return head.NoTransition
		}
		site := x.Face.Opposing.Nearest(x.crownAxial(), hidingLine)
		if site == nil {
			return head.NoTransition
		}
		bs := [2]float64{site.Axial - x.crownAxial(), latticeSpacing}
		trans := x.Head.Transition(rs, bs, ap(site), dtMs, timestep, latticeSpacing)
		if trans == head.T12 {
			if site.BindTo(x) {
				x.site = site
			} else {
				x.Head.State = head.Free
			}
		}
		return trans
	}
	bs := [2]float64{x.site.Axial - x.crownAxial(), latticeSpacing}
	trans := x.Head.Transition(rs, bs, ap(x.site), dtMs, timestep, latticeSpacing)
	if trans == head.T31 || trans == head.T21 {
		x.site.Unbind()
		x.site = nil
	}
	return trans
}

// AxialForce returns the crossbridge's axial force contribution, zero if
// unbound.
func (x *Crossbridge) AxialForce(latticeSpacing float64) float64 {
	if x.Head.State == head.Free {
		return 0
	}
	dx := x.site.Axial - x.crownAxial()
	return x.Head.AxialForce([2]float64{dx, latticeSpacing})
}

// RadialForce returns the crossbridge's radial force contribution, zero if
// unbound.
func (x *Crossbridge) RadialForce(latticeSpacing float64) float64 {
	if x.Head.State == head.Free {
		return 0
	}
	dx := x.site.Axial - x.crownAxial()
	return x.Head.RadialForce([2]float64{dx, latticeSpacing})
}
