// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/multifil/mdl/head"
)

// ThickFace is one of a thick filament's 6 faces, each presenting one
// crossbridge per crown toward a neighboring thin filament. Non-goal §1/§9
// excludes 3-D rotational filament dynamics, so (per the documented design
// decision in DESIGN.md) each face owns its own independent crossbridge per
// crown rather than modeling the 3-heads-shared-across-6-faces helical
// geometry of the real thick filament.
type ThickFace struct {
	Filament     *ThickFilament
	Index        int
	Crossbridges []*Crossbridge
	Opposing     *ThinFace // set during half-sarcomere topology wiring
}

// ThickFilament is an ordered, periodically-spaced chain of crowns,
// anchored at the M-line and extending toward the Z-line.
type ThickFilament struct {
	Index       int
	BareZone    float64
	CrownSpacing float64
	Crowns      []float64 // axial position of each crown
	Faces       [6]*ThickFace
}

// NewThickFilament builds a thick filament of nCrowns crowns, each
// presenting 6 faces (one crossbridge per face per crown), using prms to
// configure every head's springs and rate constants (§6's mh_* keys).
func NewThickFilament(index, nCrowns int, bareZone, crownSpacing float64, prms fun.Prms) (*ThickFilament, error) {
	if nCrowns <= 0 {
		return nil, chk.Err("ele: thick filament %d: nCrowns=%d must be > 0", index, nCrowns)
	}
	mf := &ThickFilament{Index: index, BareZone: bareZone, CrownSpacing: crownSpacing, Crowns: make([]float64, nCrowns)}
	for i := 0; i < nCrowns; i++ {
		mf.Crowns[i] = bareZone + float64(i)*crownSpacing
	}
	for f := 0; f < 6; f++ {
		face := &ThickFace{Filament: mf, Index: f, Crossbridges: make([]*Crossbridge, nCrowns)}
		for c := 0; c < nCrowns; c++ {
			h, err := head.NewDefault(prms)
			if err != nil {
				return nil, err
			}
			face.Crossbridges[c] = &Crossbridge{Head: h, CrownIndex: c, Face: face}
		}
		mf.Faces[f] = face
	}
	return mf, nil
}

// EffectiveAxialForce returns the M-line-ward force carried by this
// filament's backbone: the force transmitted at crown 0, the sum of every
// bound crossbridge's axial force (§4.7 "axial_force" headline observable
// — distinct from a filament's per-node residual array used internally by
// the relaxer).
func (mf *ThickFilament) EffectiveAxialForce(latticeSpacing float64) float64 {
	var sum float64
	for _, face := range mf.Faces {
		for _, xb := range face.Crossbridges {
			sum += xb.AxialForce(latticeSpacing)
		}
	}
	return sum
}
