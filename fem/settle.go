// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "math"

// Backbone stiffnesses (§3 "HS_MF_K"/"HS_AF_K"), hand-calibrated constants
// in the absence of a numeric value in the retrieved source — chosen stiff
// enough that backbone deformation is small relative to crossbridge/titin
// compliance, consistent with the real filaments' near-rigidity.
const (
	thickBackboneK = 2000.0 // pN/nm
	thinBackboneK  = 3000.0 // pN/nm
)

// thickCrownResidual returns the net force imbalance at crown i of thick
// filament mf (§4.5): backbone neighbor tension minus attached-crossbridge
// force, plus any titin force at the distal tip.
func (hs *HalfSarcomere) thickCrownResidual(thickIdx, i int) float64 {
	mf := hs.Thick[thickIdx]
	var r float64
	if i+1 < len(mf.Crowns) {
		r += thickBackboneK * (mf.Crowns[i+1] - mf.Crowns[i] - mf.CrownSpacing)
	}
	if i-1 >= 0 {
		r -= thickBackboneK * (mf.Crowns[i] - mf.Crowns[i-1] - mf.CrownSpacing)
	}
	for _, face := range mf.Faces {
		r -= face.Crossbridges[i].AxialForce(hs.LatticeSpacing)
	}
	if i == len(mf.Crowns)-1 {
		r += hs.titinForceAtThickTip(thickIdx)
	}
	return r
}

// thinSiteResidual returns the net force imbalance at site i of thin
// filament tf.
func (hs *HalfSarcomere) thinSiteResidual(thinIdx, i int) float64 {
	tf := hs.Thin[thinIdx]
	var r float64
	if i+1 < len(tf.Sites) {
		r += thinBackboneK * (tf.Sites[i+1].Axial - tf.Sites[i].Axial + tf.Spacing)
	}
	if i-1 >= 0 {
		r -= thinBackboneK * (tf.Sites[i].Axial - tf.Sites[i-1].Axial + tf.Spacing)
	}
	if xb := tf.Sites[i].BoundCrossbridge(); xb != nil {
		r += xb.AxialForce(hs.LatticeSpacing)
	}
	if i == len(tf.Sites)-1 {
		r -= hs.titinForceAtThinTip(thinIdx)
	}
	return r
}

func (hs *HalfSarcomere) titinForceAtThickTip(thickIdx int) float64 {
	var sum float64
	for i, e := range hs.titinEnds {
		if e.ThickIdx == thickIdx {
			sum += hs.Titin[i].Force(hs.titinLength(i))
		}
	}
	return sum
}

func (hs *HalfSarcomere) titinForceAtThinTip(thinIdx int) float64 {
	var sum float64
	for i, e := range hs.titinEnds {
		if e.ThinIdx == thinIdx {
			sum += hs.Titin[i].Force(hs.titinLength(i))
		}
	}
	return sum
}

// singleSettle performs one relaxation pass over every mobile node (crown
// index 0 is anchored at the M-line; thin site index 0 is anchored at the
// Z-line), nudging each toward force balance by factor, and returns the
// largest absolute residual observed in this pass. Each node's residual is
// measured just before that node is moved, so nodes visited later in the
// pass see the already-updated positions of earlier ones.
func (hs *HalfSarcomere) singleSettle(factor float64) float64 {
	maxResidual := 0.0
	for ti, mf := range hs.Thick {
		for i := 1; i < len(mf.Crowns); i++ {
			r := hs.thickCrownResidual(ti, i)
			if math.Abs(r) > maxResidual {
				maxResidual = math.Abs(r)
			}
			mf.Crowns[i] += factor * r / thickBackboneK
		}
	}
	for fi, tf := range hs.Thin {
		for i := 1; i < len(tf.Sites); i++ {
			r := hs.thinSiteResidual(fi, i)
			if math.Abs(r) > maxResidual {
				maxResidual = math.Abs(r)
			}
			tf.Sites[i].Axial += factor * r / thinBackboneK
		}
	}
	return maxResidual
}

// Settle relaxes the spring network until the maximum node residual falls
// at or below residualThreshold, or maxSettlePasses is exhausted — in
// which case the partial state is kept and a warning is logged (§7), never
// panicking.
func (hs *HalfSarcomere) Settle() {
	for pass := 1; pass <= maxSettlePasses; pass++ {
		residual := hs.singleSettle(relaxFactor)
		if residual <= residualThreshold {
			return
		}
		if pass == maxSettlePasses {
			logNonConvergence(pass, residual)
		}
	}
}
