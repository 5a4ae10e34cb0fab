// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/multifil/mdl/head"

// TimeDependence carries the time-indexed boundary-condition traces named
// in §6: each slice, if non-nil, must have length timestepNumber; a nil
// slice means "hold at the current value".
type TimeDependence struct {
	LatticeSpacing []float64
	ZLine          []float64
	PCa            []float64
}

// CooperativitySpan is the tropomyosin neighbor-scan span n (§3/§4.4).
const CooperativitySpan = 2

// Report is the per-timestep observation record (§4.7 "Callback report").
type Report struct {
	AxialForce    float64
	RadialForce   float64 // supplemented observable
	Coop          float64
	Ca            float64
	XbFractionFree, XbFractionLoose, XbFractionTight float64
	R12, R21, R23, R32, R31 float64
	FreeTm, FreeCa, BoundTm float64
}

// Step advances the half-sarcomere by one timestep, following the §4.7
// seven-step control flow: (1) advance boundary conditions, (2) update the
// hiding line, (3) crossbridge transitions, (4) update concentrations, (5)
// tropomyosin transitions, (6) settle, (7) build the report.
func (hs *HalfSarcomere) Step(i int, td TimeDependence) Report {
	hs.CurrentTimestep = i
	if td.LatticeSpacing != nil && i < len(td.LatticeSpacing) {
		hs.LatticeSpacing = td.LatticeSpacing[i]
	}
	if td.ZLine != nil && i < len(td.ZLine) {
		hs.SetZLine(td.ZLine[i])
	}
	if td.PCa != nil && i < len(td.PCa) {
		hs.PCa = td.PCa[i]
	}
	hs.updateHidingLine()

	for _, mf := range hs.Thick {
		for _, face := range mf.Faces {
			for _, xb := range face.Crossbridges {
				xb.Transition(hs.RNG, hs.LatticeSpacing, hs.HidingLine, hs.TimestepLen, i)
			}
		}
	}

	hs.updateVolumeAndSpecies()

	var tmSiteCount int
	var sumR12, sumR21, sumR23, sumR32, sumR31 float64
	for _, tf := range hs.Thin {
		tf.ApplyCooperativity(CooperativitySpan)
		for _, s := range tf.Sites {
			tmSiteCount++
			sumR12 += s.Tropo.R12(hs.CCa)
			sumR21 += s.Tropo.R21()
			sumR23 += s.Tropo.R23()
			sumR32 += s.Tropo.R32()
			sumR31 += s.Tropo.R31()
			s.Tropo.Transition(hs.RNG, hs.CCa, hs.TimestepLen)
		}
	}

	hs.Settle()

	r := hs.report(tmSiteCount)
	if tmSiteCount > 0 {
		n := float64(tmSiteCount)
		r.R12, r.R21, r.R23, r.R32, r.R31 = sumR12/n, sumR21/n, sumR23/n, sumR32/n, sumR31/n
	}
	return r
}

func (hs *HalfSarcomere) report(tmSiteCount int) Report {
	var free, loose, tight int
	total := 0
	for _, mf := range hs.Thick {
		for _, face := range mf.Faces {
			for _, xb := range face.Crossbridges {
				total++
				switch xb.Head.State {
				case head.Free:
					free++
				case head.Loose:
					loose++
				case head.Tight:
					tight++
				}
			}
		}
	}

	var openCount, coopCount, boundCount int
	for _, tf := range hs.Thin {
		for _, s := range tf.Sites {
			if s.Permissive() {
				openCount++
			}
			if s.Tropo.Cooperate {
				coopCount++
			}
			if s.Tropo.State != 0 {
				boundCount++
			}
		}
	}

	r := Report{
		AxialForce:  hs.AxialForce(),
		RadialForce: hs.RadialForce(),
		Ca:          hs.CCa,
		FreeTm:      float64(openCount) / float64(tmSiteCount),
		FreeCa:      hs.CCa,
		BoundTm:     float64(boundCount) / float64(tmSiteCount),
		Coop:        float64(coopCount) / float64(tmSiteCount),
	}
	if total > 0 {
		r.XbFractionFree = float64(free) / float64(total)
		r.XbFractionLoose = float64(loose) / float64(total)
		r.XbFractionTight = float64(tight) / float64(total)
	}
	return r
}
