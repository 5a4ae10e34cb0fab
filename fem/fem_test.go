// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func newTestHS(tst *testing.T) *HalfSarcomere {
	cfg := DefaultConfig()
	hs, err := New(cfg)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	hs.TimestepLen = 0.5
	return hs
}

func TestNewWiresTopology(tst *testing.T) {
	chk.PrintTitle("NewWiresTopology")
	hs := newTestHS(tst)
	for ti, mf := range hs.Thick {
		for fi, face := range mf.Faces {
			if face.Opposing == nil {
				tst.Errorf("thick %d face %d has no opposing thin face", ti, fi)
			}
		}
	}
	for i, t := range hs.Titin {
		if t == nil {
			tst.Errorf("titin %d not wired", i)
		}
	}
}

func TestPoissonUpdateIdempotent(tst *testing.T) {
	chk.PrintTitle("PoissonUpdateIdempotent")
	hs := newTestHS(tst)
	hs.SetZLine(1300)
	ls1 := hs.LatticeSpacing
	hs.SetZLine(1300)
	chk.Scalar(tst, "ls after repeat set", 1e-12, hs.LatticeSpacing, ls1)
}

func TestPoissonUpdateNuZero(tst *testing.T) {
	chk.PrintTitle("PoissonUpdateNuZero")
	cfg := DefaultConfig()
	cfg.Nu = 0
	hs, err := New(cfg)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	hs.SetZLine(1400)
	chk.Scalar(tst, "ls with nu=0", 1e-9, hs.LatticeSpacing, cfg.LS0)
}

func TestPoissonUpdateNuHalfConservesArea(tst *testing.T) {
	chk.PrintTitle("PoissonUpdateNuHalfConservesArea")
	cfg := DefaultConfig()
	cfg.Nu = 0.5
	hs, err := New(cfg)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	edge0 := thinRadius + thickRadius + hs.LatticeSpacing
	area0 := 4 * 1.5 * math.Sqrt(3) * edge0 * edge0
	product0 := area0 * hs.ZLine

	hs.SetZLine(1400)
	edge1 := thinRadius + thickRadius + hs.LatticeSpacing
	area1 := 4 * 1.5 * math.Sqrt(3) * edge1 * edge1
	product1 := area1 * hs.ZLine

	rel := math.Abs(product1-product0) / product0
	if rel > 1e-6 {
		tst.Errorf("area*z_line not conserved at nu=0.5: rel error=%g", rel)
	}
}

func TestLsToD10RoundTrip(tst *testing.T) {
	chk.PrintTitle("LsToD10RoundTrip")
	for _, x := range []float64{0, 1, 37, 150.25, -5} {
		got := D10ToLs(LsToD10(x))
		chk.Scalar(tst, "d10_to_ls(ls_to_d10(x))", 1e-12, got, x)
	}
}

func TestStepProducesFiniteReport(tst *testing.T) {
	chk.PrintTitle("StepProducesFiniteReport")
	hs := newTestHS(tst)
	hs.PCa = 4.0
	td := TimeDependence{}
	for i := 0; i < 5; i++ {
		r := hs.Step(i, td)
		if math.IsNaN(r.AxialForce) || math.IsInf(r.AxialForce, 0) {
			tst.Errorf("step %d: non-finite axial force", i)
		}
		sum := r.XbFractionFree + r.XbFractionLoose + r.XbFractionTight
		chk.Scalar(tst, "fraction sum", 1e-9, sum, 1)
	}
}
