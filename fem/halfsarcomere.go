// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the half-sarcomere driver: construction and fixed
// topology wiring, the per-timestep control loop, the force-residual
// relaxer, and state/report serialization. It plays the role the teacher's
// fem.FEM/fem.Domain pair plays for a classical finite-element model,
// generalized from an assembled sparse linear system to an explicit
// per-node spring-network relaxation.
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/multifil/ele"
	"github.com/cpmech/multifil/mdl/titin"
	"github.com/cpmech/multifil/mdl/tropo"
	"github.com/cpmech/multifil/rng"
)

// Fixed lattice geometry (§2).
const (
	NThick = 4
	NThin  = 8
	NTitin = 24

	ThickCrowns      = 60
	ThickCrownSpacing = 14.3 // nm
	ThickBareZone     = 81.3 // nm; last crown at 81.3 + 59*14.3 = 925.0nm at this bare zone

	ThinSites       = 30
	ThinSiteSpacing = 37.3 // nm; thin filament length ≈ 1119nm

	// beta is the Poisson lattice-spacing update's additive/subtractive
	// offset: 0.5*(9+16).
	beta = 12.5

	// residualThreshold is the settle() convergence criterion (§4.7/§8
	// property 3).
	residualThreshold = 0.12 // pN

	// maxSettlePasses bounds single_settle iterations; the reference has
	// no cap, §7 requires we impose one.
	maxSettlePasses = 10000

	relaxFactor = 0.95
)

// Config carries the construction-time parameters not already implied by
// the fixed lattice geometry: the starting lattice spacing and z-line, the
// Poisson ratio, titin (a,b), myosin head parameters, tropomyosin rates,
// and the deterministic filament phase offsets (§6 "starts").
type Config struct {
	LS0, ZLine0 float64
	Nu          float64
	TitinA, TitinB float64
	HeadPrms    fun.Prms
	TropoRates  tropo.Rates
	ThinStarts  [NThin]float64
	ThickStarts [NThick]float64
	Seed        int64
}

// DefaultConfig returns a representative, internally consistent
// configuration.
func DefaultConfig() Config {
	return Config{
		LS0: 37, ZLine0: 1250, Nu: 0.5,
		TitinA: 2, TitinB: 0.01,
		HeadPrms:   fun.Prms{},
		TropoRates: tropo.DefaultRates(),
		Seed:       1,
	}
}

// HalfSarcomere owns the full fixed lattice and the scalar boundary-
// condition/derived state named in §3.
type HalfSarcomere struct {
	Thick [NThick]*ele.ThickFilament
	Thin  [NThin]*ele.ThinFilament
	Titin [NTitin]*titin.Titin

	LatticeSpacing float64
	ZLine          float64
	PCa            float64

	TimestepLen     float64
	CurrentTimestep int

	HidingLine float64

	ZLine0, LS0 float64
	Nu          float64

	Volume          float64
	CTn, CCa, CTnCa float64

	RNG *rng.Stream

	titinEnds [NTitin]titinEnd // (thickIdx,faceIdx) <-> (thinIdx,faceIdx), for force assembly and snapshotting
}

type titinEnd struct {
	ThickIdx, ThickFace int
	ThinIdx, ThinFace   int
}

// New constructs a half-sarcomere with the fixed topology and the given
// configuration, seeding its independent random stream.
func New(cfg Config) (*HalfSarcomere, error) {
	hs := &HalfSarcomere{
		LatticeSpacing: cfg.LS0,
		ZLine:          cfg.ZLine0,
		ZLine0:         cfg.ZLine0,
		LS0:            cfg.LS0,
		Nu:             cfg.Nu,
		RNG:            rng.New(cfg.Seed),
	}
	for i := 0; i < NThick; i++ {
		mf, err := ele.NewThickFilament(i, ThickCrowns, ThickBareZone+cfg.ThickStarts[i], ThickCrownSpacing, cfg.HeadPrms)
		if err != nil {
			return nil, err
		}
		hs.Thick[i] = mf
	}
	for i := 0; i < NThin; i++ {
		tf, err := ele.NewThinFilament(i, ThinSites, ThinSiteSpacing, cfg.ZLine0, cfg.ThinStarts[i], cfg.TropoRates)
		if err != nil {
			return nil, err
		}
		hs.Thin[i] = tf
	}
	if err := hs.wireTopology(); err != nil {
		return nil, err
	}
	if err := hs.wireTitins(cfg.TitinA, cfg.TitinB); err != nil {
		return nil, err
	}
	hs.updateHidingLine()
	hs.updateVolumeAndSpecies()
	return hs, nil
}

// thickThinAdjacency is the fixed hexagonal-lattice wiring (§3 "Topology
// invariant"): for each thick filament index and each of its 6 faces, the
// (thin filament index, thin face index) it opposes. Ported directly from
// the reference construction's explicit index table.
var thickThinAdjacency = [NThick][6][2]int{
	{{0, 1}, {1, 2}, {2, 2}, {6, 0}, {5, 0}, {4, 1}},
	{{2, 1}, {3, 2}, {0, 2}, {4, 0}, {7, 0}, {6, 1}},
	{{5, 1}, {6, 2}, {7, 2}, {3, 0}, {2, 0}, {1, 1}},
	{{7, 1}, {4, 2}, {5, 2}, {1, 0}, {0, 0}, {3, 1}},
}

func (hs *HalfSarcomere) wireTopology() error {
	for ti := 0; ti < NThick; ti++ {
		for f := 0; f < 6; f++ {
			adj := thickThinAdjacency[ti][f]
			thinIdx, thinFace := adj[0], adj[1]
			if thinIdx < 0 || thinIdx >= NThin {
				return chk.Err("fem: topology invariant violation: thick %d face %d references thin filament %d", ti, f, thinIdx)
			}
			hs.Thick[ti].Faces[f].Opposing = hs.Thin[thinIdx].Faces[thinFace]
			hs.Thin[thinIdx].Faces[thinFace].Opposing = hs.Thick[ti].Faces[f]
		}
	}
	return nil
}

// titinEndpoints is the fixed (thick_idx, thick_face) <-> (thin_idx,
// thin_face) endpoint table for the 24 titin links, ported directly from
// the reference construction.
var titinEndpoints = [NTitin]titinEnd{
	{0, 0, 0, 1}, {0, 1, 1, 2}, {0, 2, 2, 2},
	{1, 0, 2, 1}, {1, 1, 3, 2}, {1, 2, 0, 2},
	{0, 5, 4, 1}, {0, 4, 5, 0}, {0, 3, 6, 0},
	{1, 5, 6, 1}, {1, 4, 7, 0}, {1, 3, 4, 0},
	{2, 0, 5, 1}, {2, 1, 6, 2}, {2, 2, 7, 2},
	{3, 0, 7, 1}, {3, 1, 4, 2}, {3, 2, 5, 2},
	{2, 5, 1, 1}, {2, 4, 2, 0}, {2, 3, 3, 0},
	{3, 5, 3, 1}, {3, 4, 0, 0}, {3, 3, 1, 0},
}

func (hs *HalfSarcomere) wireTitins(a, b float64) error {
	prms := fun.Prms{{N: "titin_a", V: a}, {N: "titin_b", V: b}}
	for i, e := range titinEndpoints {
		hs.titinEnds[i] = e
		thickTip := hs.thickFaceTip(e.ThickIdx, e.ThickFace)
		thinTip := hs.thinFaceTip(e.ThinIdx, e.ThinFace)
		rest := math.Abs(thinTip - thickTip)
		t, err := titin.FromPrms(prms, "titin_a", "titin_b", rest)
		if err != nil {
			return err
		}
		hs.Titin[i] = t
	}
	return nil
}

// thickFaceTip returns the axial position of a thick filament's distal
// (Z-line-ward) crown, the titin attachment point on that face.
func (hs *HalfSarcomere) thickFaceTip(thickIdx, face int) float64 {
	mf := hs.Thick[thickIdx]
	return mf.Crowns[len(mf.Crowns)-1]
}

// thinFaceTip returns the axial position of a thin filament's distal
// (M-line-ward) site, the titin attachment point on that face.
func (hs *HalfSarcomere) thinFaceTip(thinIdx, face int) float64 {
	tf := hs.Thin[thinIdx]
	return tf.Sites[len(tf.Sites)-1].Axial
}

// SetZLine applies the Poisson lattice-spacing update (§4.7), records the
// new z-line, and re-anchors every thin filament's Z-line-attached node
// (site index 0, held fixed by settle()) by the same displacement so the
// prescribed boundary condition actually drives the mechanics. Idempotent:
// calling with the same value twice leaves LatticeSpacing and every
// anchored node unchanged to machine precision (§8 property 6); ν=0 leaves
// LatticeSpacing at LS0 for any z-line (§8 property 7).
func (hs *HalfSarcomere) SetZLine(z float64) {
	dzBoundary := z - hs.ZLine
	hs.ZLine = z
	dz := z - hs.ZLine0
	hs.LatticeSpacing = (hs.LS0+beta)*math.Pow(hs.ZLine0/(hs.ZLine0+dz), hs.Nu) - beta
	if dzBoundary != 0 {
		for _, tf := range hs.Thin {
			tf.Sites[0].Axial += dzBoundary
		}
	}
}

// updateHidingLine recomputes HidingLine = -min(min(thin site axial)).
func (hs *HalfSarcomere) updateHidingLine() {
	m := math.Inf(1)
	for _, tf := range hs.Thin {
		if v := tf.MinAxial(); v < m {
			m = v
		}
	}
	hs.HidingLine = -m
}

// thickRadius and thinRadius are the fixed filament radii (nm) used by the
// volume formula's "edge" term (§4.7).
const (
	thickRadius = 8.0
	thinRadius  = 4.5
)

// LsToD10 converts a face-to-face lattice spacing (nm) to the equivalent
// X-ray d10 reflection spacing (nm): the filament-center spacing implied by
// the face-to-face gap plus the actin/myosin filament radii, scaled by the
// hexagonal lattice's 3:2 d10-to-filament-center-spacing ratio (§8
// property 9).
func LsToD10(ls float64) float64 {
	filcenterDist := ls + thinRadius + thickRadius
	return 1.5 * filcenterDist
}

// D10ToLs is LsToD10's inverse.
func D10ToLs(d10 float64) float64 {
	filcenterDist := d10 * 2 / 3
	return filcenterDist - thinRadius - thickRadius
}

// updateVolumeAndSpecies recomputes the lattice's fluid volume and the
// calcium/troponin concentrations from the current lattice spacing, pCa,
// and bound-site count (§4.7).
func (hs *HalfSarcomere) updateVolumeAndSpecies() {
	edge := thinRadius + thickRadius + hs.LatticeSpacing
	area := 4 * (3.0 / 2.0) * math.Sqrt(3) * edge * edge
	length := hs.ZLine
	fluid := (area*length - 10*math.Pi*22659.75 - 4*math.Pi*58624) * 1e-24
	hs.Volume = fluid
	hs.CCa = math.Pow(10, -hs.PCa)

	var bound int
	var total int
	for _, tf := range hs.Thin {
		for _, s := range tf.Sites {
			total++
			if s.Tropo.State != tropo.Blocked {
				bound++
			}
		}
	}
	if hs.Volume > 0 {
		hs.CTnCa = float64(bound) / hs.Volume
		hs.CTn = float64(total-bound) / hs.Volume
	}
}

// AxialForce is the headline observable: the sum of every thick filament's
// effective (M-line) axial force plus every titin link's tensile force.
func (hs *HalfSarcomere) AxialForce() float64 {
	var sum float64
	for _, mf := range hs.Thick {
		sum += mf.EffectiveAxialForce(hs.LatticeSpacing)
	}
	for i, t := range hs.Titin {
		sum += t.Force(hs.titinLength(i))
	}
	return sum
}

// RadialForce is the supplemented lattice-level radial observable (§ SPEC_FULL
// "radial_tension / radial_force").
func (hs *HalfSarcomere) RadialForce() float64 {
	var sum float64
	for _, mf := range hs.Thick {
		for _, face := range mf.Faces {
			for _, xb := range face.Crossbridges {
				sum += xb.RadialForce(hs.LatticeSpacing)
			}
		}
	}
	return sum
}

// titinLength returns titin link i's current end-to-end distance, computed
// live from its attached thick/thin tip positions (which move during
// settle()).
func (hs *HalfSarcomere) titinLength(i int) float64 {
	e := hs.titinEnds[i]
	return math.Abs(hs.thinFaceTip(e.ThinIdx, e.ThinFace) - hs.thickFaceTip(e.ThickIdx, e.ThickFace))
}

// logNonConvergence is the settle() diagnostic side channel (§7).
func logNonConvergence(pass int, residual float64) {
	io.PfYel("warning: settle() did not converge after %d passes (residual=%g pN)\n", pass, residual)
}
