// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/multifil/mdl/head"
	"github.com/cpmech/multifil/mdl/tropo"
)

// SnapshotVersion is the current snapshot format version (§6).
const SnapshotVersion = "1.4"

// HeadSnapshot captures one crossbridge's mutable kinetic state.
type HeadSnapshot struct {
	State     int  `json:"state"`
	BoundSite int  `json:"bound_site"` // index into the opposing thin face's site list, -1 if free
}

// ThickSnapshot captures one thick filament's mutable state.
type ThickSnapshot struct {
	Crowns []float64                 `json:"crowns"`
	Faces  [6][]HeadSnapshot `json:"faces"`
}

// ThinSnapshot captures one thin filament's mutable state.
type ThinSnapshot struct {
	SiteAxial []float64 `json:"site_axial"`
	TmState   []int     `json:"tm_state"`
}

// Snapshot is the recursive object tree mirroring the component hierarchy,
// tagged with a version field (§6 "State snapshot format").
type Snapshot struct {
	Version string `json:"version"`

	LatticeSpacing float64 `json:"lattice_spacing"`
	ZLine          float64 `json:"z_line"`
	PCa            float64 `json:"p_ca"`

	TimestepLen     float64 `json:"timestep_len"`
	CurrentTimestep int     `json:"current_timestep"`

	HidingLine float64 `json:"hiding_line"`
	ZLine0     float64 `json:"z_line_0"`
	LS0        float64 `json:"ls_0"`
	Nu         float64 `json:"nu"`

	Thick [NThick]ThickSnapshot `json:"thick"`
	Thin  [NThin]ThinSnapshot   `json:"thin"`

	Seed int64 `json:"seed"`
}

// Save builds a Snapshot of the current state, including derived/cached
// runtime fields (§ SPEC_FULL "to_dict/from_dict full round trip"), but
// excluding the RNG stream's internal position (only its originating seed
// is carried, per §6's round-trip exclusion).
func (hs *HalfSarcomere) Save() Snapshot {
	snap := Snapshot{
		Version:         SnapshotVersion,
		LatticeSpacing:  hs.LatticeSpacing,
		ZLine:           hs.ZLine,
		PCa:             hs.PCa,
		TimestepLen:     hs.TimestepLen,
		CurrentTimestep: hs.CurrentTimestep,
		HidingLine:      hs.HidingLine,
		ZLine0:          hs.ZLine0,
		LS0:             hs.LS0,
		Nu:              hs.Nu,
		Seed:            hs.RNG.Seed(),
	}
	for ti, mf := range hs.Thick {
		ts := ThickSnapshot{Crowns: append([]float64(nil), mf.Crowns...)}
		for fi, face := range mf.Faces {
			heads := make([]HeadSnapshot, len(face.Crossbridges))
			for ci, xb := range face.Crossbridges {
				boundIdx := -1
				if xb.BoundSite() != nil && face.Opposing != nil {
					for si, s := range face.Opposing.Filament.Sites {
						if s == xb.BoundSite() {
							boundIdx = si
							break
						}
					}
				}
				heads[ci] = HeadSnapshot{State: int(xb.Head.State), BoundSite: boundIdx}
			}
			ts.Faces[fi] = heads
		}
		snap.Thick[ti] = ts
	}
	for fi, tf := range hs.Thin {
		axial := make([]float64, len(tf.Sites))
		states := make([]int, len(tf.Sites))
		for si, s := range tf.Sites {
			axial[si] = s.Axial
			states[si] = int(s.Tropo.State)
		}
		snap.Thin[fi] = ThinSnapshot{SiteAxial: axial, TmState: states}
	}
	return snap
}

// Load restores mutable state from a snapshot onto an already-constructed
// half-sarcomere (topology, springs, and rate constants come from Config
// and are assumed identical; only the fields that actually vary over a run
// are restored). The snapshot's Seed is not applied: the half-sarcomere
// keeps its own random stream. A version mismatch is a warning, not fatal
// (§7).
func (hs *HalfSarcomere) Load(snap Snapshot) {
	if snap.Version != SnapshotVersion {
		io.PfYel("warning: snapshot version %q does not match current version %q; loading best-effort\n", snap.Version, SnapshotVersion)
	}
	hs.LatticeSpacing = snap.LatticeSpacing
	hs.ZLine = snap.ZLine
	hs.PCa = snap.PCa
	hs.TimestepLen = snap.TimestepLen
	hs.CurrentTimestep = snap.CurrentTimestep
	hs.HidingLine = snap.HidingLine
	hs.ZLine0 = snap.ZLine0
	hs.LS0 = snap.LS0
	hs.Nu = snap.Nu

	for ti, mf := range hs.Thick {
		ts := snap.Thick[ti]
		copy(mf.Crowns, ts.Crowns)
		for fi, face := range mf.Faces {
			for ci, xb := range face.Crossbridges {
				hSnap := ts.Faces[fi][ci]
				xb.Head.State = head.State(hSnap.State)
				if hSnap.BoundSite >= 0 && face.Opposing != nil {
					site := face.Opposing.Filament.Sites[hSnap.BoundSite]
					site.BindTo(xb)
					xb.SetBoundSite(site)
				}
			}
		}
	}
	for fi, tf := range hs.Thin {
		ts := snap.Thin[fi]
		for si, s := range tf.Sites {
			s.Axial = ts.SiteAxial[si]
			s.Tropo.State = tropo.State(ts.TmState[si])
		}
	}
	hs.updateHidingLine()
	hs.updateVolumeAndSpecies()
}
