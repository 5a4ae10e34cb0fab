// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the configuration ("meta") record (§6) and its
// resolution into a fem.Config plus per-crossbridge isoform assignment,
// following the teacher's inp/sim.go JSON-tagged Simulation/Stage/Data
// record family.
package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/multifil/fem"
	"github.com/cpmech/multifil/mdl/tropo"
)

// IsoPrm is one named myosin-isoform parameter record, carrying its
// relative population probability (§9 "mh_iso").
type IsoPrm struct {
	Name string     `json:"name"`
	IsoP float64    `json:"iso_p"`
	Prms fun.Prms   `json:"prms"`
}

// Starts carries the deterministic per-filament polymer phase offsets
// (§6 "starts").
type Starts struct {
	ThinStarts  [fem.NThin]float64  `json:"thin_starts"`
	ThickStarts [fem.NThick]float64 `json:"thick_starts"`
}

// Meta is the configuration record (§6), matching the enumerated keys
// named in spec §6 and §9.
type Meta struct {
	Name       string `json:"name"`
	Comment    string `json:"comment"`
	PathLocal  string `json:"path_local"`
	PathS3     string `json:"path_s3"`

	TimestepLength float64 `json:"timestep_length"`
	TimestepNumber int     `json:"timestep_number"`

	LatticeSpacing interface{} `json:"lattice_spacing"` // scalar or []float64
	ZLine          interface{} `json:"z_line"`           // scalar or []float64
	PCa            interface{} `json:"pCa"`               // scalar or []float64 (a.k.a actin_permissiveness)

	PoissonRatio float64 `json:"poisson_ratio"`

	TitinParams *[2]float64 `json:"titin_params"`

	MhCluster []int     `json:"mh_cluster"`
	MhIso     []IsoPrm  `json:"mh_iso"`

	Starts *Starts `json:"starts"`

	// Prms carries any mh_*/tm_* named overrides (§9): myosin head spring/
	// rate constants and tropomyosin rate constants share this one record,
	// since both head.NewDefault and tropo.RatesFromPrms ignore entries
	// whose name they don't recognize.
	Prms fun.Prms `json:"prms"`

	Seed int64 `json:"seed"`
}

// recognizedKeys mirrors §9's enumerated configuration-record keys, used
// only to decide whether a caller-supplied raw key map carries anything
// unrecognized (see WarnUnknownKeys).
var recognizedKeys = map[string]bool{
	"name": true, "comment": true, "path_local": true, "path_s3": true,
	"timestep_length": true, "timestep_number": true,
	"lattice_spacing": true, "z_line": true, "pCa": true, "actin_permissiveness": true,
	"poisson_ratio": true, "titin_params": true,
	"mh_cluster": true, "mh_iso": true, "starts": true, "seed": true, "prms": true,
	"mh_c_ks": true, "mh_c_kw": true, "mh_c_rw": true, "mh_c_rs": true,
	"mh_g_ks": true, "mh_g_kw": true, "mh_g_rw": true, "mh_g_rs": true,
	"mh_br": true, "mh_dr": true,
	"tm_k12max": true, "tm_kd12": true, "tm_k21": true, "tm_k23base": true,
	"tm_k32base": true, "tm_coop": true, "tm_k13": true, "tm_k31": true,
}

// WarnUnknownKeys logs (via the io side channel, never as an error) any
// key in raw not present in the recognized set (§9 "Unknown keys should
// produce a warning").
func WarnUnknownKeys(raw map[string]interface{}) {
	for k := range raw {
		if !recognizedKeys[k] {
			io.PfYel("warning: unrecognized configuration key %q\n", k)
		}
	}
}

// scalarOrTrace reads a meta field that may be a single float64 or a
// []float64 of length timestepNumber, returning nil for "hold at whatever
// default" when v is nil.
func scalarOrTrace(v interface{}, timestepNumber int) ([]float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		trace := make([]float64, timestepNumber)
		for i := range trace {
			trace[i] = t
		}
		return trace, nil
	case []float64:
		if len(t) != timestepNumber {
			return nil, chk.Err("inp: time-dependence trace length %d does not match timestep_number %d", len(t), timestepNumber)
		}
		return t, nil
	default:
		return nil, chk.Err("inp: unsupported time-dependence value type %T", v)
	}
}

// ToFemConfig resolves a Meta record into a fem.Config and the resolved
// boundary-condition traces.
func (m *Meta) ToFemConfig() (fem.Config, fem.TimeDependence, error) {
	cfg := fem.DefaultConfig()
	cfg.Seed = m.Seed
	if m.PoissonRatio != 0 {
		cfg.Nu = m.PoissonRatio
	}
	if m.Prms != nil {
		cfg.HeadPrms = m.Prms
		cfg.TropoRates = tropo.RatesFromPrms(m.Prms)
	}
	if m.TitinParams != nil {
		cfg.TitinA, cfg.TitinB = m.TitinParams[0], m.TitinParams[1]
	}
	if m.Starts != nil {
		cfg.ThinStarts = m.Starts.ThinStarts
		cfg.ThickStarts = m.Starts.ThickStarts
	}

	ls, err := scalarOrTrace(m.LatticeSpacing, m.TimestepNumber)
	if err != nil {
		return cfg, fem.TimeDependence{}, err
	}
	if ls != nil {
		cfg.LS0 = ls[0]
	}
	zl, err := scalarOrTrace(m.ZLine, m.TimestepNumber)
	if err != nil {
		return cfg, fem.TimeDependence{}, err
	}
	if zl != nil {
		cfg.ZLine0 = zl[0]
	}
	pca, err := scalarOrTrace(m.PCa, m.TimestepNumber)
	if err != nil {
		return cfg, fem.TimeDependence{}, err
	}

	td := fem.TimeDependence{LatticeSpacing: ls, ZLine: zl, PCa: pca}
	return cfg, td, nil
}

// IsoformPrms resolves the per-crossbridge myosin head parameter record
// for crossbridge index xbIndex: mh_cluster, if present, deterministically
// indexes into mh_iso; otherwise a single uniform01() draw picks an isoform
// weighted by iso_p (§9). isoRegistry mirrors the teacher's
// rnd.Variables-based description of each named distribution
// (inp/sim.go's AdjRandom), even though the categorical draw itself is
// performed against the half-sarcomere's own explicit stream rather than
// gosl/rnd's process-global sampler (see DESIGN.md).
func (m *Meta) IsoformPrms(xbIndex int, uniform01 func() float64) fun.Prms {
	if len(m.MhIso) == 0 {
		return nil
	}
	if m.MhCluster != nil && xbIndex < len(m.MhCluster) {
		idx := m.MhCluster[xbIndex]
		if idx >= 0 && idx < len(m.MhIso) {
			return m.MhIso[idx].Prms
		}
	}
	isoRegistry := make(rnd.Variables, 0, len(m.MhIso))
	var total float64
	for _, iso := range m.MhIso {
		total += iso.IsoP
		isoRegistry = append(isoRegistry, &rnd.VarData{M: iso.IsoP, Key: iso.Name})
	}
	u := uniform01() * total
	var cum float64
	for i, iso := range m.MhIso {
		cum += iso.IsoP
		if u <= cum {
			return m.MhIso[i].Prms
		}
	}
	return m.MhIso[len(m.MhIso)-1].Prms
}
