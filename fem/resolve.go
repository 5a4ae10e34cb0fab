// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/multifil/addr"
	"github.com/cpmech/multifil/ele"
)

// Resolve implements addr.Resolver: dispatch on Kind and return the
// referenced entity, or a not-found diagnostic (§6 — a stronger contract
// than the reference source's non-fatal warning).
func (hs *HalfSarcomere) Resolve(a addr.Address) (interface{}, error) {
	switch a.Kind {
	case addr.ThickFil:
		if a.FilamentIndex < 0 || a.FilamentIndex >= NThick {
			return nil, chk.Err("fem: resolve: no thick filament %d", a.FilamentIndex)
		}
		return hs.Thick[a.FilamentIndex], nil
	case addr.ThickFace:
		mf, err := hs.thick(a.FilamentIndex)
		if err != nil {
			return nil, err
		}
		if a.FaceIndex < 0 || a.FaceIndex >= 6 {
			return nil, chk.Err("fem: resolve: no thick face %d on filament %d", a.FaceIndex, a.FilamentIndex)
		}
		return mf.Faces[a.FaceIndex], nil
	case addr.Crown:
		mf, err := hs.thick(a.FilamentIndex)
		if err != nil {
			return nil, err
		}
		if a.FaceIndex < 0 || a.FaceIndex >= len(mf.Crowns) {
			return nil, chk.Err("fem: resolve: no crown %d on filament %d", a.FaceIndex, a.FilamentIndex)
		}
		return mf.Crowns[a.FaceIndex], nil
	case addr.XB:
		mf, err := hs.thick(a.FilamentIndex)
		if err != nil {
			return nil, err
		}
		if a.FaceIndex < 0 || a.FaceIndex >= 6 {
			return nil, chk.Err("fem: resolve: no thick face %d on filament %d", a.FaceIndex, a.FilamentIndex)
		}
		face := mf.Faces[a.FaceIndex]
		if a.ElemIndex < 0 || a.ElemIndex >= len(face.Crossbridges) {
			return nil, chk.Err("fem: resolve: no crossbridge %d on thick filament %d face %d", a.ElemIndex, a.FilamentIndex, a.FaceIndex)
		}
		return face.Crossbridges[a.ElemIndex], nil
	case addr.ThinFil:
		if a.FilamentIndex < 0 || a.FilamentIndex >= NThin {
			return nil, chk.Err("fem: resolve: no thin filament %d", a.FilamentIndex)
		}
		return hs.Thin[a.FilamentIndex], nil
	case addr.ThinFace:
		tf, err := hs.thin(a.FilamentIndex)
		if err != nil {
			return nil, err
		}
		if a.FaceIndex < 0 || a.FaceIndex >= 3 {
			return nil, chk.Err("fem: resolve: no thin face %d on filament %d", a.FaceIndex, a.FilamentIndex)
		}
		return tf.Faces[a.FaceIndex], nil
	case addr.BS:
		tf, err := hs.thin(a.FilamentIndex)
		if err != nil {
			return nil, err
		}
		if a.ElemIndex < 0 || a.ElemIndex >= len(tf.Sites) {
			return nil, chk.Err("fem: resolve: no binding site %d on filament %d", a.ElemIndex, a.FilamentIndex)
		}
		return tf.Sites[a.ElemIndex], nil
	case addr.TM, addr.TMSite:
		tf, err := hs.thin(a.FilamentIndex)
		if err != nil {
			return nil, err
		}
		if a.ElemIndex < 0 || a.ElemIndex >= len(tf.Sites) {
			return nil, chk.Err("fem: resolve: no tropomyosin site %d on filament %d", a.ElemIndex, a.FilamentIndex)
		}
		return tf.Sites[a.ElemIndex].Tropo, nil
	}
	return nil, chk.Err("fem: resolve: unknown address kind %q", a.Kind)
}

func (hs *HalfSarcomere) thick(i int) (*ele.ThickFilament, error) {
	if i < 0 || i >= NThick {
		return nil, chk.Err("fem: resolve: no thick filament %d", i)
	}
	return hs.Thick[i], nil
}

func (hs *HalfSarcomere) thin(i int) (*ele.ThinFilament, error) {
	if i < 0 || i >= NThin {
		return nil, chk.Err("fem: resolve: no thin filament %d", i)
	}
	return hs.Thin[i], nil
}
