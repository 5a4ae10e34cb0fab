// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package addr implements the addressing tuple used to name any entity
// within a half-sarcomere, following the teacher's tag-based element/cell
// addressing convention (ele/info.go).
package addr

import "fmt"

// Kind enumerates the addressable entity kinds.
type Kind string

const (
	ThinFil   Kind = "thin_fil"
	ThinFace  Kind = "thin_face"
	BS        Kind = "bs"
	TM        Kind = "tm"
	TMSite    Kind = "tm_site"
	ThickFil  Kind = "thick_fil"
	Crown     Kind = "crown"
	ThickFace Kind = "thick_face"
	XB        Kind = "xb"
)

// Address names an entity by kind plus up to three integer indices, whose
// meaning depends on Kind:
//
//	ThinFil/ThickFil:            (filament_index, -, -)
//	ThinFace/ThickFace:          (filament_index, face_index, -)
//	BS/TM/TMSite:                (filament_index, face_index, site_index)
//	Crown:                       (filament_index, crown_index, -)
//	XB:                          (filament_index, face_index, crown_index)
type Address struct {
	Kind                                 Kind
	FilamentIndex, FaceIndex, ElemIndex int
}

// New builds an address. ElemIndex is ignored by kinds that don't use it.
func New(kind Kind, filamentIndex, faceIndex, elemIndex int) Address {
	return Address{Kind: kind, FilamentIndex: filamentIndex, FaceIndex: faceIndex, ElemIndex: elemIndex}
}

func (a Address) String() string {
	return fmt.Sprintf("%s[%d,%d,%d]", a.Kind, a.FilamentIndex, a.FaceIndex, a.ElemIndex)
}

// Resolver is implemented by the half-sarcomere driver: Resolve dispatches
// on Kind and returns the referenced entity, or a not-found diagnostic.
// This is the stronger contract §6 asks for (a returned error), in place of
// the Python reference's non-fatal warnings.warn on an unresolvable
// address.
type Resolver interface {
	Resolve(a Address) (interface{}, error)
}
