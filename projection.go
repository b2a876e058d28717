// seehuhn.de/go/pano - panorama camera parameters from XMP metadata
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pano

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
)

// Projection is the projection kind of a panoramic image, as given by the
// GPano:ProjectionType property.
type Projection int

// These are the supported projection kinds.
const (
	ProjectionUnknown Projection = iota
	ProjectionEquirectangular
	ProjectionCylindrical
	ProjectionRectilinear
	ProjectionFisheye
	ProjectionCubemap
)

var projectionNames = map[string]Projection{
	"equirectangular": ProjectionEquirectangular,
	"cylindrical":     ProjectionCylindrical,
	"rectilinear":     ProjectionRectilinear,
	"fisheye":         ProjectionFisheye,
	"cubemap":         ProjectionCubemap,
}

// ProjectionFromName returns the projection with the given XMP name.
// The comparison ignores case and surrounding white space.  Unrecognised
// names give ProjectionUnknown.
func ProjectionFromName(name string) Projection {
	key := cases.Fold().String(strings.TrimSpace(name))
	return projectionNames[key]
}

// ProjectionNames returns the XMP names of all recognised projections,
// in sorted order.
func ProjectionNames() []string {
	names := maps.Keys(projectionNames)
	sort.Strings(names)
	return names
}

// String returns the XMP name of the projection.
func (p Projection) String() string {
	for name, q := range projectionNames {
		if q == p {
			return name
		}
	}
	return "unknown"
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p Projection) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
