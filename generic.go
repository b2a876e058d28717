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
	"strconv"
	"strings"
)

// panoFields holds the GPano properties needed to compute the camera
// parameters.  A nil field has not been found.
type panoFields struct {
	FullPanoWidth    *int
	CroppedAreaWidth *int
	ProjectionName   *string
}

// complete reports whether all three fields have been found.
func (f panoFields) complete() bool {
	return f.FullPanoWidth != nil && f.CroppedAreaWidth != nil && f.ProjectionName != nil
}

// merge returns f with every field that is set in g replaced by the value
// from g.  Fields which are unset in g keep their value from f.
func (f panoFields) merge(g panoFields) panoFields {
	if g.FullPanoWidth != nil {
		f.FullPanoWidth = g.FullPanoWidth
	}
	if g.CroppedAreaWidth != nil {
		f.CroppedAreaWidth = g.CroppedAreaWidth
	}
	if g.ProjectionName != nil {
		f.ProjectionName = g.ProjectionName
	}
	return f
}

// set stores value in the field selected by name.  Names are matched by
// substring, so that both "FullPanoWidthPixels" and vendor specific
// variants like "GPano.FullPanoWidthPixels" are recognised.  Values which
// cannot be parsed leave the field unchanged.
func (f *panoFields) set(name, value string) {
	switch {
	case strings.Contains(name, propFullPanoWidth):
		if n, ok := parsePixels(value); ok {
			f.FullPanoWidth = &n
		}
	case strings.Contains(name, propCroppedAreaWidth):
		if n, ok := parsePixels(value); ok {
			f.CroppedAreaWidth = &n
		}
	case strings.Contains(name, propProjectionType):
		f.ProjectionName = &value
	}
}

func parsePixels(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// genericFields reads the GPano properties from the attributes of an
// rdf:Description element.  This is the RDF shorthand form, where simple
// unqualified properties are written as attributes:
//
//	<rdf:Description GPano:FullPanoWidthPixels="6000" ... />
func genericFields(desc *element) panoFields {
	var f panoFields
	for _, a := range desc.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		f.set(a.Name.Local, a.Value)
	}
	return f
}

// vendorFields reads the GPano properties from the child elements of an
// rdf:Description element.  This form is used by Garmin cameras, amongst
// others:
//
//	<rdf:Description>
//	  <GPano:FullPanoWidthPixels>6000</GPano:FullPanoWidthPixels>
//	  ...
//	</rdf:Description>
func vendorFields(desc *element) panoFields {
	var f panoFields
	for _, child := range desc.Children {
		f.set(child.Name.Local, strings.TrimSpace(child.Text))
	}
	return f
}

const (
	propFullPanoWidth    = "FullPanoWidthPixels"
	propCroppedAreaWidth = "CroppedAreaImageWidthPixels"
	propProjectionType   = "ProjectionType"
)
