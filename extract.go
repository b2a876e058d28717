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

// Extract reads the camera parameters from an XMP fragment, as returned by
// [FindPacket].
//
// The second return value is false if the fragment is not well-formed XML,
// if one of the properties FullPanoWidthPixels, CroppedAreaImageWidthPixels
// or ProjectionType is missing, or if the full panorama width is not
// positive.
func Extract(fragment []byte) (CameraParameters, bool) {
	if len(fragment) == 0 {
		return CameraParameters{}, false
	}
	root, err := readTree(fragment)
	if err != nil {
		return CameraParameters{}, false
	}
	return fieldsToCamera(collectFields(root))
}

// collectFields walks the rdf:Description level of the XMP tree.
//
// Both encodings are tried on every description element.  A later result
// only replaces the fields it actually contains, so that properties from
// the element form take precedence over attributes seen before, without
// discarding attributes the element form does not repeat.  Once the
// attribute form alone has produced all three properties, no further
// description elements are visited.
func collectFields(root *element) panoFields {
	var f panoFields
	for _, desc := range root.descriptions() {
		f = f.merge(genericFields(desc))
		done := f.complete()
		f = f.merge(vendorFields(desc))
		if done {
			break
		}
	}
	return f
}

func fieldsToCamera(f panoFields) (CameraParameters, bool) {
	if !f.complete() {
		return CameraParameters{}, false
	}
	full := *f.FullPanoWidth
	if full <= 0 {
		return CameraParameters{}, false
	}
	cam := CameraParameters{
		HFOV:       float64(*f.CroppedAreaWidth) * 360 / float64(full),
		Projection: ProjectionFromName(*f.ProjectionName),
	}
	return cam, true
}
