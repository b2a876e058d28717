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

// Package pano reads panoramic camera parameters from the XMP metadata
// embedded in image files.
//
// # XMP Packets
//
// Image containers (JPEG, PNG, TIFF, MP4, ...) store XMP metadata in many
// different ways.  This package does not parse the container.  Instead,
// [FindPacket] scans the raw file contents for the <x:xmpmeta> element and
// returns it as a stand-alone XML fragment.
//
// # Camera Parameters
//
// [Extract] reads the fragment and looks for the three GPano properties
// FullPanoWidthPixels, CroppedAreaImageWidthPixels and ProjectionType.  Two
// encodings are understood:
//   - the RDF shorthand form, where the properties are attributes of an
//     rdf:Description element;
//   - the element form written by some cameras (for example Garmin), where
//     the properties are child elements of rdf:Description.
//
// If all three properties are found, the result is a [CameraParameters]
// value giving the horizontal field of view in degrees and the
// [Projection] of the image.
//
// # Parsers
//
// The [Parser] type implements the [ItemParser] interface used by sensor
// data readers: it is constructed from a file path and a [Storage], and
// it yields at most one [CameraParameters] item.  Use [ExtractMany] to
// process many files concurrently.
package pano
