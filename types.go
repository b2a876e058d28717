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

import "fmt"

// Item is a piece of sensor data produced by an [ItemParser].
type Item interface {
	ItemClass() ItemClass
}

// ItemClass identifies a kind of sensor data.
type ItemClass int

// These are the item classes known to sensor data readers.
const (
	ClassCameraParameters ItemClass = iota + 1
	ClassGPS
	ClassIMU
)

func (c ItemClass) String() string {
	switch c {
	case ClassCameraParameters:
		return "camera parameters"
	case ClassGPS:
		return "GPS"
	case ClassIMU:
		return "IMU"
	default:
		return fmt.Sprintf("ItemClass(%d)", int(c))
	}
}

// CameraParameters describes the projection of a panoramic image.
type CameraParameters struct {
	// HFOV is the horizontal field of view in degrees.
	HFOV float64

	// Projection is the projection used to map the scene to the image.
	Projection Projection
}

// ItemClass implements the [Item] interface.
func (CameraParameters) ItemClass() ItemClass {
	return ClassCameraParameters
}
