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
	"bytes"
)

var (
	packetStart = []byte("<x:xmpmeta")
	packetEnd   = []byte("</x:xmpmeta")
)

// packetEndLen is the length of the complete closing tag "</x:xmpmeta>".
const packetEndLen = 12

// FindPacket locates the XMP packet embedded in the raw contents of a file.
//
// The returned fragment starts with the first "<x:xmpmeta" in data and ends
// with the closing "</x:xmpmeta>" tag which follows it.  The fragment is a
// copy and does not alias data.  If either marker is missing, FindPacket
// returns nil and false.  The fragment is not checked for well-formedness.
func FindPacket(data []byte) ([]byte, bool) {
	start := bytes.Index(data, packetStart)
	if start < 0 {
		return nil, false
	}
	rel := bytes.Index(data[start+len(packetStart):], packetEnd)
	if rel < 0 {
		return nil, false
	}
	end := start + len(packetStart) + rel + packetEndLen
	if end > len(data) {
		// truncated closing tag, leave it to the XML reader to complain
		end = len(data)
	}
	return bytes.Clone(data[start:end]), true
}
