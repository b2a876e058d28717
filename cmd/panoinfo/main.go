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

// Panoinfo prints the panorama camera parameters stored in image files.
package main

import (
	"os"

	"seehuhn.de/go/pano/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
