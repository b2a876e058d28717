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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result holds the camera parameters read from one file.
type Result struct {
	Path   string
	Camera CameraParameters

	// Found is false if the file has no usable panorama metadata.
	Found bool

	// HasXMP is true if the file contains an XMP packet.
	HasXMP bool
}

// ExtractFile reads the camera parameters of an image on the local file
// system.
func ExtractFile(path string) (CameraParameters, bool, error) {
	p, err := NewParser(path, DirStorage(""))
	if err != nil {
		return CameraParameters{}, false, err
	}
	cam, ok := p.Camera()
	return cam, ok, nil
}

// ExtractMany reads the camera parameters of several files concurrently.
//
// Up to runtime.NumCPU() files are read at the same time.  Results are
// returned in the order of paths.  If any file cannot be read, or if ctx
// is cancelled, the remaining files are skipped and the first error is
// returned.
func ExtractMany(ctx context.Context, st Storage, paths ...string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Result, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := NewParser(path, st)
			if err != nil {
				return err
			}
			cam, ok := p.Camera()
			results[i] = Result{
				Path:   path,
				Camera: cam,
				Found:  ok,
				HasXMP: len(p.fragment) > 0,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
