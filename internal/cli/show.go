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

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pano"
)

// report is the output record for one file.
type report struct {
	Path       string   `yaml:"path"`
	Found      bool     `yaml:"found"`
	HFOV       *float64 `yaml:"hfov,omitempty"`
	Projection string   `yaml:"projection,omitempty"`
}

func run(cmd *cobra.Command, opts *options, paths []string) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	st := pano.DirStorage(opts.root)
	out := cmd.OutOrStdout()

	if opts.dumpXMP {
		return dumpXMP(out, st, paths)
	}

	results, err := pano.ExtractMany(cmd.Context(), st, paths...)
	if err != nil {
		return err
	}

	reports := make([]report, 0, len(results))
	for _, res := range results {
		logger.Debug("file read",
			"path", res.Path,
			"xmp", res.HasXMP,
			"panorama", res.Found)

		r := report{Path: res.Path, Found: res.Found}
		if res.Found {
			hfov := res.Camera.HFOV
			r.HFOV = &hfov
			r.Projection = res.Camera.Projection.String()
		}
		reports = append(reports, r)
	}

	if opts.format == formatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(out, reports)
}

func writeText(w io.Writer, reports []report) error {
	for _, r := range reports {
		var err error
		if r.Found {
			_, err = fmt.Fprintf(w, "%s: hfov=%.2f projection=%s\n", r.Path, *r.HFOV, r.Projection)
		} else {
			_, err = fmt.Fprintf(w, "%s: no panorama metadata\n", r.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func dumpXMP(w io.Writer, st pano.Storage, paths []string) error {
	for _, path := range paths {
		p, err := pano.NewParser(path, st)
		if err != nil {
			return err
		}
		fragment := p.Fragment()
		if len(fragment) == 0 {
			continue
		}
		if len(paths) > 1 {
			if _, err := fmt.Fprintf(w, "==> %s <==\n", path); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", fragment); err != nil {
			return err
		}
	}
	return nil
}
