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

// Package cli implements the panoinfo command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type options struct {
	root    string
	format  string
	dumpXMP bool
	verbose bool
}

// NewRootCmd returns the panoinfo command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "panoinfo [flags] file...",
		Short: "Show panorama camera parameters stored in XMP metadata",
		Long: `panoinfo reads the XMP packet embedded in image files and prints the
horizontal field of view and projection of panoramic images.

Files without panorama metadata are reported, but are not an error.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.root, "root", "", "resolve relative file names against this directory")
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format (text or yaml)")
	flags.BoolVar(&opts.dumpXMP, "dump-xmp", false, "print the embedded XMP packet instead of the camera parameters")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostic messages to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newProjectionsCmd())

	return cmd
}

// Execute runs the panoinfo command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger returns a logger writing to w.  Only warnings and errors are
// shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w %q (use %q or %q)", errUnknownFormat, format, formatText, formatYAML)
	}
}

const (
	formatText = "text"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")
