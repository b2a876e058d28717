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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	head = `<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="test">
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
`
	foot = `
</rdf:RDF>
</x:xmpmeta>`

	nsGPano = `xmlns:GPano="http://ns.google.com/photos/1.0/panorama/"`
)

// packet wraps rdf:Description elements into a complete XMP packet.
func packet(descriptions ...string) string {
	return head + strings.Join(descriptions, "\n") + foot
}

// attrDesc returns an rdf:Description element using the attribute form.
func attrDesc(attrs string) string {
	return `<rdf:Description rdf:about="" ` + nsGPano + " " + attrs + "/>"
}

// elemDesc returns an rdf:Description element using the element form.
func elemDesc(body string) string {
	return `<rdf:Description rdf:about="" ` + nsGPano + ">" + body + "</rdf:Description>"
}

type extractTestCase struct {
	desc string
	in   string
	out  CameraParameters
	ok   bool
}

var extractTestCases = []extractTestCase{
	{
		desc: "attributes",
		in: packet(attrDesc(`GPano:FullPanoWidthPixels="6000"
			GPano:CroppedAreaImageWidthPixels="3000"
			GPano:ProjectionType="equirectangular"`)),
		out: CameraParameters{HFOV: 180, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "elements",
		in: packet(elemDesc(`
			<GPano:FullPanoWidthPixels>6000</GPano:FullPanoWidthPixels>
			<GPano:CroppedAreaImageWidthPixels>3000</GPano:CroppedAreaImageWidthPixels>
			<GPano:ProjectionType>equirectangular</GPano:ProjectionType>`)),
		out: CameraParameters{HFOV: 180, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "elements with white space",
		in: packet(elemDesc(`
			<GPano:FullPanoWidthPixels>
				8000
			</GPano:FullPanoWidthPixels>
			<GPano:CroppedAreaImageWidthPixels> 2000 </GPano:CroppedAreaImageWidthPixels>
			<GPano:ProjectionType> Cylindrical </GPano:ProjectionType>`)),
		out: CameraParameters{HFOV: 90, Projection: ProjectionCylindrical},
		ok:  true,
	},
	{
		desc: "undeclared prefix",
		in: head + `<rdf:Description FullPanoWidthPixels="4000"
			CroppedAreaImageWidthPixels="4000"
			ProjectionType="equirectangular"/>` + foot,
		out: CameraParameters{HFOV: 360, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "unknown projection",
		in: packet(attrDesc(`GPano:FullPanoWidthPixels="6000"
			GPano:CroppedAreaImageWidthPixels="1500"
			GPano:ProjectionType="mercator"`)),
		out: CameraParameters{HFOV: 90, Projection: ProjectionUnknown},
		ok:  true,
	},
	{
		desc: "split over descriptions",
		in: packet(
			attrDesc(`GPano:FullPanoWidthPixels="6000"`),
			elemDesc(`<GPano:CroppedAreaImageWidthPixels>3000</GPano:CroppedAreaImageWidthPixels>
				<GPano:ProjectionType>equirectangular</GPano:ProjectionType>`),
		),
		out: CameraParameters{HFOV: 180, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "first complete description wins",
		in: packet(
			attrDesc(`GPano:FullPanoWidthPixels="6000"
				GPano:CroppedAreaImageWidthPixels="3000"
				GPano:ProjectionType="equirectangular"`),
			attrDesc(`GPano:FullPanoWidthPixels="1000"
				GPano:CroppedAreaImageWidthPixels="1000"
				GPano:ProjectionType="cylindrical"`),
		),
		out: CameraParameters{HFOV: 180, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "elements override attributes",
		in: packet(`<rdf:Description rdf:about="" ` + nsGPano + `
				GPano:FullPanoWidthPixels="6000"
				GPano:CroppedAreaImageWidthPixels="3000"
				GPano:ProjectionType="equirectangular">
			<GPano:CroppedAreaImageWidthPixels>1500</GPano:CroppedAreaImageWidthPixels>
		</rdf:Description>`),
		out: CameraParameters{HFOV: 90, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "later elements override earlier attributes",
		in: packet(
			attrDesc(`GPano:FullPanoWidthPixels="6000" GPano:CroppedAreaImageWidthPixels="3000"`),
			elemDesc(`<GPano:CroppedAreaImageWidthPixels>1500</GPano:CroppedAreaImageWidthPixels>
				<GPano:ProjectionType>equirectangular</GPano:ProjectionType>`),
		),
		out: CameraParameters{HFOV: 90, Projection: ProjectionEquirectangular},
		ok:  true,
	},
	{
		desc: "missing projection",
		in:   packet(attrDesc(`GPano:FullPanoWidthPixels="6000" GPano:CroppedAreaImageWidthPixels="3000"`)),
	},
	{
		desc: "missing cropped width",
		in:   packet(attrDesc(`GPano:FullPanoWidthPixels="6000" GPano:ProjectionType="equirectangular"`)),
	},
	{
		desc: "missing full width",
		in:   packet(attrDesc(`GPano:CroppedAreaImageWidthPixels="3000" GPano:ProjectionType="equirectangular"`)),
	},
	{
		desc: "missing projection element",
		in: packet(elemDesc(`<GPano:FullPanoWidthPixels>6000</GPano:FullPanoWidthPixels>
			<GPano:CroppedAreaImageWidthPixels>3000</GPano:CroppedAreaImageWidthPixels>`)),
	},
	{
		desc: "missing cropped width element",
		in: packet(elemDesc(`<GPano:FullPanoWidthPixels>6000</GPano:FullPanoWidthPixels>
			<GPano:ProjectionType>equirectangular</GPano:ProjectionType>`)),
	},
	{
		desc: "missing full width element",
		in: packet(elemDesc(`<GPano:CroppedAreaImageWidthPixels>3000</GPano:CroppedAreaImageWidthPixels>
			<GPano:ProjectionType>equirectangular</GPano:ProjectionType>`)),
	},
	{
		desc: "zero full width",
		in: packet(attrDesc(`GPano:FullPanoWidthPixels="0"
			GPano:CroppedAreaImageWidthPixels="3000"
			GPano:ProjectionType="equirectangular"`)),
	},
	{
		desc: "negative full width",
		in: packet(attrDesc(`GPano:FullPanoWidthPixels="-6000"
			GPano:CroppedAreaImageWidthPixels="3000"
			GPano:ProjectionType="equirectangular"`)),
	},
	{
		desc: "non-numeric width",
		in: packet(attrDesc(`GPano:FullPanoWidthPixels="wide"
			GPano:CroppedAreaImageWidthPixels="3000"
			GPano:ProjectionType="equirectangular"`)),
	},
	{
		desc: "properties too deep",
		in: packet(`<rdf:Description rdf:about="">
			<x:extra>` + attrDesc(`GPano:FullPanoWidthPixels="6000"
				GPano:CroppedAreaImageWidthPixels="3000"
				GPano:ProjectionType="equirectangular"`) + `</x:extra>
		</rdf:Description>`),
	},
	{
		desc: "unclosed tag",
		in:   head + `<rdf:Description rdf:about="">` + foot,
	},
	{
		desc: "truncated",
		in: strings.TrimSuffix(packet(attrDesc(`GPano:FullPanoWidthPixels="6000"
			GPano:CroppedAreaImageWidthPixels="3000"
			GPano:ProjectionType="equirectangular"`)), "</x:xmpmeta>"),
	},
	{
		desc: "two roots",
		in:   `<x:xmpmeta/><x:xmpmeta/>`,
	},
	{
		desc: "text only",
		in:   `no XML here`,
	},
	{
		desc: "empty",
		in:   ``,
	},
}

func TestExtract(t *testing.T) {
	for _, tc := range extractTestCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, ok := Extract([]byte(tc.in))
			if ok != tc.ok {
				t.Fatalf("ok = %t, want %t", ok, tc.ok)
			}
			if d := cmp.Diff(got, tc.out); d != "" {
				t.Fatalf("unexpected camera parameters (-got +want):\n%s", d)
			}
		})
	}
}

// TestEncodingsAgree checks that the attribute form and the element form
// give the same result for the same values.
func TestEncodingsAgree(t *testing.T) {
	type values struct {
		full, cropped, projection string
	}
	cases := []values{
		{"6000", "3000", "equirectangular"},
		{"7200", "1800", "cylindrical"},
		{"5376", "5376", "equirectangular"},
		{"1000", "333", "fisheye"},
	}
	for _, v := range cases {
		attr := packet(attrDesc(`GPano:FullPanoWidthPixels="` + v.full +
			`" GPano:CroppedAreaImageWidthPixels="` + v.cropped +
			`" GPano:ProjectionType="` + v.projection + `"`))
		elem := packet(elemDesc(
			"<GPano:FullPanoWidthPixels>" + v.full + "</GPano:FullPanoWidthPixels>" +
				"<GPano:CroppedAreaImageWidthPixels>" + v.cropped + "</GPano:CroppedAreaImageWidthPixels>" +
				"<GPano:ProjectionType>" + v.projection + "</GPano:ProjectionType>"))

		cam1, ok1 := Extract([]byte(attr))
		cam2, ok2 := Extract([]byte(elem))
		if !ok1 || !ok2 {
			t.Fatalf("%v: extraction failed: %t %t", v, ok1, ok2)
		}
		if d := cmp.Diff(cam1, cam2); d != "" {
			t.Errorf("%v: encodings disagree (-attr +elem):\n%s", v, d)
		}
	}
}

func TestCollectFields(t *testing.T) {
	in := packet(
		attrDesc(`GPano:FullPanoWidthPixels="6000"`),
		elemDesc(`<GPano:ProjectionType>equirectangular</GPano:ProjectionType>`),
	)
	root, err := readTree([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	f := collectFields(root)
	if f.complete() {
		t.Fatal("fields should be incomplete")
	}
	if f.FullPanoWidth == nil || *f.FullPanoWidth != 6000 {
		t.Errorf("FullPanoWidth = %v, want 6000", f.FullPanoWidth)
	}
	if f.CroppedAreaWidth != nil {
		t.Errorf("CroppedAreaWidth = %d, want unset", *f.CroppedAreaWidth)
	}
	if f.ProjectionName == nil || *f.ProjectionName != "equirectangular" {
		t.Errorf("ProjectionName = %v, want equirectangular", f.ProjectionName)
	}
}

func FuzzExtract(f *testing.F) {
	for _, tc := range extractTestCases {
		f.Add([]byte(tc.in))
	}

	f.Fuzz(func(t *testing.T, body []byte) {
		cam, ok := Extract(body)
		if !ok {
			if cam != (CameraParameters{}) {
				t.Fatalf("non-zero result without camera parameters: %v", cam)
			}
			return
		}
		if math.IsNaN(cam.HFOV) || math.IsInf(cam.HFOV, 0) {
			t.Fatalf("invalid field of view %g", cam.HFOV)
		}

		// extraction is deterministic
		cam2, ok2 := Extract(body)
		if !ok2 || cam2 != cam {
			t.Fatalf("second extraction differs: %v %t", cam2, ok2)
		}
	})
}
