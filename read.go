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
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// element is a node of a parsed XMP fragment.
type element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*element
	Text     string
}

// readTree reads an XML document into a tree of elements and returns the
// root element.  Comments, processing instructions and directives are
// ignored.  Character data is only kept for leaf elements.
func readTree(body []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var root *element
	var stack []*element
	var text strings.Builder
	for {
		t, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := t.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errMultipleRoots
			}
			e := &element{
				Name: t.Name,
				Attr: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
			text.Reset()
		case xml.EndElement:
			// The decoder checks that start and end elements match.
			e := stack[len(stack)-1]
			if len(e.Children) == 0 {
				e.Text = text.String()
			}
			stack = stack[:len(stack)-1]
			text.Reset()
		case xml.CharData:
			if len(stack) > 0 {
				text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, errNoRoot
	}
	if len(stack) > 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// descriptions returns the grandchildren of the root element in document
// order.  For an XMP packet these are the rdf:Description elements inside
// x:xmpmeta/rdf:RDF.
func (e *element) descriptions() []*element {
	var res []*element
	for _, child := range e.Children {
		res = append(res, child.Children...)
	}
	return res
}

var (
	errNoRoot        = errors.New("XMP fragment has no root element")
	errMultipleRoots = errors.New("XMP fragment has more than one root element")
)
