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
	"fmt"
)

// ItemParser is the interface implemented by readers of sensor data files.
type ItemParser interface {
	// SupportedClasses lists the item classes the parser can produce.
	SupportedClasses() []ItemClass

	// FormatVersion returns the version of the file format.  The second
	// return value is false if the format has no version.
	FormatVersion() (string, bool)

	// Next returns the next item from the file.
	Next() (Item, bool)

	// Items returns all items from the file.
	Items() []Item

	// NextOf returns the next item of the given class.
	NextOf(class ItemClass) (Item, bool)

	// ItemsOf returns all items of the given class.
	ItemsOf(class ItemClass) []Item

	// Serialize writes the items back to the file.
	Serialize() error
}

var _ ItemParser = (*Parser)(nil)

// Parser reads the camera parameters of a panoramic image.
//
// A file contains at most one set of camera parameters, so a Parser yields
// at most one item.  Next does not advance: repeated calls return the same
// value.
type Parser struct {
	path     string
	fragment []byte
}

// NewParser reads the file at path from st and locates its XMP packet.
// The file is closed before NewParser returns.  Errors from st are
// returned wrapped, a file without XMP data is not an error.
func NewParser(path string, st Storage) (*Parser, error) {
	data, err := readAll(st, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	fragment, _ := FindPacket(data)
	p := &Parser{
		path:     path,
		fragment: fragment,
	}
	return p, nil
}

// ValidParser returns a parser for the file at path.  Every file is
// accepted, since XMP packets can be embedded in arbitrary containers.
func ValidParser(path string, st Storage) (ItemParser, error) {
	p, err := NewParser(path, st)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Path returns the path the parser was constructed with.
func (p *Parser) Path() string {
	return p.path
}

// Fragment returns a copy of the XMP packet found in the file.  The result
// is empty if the file contains no XMP packet.
func (p *Parser) Fragment() []byte {
	return bytes.Clone(p.fragment)
}

// Camera returns the camera parameters of the image.
func (p *Parser) Camera() (CameraParameters, bool) {
	return Extract(p.fragment)
}

// SupportedClasses implements the [ItemParser] interface.
func (p *Parser) SupportedClasses() []ItemClass {
	return []ItemClass{ClassCameraParameters}
}

// FormatVersion implements the [ItemParser] interface.
// XMP packets carry no format version.
func (p *Parser) FormatVersion() (string, bool) {
	return "", false
}

// Next implements the [ItemParser] interface.
func (p *Parser) Next() (Item, bool) {
	cam, ok := p.Camera()
	if !ok {
		return nil, false
	}
	return cam, true
}

// Items implements the [ItemParser] interface.
// The result has length zero or one.
func (p *Parser) Items() []Item {
	item, ok := p.Next()
	if !ok {
		return nil
	}
	return []Item{item}
}

// NextOf implements the [ItemParser] interface.
func (p *Parser) NextOf(class ItemClass) (Item, bool) {
	if class != ClassCameraParameters {
		return nil, false
	}
	return p.Next()
}

// ItemsOf implements the [ItemParser] interface.
func (p *Parser) ItemsOf(class ItemClass) []Item {
	item, ok := p.NextOf(class)
	if !ok {
		return nil
	}
	return []Item{item}
}

// CanSerialize reports whether [Parser.Serialize] is supported.
// This is always false.
func (p *Parser) CanSerialize() bool {
	return false
}

// Serialize implements the [ItemParser] interface.  Writing XMP data is
// not supported and the returned error is an [*UnsupportedWriteError].
// The file is left untouched.
func (p *Parser) Serialize() error {
	return &UnsupportedWriteError{
		Path:   p.path,
		Reason: "XMP camera parameters are read-only",
	}
}
