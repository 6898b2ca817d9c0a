// seehuhn.de/go/exiv - EXIF, IPTC and XMP image metadata in Go
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

package exiv

import (
	"bytes"
	"sync"
)

// Engine reads and writes the metadata segments of an image container.
type Engine interface {
	// Decode extracts the metadata from the given image data.
	Decode(data []byte) (*RawMetadata, error)

	// Encode returns a copy of data, where the metadata has been replaced
	// by the contents of raw.  Pixel data is copied unchanged.
	Encode(data []byte, raw *RawMetadata) ([]byte, error)
}

// RawMetadata is the information exchanged with an [Engine].
type RawMetadata struct {
	Width    int
	Height   int
	MimeType string

	Exif []Datum
	Iptc []Datum
	Xmp  []Datum

	Previews []Preview

	// Skipped is filled in by [Engine.Encode] with the keys of datums
	// which the container format cannot store.
	Skipped []Key
}

type engineInfo struct {
	name   string
	magic  []byte
	engine Engine
}

var engines struct {
	sync.RWMutex
	list []engineInfo
}

// RegisterEngine makes an engine available for images whose data starts
// with the given magic bytes.  If several engines match, the one registered
// first is used.
//
// RegisterEngine is typically called from the init function of the package
// implementing the engine.
func RegisterEngine(name string, magic []byte, e Engine) {
	engines.Lock()
	defer engines.Unlock()
	engines.list = append(engines.list, engineInfo{
		name:   name,
		magic:  bytes.Clone(magic),
		engine: e,
	})
}

// findEngine returns the first registered engine matching data.
func findEngine(data []byte) (string, Engine) {
	engines.RLock()
	defer engines.RUnlock()
	for _, info := range engines.list {
		if bytes.HasPrefix(data, info.magic) {
			return info.name, info.engine
		}
	}
	return "", nil
}
