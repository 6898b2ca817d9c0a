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

import "errors"

// Every error returned by this package wraps exactly one of the following
// values.  Use [errors.Is] to test for them.
var (
	// ErrInvalidKey is returned when a tag key is not well-formed.
	ErrInvalidKey = errors.New("invalid key format")

	// ErrTagNotFound is returned when a tag is not present in the metadata.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTypeMismatch is returned when a value does not fit the type of a tag.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMalformedLangAlt is returned when a lang-alt occurrence lacks a
	// valid language marker.
	ErrMalformedLangAlt = errors.New("malformed lang-alt entry")

	// ErrNotBound is returned when the value of a detached or stale tag
	// handle is accessed.
	ErrNotBound = errors.New("tag is not bound to metadata")

	// ErrUnreadableImage is returned when the image data cannot be decoded.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrNotYetRead is returned by [Image.WriteMetadata] when the metadata
	// has not been read successfully.
	ErrNotYetRead = errors.New("metadata not read yet")

	// ErrUnsupportedTarget is returned when metadata is written to an
	// image which was loaded from a buffer.
	ErrUnsupportedTarget = errors.New("unsupported write target")

	// ErrEngineWrite is returned when the metadata engine fails to encode
	// the image.
	ErrEngineWrite = errors.New("engine write failure")

	// ErrIO is returned when reading or writing a file fails.
	ErrIO = errors.New("i/o error")
)
