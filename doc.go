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

// Package exiv reads and writes EXIF, IPTC and XMP metadata of image files.
//
// # Images
//
// The main type in this package is the [Image] type.  Images are opened
// using [Open] or [FromBuffer].  The metadata is read using
// [Image.ReadMetadata] and written back using [Image.WriteMetadata].  The
// byte-level work is done by an [Engine]; importing the package
// seehuhn.de/go/exiv/jpegmeta registers an engine for JPEG files.
//
// # Keys
//
// Every tag is identified by a [Key], written in the form
// "Namespace.Group.Name", for example "Exif.Photo.DateTimeOriginal",
// "Iptc.Application2.Keywords" or "Xmp.dc.subject".  Use [ParseKey] to
// parse keys.  XMP keys use the prefix of a registered schema, see
// [RegisterNamespace].
//
// Static information about tags, like a human readable label, is available
// via [Lookup].  Tags which are not in the built-in tables can still be
// read and written.
//
// # Values
//
// Tag values are represented by the following types:
//
//   - [Text] represents a single string.
//   - [Array] is an ordered list of strings, used for XMP arrays and for
//     repeatable IPTC datasets.
//   - [LangAlt] maps language tags to text, for XMP language alternatives.
//
// Each namespace has a [Codec] which converts between these values and the
// raw strings stored by the engine.  Rational EXIF values given in decimal
// form are converted to fractions, e.g. "0.5" is stored as "1/2".
//
// # Tags
//
// The [Metadata] of an image holds the tags of all three namespaces.  Tag
// handles ([ExifTag], [IptcTag] and [XmpTag]) give typed access to a single
// tag.  Changes made through a handle are visible in the metadata
// immediately.  Handles become invalid when the metadata is read again.
package exiv
