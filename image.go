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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Image is an image file or buffer together with its metadata.
//
// An Image is not safe for concurrent use.
type Image struct {
	filename string
	buf      []byte
	engine   Engine
	log      zerolog.Logger

	// the following fields are valid after a successful read
	read     bool
	data     []byte
	active   Engine
	width    int
	height   int
	mimeType string
	previews []Preview

	md *Metadata
}

// An Option configures an [Image].
type Option func(*Image)

// WithEngine sets the engine used to read and write the image.  By default,
// the engine is chosen based on the first bytes of the image data, see
// [RegisterEngine].
func WithEngine(e Engine) Option {
	return func(img *Image) {
		img.engine = e
	}
}

// WithLogger sets the logger used by the image.  By default, nothing is
// logged.
func WithLogger(l zerolog.Logger) Option {
	return func(img *Image) {
		img.log = l
	}
}

// Open returns an image handle for the given file.  The file is not
// accessed until [Image.ReadMetadata] is called.
func Open(filename string, opts ...Option) *Image {
	img := newImage(opts)
	img.filename = filename
	return img
}

// FromBuffer returns an image handle for image data held in memory.
// Metadata of such images can be read and modified, but
// [Image.WriteMetadata] fails; use [Image.DataBuffer] to obtain the
// modified image data.
func FromBuffer(data []byte, opts ...Option) *Image {
	img := newImage(opts)
	img.buf = append([]byte{}, data...)
	return img
}

func newImage(opts []Option) *Image {
	img := &Image{
		log: zerolog.Nop(),
		md:  &Metadata{},
	}
	for _, opt := range opts {
		opt(img)
	}
	return img
}

// ReadMetadata reads the metadata from the image.
//
// Every call discards changes which have not been written, and all tag
// handles obtained before become invalid.  If reading fails, the image has
// no metadata until a later call succeeds.
func (img *Image) ReadMetadata() error {
	img.clear()

	data := img.buf
	if img.filename != "" {
		var err error
		data, err = os.ReadFile(img.filename)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	e, name := img.engine, "custom"
	if e == nil {
		name, e = findEngine(data)
		if e == nil {
			return fmt.Errorf("%w: %s: unknown image format", ErrUnreadableImage, img.name())
		}
	}

	raw, err := e.Decode(data)
	if err == nil && raw == nil {
		err = errors.New("no metadata returned")
	}
	if err == nil {
		err = img.md.reset(raw.Exif, raw.Iptc, raw.Xmp)
	}
	if err != nil {
		img.log.Debug().Err(err).Str("image", img.name()).Str("engine", name).Msg("cannot read metadata")
		return fmt.Errorf("%w: %s: %w", ErrUnreadableImage, img.name(), err)
	}

	img.read = true
	img.data = data
	img.active = e
	img.width = raw.Width
	img.height = raw.Height
	img.mimeType = raw.MimeType
	img.previews = clonePreviews(raw.Previews)

	img.log.Debug().
		Str("image", img.name()).
		Str("engine", name).
		Str("mime", img.mimeType).
		Int("exif", len(raw.Exif)).
		Int("iptc", len(raw.Iptc)).
		Int("xmp", len(raw.Xmp)).
		Int("previews", len(raw.Previews)).
		Msg("metadata read")
	return nil
}

// clear puts the image into the "not read" state.
func (img *Image) clear() {
	img.read = false
	img.data = nil
	img.active = nil
	img.width = 0
	img.height = 0
	img.mimeType = ""
	img.previews = nil
	_ = img.md.reset(nil, nil, nil)
}

// WriteMetadata writes the metadata back to the image file.
//
// The file is replaced atomically, so that a failed write leaves the
// original file intact.
func (img *Image) WriteMetadata() error {
	if !img.read {
		return fmt.Errorf("%w: %s", ErrNotYetRead, img.name())
	}
	if img.filename == "" {
		return fmt.Errorf("%w: image was loaded from a buffer", ErrUnsupportedTarget)
	}

	out, err := img.encode()
	if err != nil {
		return err
	}
	err = writeFileAtomic(img.filename, out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	img.data = out

	img.log.Debug().
		Str("image", img.name()).
		Int("size", len(out)).
		Msg("metadata written")
	return nil
}

func (img *Image) encode() ([]byte, error) {
	raw := &RawMetadata{
		Width:    img.width,
		Height:   img.height,
		MimeType: img.mimeType,
		Exif:     img.md.Datums(Exif),
		Iptc:     img.md.Datums(Iptc),
		Xmp:      img.md.Datums(Xmp),
		Previews: clonePreviews(img.previews),
	}
	out, err := img.active.Encode(img.data, raw)
	if err != nil {
		img.log.Debug().Err(err).Str("image", img.name()).Msg("cannot encode metadata")
		return nil, fmt.Errorf("%w: %s: %w", ErrEngineWrite, img.name(), err)
	}
	for _, key := range raw.Skipped {
		img.log.Warn().
			Str("image", img.name()).
			Str("key", key.String()).
			Msg("tag not supported by the image format, not written")
	}
	return out, nil
}

// DataBuffer returns the image data, with the current metadata embedded.
func (img *Image) DataBuffer() ([]byte, error) {
	if !img.read {
		return nil, fmt.Errorf("%w: %s", ErrNotYetRead, img.name())
	}
	return img.encode()
}

// Metadata returns the metadata of the image.  Before a successful call to
// [Image.ReadMetadata], the metadata is empty.
func (img *Image) Metadata() *Metadata {
	return img.md
}

// CopyMetadata copies the selected namespaces of the metadata to another
// image.  Both images must have been read.  The destination is changed in
// memory only; call [Image.WriteMetadata] on dst to save the changes.
func (img *Image) CopyMetadata(dst *Image, sel Selection) error {
	if !img.read {
		return fmt.Errorf("%w: %s", ErrNotYetRead, img.name())
	}
	if !dst.read {
		return fmt.Errorf("%w: %s", ErrNotYetRead, dst.name())
	}
	img.md.CopyTo(dst.md, sel)
	return nil
}

// PixelWidth returns the width of the image in pixels, or 0 if the metadata
// has not been read.
func (img *Image) PixelWidth() int {
	return img.width
}

// PixelHeight returns the height of the image in pixels, or 0 if the
// metadata has not been read.
func (img *Image) PixelHeight() int {
	return img.height
}

// MimeType returns the MIME type of the image, or the empty string if the
// metadata has not been read.
func (img *Image) MimeType() string {
	return img.mimeType
}

// Previews returns the preview images embedded in the image.
func (img *Image) Previews() []Preview {
	return clonePreviews(img.previews)
}

func (img *Image) name() string {
	if img.filename != "" {
		return img.filename
	}
	return "<buffer>"
}

// writeFileAtomic replaces the contents of a file.  The new contents are
// first written to a temporary file in the same directory, which is then
// renamed.
func writeFileAtomic(filename string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(filename); err == nil {
		mode = fi.Mode().Perm()
	}

	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if err == nil {
		err = f.Chmod(mode)
	}
	if err != nil {
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}
	err = os.Rename(tmpName, filename)
	if errors.Is(err, os.ErrExist) {
		// some systems refuse to rename over an existing file
		if err = os.Remove(filename); err == nil {
			err = os.Rename(tmpName, filename)
		}
	}
	return err
}
