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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var fakeMagic = []byte("FAKE\n")

// fakeEngine stores EXIF tags as "key=value" lines after a magic header.
type fakeEngine struct {
	encodeErr error
}

func (fakeEngine) Decode(data []byte) (*RawMetadata, error) {
	body, ok := bytes.CutPrefix(data, fakeMagic)
	if !ok {
		return nil, errors.New("not a fake image")
	}
	raw := &RawMetadata{
		Width:    640,
		Height:   480,
		MimeType: "image/x-fake",
		Previews: []Preview{
			{MimeType: "image/x-fake", Extension: ".fake", Width: 16, Height: 12, Data: []byte("thumb")},
		},
	}
	for _, line := range strings.Split(string(body), "\n") {
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		key, err := ParseKey(k)
		if err != nil {
			return nil, err
		}
		raw.Exif = append(raw.Exif, Datum{Key: key, Type: "Ascii", Values: []string{v}})
	}
	return raw, nil
}

func (e fakeEngine) Encode(data []byte, raw *RawMetadata) ([]byte, error) {
	if e.encodeErr != nil {
		return nil, e.encodeErr
	}
	buf := &bytes.Buffer{}
	buf.Write(fakeMagic)
	for _, d := range raw.Exif {
		fmt.Fprintf(buf, "%s=%s\n", d.Key, d.Values[0])
	}
	return buf.Bytes(), nil
}

func init() {
	RegisterEngine("fake", fakeMagic, fakeEngine{})
}

func writeFakeImage(t *testing.T, lines ...string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "test.fake")
	data := string(fakeMagic) + strings.Join(lines, "\n")
	err := os.WriteFile(fname, []byte(data), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestImageReadWrite(t *testing.T) {
	fname := writeFakeImage(t, "Exif.Image.Make=Canon", "Exif.Image.Model=EOS")

	img := Open(fname)
	err := img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	if img.PixelWidth() != 640 || img.PixelHeight() != 480 || img.MimeType() != "image/x-fake" {
		t.Errorf("unexpected image info %dx%d %q", img.PixelWidth(), img.PixelHeight(), img.MimeType())
	}

	md := img.Metadata()
	err = md.SetExifTagValue("Exif.Image.Make", "Nikon")
	if err != nil {
		t.Fatal(err)
	}
	err = md.Delete(MustParseKey("Exif.Image.Model"))
	if err != nil {
		t.Fatal(err)
	}
	err = img.WriteMetadata()
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "FAKE\nExif.Image.Make=Nikon\n" {
		t.Errorf("unexpected file contents %q", data)
	}

	// no temporary files are left behind, and the mode is kept
	entries, err := os.ReadDir(filepath.Dir(fname))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file, found %d", len(entries))
	}
	fi, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("file mode changed to %v", fi.Mode())
	}

	img2 := Open(fname)
	err = img2.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	keys := img2.Metadata().Keys(Exif)
	if len(keys) != 1 || keys[0].String() != "Exif.Image.Make" {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestImageNotRead(t *testing.T) {
	img := Open(writeFakeImage(t))
	err := img.WriteMetadata()
	if !errors.Is(err, ErrNotYetRead) {
		t.Errorf("expected ErrNotYetRead, got %v", err)
	}
	_, err = img.DataBuffer()
	if !errors.Is(err, ErrNotYetRead) {
		t.Errorf("expected ErrNotYetRead, got %v", err)
	}
	if img.PixelWidth() != 0 || img.MimeType() != "" {
		t.Error("image info available before read")
	}
	if n := len(img.Metadata().Keys(Exif)); n != 0 {
		t.Errorf("found %d keys before read", n)
	}
}

func TestImageBuffer(t *testing.T) {
	data := []byte("FAKE\nExif.Image.Make=Canon\n")
	img := FromBuffer(data)
	err := img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	err = img.Metadata().SetExifTagValue("Exif.Image.Model", "EOS")
	if err != nil {
		t.Fatal(err)
	}

	err = img.WriteMetadata()
	if !errors.Is(err, ErrUnsupportedTarget) {
		t.Errorf("expected ErrUnsupportedTarget, got %v", err)
	}

	out, err := img.DataBuffer()
	if err != nil {
		t.Fatal(err)
	}
	want := "FAKE\nExif.Image.Make=Canon\nExif.Image.Model=EOS\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
	if string(data) != "FAKE\nExif.Image.Make=Canon\n" {
		t.Error("input buffer was modified")
	}
}

func TestImageUnreadable(t *testing.T) {
	cases := []struct {
		name string
		img  *Image
		want error
	}{
		{"unknown format", FromBuffer([]byte("GIF89a")), ErrUnreadableImage},
		{"engine error", FromBuffer([]byte("FAKE\nno separator")), ErrUnreadableImage},
		{"wrong namespace", FromBuffer([]byte("FAKE\nXmp.dc.format=x")), ErrUnreadableImage},
		{"missing file", Open(filepath.Join(t.TempDir(), "missing.fake")), ErrIO},
	}
	for _, c := range cases {
		err := c.img.ReadMetadata()
		if !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
		err = c.img.WriteMetadata()
		if !errors.Is(err, ErrNotYetRead) {
			t.Errorf("%s: expected ErrNotYetRead, got %v", c.name, err)
		}
	}
}

func TestImageFailedReadClears(t *testing.T) {
	fname := writeFakeImage(t, "Exif.Image.Make=Canon")
	img := Open(fname)
	err := img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(fname, []byte("garbage"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	err = img.ReadMetadata()
	if !errors.Is(err, ErrUnreadableImage) {
		t.Errorf("expected ErrUnreadableImage, got %v", err)
	}
	if img.Metadata().Has(MustParseKey("Exif.Image.Make")) {
		t.Error("metadata survived a failed read")
	}
	if img.PixelWidth() != 0 {
		t.Error("image info survived a failed read")
	}
}

func TestImageEngineWriteError(t *testing.T) {
	fname := writeFakeImage(t, "Exif.Image.Make=Canon")
	img := Open(fname, WithEngine(fakeEngine{encodeErr: errors.New("disk full")}))
	err := img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	err = img.Metadata().SetExifTagValue("Exif.Image.Make", "Nikon")
	if err != nil {
		t.Fatal(err)
	}

	err = img.WriteMetadata()
	if !errors.Is(err, ErrEngineWrite) {
		t.Errorf("expected ErrEngineWrite, got %v", err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "FAKE\nExif.Image.Make=Canon" {
		t.Errorf("file was modified: %q", data)
	}
}

func TestImageRereadInvalidatesTags(t *testing.T) {
	img := Open(writeFakeImage(t, "Exif.Image.Make=Canon"))
	err := img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	tag, err := img.Metadata().ExifTag("Exif.Image.Make")
	if err != nil {
		t.Fatal(err)
	}
	err = tag.SetRawValue("Nikon")
	if err != nil {
		t.Fatal(err)
	}

	err = img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	_, err = tag.RawValue()
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}

	// unsaved changes are discarded
	v, err := img.Metadata().Value(MustParseKey("Exif.Image.Make"))
	if err != nil {
		t.Fatal(err)
	}
	if v != Text("Canon") {
		t.Errorf("got %v", v)
	}
}

func TestImageCopyMetadata(t *testing.T) {
	src := Open(writeFakeImage(t, "Exif.Image.Make=Canon", "Exif.Image.Model=EOS"))
	dstName := writeFakeImage(t, "Exif.Image.Make=Nikon", "Exif.Image.Artist=Me")
	dst := Open(dstName)

	err := src.CopyMetadata(dst, SelectAll)
	if !errors.Is(err, ErrNotYetRead) {
		t.Errorf("expected ErrNotYetRead, got %v", err)
	}

	for _, img := range []*Image{src, dst} {
		if err := img.ReadMetadata(); err != nil {
			t.Fatal(err)
		}
	}
	err = src.CopyMetadata(dst, SelectExif)
	if err != nil {
		t.Fatal(err)
	}
	err = dst.WriteMetadata()
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dstName)
	if err != nil {
		t.Fatal(err)
	}
	want := "FAKE\nExif.Image.Make=Canon\nExif.Image.Artist=Me\nExif.Image.Model=EOS\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestImagePreviews(t *testing.T) {
	img := FromBuffer([]byte("FAKE\n"))
	if pp := img.Previews(); len(pp) != 0 {
		t.Errorf("found %d previews before read", len(pp))
	}
	err := img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}

	pp := img.Previews()
	want := []Preview{
		{MimeType: "image/x-fake", Extension: ".fake", Size: 5, Width: 16, Height: 12, Data: []byte("thumb")},
	}
	if d := cmp.Diff(want, pp); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// previews are returned as copies
	pp[0].Data[0] = 'T'
	if d := cmp.Diff(want, img.Previews()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	fname := filepath.Join(t.TempDir(), "thumb"+pp[0].Extension)
	err = pp[0].WriteFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Thumb" {
		t.Errorf("got %q", data)
	}

	err = pp[0].WriteFile(filepath.Join(t.TempDir(), "missing", "thumb"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}
