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

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/exiv"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE KEY VALUE...",
		Short: "Set the value of a tag",
		Long: "Set the value of a tag and write the image.\n\n" +
			"Repeatable IPTC datasets and XMP arrays take one argument per value.\n" +
			"XMP language alternatives take arguments of the form \"lang=de text\";\n" +
			"arguments without a language marker set the default language.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The file may declare XMP prefixes used in the key.
			img, err := a.open(args[0])
			if err != nil {
				return err
			}
			key, err := exiv.ParseKey(args[1])
			if err != nil {
				return err
			}
			err = setValue(img.Metadata(), key, args[2:])
			if err != nil {
				return err
			}
			return img.WriteMetadata()
		},
	}
}

// setValue converts command line arguments into a value of the right shape
// for the tag.
func setValue(md *exiv.Metadata, key exiv.Key, args []string) error {
	var v exiv.Value
	switch key.Namespace {
	case exiv.Iptc:
		if len(args) == 1 {
			v = exiv.Text(args[0])
		} else {
			v = exiv.Array(args)
		}
	case exiv.Xmp:
		switch xmpShape(md, key) {
		case exiv.KindArray:
			v = exiv.Array(args)
		case exiv.KindLangAlt:
			l := exiv.LangAlt{}
			for _, arg := range args {
				lang, text := exiv.DefaultLanguage, arg
				if rest, ok := strings.CutPrefix(arg, "lang="); ok {
					lang, text, _ = strings.Cut(rest, " ")
				}
				l[lang] = text
			}
			v = l
		default:
			v = exiv.Text(strings.Join(args, " "))
		}
	default:
		v = exiv.Text(strings.Join(args, " "))
	}
	return md.SetValue(key, v)
}

// xmpShape returns the kind of value to build for an XMP property.  For
// properties which are not in the built-in tables, the shape of the value
// found in the file is used.
func xmpShape(md *exiv.Metadata, key exiv.Key) exiv.ValueKind {
	tag, err := md.Tag(key)
	if err != nil {
		return exiv.Lookup(key).Kind
	}
	if d := tag.Descriptor(); d.Known {
		return d.Kind
	}
	switch v, _ := md.Value(key); v.(type) {
	case exiv.Array:
		return exiv.KindArray
	case exiv.LangAlt:
		return exiv.KindLangAlt
	default:
		return exiv.KindText
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILE KEY...",
		Short: "Remove tags from an image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := a.open(args[0])
			if err != nil {
				return err
			}
			md := img.Metadata()
			for _, s := range args[1:] {
				key, err := exiv.ParseKey(s)
				if err != nil {
					return err
				}
				err = md.Delete(key)
				if err != nil {
					return err
				}
				a.log.Info().Str("key", s).Msg("deleted")
			}
			return img.WriteMetadata()
		},
	}
}
