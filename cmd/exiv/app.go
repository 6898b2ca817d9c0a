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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"seehuhn.de/go/exiv"
	"seehuhn.de/go/exiv/internal/config"
	_ "seehuhn.de/go/exiv/jpegmeta"
)

// app holds the state shared by all sub-commands.
type app struct {
	configFile string
	format     string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
	out io.Writer
}

// setup loads the configuration and applies the command line overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Output.Format = strings.ToLower(a.format)
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	err = cfg.Validate()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel()).
		With().Timestamp().Logger()
	a.out = cmd.OutOrStdout()

	return cfg.RegisterNamespaces()
}

// open reads the metadata of an image file.
func (a *app) open(fname string) (*exiv.Image, error) {
	img := exiv.Open(fname, exiv.WithLogger(a.log))
	err := img.ReadMetadata()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// row is one line of tabular output.
type row struct {
	Key   string `json:"key" yaml:"key"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
	Human string `json:"human,omitempty" yaml:"human,omitempty"`
}

// writeRows prints rows in the configured output format.
func (a *app) writeRows(rows []row) error {
	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		_, err = a.out.Write(data)
		return err
	default:
		w := tabwriter.NewWriter(a.out, 0, 8, 2, ' ', 0)
		for _, r := range rows {
			value := r.Value
			if r.Human != "" {
				value = r.Human
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Key, r.Type, value)
		}
		return w.Flush()
	}
}
