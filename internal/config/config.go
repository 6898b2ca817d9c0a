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

// Package config reads the settings of the exiv command line tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/exiv"
)

// Config holds the settings of the command line tool.
type Config struct {
	Output struct {
		Format string // text, json or yaml
	}
	Log struct {
		Level string
	}
	XMP struct {
		// Namespaces maps XMP prefixes to namespace URIs.
		Namespaces map[string]string
	}
}

// Load reads the configuration from the environment (EXIV_ prefix) and an
// optional exiv.yaml file in the current directory or in $HOME/.config/exiv.
// If file is not empty, this file is read instead and must exist.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXIV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "warn")

	if file != "" {
		v.SetConfigFile(file)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	} else {
		v.SetConfigName("exiv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/exiv")
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Output.Format = strings.ToLower(v.GetString("output.format"))
	cfg.Log.Level = strings.ToLower(v.GetString("log.level"))
	cfg.XMP.Namespaces = v.GetStringMapString("xmp.namespaces")

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (cfg *Config) Validate() error {
	switch cfg.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid EXIV_OUTPUT_FORMAT %q (text, json, yaml)", cfg.Output.Format)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid EXIV_LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	for pfx, ns := range cfg.XMP.Namespaces {
		if pfx == "" || ns == "" {
			return fmt.Errorf("invalid XMP namespace entry %q: %q", pfx, ns)
		}
	}
	return nil
}

// LogLevel returns the configured log level.
func (cfg *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// RegisterNamespaces makes the configured XMP namespaces available for use
// in keys.  It fails if a prefix is already bound to a different namespace.
func (cfg *Config) RegisterNamespaces() error {
	prefixes := make([]string, 0, len(cfg.XMP.Namespaces))
	for pfx := range cfg.XMP.Namespaces {
		prefixes = append(prefixes, pfx)
	}
	slices.Sort(prefixes)

	for _, pfx := range prefixes {
		ns := cfg.XMP.Namespaces[pfx]
		got := exiv.RegisterNamespace(ns, pfx)
		if got != pfx {
			return fmt.Errorf("XMP namespace %s: prefix %q is not available (using %q)", ns, pfx, got)
		}
	}
	return nil
}
