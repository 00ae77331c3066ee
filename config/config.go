// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads and stores the input-core tunables.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lumino-display/lumino/input"
)

// Config is the on-disk tunables file.
type Config struct {
	Touch Touch
}

// Touch holds the touch-core tunables.
type Touch struct {
	// HistorySize is the per-contact event-history capacity.
	HistorySize int
	// TraceDepth is the initial window-trace capacity per contact.
	TraceDepth int
	// DriverSlots is the default driver-registry size for devices
	// that do not declare a contact count.
	DriverSlots int
}

// Default returns the built-in tunables.
func Default() Config {
	return Config{
		Touch: Touch{
			HistorySize: input.DefaultHistorySize,
			TraceDepth:  input.DefaultTraceDepth,
			DriverSlots: input.DefaultDriverSlots,
		},
	}
}

// Load reads the tunables at path. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	return conf, nil
}

// Save writes the tunables to path.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Options converts the tunables to tracker options.
func (c Config) Options() input.Options {
	return input.Options{
		HistorySize: c.Touch.HistorySize,
		TraceDepth:  c.Touch.TraceDepth,
		DriverSlots: c.Touch.DriverSlots,
	}
}
