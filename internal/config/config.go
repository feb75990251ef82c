// Package config loads and saves host-operational settings for an embedder
// of the emulator core: which log modules should be enabled by default, and
// the path of the last cartridge that was run. It does not configure
// emulation semantics, which are fixed by the hardware being emulated.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Save    SaveConfig    `toml:"save"`
}

type LoggingConfig struct {
	Modules []string `toml:"modules"`
}

type SaveConfig struct {
	LastCartridgePath string `toml:"last_cartridge_path"`
}

const filename = "config.toml"

// LoadOrDefault reads config.toml from dir, or returns a zero Config if the
// file does not exist or cannot be parsed.
func LoadOrDefault(dir string) Config {
	var cfg Config
	if _, err := toml.DecodeFile(filepath.Join(dir, filename), &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save writes cfg to config.toml under dir, creating dir if necessary.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
