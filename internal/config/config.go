package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries tool-side settings only. The map grammar itself is fixed;
// these just say where the sidecar artifacts live.
type Config struct {
	DataDir    string `yaml:"data_dir"`
	IndexDB    string `yaml:"index_db"`
	ArchiveDir string `yaml:"archive_dir"`
}

func Default() Config {
	return Config{
		DataDir:    "./data",
		IndexDB:    "./data/maps.db",
		ArchiveDir: "./data/archives",
	}
}

// Load reads path over the defaults, so a partial file is fine.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FromEnv applies BW_* overrides on top of c.
func FromEnv(c Config) Config {
	if v := os.Getenv("BW_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("BW_INDEX_DB"); v != "" {
		c.IndexDB = v
	}
	if v := os.Getenv("BW_ARCHIVE_DIR"); v != "" {
		c.ArchiveDir = v
	}
	return c
}
