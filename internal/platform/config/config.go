package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage selects the persistence gateway backing the app.
type Storage string

const (
	StorageSQLite Storage = "sqlite"
	StorageFile   Storage = "file"
)

type Config struct {
	DataDir     string
	DBPath      string
	RecordsPath string
	LogPath     string
	LogLevel    string
	Storage     Storage
}

// fileConfig is the optional config.yaml inside the data dir. Anything not
// set there falls back to the defaults below.
type fileConfig struct {
	Storage  string `yaml:"storage"`
	LogLevel string `yaml:"log_level"`
}

// New resolves the effective configuration for a data directory. An empty
// dataDir means the per-user default location.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		dataDir = filepath.Join(base, "sati")
	}

	cfg := Config{
		DataDir:     dataDir,
		DBPath:      filepath.Join(dataDir, "sati.db"),
		RecordsPath: filepath.Join(dataDir, "records.json"),
		LogPath:     filepath.Join(dataDir, "sati.log"),
		LogLevel:    "info",
		Storage:     StorageSQLite,
	}

	fc, err := readFileConfig(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		return Config{}, err
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.Storage != "" {
		switch Storage(fc.Storage) {
		case StorageSQLite, StorageFile:
			cfg.Storage = Storage(fc.Storage)
		default:
			return Config{}, fmt.Errorf("unknown storage %q (want sqlite or file)", fc.Storage)
		}
	}
	return cfg, nil
}

func readFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}
