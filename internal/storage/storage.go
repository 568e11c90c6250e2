package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/nikbrunner/bo/internal/model"
)

// ConfigError reports a config file that is missing, unreadable or invalid.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Storage defines the interface for persisting the bookmark config.
type Storage interface {
	Load() (*model.Config, error)
	Save(cfg *model.Config) error
}

// TOMLStorage implements Storage using a TOML file.
type TOMLStorage struct {
	path string
}

// NewTOMLStorage creates a new TOMLStorage with the given file path.
func NewTOMLStorage(path string) *TOMLStorage {
	return &TOMLStorage{path: path}
}

// Path returns the storage file path.
func (s *TOMLStorage) Path() string {
	return s.path
}

// Load reads and validates the config from the TOML file.
// A missing file is reported as a *ConfigError like any other read failure.
func (s *TOMLStorage) Load() (*model.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Path: s.path, Err: fmt.Errorf("file does not exist: %w", err)}
		}
		return nil, &ConfigError{Path: s.path, Err: err}
	}

	var cfg model.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, &ConfigError{Path: s.path, Err: fmt.Errorf("line %d, column %d: %w", row, col, err)}
		}
		return nil, &ConfigError{Path: s.path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: s.path, Err: err}
	}
	// An empty [bookmarks] table decodes to an empty map, a missing one to nil.
	if cfg.Bookmarks == nil {
		return nil, &ConfigError{Path: s.path, Err: model.ErrNoBookmarks}
	}

	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}

	return &cfg, nil
}

// Save writes the config to the TOML file.
// Creates the directory if it doesn't exist. Comments in the file are not preserved.
func (s *TOMLStorage) Save(cfg *model.Config) error {
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ConfigError{Path: s.path, Err: fmt.Errorf("create directory: %w", err)}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return &ConfigError{Path: s.path, Err: fmt.Errorf("write: %w", err)}
	}
	return nil
}
