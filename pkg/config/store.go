package config

import (
	"os"
	"sync"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Store holds the active configuration behind a lock so the daemon can
// reload it (SIGHUP) while the poll loop keeps reading it.
type Store struct {
	mu   sync.RWMutex
	path string
	c    Config
}

// NewStore loads the config file at path. A missing file or a parse
// failure is not fatal: the store falls back to defaults and the error is
// only logged.
func NewStore(path string) *Store {
	s := &Store{path: path, c: Default()}
	if err := s.Load(); err != nil {
		logrus.Warnf("failed to load config from %s, using defaults: %v", path, err)
	}
	return s
}

// NewStoreFromConfig wraps an already-built config. Used by tests and by
// the status command to evaluate a config received from the daemon.
func NewStoreFromConfig(c Config) *Store {
	return &Store{c: c}
}

// Load re-reads the config file. On error the previously active config is
// kept unchanged. A missing file resets the store to defaults.
func (s *Store) Load() error {
	cfg := Default()

	if _, err := os.Stat(s.path); err == nil {
		k := koanf.New(".")
		if err := k.Load(file.Provider(s.path), toml.Parser()); err != nil {
			return pkgerrors.Wrapf(err, "failed to parse config file %s", s.path)
		}
		if err := k.Unmarshal("", &cfg); err != nil {
			return pkgerrors.Wrapf(err, "failed to unmarshal config file %s", s.path)
		}
	}

	s.mu.Lock()
	s.c = cfg
	s.mu.Unlock()

	return nil
}

// Get returns a copy of the active configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c
}
