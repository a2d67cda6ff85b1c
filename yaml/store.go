// Package yaml loads source profiles from a YAML configuration file.
package yaml

import (
	"os"

	"github.com/fwojciec/docmirror"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements docmirror.ProfileStore at compile time.
var _ docmirror.ProfileStore = (*Store)(nil)

// Store reads source profiles from a YAML file on disk.
type Store struct {
	path string
}

// NewStore creates a Store that reads profiles from the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

type config struct {
	Profiles []*docmirror.Profile `yaml:"profiles"`
}

// Profiles loads and validates all profiles from the configuration file.
// Any invalid profile fails the whole load, so callers never see a
// partially valid set.
func (s *Store) Profiles() ([]*docmirror.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "read config %s: %v", s.path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "parse config %s: %v", s.path, err)
	}
	if len(cfg.Profiles) == 0 {
		return nil, docmirror.Errorf(docmirror.EINVALID, "config %s defines no profiles", s.path)
	}

	seen := make(map[string]bool, len(cfg.Profiles))
	for _, p := range cfg.Profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, docmirror.Errorf(docmirror.ECONFLICT, "duplicate profile name %q", p.Name)
		}
		seen[p.Name] = true
	}

	return cfg.Profiles, nil
}
