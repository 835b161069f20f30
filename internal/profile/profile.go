// Package profile remembers the inputs of the last generated world so it
// can be replayed. Only generation settings are stored, never search
// results.
package profile

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/maze/internal/config"
	"github.com/pdrpinto/maze/internal/logging"
)

const (
	runsObject      = "runs"
	lastRunProperty = "last"
)

// Run is everything needed to regenerate a world.
type Run struct {
	Seed  int64        `yaml:"seed"`
	World config.World `yaml:"world"`
}

// Store keeps the last Run. A nil manager keeps it in memory only.
type Store struct {
	manager *gdata.Manager
	last    *Run
}

// Open creates a gdata-backed store under appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open profile storage: %w", err)
	}
	return New(m), nil
}

func New(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// SaveLastRun records run as the most recent one.
func (s *Store) SaveLastRun(run Run) error {
	s.last = &run
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if err := s.manager.SaveObjectProp(runsObject, lastRunProperty, data); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	logging.New("profile").Debug("last run saved", "seed", run.Seed)
	return nil
}

// LastRun returns the most recent run; ok is false when none was saved.
func (s *Store) LastRun() (run Run, ok bool, err error) {
	if s.last != nil {
		return *s.last, true, nil
	}
	if s.manager == nil || !s.manager.ObjectPropExists(runsObject, lastRunProperty) {
		return Run{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(runsObject, lastRunProperty)
	if err != nil {
		return Run{}, false, fmt.Errorf("load run: %w", err)
	}
	if err := yaml.Unmarshal(data, &run); err != nil {
		return Run{}, false, fmt.Errorf("unmarshal run: %w", err)
	}
	s.last = &run
	return run, true, nil
}
