package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
	"github.com/nordfuton/quizmatch-cli/internal/logger"
)

// Ensure MappingStore implements the interface.
var _ driven.MappingSource = (*MappingStore)(nil)

// MappingStore serves the tag mapping from a TOML file, falling back to
// the compiled-in defaults for categories the file does not override.
// A missing file means all defaults. Watch enables hot reload so a
// vocabulary change does not require restarting a running quiz.
type MappingStore struct {
	mu      sync.RWMutex
	path    string
	mapping domain.TagMapping
}

// NewMappingStore loads the mapping file at path. An absent file is not
// an error; a malformed one is.
func NewMappingStore(path string) (*MappingStore, error) {
	s := &MappingStore{
		path:    path,
		mapping: domain.DefaultTagMapping(),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Mapping returns the current tag mapping snapshot.
func (s *MappingStore) Mapping() domain.TagMapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapping
}

// Path returns the mapping file path.
func (s *MappingStore) Path() string {
	return s.path
}

// Load re-reads the mapping file. Missing file resets to defaults.
func (s *MappingStore) Load() error {
	mapping := domain.DefaultTagMapping()

	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		logger.Debug("Mapping file %s absent, using defaults", s.path)
	case err != nil:
		return fmt.Errorf("read mappings %s: %w", s.path, err)
	default:
		var doc mappingTOML
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse mappings %s: %w", s.path, err)
		}
		doc.overlay(&mapping)
	}

	s.mu.Lock()
	s.mapping = mapping
	s.mu.Unlock()
	return nil
}

// Watch reloads the mapping whenever the file changes, until ctx is
// cancelled. A reload failure keeps the previous mapping.
func (s *MappingStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch mappings: %w", err)
	}
	// Watch the directory: editors often replace the file wholesale.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch mappings dir %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("Mapping reload failed, keeping previous: %v", err)
					continue
				}
				logger.Info("Mapping reloaded from %s", s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Mapping watcher: %v", err)
			}
		}
	}()
	return nil
}

// EncodeMapping renders a tag mapping in the mappings file schema.
func EncodeMapping(m domain.TagMapping) ([]byte, error) {
	var doc mappingTOML
	doc.Firmness.Soft = m.Firmness[domain.FirmnessSoft]
	doc.Firmness.Medium = m.Firmness[domain.FirmnessMedium]
	doc.Firmness.Hard = m.Firmness[domain.FirmnessHard]
	doc.SleepPosition.Side = m.SleepPosition[domain.PositionSide]
	doc.SleepPosition.Back = m.SleepPosition[domain.PositionBack]
	doc.SleepPosition.Stomach = m.SleepPosition[domain.PositionStomach]
	doc.WeightSupport.Light = m.WeightSupport.Light
	doc.WeightSupport.Heavy = m.WeightSupport.Heavy
	doc.Couples = m.Couples
	doc.Single = m.Single
	doc.Quality = m.Quality
	doc.Comfort = m.Comfort
	doc.SingleOnly = m.SingleOnly
	doc.CouplesOnly = m.CouplesOnly
	return toml.Marshal(doc)
}

// mappingTOML mirrors the mappings file schema. Nil slices mean the
// category keeps its default.
type mappingTOML struct {
	Firmness struct {
		Soft   []string `toml:"soft"`
		Medium []string `toml:"medium"`
		Hard   []string `toml:"hard"`
	} `toml:"firmness"`
	SleepPosition struct {
		Side    []string `toml:"side"`
		Back    []string `toml:"back"`
		Stomach []string `toml:"stomach"`
	} `toml:"sleep_position"`
	WeightSupport struct {
		Light []string `toml:"light"`
		Heavy []string `toml:"heavy"`
	} `toml:"weight_support"`
	Couples     []string `toml:"couples"`
	Single      []string `toml:"single"`
	Quality     []string `toml:"quality"`
	Comfort     []string `toml:"comfort"`
	SingleOnly  []string `toml:"single_only"`
	CouplesOnly []string `toml:"couples_only"`
}

// overlay applies the file's categories over the defaults in m.
func (d mappingTOML) overlay(m *domain.TagMapping) {
	setFirmness := func(f domain.Firmness, tags []string) {
		if tags != nil {
			m.Firmness[f] = tags
		}
	}
	setFirmness(domain.FirmnessSoft, d.Firmness.Soft)
	setFirmness(domain.FirmnessMedium, d.Firmness.Medium)
	setFirmness(domain.FirmnessHard, d.Firmness.Hard)

	setPosition := func(p domain.SleepPosition, tags []string) {
		if tags != nil {
			m.SleepPosition[p] = tags
		}
	}
	setPosition(domain.PositionSide, d.SleepPosition.Side)
	setPosition(domain.PositionBack, d.SleepPosition.Back)
	setPosition(domain.PositionStomach, d.SleepPosition.Stomach)

	if d.WeightSupport.Light != nil {
		m.WeightSupport.Light = d.WeightSupport.Light
	}
	if d.WeightSupport.Heavy != nil {
		m.WeightSupport.Heavy = d.WeightSupport.Heavy
	}
	if d.Couples != nil {
		m.Couples = d.Couples
	}
	if d.Single != nil {
		m.Single = d.Single
	}
	if d.Quality != nil {
		m.Quality = d.Quality
	}
	if d.Comfort != nil {
		m.Comfort = d.Comfort
	}
	if d.SingleOnly != nil {
		m.SingleOnly = d.SingleOnly
	}
	if d.CouplesOnly != nil {
		m.CouplesOnly = d.CouplesOnly
	}
}
