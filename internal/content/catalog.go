// Package content loads the landmark and session catalog. Sessions carry a
// meters offset instead of absolute coordinates: markers are placed relative
// to the player's starting position at runtime.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/lmoretto/wanderlust/internal/domain/game"
	"github.com/lmoretto/wanderlust/internal/domain/geo"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type offsetDef struct {
	North float64 `yaml:"north"`
	East  float64 `yaml:"east"`
}

type sessionDef struct {
	ID               string    `yaml:"id"`
	Name             string    `yaml:"name"`
	Offset           offsetDef `yaml:"offset"`
	ChallengeMinutes int       `yaml:"challengeMinutes"`
	Landmarks        []string  `yaml:"landmarks"`
	UniqueLandmark   string    `yaml:"uniqueLandmark"`
	Picture          string    `yaml:"picture"`
}

type catalogFile struct {
	Landmarks []game.Landmark `yaml:"landmarks"`
	Sessions  []sessionDef    `yaml:"sessions"`
}

// Catalog is a validated set of landmark and session definitions. It
// implements game.SessionSource.
type Catalog struct {
	landmarks map[string]game.Landmark
	sessions  []sessionDef
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	cat := &Catalog{
		landmarks: make(map[string]game.Landmark, len(file.Landmarks)),
		sessions:  file.Sessions,
	}
	for _, lm := range file.Landmarks {
		if lm.ID == "" {
			return nil, fmt.Errorf("catalog landmark %q has no id", lm.Name)
		}
		if !lm.Coordinate.Valid() {
			return nil, fmt.Errorf("catalog landmark %s has a non-finite coordinate", lm.ID)
		}
		if _, ok := cat.landmarks[lm.ID]; ok {
			return nil, fmt.Errorf("duplicate landmark id %s", lm.ID)
		}
		cat.landmarks[lm.ID] = lm
	}

	seen := make(map[string]bool, len(file.Sessions))
	for _, def := range file.Sessions {
		if def.ID == "" {
			return nil, fmt.Errorf("catalog session %q has no id", def.Name)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate session id %s", def.ID)
		}
		seen[def.ID] = true
		if def.ChallengeMinutes <= 0 {
			return nil, fmt.Errorf("session %s has no challenge time budget", def.ID)
		}
		if len(def.Landmarks) == 0 {
			return nil, fmt.Errorf("session %s has no landmarks", def.ID)
		}
		for _, id := range def.Landmarks {
			if _, ok := cat.landmarks[id]; !ok {
				return nil, fmt.Errorf("session %s references unknown landmark %s", def.ID, id)
			}
		}
		if _, ok := cat.landmarks[def.UniqueLandmark]; !ok {
			return nil, fmt.Errorf("session %s references unknown unique landmark %s", def.ID, def.UniqueLandmark)
		}
	}

	return cat, nil
}

// Place materializes the catalog's sessions around the player's starting
// position.
func (c *Catalog) Place(origin geo.Coordinate) ([]game.Session, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("non-finite origin coordinate")
	}

	sessions := make([]game.Session, 0, len(c.sessions))
	for _, def := range c.sessions {
		landmarks := make([]game.Landmark, 0, len(def.Landmarks))
		for _, id := range def.Landmarks {
			landmarks = append(landmarks, c.landmarks[id])
		}
		sessions = append(sessions, game.Session{
			ID:               def.ID,
			Name:             def.Name,
			Coordinate:       geo.Offset(origin, def.Offset.North, def.Offset.East),
			ChallengeMinutes: def.ChallengeMinutes,
			Landmarks:        landmarks,
			UniqueLandmark:   c.landmarks[def.UniqueLandmark],
			Picture:          def.Picture,
		})
	}
	return sessions, nil
}
