package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

//go:embed data/*.json
var embedded embed.FS

// Config configures where catalog content comes from
type Config struct {
	// Dir overrides the embedded documents with a directory holding the
	// same file names
	Dir string

	// AssetDir holds card images referenced by entity image paths
	AssetDir string
}

// Store is the in-memory catalog
type Store struct {
	ancestries  []daggerheart.Entity
	communities []daggerheart.Entity
	features    map[string][]daggerheart.Entity
	assets      fs.FS
}

var _ Repository = (*Store)(nil)

type featureList struct {
	Features []daggerheart.Entity `json:"features"`
}

// New loads the catalog described by cfg. A nil config loads the embedded
// documents without assets.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	var source fs.FS
	if cfg.Dir != "" {
		source = os.DirFS(cfg.Dir)
	}

	store, err := Load(source)
	if err != nil {
		return nil, err
	}

	if cfg.AssetDir != "" {
		store.assets = os.DirFS(cfg.AssetDir)
	}

	slog.Debug("catalog loaded",
		"dir", cfg.Dir,
		"ancestries", len(store.ancestries),
		"communities", len(store.communities))

	return store, nil
}

// Load reads and validates the three catalog documents from fsys. A nil fsys
// reads the embedded documents.
func Load(fsys fs.FS) (*Store, error) {
	if fsys == nil {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, errors.Wrap(err, "failed to open embedded catalog")
		}
		fsys = sub
	}

	var ancestries, communities []daggerheart.Entity
	if err := readDocument(fsys, AncestriesFile, &ancestries); err != nil {
		return nil, err
	}
	if err := readDocument(fsys, CommunitiesFile, &communities); err != nil {
		return nil, err
	}

	var rawFeatures map[string]featureList
	if err := readDocument(fsys, AncestryFeaturesFile, &rawFeatures); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	validateEntities(AncestriesFile, ancestries, vb)
	validateEntities(CommunitiesFile, communities, vb)

	features := make(map[string][]daggerheart.Entity, len(rawFeatures))
	for ancestryID, list := range rawFeatures {
		field := fmt.Sprintf("%s[%s]", AncestryFeaturesFile, ancestryID)
		idx := daggerheart.IndexOf(ancestries, ancestryID)
		switch {
		case idx < 0:
			vb.Field(field, "unknown ancestry")
		case ancestries[idx].IsMixed:
			vb.Field(field, "mixed ancestry cannot have features")
		}
		validateEntities(field, list.Features, vb)
		features[ancestryID] = list.Features
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "catalog is malformed")
	}

	return &Store{
		ancestries:  ancestries,
		communities: communities,
		features:    features,
	}, nil
}

func readDocument(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("failed to read %s", name))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("failed to parse %s", name))
	}
	return nil
}

func validateEntities(doc string, entities []daggerheart.Entity, vb *errors.ValidationBuilder) {
	seen := make(map[string]bool, len(entities))
	for i, e := range entities {
		field := fmt.Sprintf("%s[%d]", doc, i)
		errors.ValidateRequired(field+".id", e.ID, vb)
		errors.ValidateRequired(field+".name", e.Name, vb)
		if e.ID == "" {
			continue
		}
		if seen[e.ID] {
			vb.Fieldf(field+".id", "duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

// List implements Repository
func (s *Store) List(kind daggerheart.Kind) []daggerheart.Entity {
	switch kind {
	case daggerheart.KindAncestry:
		return clone(s.ancestries)
	case daggerheart.KindCommunity:
		return clone(s.communities)
	case daggerheart.KindFeature:
		var all []daggerheart.Entity
		for _, ancestry := range s.ancestries {
			all = append(all, s.features[ancestry.ID]...)
		}
		return all
	default:
		return nil
	}
}

// Get implements Repository
func (s *Store) Get(kind daggerheart.Kind, id string) (daggerheart.Entity, error) {
	entities := s.List(kind)
	if idx := daggerheart.IndexOf(entities, id); idx >= 0 {
		return entities[idx], nil
	}
	return daggerheart.Entity{}, errors.NotFoundf("%s %s not found", kind, id).
		WithMeta("kind", string(kind))
}

// Features implements Repository
func (s *Store) Features(ancestryID string) []daggerheart.Entity {
	return clone(s.features[ancestryID])
}

// Standard implements Repository
func (s *Store) Standard() []daggerheart.Entity {
	standard := make([]daggerheart.Entity, 0, len(s.ancestries))
	for _, e := range s.ancestries {
		if !e.IsMixed {
			standard = append(standard, e)
		}
	}
	return standard
}

// AssetExists implements Repository
func (s *Store) AssetExists(image string) bool {
	if s.assets == nil || image == "" {
		return false
	}
	_, err := fs.Stat(s.assets, strings.TrimPrefix(image, "/"))
	return err == nil
}

func clone(entities []daggerheart.Entity) []daggerheart.Entity {
	if entities == nil {
		return nil
	}
	out := make([]daggerheart.Entity, len(entities))
	copy(out, entities)
	return out
}
