// pkg/syncdb/db.go
package syncdb

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/daradege/dastore/pkg/core"
	"github.com/daradege/dastore/pkg/deps"
)

// DefaultPath is where pacman keeps its sync databases.
const DefaultPath = "/var/lib/pacman/sync"

// Database is an in-memory index of the local pacman sync databases. It
// serves search and info without shelling out and without network access.
type Database struct {
	packages  map[string]*core.Package
	providers map[string][]*core.Package
}

// Load reads every <repo>.db file in dir and indexes it. Databases that
// fail to parse are skipped; an empty directory yields an empty (usable)
// index.
func Load(dir string, logger zerolog.Logger) (*Database, error) {
	if dir == "" {
		dir = DefaultPath
	}

	db := &Database{
		packages:  make(map[string]*core.Package),
		providers: make(map[string][]*core.Package),
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.db"))
	if err != nil {
		return nil, errors.Wrap(err, "listing sync databases")
	}

	for _, path := range matches {
		repo := strings.TrimSuffix(filepath.Base(path), ".db")

		f, err := os.Open(path)
		if err != nil {
			logger.Warn().Err(err).Str("repo", repo).Msg("skipping sync database")
			continue
		}
		packages, err := ParseDB(f, repo)
		f.Close()
		if err != nil {
			logger.Warn().Err(err).Str("repo", repo).Msg("skipping sync database")
			continue
		}

		for _, p := range packages {
			db.index(p)
		}
		logger.Debug().Str("repo", repo).Int("packages", len(packages)).Msg("indexed sync database")
	}
	return db, nil
}

func (db *Database) index(p *core.Package) {
	db.packages[p.Name] = p
	db.providers[p.Name] = append(db.providers[p.Name], p)
	for _, prov := range p.Provides {
		clean := deps.StripConstraint(prov)
		db.providers[clean] = append(db.providers[clean], p)
	}
}

// Len returns the number of indexed packages.
func (db *Database) Len() int {
	return len(db.packages)
}

// Get finds a package by name, falling back to virtual providers
// (e.g. "sh" resolves to bash).
func (db *Database) Get(name string) (*core.Package, bool) {
	clean := deps.StripConstraint(name)
	if p, ok := db.packages[clean]; ok {
		return p, true
	}
	if providers := db.providers[clean]; len(providers) > 0 {
		return providers[0], true
	}
	return nil, false
}

// Search returns packages whose name contains the query.
func (db *Database) Search(query string) []*core.Package {
	query = strings.ToLower(query)
	var results []*core.Package
	for _, p := range db.packages {
		if strings.Contains(strings.ToLower(p.Name), query) {
			results = append(results, p)
		}
	}
	return results
}
