// pkg/core/score.go
package core

import (
	"sort"
	"strings"
)

// Score computes the relevance of a package for a search query and stores it
// on the package. Exact name matches rank above prefix matches, which rank
// above word and substring matches; description hits rank lowest. Installed
// packages and official-repository packages get a small boost, short names a
// slightly larger one.
func Score(p *Package, query string) int {
	score := 0
	q := strings.ToLower(query)
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)

	switch {
	case name == q:
		score += 1000
	case strings.HasPrefix(name, q):
		score += 800
	case strings.Contains(" "+name+" ", " "+q+" ") || strings.HasSuffix(name, q):
		score += 600
	case strings.Contains(name, q):
		score += 400
	case strings.Contains(" "+desc+" ", " "+q+" "):
		score += 200
	case strings.Contains(desc, q):
		score += 100
	}

	if p.Installed {
		score += 50
	}
	if !p.FromAUR() {
		score += 30
	}

	if bonus := 20 - len(p.Name)/2; bonus > 0 {
		score += bonus
	}
	if len(p.Name) > 20 {
		score -= 20
	}

	p.RelevanceScore = score
	return score
}

// Merge deduplicates search results by name. The first occurrence wins,
// except that an official-repository hit replaces an earlier AUR hit of the
// same name.
func Merge(packages []*Package) []*Package {
	seen := make(map[string]int, len(packages))
	var unique []*Package

	for _, p := range packages {
		idx, ok := seen[p.Name]
		if !ok {
			seen[p.Name] = len(unique)
			unique = append(unique, p)
			continue
		}
		if !p.FromAUR() && unique[idx].FromAUR() {
			unique[idx] = p
		}
	}
	return unique
}

// Rank merges, scores and sorts search results, best match first.
func Rank(packages []*Package, query string) []*Package {
	unique := Merge(packages)
	for _, p := range unique {
		Score(p, query)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].RelevanceScore > unique[j].RelevanceScore
	})
	return unique
}
