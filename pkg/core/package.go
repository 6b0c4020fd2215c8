// pkg/core/package.go
package core

// RepoAUR is the pseudo-repository name for packages that come from the
// Arch User Repository rather than an official sync repository.
const RepoAUR = "AUR"

// Package represents a package as Dastore sees it, merged from the official
// repositories and the AUR.
type Package struct {
	Name            string   `yaml:"name"`
	Version         string   `yaml:"version"`
	Description     string   `yaml:"description,omitempty"`
	Repository      string   `yaml:"repository,omitempty"`
	URL             string   `yaml:"url,omitempty"`
	Licenses        string   `yaml:"licenses,omitempty"`
	Groups          string   `yaml:"groups,omitempty"`
	DownloadSize    string   `yaml:"download_size,omitempty"`
	InstalledSize   string   `yaml:"installed_size,omitempty"`
	Depends         []string `yaml:"depends,omitempty"`
	Provides        []string `yaml:"provides,omitempty"`
	Conflicts       []string `yaml:"conflicts,omitempty"`
	Replaces        []string `yaml:"replaces,omitempty"`
	Installed       bool     `yaml:"installed,omitempty"`
	UpdateAvailable bool     `yaml:"update_available,omitempty"`

	// RelevanceScore is filled in by Score during result ranking.
	RelevanceScore int `yaml:"-"`
}

// FromAUR reports whether the package comes from the AUR.
func (p *Package) FromAUR() bool {
	return p.Repository == RepoAUR || p.Repository == "aur"
}

// Update describes a pending package update.
type Update struct {
	Name       string
	OldVersion string
	NewVersion string
}

// HistoryEntry is a single "installed" line from the pacman log.
type HistoryEntry struct {
	Name string
	Date string
}
