// pkg/pacman/parser.go
package pacman

import (
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/daradege/dastore/pkg/core"
)

// ParseSearch parses `pacman -Ss` output:
//
//	extra/firefox 131.0-1 [installed]
//	    Fast, Private & Safe Web Browser
func ParseSearch(output string) []*core.Package {
	var packages []*core.Package
	lines := strings.Split(strings.TrimSpace(output), "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}

		repo, rest, ok := strings.Cut(line, "/")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 2 {
			continue
		}

		pkg := &core.Package{
			Name:       fields[0],
			Version:    fields[1],
			Repository: repo,
			Installed:  strings.Contains(line, "[installed"),
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "    ") {
			pkg.Description = strings.TrimSpace(lines[i+1])
		}
		packages = append(packages, pkg)
	}
	return packages
}

// ParseInfoFields parses the key/value output of `pacman -Si` or `-Qi` for a
// single package.
func ParseInfoFields(output string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

// ApplyInfo copies known `pacman -Si` fields onto a package.
func ApplyInfo(p *core.Package, fields map[string]string) {
	if v, ok := fields["Name"]; ok && v != "" {
		p.Name = v
	}
	if v, ok := fields["Version"]; ok && v != "" {
		p.Version = v
	}
	if v := fields["Description"]; v != "" {
		p.Description = v
	}
	if v := fields["Repository"]; v != "" {
		p.Repository = v
	}
	p.URL = fields["URL"]
	p.Licenses = fields["Licenses"]
	p.Groups = fields["Groups"]
	p.DownloadSize = fields["Download Size"]
	p.InstalledSize = fields["Installed Size"]
	p.Depends = splitList(fields["Depends On"])
	p.Provides = splitList(fields["Provides"])
	p.Conflicts = splitList(fields["Conflicts With"])
	p.Replaces = splitList(fields["Replaces"])
}

// splitList splits a pacman list value. pacman prints "None" for empty
// lists.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" {
		return nil
	}
	return strings.Fields(s)
}

// ParseInstalled parses the multi-package dump of `pacman -Qi`, one entry
// per installed package separated by blank lines.
func ParseInstalled(output string) []*core.Package {
	var packages []*core.Package
	var current *core.Package

	flush := func() {
		if current != nil && current.Name != "" {
			packages = append(packages, current)
		}
		current = nil
	}

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			flush()
			current = &core.Package{Name: value, Installed: true}
		case "Version":
			if current != nil {
				current.Version = value
			}
		case "Description":
			if current != nil {
				current.Description = value
			}
		case "Installed Size":
			if current != nil {
				current.InstalledSize = value
			}
		}
	}
	flush()
	return packages
}

// ParseUpdates parses `checkupdates` output ("name old -> new"). Pairs that
// parse as versions are sanity checked with go-version; epoch-style versions
// that do not parse are passed through untouched.
func ParseUpdates(output string) []core.Update {
	var updates []core.Update
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "->" {
			continue
		}
		u := core.Update{Name: fields[0], OldVersion: fields[1], NewVersion: fields[3]}

		oldV, err1 := goversion.NewVersion(u.OldVersion)
		newV, err2 := goversion.NewVersion(u.NewVersion)
		if err1 == nil && err2 == nil && !newV.GreaterThan(oldV) {
			continue
		}
		updates = append(updates, u)
	}
	return updates
}

// ParseHistory extracts recent "installed" entries from pacman.log content,
// newest first.
//
//	[2024-05-01T10:21:33+0000] [ALPM] installed firefox (125.0.3-1)
func ParseHistory(content string, limit int) []core.HistoryEntry {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > 100 {
		lines = lines[len(lines)-100:]
	}

	var entries []core.HistoryEntry
	for i := len(lines) - 1; i >= 0 && len(entries) < limit; i-- {
		line := lines[i]
		if !strings.Contains(line, "installed") || !strings.Contains(line, "[") {
			continue
		}

		open := strings.Index(line, "[")
		end := strings.Index(line, "]")
		if open == -1 || end == -1 || end < open {
			continue
		}
		date := line[open+1 : end]

		_, after, ok := strings.Cut(line, "installed")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(after, "(")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, core.HistoryEntry{Name: name, Date: date})
	}
	return entries
}

// ParseRepositories lists the repository sections of pacman.conf, skipping
// [options].
func ParseRepositories(content string) []string {
	var repos []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		name := line[1 : len(line)-1]
		if name == "options" || name == "" {
			continue
		}
		repos = append(repos, name)
	}
	return repos
}
