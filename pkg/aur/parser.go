// pkg/aur/parser.go
package aur

import (
	"strings"

	"github.com/daradege/dastore/pkg/core"
)

// ParseSearch parses `yay -Ss --aur` output:
//
//	aur/visual-studio-code-bin 1.95.0-1 (+1500 33.2)
//	    Visual Studio Code (vscode): Editor for building applications
func ParseSearch(output string) []*core.Package {
	var packages []*core.Package
	lines := strings.Split(strings.TrimSpace(output), "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, "aur/") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		pkg := &core.Package{
			Name:       strings.TrimPrefix(fields[0], "aur/"),
			Version:    fields[1],
			Repository: core.RepoAUR,
			Installed:  strings.Contains(line, "[installed"),
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "    ") {
			pkg.Description = strings.TrimSpace(lines[i+1])
		}
		packages = append(packages, pkg)
	}
	return packages
}
