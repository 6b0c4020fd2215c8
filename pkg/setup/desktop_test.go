package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopEntryRender(t *testing.T) {
	entry := &DesktopEntry{
		Type:       "Application",
		Name:       "Dastore",
		Comment:    "Graphical package manager for Arch Linux",
		Exec:       "dastore",
		Icon:       "/usr/share/dastore/dastore.png",
		Categories: []string{"System", "PackageManager"},
		Terminal:   false,
	}

	content := entry.Render()
	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Equal(t, "[Desktop Entry]", lines[0])
	assert.Contains(t, content, "Type=Application\n")
	assert.Contains(t, content, "Name=Dastore\n")
	assert.Contains(t, content, "Exec=dastore\n")
	assert.Contains(t, content, "Icon=/usr/share/dastore/dastore.png\n")
	assert.Contains(t, content, "Categories=System;PackageManager;\n")
	assert.Contains(t, content, "Terminal=false\n")
}

func TestDesktopEntryWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dastore.desktop")
	entry := &DesktopEntry{Type: "Application", Name: "Dastore", Terminal: true}

	require.NoError(t, entry.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Terminal=true")
}
