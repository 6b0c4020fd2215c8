package aur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daradege/dastore/pkg/core"
)

func TestParseSearch(t *testing.T) {
	output := `aur/visual-studio-code-bin 1.95.0-1 (+1520 33.21)
    Visual Studio Code (vscode): Editor for building and debugging apps
aur/yay 12.4.2-1 (+2301 45.12) [installed]
    Yet another yogurt. Pacman wrapper and AUR helper written in go
extra/code 1.94.2-1
    The Open Source build of Visual Studio Code`

	packages := ParseSearch(output)
	require.Len(t, packages, 2, "non-aur lines are ignored")

	assert.Equal(t, "visual-studio-code-bin", packages[0].Name)
	assert.Equal(t, "1.95.0-1", packages[0].Version)
	assert.Equal(t, core.RepoAUR, packages[0].Repository)
	assert.False(t, packages[0].Installed)
	assert.Contains(t, packages[0].Description, "Visual Studio Code")

	assert.Equal(t, "yay", packages[1].Name)
	assert.True(t, packages[1].Installed)
}

func TestParseSearchEmpty(t *testing.T) {
	assert.Empty(t, ParseSearch(""))
}
