package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daradege/dastore/pkg/core"
)

const searchOutput = `extra/firefox 131.0-1 [installed]
    Fast, Private & Safe Web Browser
core/bash 5.2.037-1 [installed: 5.2.032-1]
    The GNU Bourne Again shell
extra/firefox-i18n-de 131.0-1
    German language pack for Firefox`

func TestParseSearch(t *testing.T) {
	packages := ParseSearch(searchOutput)
	require.Len(t, packages, 3)

	assert.Equal(t, "firefox", packages[0].Name)
	assert.Equal(t, "131.0-1", packages[0].Version)
	assert.Equal(t, "extra", packages[0].Repository)
	assert.Equal(t, "Fast, Private & Safe Web Browser", packages[0].Description)
	assert.True(t, packages[0].Installed)

	// "[installed: x]" counts as installed too
	assert.True(t, packages[1].Installed)

	assert.Equal(t, "firefox-i18n-de", packages[2].Name)
	assert.False(t, packages[2].Installed)
}

func TestParseSearchEmpty(t *testing.T) {
	assert.Empty(t, ParseSearch(""))
}

const infoOutput = `Repository      : extra
Name            : firefox
Version         : 131.0-1
Description     : Fast, Private & Safe Web Browser
URL             : https://www.mozilla.org/firefox/
Licenses        : MPL-2.0
Groups          : None
Provides        : None
Depends On      : gtk3  libxt  mime-types  dbus-glib  ffmpeg  nss
Download Size   : 68.83 MiB
Installed Size  : 243.62 MiB`

func TestParseInfo(t *testing.T) {
	fields := ParseInfoFields(infoOutput)
	assert.Equal(t, "firefox", fields["Name"])
	assert.Equal(t, "68.83 MiB", fields["Download Size"])

	pkg := &core.Package{}
	ApplyInfo(pkg, fields)
	assert.Equal(t, "firefox", pkg.Name)
	assert.Equal(t, "extra", pkg.Repository)
	assert.Equal(t, []string{"gtk3", "libxt", "mime-types", "dbus-glib", "ffmpeg", "nss"}, pkg.Depends)
	assert.Nil(t, pkg.Provides, "None must parse to an empty list")
	assert.Equal(t, "243.62 MiB", pkg.InstalledSize)
}

const installedOutput = `Name            : bash
Version         : 5.2.037-1
Description     : The GNU Bourne Again shell
Installed Size  : 9.43 MiB

Name            : linux
Version         : 6.11.3-1
Description     : The Linux kernel and modules
Installed Size  : 187.93 MiB
`

func TestParseInstalled(t *testing.T) {
	packages := ParseInstalled(installedOutput)
	require.Len(t, packages, 2)

	assert.Equal(t, "bash", packages[0].Name)
	assert.Equal(t, "9.43 MiB", packages[0].InstalledSize)
	assert.True(t, packages[0].Installed)
	assert.Equal(t, "linux", packages[1].Name)
}

func TestParseUpdates(t *testing.T) {
	out := `firefox 130.0-1 -> 131.0-1
linux 6.11.2-1 -> 6.11.3-1
glibc 1:2.40-1 -> 1:2.40-2
garbage line`

	updates := ParseUpdates(out)
	require.Len(t, updates, 3)
	assert.Equal(t, "firefox", updates[0].Name)
	assert.Equal(t, "130.0-1", updates[0].OldVersion)
	assert.Equal(t, "131.0-1", updates[0].NewVersion)
	// epoch versions do not parse as semver but must pass through
	assert.Equal(t, "glibc", updates[2].Name)
}

func TestParseHistory(t *testing.T) {
	log := `[2024-05-01T10:21:33+0000] [ALPM] installed firefox (125.0.3-1)
[2024-05-01T10:22:01+0000] [ALPM] upgraded linux (6.8.7 -> 6.8.9)
[2024-05-02T08:00:00+0000] [ALPM] installed htop (3.3.0-1)
`

	entries := ParseHistory(log, 20)
	require.Len(t, entries, 2)
	// newest first
	assert.Equal(t, "htop", entries[0].Name)
	assert.Equal(t, "2024-05-02T08:00:00+0000", entries[0].Date)
	assert.Equal(t, "firefox", entries[1].Name)
}

func TestParseHistoryLimit(t *testing.T) {
	log := `[2024-05-01T10:00:00+0000] [ALPM] installed a (1-1)
[2024-05-01T10:00:01+0000] [ALPM] installed b (1-1)
[2024-05-01T10:00:02+0000] [ALPM] installed c (1-1)
`
	entries := ParseHistory(log, 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Name)
}

func TestParseRepositories(t *testing.T) {
	conf := `[options]
HoldPkg = pacman glibc

[core]
Include = /etc/pacman.d/mirrorlist

[extra]
Include = /etc/pacman.d/mirrorlist

# [multilib]
`

	repos := ParseRepositories(conf)
	assert.Equal(t, []string{"core", "extra"}, repos)
}
