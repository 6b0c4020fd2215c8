package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreExactMatchWinsOverPrefix(t *testing.T) {
	exact := &Package{Name: "firefox", Repository: "extra"}
	prefix := &Package{Name: "firefox-i18n-de", Repository: "extra"}

	assert.Greater(t, Score(exact, "firefox"), Score(prefix, "firefox"))
}

func TestScoreBonuses(t *testing.T) {
	installed := &Package{Name: "htop", Repository: "extra", Installed: true}
	notInstalled := &Package{Name: "htop", Repository: "extra"}
	assert.Equal(t, Score(installed, "htop")-50, Score(notInstalled, "htop"))

	official := &Package{Name: "htop", Repository: "extra"}
	fromAUR := &Package{Name: "htop", Repository: RepoAUR}
	assert.Equal(t, Score(official, "htop")-30, Score(fromAUR, "htop"))
}

func TestScoreDescriptionMatch(t *testing.T) {
	p := &Package{Name: "viewer", Description: "an image browser", Repository: "extra"}
	nameHit := &Package{Name: "browser-tool", Repository: "extra"}

	assert.Greater(t, Score(nameHit, "browser"), Score(p, "browser"))
}

func TestScoreLongNamePenalty(t *testing.T) {
	short := &Package{Name: "grep", Repository: "core"}
	long := &Package{Name: "a-very-long-package-name-grep", Repository: "core"}

	assert.Greater(t, Score(short, "grep"), Score(long, "grep"))
}

func TestMergePrefersOfficialOverAUR(t *testing.T) {
	merged := Merge([]*Package{
		{Name: "htop", Repository: RepoAUR},
		{Name: "htop", Repository: "extra"},
		{Name: "btop", Repository: "extra"},
		{Name: "btop", Repository: RepoAUR},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, "extra", merged[0].Repository, "official hit replaces earlier AUR hit")
	assert.Equal(t, "extra", merged[1].Repository, "first occurrence wins otherwise")
}

func TestRankOrders(t *testing.T) {
	ranked := Rank([]*Package{
		{Name: "firefox-developer-edition", Repository: "extra"},
		{Name: "firefox", Repository: "extra"},
		{Name: "browser-thing", Description: "like firefox", Repository: RepoAUR},
	}, "firefox")

	require.Len(t, ranked, 3)
	assert.Equal(t, "firefox", ranked[0].Name)
	assert.Equal(t, "browser-thing", ranked[2].Name)
	assert.GreaterOrEqual(t, ranked[0].RelevanceScore, ranked[1].RelevanceScore)
}
