package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPercent(t *testing.T) {
	p, ok := Classify(" firefox downloading... (42%)")
	require.True(t, ok)
	assert.Equal(t, "Downloading", p.Status)
	assert.InDelta(t, 0.1+0.42*0.3, p.Fraction, 0.001)

	p, ok = Classify("installing firefox (50%)")
	require.True(t, ok)
	assert.Equal(t, "Installing", p.Status)
	assert.InDelta(t, 0.4+0.5*0.5, p.Fraction, 0.001)

	p, ok = Classify("upgrading glibc (10%)")
	require.True(t, ok)
	assert.Equal(t, "Processing", p.Status)
}

func TestClassifySize(t *testing.T) {
	p, ok := Classify(" firefox 34.4 MiB/68.8 MiB 2.1 MiB/s")
	require.True(t, ok)
	assert.Equal(t, "Downloading", p.Status)
	assert.InDelta(t, 0.1+0.5*0.3, p.Fraction, 0.01)
	assert.Contains(t, p.Detail, "34.4 MiB")
}

func TestClassifyPhases(t *testing.T) {
	cases := []struct {
		line     string
		status   string
		fraction float64
	}{
		{":: resolving dependencies...", "Resolving dependencies", 0.05},
		{"checking keyring...", "Checking package integrity", 0.20},
		{"checking available disk space...", "Checking disk space", 0.35},
		{":: Running post-transaction hooks...", "Running post-transaction hooks", 0.90},
	}
	for _, tc := range cases {
		p, ok := Classify(tc.line)
		require.True(t, ok, tc.line)
		assert.Equal(t, tc.status, p.Status)
		assert.Equal(t, tc.fraction, p.Fraction)
	}
}

func TestClassifyNoise(t *testing.T) {
	_, ok := Classify("warning: config file /etc/pacman.conf, line 19")
	assert.False(t, ok)
	_, ok = Classify("")
	assert.False(t, ok)
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"913KiB", 913 * 1024},
		{"4.2 MiB", 4.2 * 1024 * 1024},
		{"1.5 GiB", 1.5 * 1024 * 1024 * 1024},
		{"100 B", 100},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		require.NoError(t, err, tc.in)
		assert.InDelta(t, tc.want, got, 0.001, tc.in)
	}

	_, err := ParseSize("not a size")
	assert.Error(t, err)
}
