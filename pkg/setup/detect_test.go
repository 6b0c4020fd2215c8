package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEtc(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "etc"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "etc", name), []byte(content), 0644))
}

func TestDetectArchMarkerFile(t *testing.T) {
	root := t.TempDir()
	writeEtc(t, root, "arch-release", "")

	assert.NoError(t, DetectArch(root))
}

func TestDetectArchOSRelease(t *testing.T) {
	root := t.TempDir()
	writeEtc(t, root, "os-release", "NAME=\"Arch Linux\"\nID=arch\n")

	assert.NoError(t, DetectArch(root))
}

func TestDetectArchDerivative(t *testing.T) {
	root := t.TempDir()
	writeEtc(t, root, "os-release", "ID=endeavouros\nID_LIKE=arch\n")

	assert.NoError(t, DetectArch(root))
}

func TestDetectArchRejectsOtherDistributions(t *testing.T) {
	root := t.TempDir()
	writeEtc(t, root, "os-release", "ID=debian\n")

	assert.ErrorIs(t, DetectArch(root), ErrNotArch)
}

func TestDetectArchRejectsBareSystem(t *testing.T) {
	assert.ErrorIs(t, DetectArch(t.TempDir()), ErrNotArch)
}
