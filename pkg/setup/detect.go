// pkg/setup/detect.go
package setup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotArch indicates the host is not an Arch-based distribution.
var ErrNotArch = errors.New("this distribution is not Arch-based")

// DetectArch verifies the host (rooted at root) is Arch-based. The primary
// signal is the /etc/arch-release marker file; derivatives without the
// marker are accepted when os-release declares ID or ID_LIKE arch.
func DetectArch(root string) error {
	if root == "" {
		root = "/"
	}

	if _, err := os.Stat(filepath.Join(root, MarkerFile)); err == nil {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(root, OSReleaseFile))
	if err != nil {
		return ErrNotArch
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			if value == "arch" {
				return nil
			}
		case "ID_LIKE":
			for _, id := range strings.Fields(value) {
				if id == "arch" {
					return nil
				}
			}
		}
	}
	return ErrNotArch
}
