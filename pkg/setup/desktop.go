// pkg/setup/desktop.go
package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DesktopEntry describes a freedesktop.org desktop entry.
type DesktopEntry struct {
	Type       string
	Name       string
	Comment    string
	Exec       string
	Icon       string
	Categories []string
	Terminal   bool
}

// Render produces the desktop entry file content.
func (e *DesktopEntry) Render() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&b, "Type=%s\n", e.Type)
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Comment=%s\n", e.Comment)
	fmt.Fprintf(&b, "Exec=%s\n", e.Exec)
	fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	fmt.Fprintf(&b, "Categories=%s;\n", strings.Join(e.Categories, ";"))
	fmt.Fprintf(&b, "Terminal=%t\n", e.Terminal)
	return b.String()
}

// WriteFile writes the rendered entry to path.
func (e *DesktopEntry) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(e.Render()), 0644); err != nil {
		return errors.Wrap(err, "writing desktop entry")
	}
	return nil
}
