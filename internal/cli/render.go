// internal/cli/render.go
package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/daradege/dastore/pkg/core"
	"github.com/daradege/dastore/pkg/task"
)

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func renderPackages(packages []*core.Package) {
	t := newTable(table.Row{"Repo", "Name", "Version", "Description", ""})
	for _, p := range packages {
		marker := ""
		if p.Installed {
			marker = "installed"
		}
		t.AppendRow(table.Row{p.Repository, p.Name, p.Version, truncate(p.Description, 60), marker})
	}
	t.Render()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// attachProgress wires a transaction runner to the terminal: a progress
// line per phase, plus raw output when verbose.
func attachProgress(r *task.Runner, verbose bool) {
	r.OnProgress = func(p task.Progress) {
		fmt.Printf("[%3.0f%%] %s\n", p.Fraction*100, p.Status)
	}
	if verbose {
		r.OnOutput = func(line string) {
			fmt.Println(line)
		}
		r.OnProgress = nil
	}
}
