package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// saveReport writes the report to the reports directory under a
// generated filename and reports the resulting path.
func saveReport(dir, content string) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return reportSavedMsg{err: err}
		}
		name := fmt.Sprintf("informe-%s-%s.txt",
			time.Now().Format("20060102"), uuid.NewString()[:8])
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
			return reportSavedMsg{err: err}
		}
		return reportSavedMsg{path: path}
	}
}

// copyReport places the report on the system clipboard.
func copyReport(content string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{err: clipboard.WriteAll(content)}
	}
}
