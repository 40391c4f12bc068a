// Package tui implements the interactive shell: two input fields, a
// scrollable report view, clipboard copy and save-to-file. It is a thin
// presentation layer over report.Generate; report generation happens
// synchronously inside Update, so requests can never overlap.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solmira/arquetipo/internal/logger"
	"github.com/solmira/arquetipo/internal/report"
	"github.com/solmira/arquetipo/pkg/types"
)

const (
	focusName = iota
	focusDate
)

// Options configures the shell.
type Options struct {
	// ReportsDir is where ctrl+s writes report files.
	ReportsDir string
}

type model struct {
	theme Theme
	opts  Options

	nameInput textinput.Model
	dateInput textinput.Model
	focus     int

	view      viewport.Model
	report    string
	hasReport bool

	status string
	isErr  bool

	width  int
	height int
}

// Run starts the shell and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(opts Options) model {
	name := textinput.New()
	name.Placeholder = "Nombre completo"
	name.CharLimit = 120
	name.Width = 50
	name.Focus()

	date := textinput.New()
	date.Placeholder = "DD/MM/AAAA o AAAA-MM-DD"
	date.CharLimit = 10
	date.Width = 50

	return model{
		theme:     DefaultTheme(),
		opts:      opts,
		nameInput: name,
		dateInput: date,
		focus:     focusName,
		view:      viewport.New(80, 20),
		status:    "Listo",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width - 8
		m.view.Height = msg.Height - 12
		if m.hasReport {
			m.view.SetContent(m.report)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil

		case "enter":
			return m.generate(), nil

		case "ctrl+s":
			if !m.hasReport {
				return m.withStatus("No hay informe para guardar.", false), nil
			}
			m = m.withStatus("Guardando informe...", false)
			return m, saveReport(m.opts.ReportsDir, m.report)

		case "ctrl+y":
			if !m.hasReport {
				return m.withStatus("No hay informe para copiar.", false), nil
			}
			return m, copyReport(m.report)

		case "esc":
			return m.clear(), nil

		case "pgup", "pgdown", "up", "down":
			if m.hasReport {
				var cmd tea.Cmd
				m.view, cmd = m.view.Update(msg)
				return m, cmd
			}
		}

	case reportSavedMsg:
		if msg.err != nil {
			logger.L().Error("report.save_failed", "err", msg.err)
			return m.withStatus("No se pudo guardar el archivo: "+msg.err.Error(), true), nil
		}
		logger.L().Info("report.saved", "path", msg.path)
		return m.withStatus("Guardado: "+msg.path, false), nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			logger.L().Error("report.copy_failed", "err", msg.err)
			return m.withStatus("No se pudo copiar al portapapeles: "+msg.err.Error(), true), nil
		}
		return m.withStatus("Copiado al portapapeles", false), nil
	}

	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}

func (m *model) toggleFocus() {
	if m.focus == focusName {
		m.focus = focusDate
		m.nameInput.Blur()
		m.dateInput.Focus()
	} else {
		m.focus = focusName
		m.dateInput.Blur()
		m.nameInput.Focus()
	}
}

// generate runs the core end to end and installs the result. User input
// errors surface in the status line; the shell never crashes on them.
func (m model) generate() model {
	name := strings.TrimSpace(m.nameInput.Value())
	date := strings.TrimSpace(m.dateInput.Value())

	if name == "" {
		return m.withStatus("Por favor ingresa un nombre completo.", true)
	}
	if date == "" {
		return m.withStatus("Por favor ingresa la fecha de nacimiento.", true)
	}

	out, err := report.Generate(name, date)
	if err != nil {
		logger.L().Warn("report.rejected", "err", err)
		switch {
		case errors.Is(err, types.ErrInvalidInput):
			return m.withStatus("El nombre no contiene letras válidas.", true)
		case errors.Is(err, types.ErrInvalidDate):
			return m.withStatus("Fecha inválida. Usa DD/MM/AAAA o AAAA-MM-DD.", true)
		default:
			return m.withStatus("Error al generar el informe: "+err.Error(), true)
		}
	}

	logger.L().Info("report.generated", "name_len", len(name), "date", date)
	m.report = out
	m.hasReport = true
	m.view.SetContent(out)
	m.view.GotoTop()
	return m.withStatus("Informe generado", false)
}

func (m model) clear() model {
	m.report = ""
	m.hasReport = false
	m.view.SetContent("")
	return m.withStatus("Listo", false)
}

func (m model) withStatus(s string, isErr bool) model {
	m.status = s
	m.isErr = isErr
	return m
}

func (m model) View() string {
	header := m.theme.Title.Render("Informe de Arquetipo y Tikkun (Kábala)")

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render("Nombre completo:")+" "+m.nameInput.View(),
		m.theme.Label.Render("Fecha de nacimiento:")+" "+m.dateInput.View(),
	)

	body := m.theme.Card.Render("Ingresa los datos y pulsa enter para generar el informe.")
	if m.hasReport {
		body = m.theme.Card.Render(m.view.View())
	}

	status := m.theme.Status.Render(m.status)
	if m.isErr {
		status = m.theme.Error.Render(m.status)
	}

	help := m.theme.Help.Render(
		"tab campo • enter generar • ↑/↓ desplazar • ctrl+s guardar • ctrl+y copiar • esc limpiar • ctrl+c salir")

	return lipgloss.NewStyle().Padding(1, 2).Render(
		header + "\n\n" + form + "\n\n" + body + "\n" + status + "\n" + help)
}
