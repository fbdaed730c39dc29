package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/earthinspires/internal/application"
	"github.com/inovacc/earthinspires/internal/core"
	"github.com/inovacc/earthinspires/internal/model"
)

// flashDoneMsg arrives once the flash flag has had time to clear.
type flashDoneMsg struct{}

// flashPoll re-checks the flag when the redraw beat the clear.
const flashPoll = 50 * time.Millisecond

func waitFlash(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashDoneMsg{}
	})
}

type screen int

const (
	screenEarth screen = iota
	screenGallery
	screenNote
)

// EarthModel is the main screen.
type EarthModel struct {
	app      *core.App
	palette  *palette
	gallery  GalleryModel
	note     textinput.Model
	screen   screen
	width    int
	height   int
	quitting bool
}

// NewEarthModel builds the UI for app and hooks the palette to theme
// changes.
func NewEarthModel(app *core.App) EarthModel {
	p := newPalette(app.Theme())
	app.OnThemeChange(p.apply)

	ti := textinput.New()
	ti.Placeholder = "What inspires you?"
	ti.CharLimit = 140
	ti.Width = 40

	return EarthModel{
		app:     app,
		palette: p,
		gallery: NewGalleryModel(app, p),
		note:    ti,
	}
}

func (m EarthModel) Init() tea.Cmd {
	return nil
}

func (m EarthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.gallery.SetSize(msg.Width, msg.Height)

		return m, nil

	case flashDoneMsg:
		if m.app.IsFlashing() {
			return m, waitFlash(flashPoll)
		}

		return m, nil

	case galleryClosedMsg:
		m.screen = screenEarth

		return m, nil
	}

	switch m.screen {
	case screenGallery:
		var cmd tea.Cmd

		m.gallery, cmd = m.gallery.Update(msg)

		return m, cmd

	case screenNote:
		return m.updateNote(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true

		return m, tea.Quit

	case key.Matches(keyMsg, keys.Capture):
		return m, m.capture("")

	case key.Matches(keyMsg, keys.CaptureNote):
		m.screen = screenNote
		m.note.Reset()

		return m, m.note.Focus()

	case key.Matches(keyMsg, keys.Gallery):
		m.screen = screenGallery
		m.gallery.Refresh()

		return m, nil

	case key.Matches(keyMsg, keys.Theme):
		_, _ = m.app.ToggleTheme()
		m.gallery.Refresh()

		return m, nil
	}

	return m, nil
}

func (m EarthModel) updateNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Cancel):
			m.note.Blur()
			m.screen = screenEarth

			return m, nil

		case key.Matches(keyMsg, keys.Confirm):
			note := strings.TrimSpace(m.note.Value())
			m.note.Blur()
			m.screen = screenEarth

			return m, m.capture(note)
		}
	}

	var cmd tea.Cmd

	m.note, cmd = m.note.Update(msg)

	return m, cmd
}

// capture runs the transition and schedules a redraw for when the flash
// ends. Errors are already logged by the app.
func (m EarthModel) capture(note string) tea.Cmd {
	_, _ = m.app.Capture(context.Background(), core.CaptureOptions{Note: note})

	return waitFlash(m.app.FlashDuration())
}

func (m EarthModel) View() string {
	if m.quitting {
		return ""
	}

	if m.screen == screenGallery {
		return m.palette.app.Render(m.gallery.View())
	}

	p := m.palette

	header := lipgloss.JoinVertical(lipgloss.Left,
		p.title.Render(application.AppTitle),
		p.subtitle.Render(strings.ToUpper(application.AppSubtitle)),
	)

	globe := renderGlobe(p, m.app.IsFlashing())

	var body string
	if m.screen == screenNote {
		body = lipgloss.JoinVertical(lipgloss.Left,
			globe,
			"",
			p.subtitle.Render("Note for this snapshot (enter to capture, esc to cancel)"),
			m.note.View(),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, globe, "", m.footer())
	}

	return p.app.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

func (m EarthModel) footer() string {
	p := m.palette

	captureCtl := p.control.Render(p.key.Render("c") + " capture")

	galleryLabel := p.key.Render("g") + " gallery"
	if n := m.app.Count(); n > 0 {
		galleryLabel += " " + badgeStyle.Render(fmt.Sprintf("%d", n))
	}

	galleryCtl := p.control.Render(galleryLabel)
	divider := p.divider.Render("│")

	controls := lipgloss.JoinHorizontal(lipgloss.Center, captureCtl, "  ", divider, "  ", galleryCtl)

	hints := p.subtitle.Render(fmt.Sprintf("n note · t theme: %s · q quit", m.app.Theme()))

	return lipgloss.JoinVertical(lipgloss.Center, controls, hints)
}

// Theme reports the palette currently in use.
func (m EarthModel) Theme() model.Theme {
	return m.palette.theme
}

// GalleryOpen reports whether the overlay is showing.
func (m EarthModel) GalleryOpen() bool {
	return m.screen == screenGallery
}
